//go:build !(js && wasm)

package progress

// OpenDefault opens the JSON save file at path.
func OpenDefault(path string) (Store, error) {
	s, err := OpenFileStore(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
