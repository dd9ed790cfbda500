//go:build js && wasm

package progress

// OpenDefault в браузере использует localStorage, путь игнорируется.
func OpenDefault(_ string) (Store, error) {
	s, err := NewLocalStorage()
	if err != nil {
		return nil, err
	}
	return s, nil
}
