//go:build js && wasm

package progress

import (
	"errors"
	"fmt"
	"syscall/js"
)

// LocalStorage хранит прогресс в window.localStorage браузера,
// в тех же ключах, что и исходная веб-версия игры.
type LocalStorage struct {
	storage js.Value
}

func NewLocalStorage() (*LocalStorage, error) {
	storage := js.Global().Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return nil, errors.New("localStorage is not available")
	}
	return &LocalStorage{storage: storage}, nil
}

func (s *LocalStorage) Get(key string) (string, bool) {
	v := s.storage.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (s *LocalStorage) Set(key, value string) (err error) {
	// setItem бросает QuotaExceededError, syscall/js превращает его в панику
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage.setItem(%q): %v", key, r)
		}
	}()
	s.storage.Call("setItem", key, value)
	return nil
}

func (s *LocalStorage) Delete(key string) error {
	s.storage.Call("removeItem", key)
	return nil
}
