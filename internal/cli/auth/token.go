package auth

import (
	"errors"
	"os"
)

// TokenStore — файловое хранилище bearer-токена для CLI.
// Путь приходит из конфига (TOKEN_FILE / -token-file).
type TokenStore struct {
	Path string
}

// Save записывает токен в файл с правами 0600.
func (s TokenStore) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает токен из файла.
func (s TokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}

// Clear удаляет файл токена. Отсутствие файла — не ошибка.
func (s TokenStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
