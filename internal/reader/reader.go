// Package reader loads the whole file to be searched as UTF-8 text
package reader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

var (
	ErrNotFound         = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIsDirectory      = errors.New("is a directory")
	ErrInvalidEncoding  = errors.New("file is not valid UTF-8 text")
)

func ReadCorpus(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", classify(fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("specified source %q: %w", fileName, ErrIsDirectory)
	}

	// читаем целиком - потоковой обработки нет
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", classify(fileName, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("reading %q: %w", fileName, ErrInvalidEncoding)
	}
	return string(raw), nil
}

func classify(fileName string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("opening %q: %w: %w", fileName, ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("opening %q: %w: %w", fileName, ErrPermissionDenied, err)
	default:
		return fmt.Errorf("reading %q: %w", fileName, err)
	}
}
