// Package apperr separates failures into configuration errors and I/O errors and
// provides the prefix used when reporting them to the user.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindConfig Kind = iota + 1
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error - ошибка с указанием, на каком этапе она возникла
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Config(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindConfig, Err: err}
}

func IO(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindIO, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Prefix returns the diagnostic prefix shown before the message on stderr.
func Prefix(err error) string {
	switch KindOf(err) {
	case KindConfig:
		return "Problem parsing arguments"
	default:
		return "Application error"
	}
}

// Message - текст ошибки без префикса вида
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Err.Error()
	}
	return err.Error()
}
