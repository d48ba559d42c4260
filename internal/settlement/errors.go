package settlement

import (
	"errors"
	"strings"
)

var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidTime   = errors.New("invalid time")
	ErrInvalidChoice = errors.New("invalid choice")
)

type ErrorKind string

const (
	KindMissingField  ErrorKind = "missing_field"
	KindInvalidNumber ErrorKind = "invalid_number"
	KindInvalidDate   ErrorKind = "invalid_date"
	KindInvalidTime   ErrorKind = "invalid_time"
	KindInvalidChoice ErrorKind = "invalid_choice"
)

var kindSentinels = map[ErrorKind]error{
	KindMissingField:  ErrMissingField,
	KindInvalidNumber: ErrInvalidNumber,
	KindInvalidDate:   ErrInvalidDate,
	KindInvalidTime:   ErrInvalidTime,
	KindInvalidChoice: ErrInvalidChoice,
}

// FieldError names the request field that failed validation.
type FieldError struct {
	Field   string    `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// ValidationErrors keeps field errors in check order; the first one is the
// reason a computation is refused.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) First() *FieldError {
	if len(v) == 0 {
		return nil
	}
	return v[0]
}
