package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced to the UI layer
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNetwork
	KindNotFound
	KindStorageCorrupt
	KindAuth
)

// String returns the kind name used in logs
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindStorageCorrupt:
		return "storage_corrupt"
	case KindAuth:
		return "auth"
	default:
		return "unknown"
	}
}

// Sentinel errors for domain operations
var (
	// ErrNetwork indicates the catalog API could not be reached or answered garbage
	ErrNetwork = errors.New("catalog API is unreachable")

	// ErrNotFound indicates the requested movie or person does not exist
	ErrNotFound = errors.New("item not found")

	// ErrStorageCorrupt indicates the persisted favorites could not be decoded
	ErrStorageCorrupt = errors.New("stored data is corrupt")

	// ErrAuthFailed indicates the API key was rejected
	ErrAuthFailed = errors.New("API key is invalid")
)

// Error is a classified failure. Op names the operation ("discover", "movie 42").
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that corresponds to the error's kind
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrStorageCorrupt:
		return e.Kind == KindStorageCorrupt
	case ErrAuthFailed:
		return e.Kind == KindAuth
	}
	return false
}

// NewError wraps err with a kind and operation name
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds a classified error from a format string
func Errorf(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of err, or KindUnknown if err is not classified
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrStorageCorrupt):
		return KindStorageCorrupt
	case errors.Is(err, ErrAuthFailed):
		return KindAuth
	}
	return KindUnknown
}

// UserMessage returns the static message shown for err in a given context.
// fallback is used for network and unknown failures.
func UserMessage(err error, fallback string) string {
	switch KindOf(err) {
	case KindNotFound:
		return "Not found"
	case KindAuth:
		return "Invalid TMDB API key"
	case KindStorageCorrupt:
		return "Saved favorites could not be read"
	default:
		return fallback
	}
}
