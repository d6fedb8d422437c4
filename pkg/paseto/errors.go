package pasetotoken

import "fmt"

// ErrConfig reports a misconfigured key set or mode at construction time.
type ErrConfig struct{ Msg string }

func (e ErrConfig) Error() string { return fmt.Sprintf("paseto config: %s", e.Msg) }

// ErrInvalidToken wraps any verification failure so callers can treat
// tampered, expired and malformed tokens the same way.
type ErrInvalidToken struct{ Err error }

func (e ErrInvalidToken) Error() string { return fmt.Sprintf("invalid token: %v", e.Err) }

func (e ErrInvalidToken) Unwrap() error { return e.Err }
