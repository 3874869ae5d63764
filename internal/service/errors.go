package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrSessionPending = errors.New("session check in progress")
	ErrLoginFailed    = errors.New("login failed")
)
