package service

import "errors"

var (
	ErrUnauthenticated = errors.New("no signed-in user")
	ErrNoSnapshot      = errors.New("cloud locker snapshot not received yet")
	ErrInvalidApp      = errors.New("store app has no uuid")
)
