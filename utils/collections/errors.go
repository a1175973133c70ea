package collections

import "errors"

var (
	ErrEmptyContainer  = errors.New("container is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)
