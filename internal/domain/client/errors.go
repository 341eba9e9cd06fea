package client

import "errors"

var (
	ErrNotFound         = errors.New("client not found")
	ErrAlreadyPersisted = errors.New("client already has an id")
)
