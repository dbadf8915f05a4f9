package service

import "errors"

var (
	// ErrWeakPassword rejects journal passwords shorter than the minimum
	// length.
	ErrWeakPassword = errors.New("journal password is too short")

	// ErrValidation wraps entry draft validation failures so the transport
	// layer can map them to a single status code.
	ErrValidation = errors.New("entry validation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
