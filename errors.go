package main

import (
	"errors"
)

var (
	errInvalidLogLevel = errors.New("invalid log level")
)
