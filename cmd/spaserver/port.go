package main

import (
	"errors"
	"fmt"
	"strconv"
)

var errInvalidPort = errors.New("invalid port")

// parsePort interprets the optional positional port argument.
// An empty argument selects fallback. On error fallback is returned too,
// so the caller can warn and keep going.
func parsePort(arg string, fallback int) (int, error) {
	if arg == "" {
		return fallback, nil
	}

	port, err := strconv.Atoi(arg)
	if err != nil {
		return fallback, fmt.Errorf("%w: %q is not a number", errInvalidPort, arg)
	}
	if port < 1 || port > 65535 {
		return fallback, fmt.Errorf("%w: %d is out of range 1-65535", errInvalidPort, port)
	}

	return port, nil
}
