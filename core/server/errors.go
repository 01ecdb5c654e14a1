package server

import "errors"

var (
	ErrMissingAddress       = errors.New("server address is required")
	ErrInvalidPort          = errors.New("server port must be between 0 and 65535")
	ErrBind                 = errors.New("failed to bind address")
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrHTTPServer           = errors.New("HTTP server error")
	ErrHTTPShutdown         = errors.New("HTTP shutdown error")
)
