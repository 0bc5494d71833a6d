package client

import "errors"

// ErrUnavailable means the server could not be reached.
var ErrUnavailable = errors.New("server unavailable")
