package domain

import "errors"

// ErrMalformedInput is returned when the text does not have the shape ax^2+bx+c.
var ErrMalformedInput = errors.New("malformed trinomial")

// ErrCacheMiss is returned by a result cache when no entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")
