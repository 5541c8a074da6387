package io

import (
	"errors"

	"github.com/ezrec/a256/translate"
)

var f = translate.From

var (
	// Sink errors
	ErrSinkFull   = errors.New(f("sink full"))
	ErrSinkClosed = errors.New(f("sink closed"))
)
