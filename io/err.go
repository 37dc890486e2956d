package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Port errors
	ErrTapeEmpty  = errors.New(f("tape input exhausted"))
	ErrQueueEmpty = errors.New(f("queue input exhausted"))
)

type ErrTapeValue string

func (err ErrTapeValue) Error() string {
	return f("tape input '%v' is not an integer", string(err))
}
