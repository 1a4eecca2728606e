package io

import (
	"errors"

	"github.com/ezrec/sap1/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrTapeMissing = errors.New(f("tape missing"))
)
