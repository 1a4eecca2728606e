package expr

import (
	"errors"

	"github.com/ezrec/sap1/translate"
)

var f = translate.From

var (
	ErrEmpty       = errors.New(f("empty expression"))
	ErrUnsupported = errors.New(f("only '+' and '-' of decimal numbers are supported"))
	ErrNumberRange = errors.New(f("number out of range (0-255)"))
	ErrTooLong     = errors.New(f("expression too long (at most %d numbers)", MAX_NUMBERS))
)

// ErrExpression names the expression that failed to compile.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("'%v': %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
