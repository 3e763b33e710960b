package contracts

import (
	"errors"
	"fmt"
)

// ErrorSentinel is the single value every failed evaluation collapses to.
// A user may type the same text into a cell; the two are indistinguishable once stored.
const ErrorSentinel = "#ERROR: ..."

var ExpressionError = errors.New("expression error")

var SyntaxError = fmt.Errorf("%w: %s", ExpressionError, "syntax")

var ArityError = fmt.Errorf("%w: %s", ExpressionError, "arity")

var TypeError = fmt.Errorf("%w: %s", ExpressionError, "type")

var DomainError = fmt.Errorf("%w: %s", ExpressionError, "domain")

var CircularReferenceError = fmt.Errorf("%w: %s", ExpressionError, "circular reference detected")

var errorKinds = []struct {
	err  error
	name string
}{
	{SyntaxError, "syntax"},
	{ArityError, "arity"},
	{TypeError, "type"},
	{DomainError, "domain"},
	{CircularReferenceError, "circular"},
}

// ErrorKind names the kind of evaluation failure, "" for nil
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}

	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind.name
		}
	}

	return "unknown"
}

// ResultValue collapses an evaluation outcome to the public contract
func ResultValue(value Value, err error) Value {
	if err != nil {
		return String(ErrorSentinel)
	}

	return value
}
