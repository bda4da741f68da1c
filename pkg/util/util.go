package util

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// ErrorCode returns the code carried by the first *Error in err's chain, or nil.
func ErrorCode(err error) error {
	var uErr *Error
	if errors.As(err, &uErr) {
		return uErr.Code()
	}
	return nil
}

// IsCode reports whether err carries code anywhere in its chain.
func IsCode(err, code error) bool {
	var uErr *Error
	for errors.As(err, &uErr) {
		if errors.Is(uErr.Code(), code) {
			return true
		}
		err = uErr.Unwrap()
	}
	return false
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrBadParamInput       = errors.New("given Param is not valid")
)

var MessageInternalServerError string = "internal server error"

// ParseInteger parses a base-10 integer of type T, rejecting values that do not fit T.
func ParseInteger[T constraints.Integer](str string) (T, error) {
	var zero T
	str = strings.TrimSpace(str)
	if str == "" {
		return zero, errors.New("empty number")
	}

	// T is unsigned when its zero value minus one wraps around.
	if zero-1 > 0 {
		val, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return zero, err
		}
		if uint64(T(val)) != val {
			return zero, fmt.Errorf("%s overflows %T", str, zero)
		}
		return T(val), nil
	}

	val, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return zero, err
	}
	if int64(T(val)) != val {
		return zero, fmt.Errorf("%s overflows %T", str, zero)
	}
	return T(val), nil
}

func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr)) // should do on the copy )
	copy(copyArr, arr)
	for i, j := 0, len(copyArr)-1; i < j; i, j = i+1, j-1 {
		copyArr[i], copyArr[j] = copyArr[j], copyArr[i]
	}
	return copyArr
}

// StopConcurrentOperation reports whether ctx has been cancelled without blocking.
func StopConcurrentOperation(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
