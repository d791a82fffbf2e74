// Package check is the argument contract facility: every helper returns a
// descriptive error naming the offending parameter, and callers treat any
// violation as fatal to the call.
package check

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"main/pkg/exception"
)

// True fails when the condition does not hold.
func True(condition bool, description string) error {
	if !condition {
		return fmt.Errorf("%w: %s", exception.ErrInvalidArgument, description)
	}
	return nil
}

// NotNil fails when the value is nil.
func NotNil(value any, param string) error {
	if value == nil {
		return fmt.Errorf("%w: %s was nil", exception.ErrNilInstance, param)
	}
	return nil
}

// ValidString fails when the value is empty or whitespace only.
func ValidString(value, param string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s was not a valid string, was %q", exception.ErrInvalidArgument, param, value)
	}
	return nil
}

// Positive fails unless value > 0.
func Positive(value decimal.Decimal, param string) error {
	if !value.IsPositive() {
		return fmt.Errorf("%w: %s was not positive, was %s", exception.ErrInvalidArgument, param, value)
	}
	return nil
}

// PositiveInt fails unless value > 0.
func PositiveInt(value int64, param string) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s was not positive, was %d", exception.ErrInvalidArgument, param, value)
	}
	return nil
}

// NotNegative fails when value < 0.
func NotNegative(value decimal.Decimal, param string) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: %s was negative, was %s", exception.ErrInvalidArgument, param, value)
	}
	return nil
}

// NotNegativeInt fails when value < 0.
func NotNegativeInt(value int64, param string) error {
	if value < 0 {
		return fmt.Errorf("%w: %s was negative, was %d", exception.ErrInvalidArgument, param, value)
	}
	return nil
}

// InRangeInt fails unless lo <= value <= hi.
func InRangeInt(value, lo, hi int64, param string) error {
	if value < lo || value > hi {
		return fmt.Errorf("%w: %s was out of range [%d, %d], was %d", exception.ErrInvalidArgument, param, lo, hi, value)
	}
	return nil
}

// EqualLengths fails when the two lengths differ.
func EqualLengths(left, right int, leftName, rightName string) error {
	if left != right {
		return fmt.Errorf("%w: %s length %d != %s length %d", exception.ErrInvalidArgument, leftName, left, rightName, right)
	}
	return nil
}

// NotEmpty fails when the collection length is zero.
func NotEmpty(length int, param string) error {
	if length == 0 {
		return fmt.Errorf("%w: %s was empty", exception.ErrInvalidArgument, param)
	}
	return nil
}

// Empty fails when the collection length is not zero.
func Empty(length int, param string) error {
	if length != 0 {
		return fmt.Errorf("%w: %s was not empty, length %d", exception.ErrInvalidArgument, param, length)
	}
	return nil
}

// Must panics on a contract violation. For construction sites where an
// invalid argument is a programming error, same as the checked constructors
// of the upstream model.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
