package optparse

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Converter turns a raw command line token into a value of type T. A failed
// conversion returns a *BadValue carrying a short reason and the token; the
// definition that runs the converter attaches the option label or argument
// name before the error reaches the caller.
type Converter[T any] func(string) (T, error)

const (
	reasonInvalidInteger = "invalid integer"
	reasonInvalidNumber  = "invalid number"
	reasonOutOfRange     = "out of range"
)

// Default display names for option values, used when a registration leaves
// the value name empty.
const (
	defaultIntegerName = "N"
	defaultNumberName  = "NUM"
	defaultStringName  = "STR"
	defaultValueName   = "VALUE"
)

// Signed converts a base-10 token, with an optional leading sign, into any
// signed integer type. The token is parsed at 64 bits first and then checked
// against the range of the concrete width, so "128" converts as an int16 but
// not as an int8.
func Signed[T constraints.Signed](s string) (T, error) {
	var zero T
	if s == "" {
		return zero, &BadValue{Reason: reasonInvalidInteger, Value: s}
	}
	x, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return zero, &BadValue{Reason: reasonOutOfRange, Value: s}
		}
		return zero, &BadValue{Reason: reasonInvalidInteger, Value: s}
	}
	if reflect.ValueOf(zero).OverflowInt(x) {
		return zero, &BadValue{Reason: reasonOutOfRange, Value: s}
	}
	return T(x), nil
}

// Unsigned converts a base-10 token into any unsigned integer type. A
// negative numeral is reported as out of range, never wrapped: ParseUint
// rejects "-1" as a syntax error, so the sign is checked explicitly to keep
// the diagnostic accurate.
func Unsigned[T constraints.Unsigned](s string) (T, error) {
	var zero T
	if s == "" {
		return zero, &BadValue{Reason: reasonInvalidInteger, Value: s}
	}
	x, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return zero, &BadValue{Reason: reasonOutOfRange, Value: s}
		}
		if strings.HasPrefix(s, "-") && isNegativeNumeral(s) {
			return zero, &BadValue{Reason: reasonOutOfRange, Value: s}
		}
		return zero, &BadValue{Reason: reasonInvalidInteger, Value: s}
	}
	if reflect.ValueOf(zero).OverflowUint(x) {
		return zero, &BadValue{Reason: reasonOutOfRange, Value: s}
	}
	return T(x), nil
}

// isNegativeNumeral reports whether s is a well-formed negative integer, so
// that "-12" fails as out of range while "-12x" fails as invalid.
func isNegativeNumeral(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return true
	}
	return false
}

// Float converts a decimal or scientific-notation token into float32 or
// float64. A magnitude beyond the concrete width fails as out of range.
// Underflow to zero is accepted without a diagnostic; this matches the
// documented behavior of the converters and is deliberate.
func Float[T constraints.Float](s string) (T, error) {
	var zero T
	if s == "" {
		return zero, &BadValue{Reason: reasonInvalidNumber, Value: s}
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return zero, &BadValue{Reason: reasonOutOfRange, Value: s}
		}
		return zero, &BadValue{Reason: reasonInvalidNumber, Value: s}
	}
	if reflect.TypeOf(zero).Bits() == 32 && (x > math.MaxFloat32 || x < -math.MaxFloat32) {
		return zero, &BadValue{Reason: reasonOutOfRange, Value: s}
	}
	return T(x), nil
}

// String is the identity conversion. It accepts every token, including the
// empty string.
func String(s string) (string, error) {
	return s, nil
}

// builtinConverter returns the built-in converter and default value name for
// T. ok is false when T has no built-in conversion and the caller must
// supply one.
func builtinConverter[T any]() (conv Converter[T], name string, ok bool) {
	var c any
	var zero T
	switch any(zero).(type) {
	case int:
		c, name = Converter[int](Signed[int]), defaultIntegerName
	case int8:
		c, name = Converter[int8](Signed[int8]), defaultIntegerName
	case int16:
		c, name = Converter[int16](Signed[int16]), defaultIntegerName
	case int32:
		c, name = Converter[int32](Signed[int32]), defaultIntegerName
	case int64:
		c, name = Converter[int64](Signed[int64]), defaultIntegerName
	case uint:
		c, name = Converter[uint](Unsigned[uint]), defaultIntegerName
	case uint8:
		c, name = Converter[uint8](Unsigned[uint8]), defaultIntegerName
	case uint16:
		c, name = Converter[uint16](Unsigned[uint16]), defaultIntegerName
	case uint32:
		c, name = Converter[uint32](Unsigned[uint32]), defaultIntegerName
	case uint64:
		c, name = Converter[uint64](Unsigned[uint64]), defaultIntegerName
	case float32:
		c, name = Converter[float32](Float[float32]), defaultNumberName
	case float64:
		c, name = Converter[float64](Float[float64]), defaultNumberName
	case string:
		c, name = Converter[string](String), defaultStringName
	default:
		return nil, defaultValueName, false
	}
	return c.(Converter[T]), name, true
}
