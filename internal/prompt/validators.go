package prompt

import (
	"math"
	"strconv"
	"strings"

	errs "drills/internal/errors"
)

// Int32 accepts a base-10 signed 32-bit integer.
func Int32(msg string) Validator[int32] {
	return func(input string) (int32, error) {
		n, err := strconv.ParseInt(input, 10, 32)
		if err != nil {
			return 0, errs.Invalid(input, msg, err)
		}
		return int32(n), nil
	}
}

// Uint32 accepts a base-10 unsigned 32-bit integer.
func Uint32(msg string) Validator[uint32] {
	return func(input string) (uint32, error) {
		n, err := strconv.ParseUint(input, 10, 32)
		if err != nil {
			return 0, errs.Invalid(input, msg, err)
		}
		return uint32(n), nil
	}
}

// Uint8 accepts a base-10 integer in 0..255.
func Uint8(msg string) Validator[uint8] {
	return func(input string) (uint8, error) {
		n, err := strconv.ParseUint(input, 10, 8)
		if err != nil {
			return 0, errs.Invalid(input, msg, err)
		}
		return uint8(n), nil
	}
}

// Bool accepts "true" or "false" in any case.  The shorthand forms
// strconv.ParseBool allows ("t", "1", ...) are rejected.
func Bool(msg string) Validator[bool] {
	return func(input string) (bool, error) {
		switch {
		case strings.EqualFold(input, "true"):
			return true, nil
		case strings.EqualFold(input, "false"):
			return false, nil
		}
		return false, errs.Invalid(input, msg, nil)
	}
}

// OneOf accepts any of the given words, compared case-insensitively.
// The matching word is returned as listed, not as typed.
func OneOf(msg string, accepted ...string) Validator[string] {
	return func(input string) (string, error) {
		for _, a := range accepted {
			if strings.EqualFold(input, a) {
				return a, nil
			}
		}
		return "", errs.Invalid(input, msg, nil)
	}
}

// Any accepts every input unchanged.
func Any() Validator[string] {
	return func(input string) (string, error) { return input, nil }
}

// Pair holds two integers in the order they were typed.
type Pair struct {
	First, Second int32
}

// IntPair accepts exactly two whitespace-separated 32-bit integers.
func IntPair(msg string) Validator[Pair] {
	return func(input string) (Pair, error) {
		fields := strings.Fields(input)
		if len(fields) != 2 {
			return Pair{}, errs.Invalid(input, msg, nil)
		}
		first, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return Pair{}, errs.Invalid(input, msg, err)
		}
		second, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return Pair{}, errs.Invalid(input, msg, err)
		}
		return Pair{First: int32(first), Second: int32(second)}, nil
	}
}

// Quantity is a number typed together with its unit, e.g. "5kg".
type Quantity struct {
	Value float64
	Text  string // the number as typed, without the unit
}

// WithUnit accepts a non-negative number immediately followed by unit
// (case-insensitive, optional space in between).
func WithUnit(unit, msg string) Validator[Quantity] {
	return func(input string) (Quantity, error) {
		if len(input) <= len(unit) || !strings.EqualFold(input[len(input)-len(unit):], unit) {
			return Quantity{}, errs.Invalid(input, msg, nil)
		}
		text := strings.TrimSpace(input[:len(input)-len(unit)])
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Quantity{}, errs.Invalid(input, msg, err)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Quantity{}, errs.Invalid(input, msg, nil)
		}
		return Quantity{Value: v, Text: text}, nil
	}
}
