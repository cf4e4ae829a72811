package primitive

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotAllowed  = errors.New("conversion not allowed")
	ErrOutOfRange  = errors.New("value out of range")
	ErrLossy       = errors.New("conversion loses precision")
	ErrSyntax      = errors.New("invalid syntax")
	ErrUnknownName = errors.New("unknown enum name")
	ErrNotFinite   = errors.New("value is not a finite number")
)

// Coerce converts v into the canonical value for kind `to`: int64 for signed
// integers, uint64 for unsigned integers, float64 for floats, bool and string
// as is.
//
// The pair (FromValue(v), to) must belong to one of the allowed categories.
// An unsafe numeric pair is still accepted under CategorySafeNumber when the
// value survives the conversion unchanged, so 30.0 fits an int but 30.5 does not.
// NaN and infinities are never accepted, neither as floats nor as text.
func Coerce(v any, to KindEnum, allowed CategoryEnum) (any, error) {
	from := FromValue(v)
	if from == 0 {
		return nil, fmt.Errorf("%w: unsupported value of type %T", ErrNotAllowed, v)
	}

	if from.IsFloat() && !isFinite(toFloat64(v)) {
		return nil, fmt.Errorf("%w: %v", ErrNotFinite, v)
	}

	if !to.IsLeaf() || to == KindPrimitiveEnum {
		return nil, fmt.Errorf("%w: %s is not a scalar target", ErrNotAllowed, to)
	}

	if from == to && (from == KindBool || from == KindString) {
		return v, nil
	}

	category := CategoryOf(ConversionPair{From: from, To: to})
	exact := false

	if allowed&category == 0 {
		if category != CategoryUnsafeNumber || allowed&CategorySafeNumber == 0 {
			return nil, fmt.Errorf("%w: %s to %s", ErrNotAllowed, from, to)
		}

		exact = true
	}

	switch category {
	case CategorySafeNumber, CategoryUnsafeNumber:
		return convertNumber(v, to, exact)

	case CategoryTextNumber:
		if to == KindString {
			return formatNumber(v), nil
		}

		return parseNumber(v.(string), to)

	case CategoryNumericBool:
		if to == KindBool {
			return numberToBool(v)
		}

		if to.IsUnsigned() {
			if v.(bool) {
				return uint64(1), nil
			}

			return uint64(0), nil
		}

		if v.(bool) {
			return int64(1), nil
		}

		return int64(0), nil

	case CategoryTextualBool:
		if to == KindString {
			return strconv.FormatBool(v.(bool)), nil
		}

		return parseBool(v.(string))

	case CategoryEnumString:
		return v.(fmt.Stringer).String(), nil
	}

	return nil, fmt.Errorf("%w: %s to %s", ErrNotAllowed, from, to)
}

// CoerceEnum resolves v to an index into names. Strings and other enums match
// by case-insensitive name; integers are taken as the index itself.
func CoerceEnum(v any, names []string, allowed CategoryEnum) (int, error) {
	from := FromValue(v)

	switch {
	case from == KindString || from == KindPrimitiveEnum:
		if allowed&CategoryEnumString == 0 {
			return 0, fmt.Errorf("%w: %s to %s", ErrNotAllowed, from, KindPrimitiveEnum)
		}

		var name string
		if from == KindString {
			name = strings.TrimSpace(v.(string))
		} else {
			name = v.(fmt.Stringer).String()
		}

		for i, candidate := range names {
			if strings.EqualFold(candidate, name) {
				return i, nil
			}
		}

		return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownName, name, strings.Join(names, ", "))

	case from.IsNumber():
		if allowed&CategorySafeNumber == 0 {
			return 0, fmt.Errorf("%w: %s to %s", ErrNotAllowed, from, KindPrimitiveEnum)
		}

		n, err := convertNumber(v, KindInt64, true)
		if err != nil {
			return 0, err
		}

		idx := n.(int64)
		if idx < 0 || idx >= int64(len(names)) {
			return 0, fmt.Errorf("%w: enum index %d not in [0, %d)", ErrOutOfRange, idx, len(names))
		}

		return int(idx), nil
	}

	return 0, fmt.Errorf("%w: %T to %s", ErrNotAllowed, v, KindPrimitiveEnum)
}

func convertNumber(v any, to KindEnum, exact bool) (any, error) {
	switch {
	case to.IsFloat():
		f := toFloat64(v)
		if to == KindFloat32 {
			if math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
				return nil, fmt.Errorf("%w: %v overflows %s", ErrOutOfRange, v, to)
			}

			if exact && float64(float32(f)) != f {
				return nil, fmt.Errorf("%w: %v to %s", ErrLossy, v, to)
			}
		}

		if exact && isLargeInteger(v) && !sameInteger(v, f) {
			return nil, fmt.Errorf("%w: %v to %s", ErrLossy, v, to)
		}

		return f, nil

	case to.IsSigned():
		i, err := toInt64(v, exact)
		if err != nil {
			return nil, err
		}

		bits := to.Bits()
		if bits < 64 {
			lo, hi := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
			if i < lo || i > hi {
				return nil, fmt.Errorf("%w: %d overflows %s", ErrOutOfRange, i, to)
			}
		}

		return i, nil

	case to.IsUnsigned():
		u, err := toUint64(v, exact)
		if err != nil {
			return nil, err
		}

		bits := to.Bits()
		if bits < 64 && u > uint64(1)<<bits-1 {
			return nil, fmt.Errorf("%w: %d overflows %s", ErrOutOfRange, u, to)
		}

		return u, nil
	}

	return nil, fmt.Errorf("%w: %T to %s", ErrNotAllowed, v, to)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	}

	return math.NaN()
}

func toInt64(v any, exact bool) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(x, true)
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrOutOfRange, u)
		}

		return int64(u), nil
	case float32, float64:
		f := toFloat64(x)
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrOutOfRange, v)
		}

		if exact && f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %v to integer", ErrLossy, v)
		}

		return int64(f), nil
	}

	return 0, fmt.Errorf("%w: %T is not a number", ErrNotAllowed, v)
}

func toUint64(v any, exact bool) (uint64, error) {
	switch x := v.(type) {
	case uint:
		return uint64(x), nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case uint64:
		return x, nil
	case int, int8, int16, int32, int64:
		i, _ := toInt64(x, true)
		if i < 0 {
			return 0, fmt.Errorf("%w: %d is negative", ErrOutOfRange, i)
		}

		return uint64(i), nil
	case float32, float64:
		f := toFloat64(x)
		if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 {
			return 0, fmt.Errorf("%w: %v is not an unsigned integer", ErrOutOfRange, v)
		}

		if exact && f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %v to integer", ErrLossy, v)
		}

		return uint64(f), nil
	}

	return 0, fmt.Errorf("%w: %T is not a number", ErrNotAllowed, v)
}

// isLargeInteger reports whether v is a 64-bit wide integer that float64 may
// not hold exactly.
func isLargeInteger(v any) bool {
	switch v.(type) {
	case int, int64, uint, uint64:
		return true
	}

	return false
}

func sameInteger(v any, f float64) bool {
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return false
	}

	switch x := v.(type) {
	case int:
		return int64(f) == int64(x)
	case int64:
		return int64(f) == x
	case uint:
		return f >= 0 && uint64(f) == uint64(x)
	case uint64:
		return f >= 0 && uint64(f) == x
	}

	return true
}

func formatNumber(v any) string {
	switch x := v.(type) {
	case int, int8, int16, int32, int64:
		i, _ := toInt64(x, true)
		return strconv.FormatInt(i, 10)
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(x, true)
		return strconv.FormatUint(u, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	return fmt.Sprint(v)
}

func parseNumber(s string, to KindEnum) (any, error) {
	s = strings.TrimSpace(s)

	switch {
	case to.IsSigned():
		i, err := strconv.ParseInt(s, 10, to.Bits())
		if err == nil {
			return i, nil
		}

		// "30.0" is a valid integer as long as nothing is lost
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return convertNumber(f, to, true)
		}

		return nil, fmt.Errorf("%w: %q as %s: %w", ErrSyntax, s, to, err)

	case to.IsUnsigned():
		u, err := strconv.ParseUint(s, 10, to.Bits())
		if err == nil {
			return u, nil
		}

		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return convertNumber(f, to, true)
		}

		return nil, fmt.Errorf("%w: %q as %s: %w", ErrSyntax, s, to, err)

	case to.IsFloat():
		f, err := strconv.ParseFloat(s, to.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: %q as %s: %w", ErrSyntax, s, to, err)
		}

		if !isFinite(f) {
			return nil, fmt.Errorf("%w: %q", ErrNotFinite, s)
		}

		return f, nil
	}

	return nil, fmt.Errorf("%w: string to %s", ErrNotAllowed, to)
}

// numberToBool accepts only 0 and 1.
func numberToBool(v any) (bool, error) {
	i, err := toInt64(v, true)
	if err != nil {
		return false, err
	}

	switch i {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}

	return false, fmt.Errorf("%w: only numbers 0 and 1 are allowed for bool, got: %d", ErrOutOfRange, i)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}

	return false, fmt.Errorf("%w: only strings true/false, yes/no, on/off are allowed for bool, got: %s", ErrSyntax, s)
}
