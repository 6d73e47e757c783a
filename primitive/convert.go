package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotAllowed   = errors.New("conversion is not allowed")
	ErrOverflow     = errors.New("value overflows target type")
	ErrInvalidValue = errors.New("invalid value for target type")
)

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	validType    = reflect.TypeFor[interface{ IsValid() bool }]()
)

// Convert converts scalar src into a fresh value of type dst. The conversion
// is performed only when the kind pair belongs to one of the allowed
// categories; integer targets are range-checked regardless of category.
func Convert(src reflect.Value, dst reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	srcKind := FromReflectType(src.Type())
	dstKind := FromReflectType(dst)

	if srcKind == KindPrimitiveEnum || dstKind == KindPrimitiveEnum {
		return convertEnum(src, dst, srcKind, dstKind, allowed)
	}

	pair := ConversionPair{srcKind, dstKind}
	if !allowed.Allows(pair) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, srcKind, dstKind)
	}

	return convertPair(src, dst, pair)
}

// convertEnum handles named int and string types. Text conversions go through
// String() when available and the result is checked with IsValid() when the
// target declares it. Any other pair falls back to the underlying kinds.
func convertEnum(src reflect.Value, dst reflect.Type, srcKind, dstKind KindEnum, allowed CategoryEnum) (reflect.Value, error) {
	pair := ConversionPair{srcKind, dstKind}
	if _, ok := conversionPairs[CategoryEnumString][pair]; !ok {
		pair = ConversionPair{Underlying(src.Type()), Underlying(dst)}
		if !allowed.Allows(pair) {
			return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, src.Type(), dst)
		}

		out, err := convertPair(src, dst, pair)
		if err != nil {
			return reflect.Value{}, err
		}

		return out, validate(out)
	}

	if !allowed.Allows(pair) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, src.Type(), dst)
	}

	out := reflect.New(dst).Elem()

	switch {
	case dst.Kind() == reflect.String:
		out.SetString(enumText(src))
	case srcKind == KindPrimitiveEnum && src.Kind() == reflect.Int:
		if err := setInt64(out, src.Int()); err != nil {
			return reflect.Value{}, err
		}
	default:
		n, err := strconv.ParseInt(strings.TrimSpace(enumText(src)), 10, Underlying(dst).Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}

		if err := setInt64(out, n); err != nil {
			return reflect.Value{}, err
		}
	}

	return out, validate(out)
}

func enumText(v reflect.Value) string {
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String()
	}

	if v.Kind() == reflect.String {
		return v.String()
	}

	return strconv.FormatInt(v.Int(), 10)
}

func validate(v reflect.Value) error {
	if !v.Type().Implements(validType) {
		return nil
	}

	if !v.Interface().(interface{ IsValid() bool }).IsValid() {
		return fmt.Errorf("%w: %v is not a valid %s", ErrInvalidValue, v.Interface(), v.Type())
	}

	return nil
}

func convertPair(src reflect.Value, dst reflect.Type, pair ConversionPair) (reflect.Value, error) {
	out := reflect.New(dst).Elem()
	from, to := pair.From, pair.To

	var err error

	switch {
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, from, to)

	case from.IsNumber() && to.IsNumber():
		err = convertNumber(src, out, from)

	case from == KindString && to.IsNumber():
		err = parseNumber(src.String(), out, to)

	case from.IsNumber() && to == KindString:
		out.SetString(formatNumber(src, from))

	case from.IsInteger() && to == KindBool:
		err = numberToBool(src, out, from)

	case from == KindBool && to.IsInteger():
		var n int64
		if src.Bool() {
			n = 1
		}

		err = setInt64(out, n)

	case from == KindString && to == KindBool:
		err = parseBool(src.String(), out)

	case from == KindBool && to == KindString:
		out.SetString(strconv.FormatBool(src.Bool()))

	case from == KindString && to == KindTime:
		var t time.Time

		t, err = time.Parse(time.RFC3339Nano, strings.TrimSpace(src.String()))
		if err == nil {
			out.Set(reflect.ValueOf(t))
		}

	case from == KindTime && to == KindString:
		out.SetString(src.Interface().(time.Time).Format(time.RFC3339Nano))

	case from.IsInteger() && to == KindTime:
		err = integerToTime(src, out, from)

	case from == KindTime && to.IsInteger():
		err = setInt64(out, src.Interface().(time.Time).Unix())

	case from == KindString && to == KindDuration:
		var d time.Duration

		d, err = time.ParseDuration(strings.TrimSpace(src.String()))
		if err == nil {
			out.SetInt(int64(d))
		}

	case from == KindDuration && to == KindString:
		out.SetString(time.Duration(src.Int()).String())

	case from.IsInteger() && to == KindDuration:
		err = convertNumber(src, out, from)

	case from == KindDuration && to.IsInteger():
		err = setInt64(out, src.Int())

	case from.IsFloat() && to == KindDuration:
		err = setFloat64(out, src.Float()*float64(time.Second))

	case from == KindDuration && to.IsFloat():
		err = setFloat64(out, time.Duration(src.Int()).Seconds())
	}

	if err != nil {
		if !errors.Is(err, ErrOverflow) && !errors.Is(err, ErrInvalidValue) {
			err = fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}

		return reflect.Value{}, err
	}

	return out, nil
}

func convertNumber(src, out reflect.Value, from KindEnum) error {
	switch {
	case from.IsSigned() || from == KindDuration:
		return setInt64(out, src.Int())
	case from.IsUnsigned():
		return setUint64(out, src.Uint())
	default:
		return setFloat64(out, src.Float())
	}
}

func setInt64(out reflect.Value, n int64) error {
	switch out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if out.OverflowInt(n) {
			return overflow(n, out.Type())
		}

		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n < 0 || out.OverflowUint(uint64(n)) {
			return overflow(n, out.Type())
		}

		out.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		out.SetFloat(float64(n))
	default:
		return fmt.Errorf("%w: %s is not numeric", ErrNotAllowed, out.Type())
	}

	return nil
}

func setUint64(out reflect.Value, u uint64) error {
	switch out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
			return overflow(u, out.Type())
		}

		out.SetInt(int64(u))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if out.OverflowUint(u) {
			return overflow(u, out.Type())
		}

		out.SetUint(u)
	case reflect.Float32, reflect.Float64:
		out.SetFloat(float64(u))
	default:
		return fmt.Errorf("%w: %s is not numeric", ErrNotAllowed, out.Type())
	}

	return nil
}

func setFloat64(out reflect.Value, f float64) error {
	switch out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 || out.OverflowInt(int64(f)) {
			return overflow(f, out.Type())
		}

		out.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 || out.OverflowUint(uint64(f)) {
			return overflow(f, out.Type())
		}

		out.SetUint(uint64(f))
	case reflect.Float32, reflect.Float64:
		if !math.IsInf(f, 0) && out.OverflowFloat(f) {
			return overflow(f, out.Type())
		}

		out.SetFloat(f)
	default:
		return fmt.Errorf("%w: %s is not numeric", ErrNotAllowed, out.Type())
	}

	return nil
}

func overflow(v any, t reflect.Type) error {
	return fmt.Errorf("%w: %v does not fit into %s", ErrOverflow, v, t)
}

func parseNumber(s string, out reflect.Value, to KindEnum) error {
	s = strings.TrimSpace(s)

	switch {
	case to.IsSigned():
		n, err := strconv.ParseInt(s, 10, to.Bits())
		if err != nil {
			return err
		}

		out.SetInt(n)
	case to.IsUnsigned():
		u, err := strconv.ParseUint(s, 10, to.Bits())
		if err != nil {
			return err
		}

		out.SetUint(u)
	default:
		f, err := strconv.ParseFloat(s, to.Bits())
		if err != nil {
			return err
		}

		out.SetFloat(f)
	}

	return nil
}

func formatNumber(src reflect.Value, from KindEnum) string {
	switch {
	case from.IsSigned():
		return strconv.FormatInt(src.Int(), 10)
	case from.IsUnsigned():
		return strconv.FormatUint(src.Uint(), 10)
	default:
		return strconv.FormatFloat(src.Float(), 'f', -1, from.Bits())
	}
}

// numberToBool accepts only 0 and 1.
func numberToBool(src, out reflect.Value, from KindEnum) error {
	var n uint64

	if from.IsSigned() {
		if src.Int() < 0 {
			return fmt.Errorf("%w: only numbers 0 and 1 are allowed for bool, got: %d", ErrInvalidValue, src.Int())
		}

		n = uint64(src.Int())
	} else {
		n = src.Uint()
	}

	switch n {
	case 0:
		out.SetBool(false)
	case 1:
		out.SetBool(true)
	default:
		return fmt.Errorf("%w: only numbers 0 and 1 are allowed for bool, got: %d", ErrInvalidValue, n)
	}

	return nil
}

func parseBool(s string, out reflect.Value) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	default:
		return fmt.Errorf("%w: only strings true/false, yes/no, on/off are allowed for bool, got: %s", ErrInvalidValue, s)
	case "true", "yes", "on":
		out.SetBool(true)
	case "false", "no", "off":
		out.SetBool(false)
	}

	return nil
}

func integerToTime(src, out reflect.Value, from KindEnum) error {
	var sec int64

	if from.IsSigned() {
		sec = src.Int()
	} else {
		u := src.Uint()
		if u > math.MaxInt64 {
			return overflow(u, out.Type())
		}

		sec = int64(u)
	}

	out.Set(reflect.ValueOf(time.Unix(sec, 0).UTC()))

	return nil
}
