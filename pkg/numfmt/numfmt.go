// Package numfmt formats floating point numbers with configurable thousands
// and decimal separators.
//
//	numfmt.FormatDefault(1234.5)        // "1.234,50"
//	numfmt.Format(1234.5, 1, ',', '.')  // "1,234.5"
//	numfmt.Format(1234567, -4, '.', ',') // "1.230.000"
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tripletfmt/numfmt/internal/util"
)

// The texts of these are shown to users as-is, don't change them.
var (
	ErrInvalidThousandsSeparator = errors.New("Invalid thousands separator")
	ErrInvalidDecimalSeparator   = errors.New("Invalid decimal separator")
	ErrSameSeparators            = errors.New("The thousands separator cannot be the same as the decimal separator")
)

// Returned for NaN and infinities
var ErrNotFinite = errors.New("cannot format a non-finite number")

// The fraction is rendered with this many digits before being cut down to the
// requested precision, so no more than this many decimals are ever shown.
const fractionDigits = 6

const fractionScale = 1_000_000

type Options struct {
	// Number of digits after the decimal separator, capped at six. Extra
	// digits are cut off, not rounded.
	//
	// A negative precision replaces that many trailing integer digits with
	// zeros and drops the decimals altogether.
	Precision int

	// Either '.' or ','
	ThousandsSeparator rune

	// Either '.' or ',', and not the same as ThousandsSeparator
	DecimalSeparator rune
}

// Two decimals, '.' between thousands and ',' before the decimals
func DefaultOptions() Options {
	return Options{
		Precision:          2,
		ThousandsSeparator: '.',
		DecimalSeparator:   ',',
	}
}

func isSeparator(r rune) bool {
	return r == '.' || r == ','
}

// Returns one of ErrInvalidThousandsSeparator, ErrInvalidDecimalSeparator or
// ErrSameSeparators, checked in that order, or nil if the separators are OK.
func (o Options) Validate() error {
	if !isSeparator(o.ThousandsSeparator) {
		return ErrInvalidThousandsSeparator
	}

	if !isSeparator(o.DecimalSeparator) {
		return ErrInvalidDecimalSeparator
	}

	if o.ThousandsSeparator == o.DecimalSeparator {
		return ErrSameSeparators
	}

	return nil
}

func (o Options) Format(n float64) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "", fmt.Errorf("%w: %v", ErrNotFinite, n)
	}

	return format(n, o), nil
}

// Format renders n with precision decimals, grouping the integer digits in
// threes with thousandsSeparator between them.
//
// Invalid separators give one of ErrInvalidThousandsSeparator,
// ErrInvalidDecimalSeparator or ErrSameSeparators. NaN and infinities give
// ErrNotFinite.
func Format(n float64, precision int, thousandsSeparator rune, decimalSeparator rune) (string, error) {
	return Options{
		Precision:          precision,
		ThousandsSeparator: thousandsSeparator,
		DecimalSeparator:   decimalSeparator,
	}.Format(n)
}

// FormatDefault is Format with DefaultOptions(). Since those are always valid,
// there is no error to return. NaN and infinities are rendered as "NaN",
// "+Inf" and "-Inf".
func FormatDefault(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	return format(n, DefaultOptions())
}

// Separators must have been validated before calling this, and n must be finite.
func format(n float64, o Options) string {
	negative := n < 0

	// Abs rather than negation so that -0 loses its sign too
	n = math.Abs(n)

	whole, fraction := math.Modf(n)

	// Magnitudes below one, zero included, render as a single "0" triplet
	integerPart := util.GroupDigits(strconv.FormatFloat(whole, 'f', 0, 64), o.ThousandsSeparator)

	result := make([]byte, 0, len("-")+len(integerPart)+len(",")+fractionDigits)
	if negative {
		result = append(result, '-')
	}
	integerStart := len(result)
	result = append(result, integerPart...)

	if o.Precision < 0 {
		zeroTrailingDigits(result[integerStart:], -o.Precision, byte(o.ThousandsSeparator))
	}

	if fraction > 0 && o.Precision > 0 {
		result = append(result, byte(o.DecimalSeparator))
		result = append(result, fractionText(fraction, o.Precision)...)
	}

	return string(result)
}

// Replaces the last digitCount digits of integerPart with zeros. Separators
// are left alone but take up positions in the span, which grows by one for
// every three digits beyond the first.
//
// A negative digitCount means -math.MinInt overflowed, zero everything then.
func zeroTrailingDigits(integerPart []byte, digitCount int, separator byte) {
	positions := len(integerPart)
	if digitCount >= 0 && digitCount < len(integerPart) {
		positions = digitCount + (digitCount-1)/3
	}

	for i := len(integerPart) - 1; i >= 0 && i >= len(integerPart)-positions; i-- {
		if integerPart[i] != separator {
			integerPart[i] = '0'
		}
	}
}

// Rounds fraction to six digits and returns the first precision of them.
//
// A fraction rounding up to a whole one becomes "000000". The integer part is
// not carried into, so 0.9999999 renders as "0,00".
func fractionText(fraction float64, precision int) string {
	scaled := int64(math.Round(fraction * fractionScale))
	if scaled >= fractionScale {
		scaled -= fractionScale
	}

	digits := strconv.FormatInt(scaled, 10)
	digits = strings.Repeat("0", fractionDigits-len(digits)) + digits

	if precision < fractionDigits {
		return digits[:precision]
	}
	return digits
}
