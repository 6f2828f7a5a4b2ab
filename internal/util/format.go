package util

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Inserts separator between each three-group of digits, counting from the
// right. The input must be plain ASCII digits without sign or leading zeros.
func GroupDigits(digits string, separator rune) string {
	if len(digits) <= 3 {
		return digits
	}

	sep := string(separator)
	firstGroup := len(digits) % 3
	if firstGroup == 0 {
		firstGroup = 3
	}

	result := make([]byte, 0, len(digits)+(len(digits)-1)/3*len(sep))
	result = append(result, digits[:firstGroup]...)
	for i := firstGroup; i < len(digits); i += 3 {
		result = append(result, sep...)
		result = append(result, digits[i:i+3]...)
	}

	return string(result)
}

// Formats a number into a string with _ between each three-group of digits,
// for numbers >= 10_000 (or <= -10_000).
//
// Regarding the >= 10_000 exception:
// https://en.wikipedia.org/wiki/Decimal_separator#Exceptions_to_digit_grouping
func FormatInt[T constraints.Integer](i T) string {
	var digits string
	sign := ""
	if i < 0 {
		sign = "-"
		// Go through uint64 so that the most negative value survives
		digits = strconv.FormatUint(uint64(-(int64(i)+1))+1, 10)
	} else {
		digits = strconv.FormatUint(uint64(i), 10)
	}

	if len(digits) < 5 {
		return sign + digits
	}

	return sign + GroupDigits(digits, '_')
}
