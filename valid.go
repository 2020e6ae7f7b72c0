package cmdline

import (
	"fmt"
	"strconv"
	"strings"
)

// Ready-made validators for the Check field of Option and Argument.
// Each returns a function rejecting values the corresponding Parse*
// function of the strconv package cannot scan.

// CheckBool accepts the boolean spellings of strconv.ParseBool.
func CheckBool() func(string) error {
	return func(value string) error {
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf(`"%s" is not a boolean`, value)
		}
		return nil
	}
}

// CheckInt accepts integers in the given bit size, with the usual
// base prefixes.
func CheckInt(bitSize int) func(string) error {
	return func(value string) error {
		if _, err := strconv.ParseInt(value, 0, bitSize); err != nil {
			return fmt.Errorf(`"%s" is not a %d-bit integer`, value, bitSize)
		}
		return nil
	}
}

// CheckUint accepts unsigned integers in the given bit size.
func CheckUint(bitSize int) func(string) error {
	return func(value string) error {
		if _, err := strconv.ParseUint(value, 0, bitSize); err != nil {
			return fmt.Errorf(`"%s" is not an unsigned %d-bit integer`, value, bitSize)
		}
		return nil
	}
}

// CheckFloat accepts floating point numbers in the given bit size.
func CheckFloat(bitSize int) func(string) error {
	return func(value string) error {
		if _, err := strconv.ParseFloat(value, bitSize); err != nil {
			return fmt.Errorf(`"%s" is not a %d-bit float`, value, bitSize)
		}
		return nil
	}
}

// CheckOneOf accepts only the listed values.
func CheckOneOf(allowed ...string) func(string) error {
	return func(value string) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf(`"%s" is not one of %s`, value, strings.Join(allowed, ", "))
	}
}
