package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a digit string with a valid Luhn check digit.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
