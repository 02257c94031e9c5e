package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether s is a Luhn-valid bank card number.
func IsCardNumber(s string) bool {
	if len(s) != 16 {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}
