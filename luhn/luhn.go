// Package luhn implements the mod-10 check digit algorithm used by payment
// card numbers.
package luhn

// Valid reports whether digits carries a correct mod-10 check digit. Inputs
// shorter than two characters or containing anything but ASCII digits are
// never valid.
func Valid(digits string) bool {
	if len(digits) < 2 {
		return false
	}

	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}

		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
		double = !double
	}

	return sum%10 == 0
}
