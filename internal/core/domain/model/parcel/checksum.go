package parcel

import (
	"fmt"

	"carrierlabel/internal/pkg/errs"
)

// ValidatePackageNumber reports whether number is a non-empty string of ASCII digits.
func ValidatePackageNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredErrorWithCause("packageNumber", ErrInvalidPackageNumber)
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return errs.NewValueIsInvalidErrorWithCause("packageNumber",
				fmt.Errorf("%w: %q has a non-digit at index %d", ErrInvalidPackageNumber, number, i))
		}
	}
	return nil
}

// PackageNumberChecksum computes the carrier check digit of a package number.
//
// Digits at even zero-based indexes are summed and weighted by 3, digits at odd
// indexes are added unweighted, and the check digit tops the total up to the next
// multiple of ten:
//
//	check = (10 - (3*even + odd) mod 10) mod 10
//
// "40990019352" yields 0 and "409900193524" yields 6.
func PackageNumberChecksum(number string) (int, error) {
	if err := ValidatePackageNumber(number); err != nil {
		return 0, err
	}

	var even, odd int
	for i := 0; i < len(number); i++ {
		d := int(number[i] - '0')
		if i%2 == 0 {
			even += d
		} else {
			odd += d
		}
	}

	return (10 - (3*even+odd)%10) % 10, nil
}

// PackageNumberWithChecksum appends the check digit to number.
func PackageNumberWithChecksum(number string) (string, error) {
	check, err := PackageNumberChecksum(number)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", number, check), nil
}
