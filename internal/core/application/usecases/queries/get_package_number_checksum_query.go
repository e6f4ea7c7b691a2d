package queries

import (
	"errors"

	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/pkg/guard"
)

var (
	ErrGetPackageNumberChecksumQueryIsNotConstructed = errors.New(
		"GetPackageNumberChecksumQuery must be created via NewGetPackageNumberChecksumQuery constructor",
	)
)

// GetPackageNumberChecksumQuery asks for the check digit of a package number.
type GetPackageNumberChecksumQuery struct {
	packageNumber string

	guard guard.ConstructorGuard
}

// NewGetPackageNumberChecksumQuery rejects empty and non-digit numbers.
func NewGetPackageNumberChecksumQuery(packageNumber string) (GetPackageNumberChecksumQuery, error) {
	if err := parcel.ValidatePackageNumber(packageNumber); err != nil {
		return GetPackageNumberChecksumQuery{}, err
	}

	return GetPackageNumberChecksumQuery{
		packageNumber: packageNumber,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetPackageNumberChecksumQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageNumberChecksumQueryIsNotConstructed)
}

func (q GetPackageNumberChecksumQuery) PackageNumber() string {
	return q.packageNumber
}

// GetPackageNumberChecksumQueryResponse holds the check digit and the barcode payload
// built from it.
type GetPackageNumberChecksumQueryResponse struct {
	PackageNumber  string
	Checksum       int
	BarcodePayload string
}
