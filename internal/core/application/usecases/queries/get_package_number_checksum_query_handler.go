package queries

import (
	"context"

	"carrierlabel/internal/core/domain/model/parcel"
)

// GetPackageNumberChecksumQueryHandler computes check digits without touching storage.
type GetPackageNumberChecksumQueryHandler struct{}

func NewGetPackageNumberChecksumQueryHandler() GetPackageNumberChecksumQueryHandler {
	return GetPackageNumberChecksumQueryHandler{}
}

func (h GetPackageNumberChecksumQueryHandler) Handle(
	_ context.Context,
	query GetPackageNumberChecksumQuery,
) (GetPackageNumberChecksumQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageNumberChecksumQueryResponse{}, err
	}

	checksum, err := parcel.PackageNumberChecksum(query.PackageNumber())
	if err != nil {
		return GetPackageNumberChecksumQueryResponse{}, err
	}

	payload, err := parcel.PackageNumberWithChecksum(query.PackageNumber())
	if err != nil {
		return GetPackageNumberChecksumQueryResponse{}, err
	}

	return GetPackageNumberChecksumQueryResponse{
		PackageNumber:  query.PackageNumber(),
		Checksum:       checksum,
		BarcodePayload: payload,
	}, nil
}
