package queries_test

import (
	"testing"

	"carrierlabel/internal/core/application/usecases/queries"
	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPackageNumberChecksumQueryHandler_Handle(t *testing.T) {
	tests := []struct {
		number   string
		checksum int
		payload  string
	}{
		{number: "40990019352", checksum: 0, payload: "409900193520"},
		{number: "409900193524", checksum: 6, payload: "4099001935246"},
		{number: "123456", checksum: 1, payload: "1234561"},
		{number: "99999999999", checksum: 3, payload: "999999999993"},
		{number: "0", checksum: 0, payload: "00"},
	}

	h := queries.NewGetPackageNumberChecksumQueryHandler()
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			query, err := queries.NewGetPackageNumberChecksumQuery(tt.number)
			require.NoError(t, err)

			resp, err := h.Handle(t.Context(), query)

			require.NoError(t, err)
			assert.Equal(t, tt.number, resp.PackageNumber)
			assert.Equal(t, tt.checksum, resp.Checksum)
			assert.Equal(t, tt.payload, resp.BarcodePayload)
		})
	}
}

func TestNewGetPackageNumberChecksumQuery_Invalid(t *testing.T) {
	_, err := queries.NewGetPackageNumberChecksumQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetPackageNumberChecksumQuery("40990O19352")
	require.ErrorIs(t, err, parcel.ErrInvalidPackageNumber)
}

func TestGetPackageNumberChecksumQueryHandler_Handle_NotConstructed(t *testing.T) {
	h := queries.NewGetPackageNumberChecksumQueryHandler()

	_, err := h.Handle(t.Context(), queries.GetPackageNumberChecksumQuery{})

	require.ErrorIs(t, err, queries.ErrGetPackageNumberChecksumQueryIsNotConstructed)
}
