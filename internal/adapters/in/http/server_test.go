package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "carrierlabel/internal/adapters/in/http"
	"carrierlabel/internal/core/application/usecases/commands"
	"carrierlabel/internal/core/application/usecases/queries"
	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/core/domain/model/printjob"
	"carrierlabel/internal/core/domain/services/label"
	"carrierlabel/internal/generated/servers"
	"carrierlabel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPrintLabelsHandler struct {
	mock.Mock
}

func (m *MockPrintLabelsHandler) Handle(ctx context.Context, cmd commands.PrintLabelsCommand) (*printjob.PrintJob, error) {
	args := m.Called(ctx, cmd)
	job, _ := args.Get(0).(*printjob.PrintJob)
	return job, args.Error(1)
}

type MockGetPrintJobHandler struct {
	mock.Mock
}

func (m *MockGetPrintJobHandler) Handle(
	ctx context.Context,
	query queries.GetPrintJobQuery,
) (queries.GetPrintJobQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetPrintJobQueryResponse), args.Error(1)
}

const validRequest = `{
	"decomposition": "quarter",
	"packages": [{
		"packageNumber": "40990019352",
		"productType": 1,
		"depoCode": "03",
		"weight": 2.5,
		"note": "Křehké",
		"recipient": {
			"name": "Jan Novák",
			"street": "Dlouhá 12",
			"city": "Praha",
			"zipCode": "120 00",
			"country": "CZ",
			"phone": "777123456"
		},
		"services": ["SD"],
		"externalNumbers": [{"code": "CUST", "number": "ORD-1"}]
	}]
}`

type fixture struct {
	router      *echo.Echo
	printLabels *MockPrintLabelsHandler
	getPrintJob *MockGetPrintJobHandler
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		printLabels: &MockPrintLabelsHandler{},
		getPrintJob: &MockGetPrintJobHandler{},
	}

	server, err := httpin.NewServer(
		f.printLabels,
		f.getPrintJob,
		queries.NewGetPackageNumberChecksumQueryHandler(),
		nil,
	)
	require.NoError(t, err)

	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	f.router, err = httpin.NewRouter(server, swagger, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		f.printLabels.AssertExpectations(t)
		f.getPrintJob.AssertExpectations(t)
	})
	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func newPrintJob(t *testing.T) *printjob.PrintJob {
	t.Helper()
	job, err := printjob.NewPrintJob(printjob.Params{
		ID:             kernel.NewUUID(),
		Decomposition:  int(label.Quarter),
		PackageNumbers: []string{"40990019352"},
		PageCount:      1,
		Document:       []byte("%PDF-1.7 labels"),
		ContentType:    "application/pdf",
	}, time.Now())
	require.NoError(t, err)
	return job
}

func TestNewServer_RequiresHandlers(t *testing.T) {
	checksum := queries.NewGetPackageNumberChecksumQueryHandler()

	_, err := httpin.NewServer(nil, &MockGetPrintJobHandler{}, checksum, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = httpin.NewServer(&MockPrintLabelsHandler{}, nil, checksum, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = httpin.NewServer(&MockPrintLabelsHandler{}, &MockGetPrintJobHandler{}, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestPrintLabels(t *testing.T) {
	t.Run("renders and archives the labels", func(t *testing.T) {
		f := newFixture(t)
		job := newPrintJob(t)
		f.printLabels.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PrintLabelsCommand) bool {
			return cmd.Decomposition() == label.Quarter &&
				assert.ObjectsAreEqual([]string{"40990019352"}, cmd.PackageNumbers())
		})).Return(job, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/labels", validRequest)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, job.ID().String(), rec.Header().Get(httpin.PrintJobIDHeader))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), job.ID().String())
		assert.Equal(t, "%PDF-1.7 labels", rec.Body.String())
	})

	t.Run("passes pallet and weighted package details to the command", func(t *testing.T) {
		f := newFixture(t)
		body := strings.Replace(validRequest, `"services": ["SD"],`, `"services": ["SD"],
		"palletInfo": {"collieCount": 2, "palletEan": "8591234567890", "manipulationType": "EUR"},
		"weightedPackageInfo": {"weights": [1.5, 2.25]},`, 1)
		f.printLabels.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PrintLabelsCommand) bool {
			packages := cmd.Packages()
			if len(packages) != 1 {
				return false
			}
			pallet, hasPallet := packages[0].PalletInfo()
			weighted, hasWeights := packages[0].WeightedPackageInfo()
			return hasPallet && hasWeights &&
				pallet == parcel.PalletInfo{CollieCount: 2, PalletEAN: "8591234567890", ManipulationType: "EUR"} &&
				assert.ObjectsAreEqual([]float64{1.5, 2.25}, weighted.Weights)
		})).Return(newPrintJob(t), nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/labels", body)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		f.printLabels.AssertExpectations(t)
	})

	t.Run("rejects negative piece weights", func(t *testing.T) {
		f := newFixture(t)
		body := strings.Replace(validRequest, `"services": ["SD"],`, `"services": ["SD"],
		"weightedPackageInfo": {"weights": [-1]},`, 1)

		rec := f.do(http.MethodPost, "/api/v1/labels", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a body that does not match the API", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/labels", `{"decomposition": "quarter"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, int32(http.StatusBadRequest), decodeError(t, rec).Code)
	})

	t.Run("rejects an unknown decomposition", func(t *testing.T) {
		f := newFixture(t)
		body := strings.Replace(validRequest, `"quarter"`, `"half"`, 1)

		rec := f.do(http.MethodPost, "/api/v1/labels", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an unknown depot", func(t *testing.T) {
		f := newFixture(t)
		body := strings.Replace(validRequest, `"depoCode": "03"`, `"depoCode": "99"`, 1)

		rec := f.do(http.MethodPost, "/api/v1/labels", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "package #1")
	})

	t.Run("rejects cash on delivery products without payment", func(t *testing.T) {
		f := newFixture(t)
		body := strings.Replace(validRequest, `"productType": 1`, `"productType": 2`, 1)

		rec := f.do(http.MethodPost, "/api/v1/labels", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("hides internal failures", func(t *testing.T) {
		f := newFixture(t)
		f.printLabels.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).Once()

		rec := f.do(http.MethodPost, "/api/v1/labels", validRequest)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to print labels", decodeError(t, rec).Message)
	})
}

func TestGetLabels(t *testing.T) {
	t.Run("returns the archived document", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.getPrintJob.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetPrintJobQuery) bool {
			return q.JobID().IsEqual(id)
		})).Return(queries.GetPrintJobQueryResponse{
			ID:          id,
			ContentType: "application/pdf",
			Document:    []byte("%PDF-1.7 archived"),
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/labels/"+id.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, id.String(), rec.Header().Get(httpin.PrintJobIDHeader))
		assert.Equal(t, "%PDF-1.7 archived", rec.Body.String())
	})

	t.Run("unknown job is not found", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.getPrintJob.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetPrintJobQueryResponse{}, errs.NewObjectNotFoundError("printJob", id)).Once()

		rec := f.do(http.MethodGet, "/api/v1/labels/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/labels/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPrintJob(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	createdAt := time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)
	f.getPrintJob.On("Handle", mock.Anything, mock.Anything).Return(queries.GetPrintJobQueryResponse{
		ID:             id,
		Decomposition:  int(label.Quarter),
		PackageNumbers: []string{"40990019352", "40990019353"},
		PageCount:      1,
		ContentType:    "application/pdf",
		Document:       []byte("%PDF-1.7"),
		CreatedAt:      createdAt,
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/labels/"+id.String()+"/info", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body servers.PrintJob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, servers.PrintJob{
		Id:             id.Bytes(),
		Decomposition:  "quarter",
		PackageNumbers: []string{"40990019352", "40990019353"},
		PageCount:      1,
		ContentType:    "application/pdf",
		Size:           8,
		CreatedAt:      createdAt,
	}, body)
}

func TestGetPackageNumberChecksum(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		want    servers.PackageNumberChecksum
		wantErr bool
	}{
		{
			name:   "eleven digits",
			number: "40990019352",
			want:   servers.PackageNumberChecksum{PackageNumber: "40990019352", Checksum: 0, BarcodePayload: "409900193520"},
		},
		{
			name:   "twelve digits",
			number: "409900193524",
			want:   servers.PackageNumberChecksum{PackageNumber: "409900193524", Checksum: 6, BarcodePayload: "4099001935246"},
		},
		{name: "letters are rejected", number: "4099A", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(http.MethodGet, "/api/v1/package-numbers/"+tt.number+"/checksum", "")

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				return
			}
			require.Equal(t, http.StatusOK, rec.Code)
			var body servers.PackageNumberChecksum
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body)
		})
	}
}
