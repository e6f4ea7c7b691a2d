package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"carrierlabel/internal/core/application/usecases/commands"
	"carrierlabel/internal/core/domain/model/carrier"
	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/core/domain/model/printjob"
	"carrierlabel/internal/core/domain/services/label"
	"carrierlabel/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPrintJobRepository struct{ mock.Mock }

func (m *MockPrintJobRepository) Add(ctx context.Context, job *printjob.PrintJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
func (m *MockPrintJobRepository) Get(_ context.Context, _ kernel.UUID) (*printjob.PrintJob, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPrintJobRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockPrintJobUoW struct{ mock.Mock }

func (m *MockPrintJobUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPrintJobUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPrintJobUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPrintJobUoW) PrintJobRepository() ports.PrintJobRepository {
	args := m.Called()
	return args.Get(0).(ports.PrintJobRepository)
}

type MockPrintJobUoWFactory struct{ mock.Mock }

func (m *MockPrintJobUoWFactory) Create() commands.PrintJobUoW {
	args := m.Called()
	return args.Get(0).(commands.PrintJobUoW)
}

type MockLabelGenerator struct{ mock.Mock }

func (m *MockLabelGenerator) GenerateLabels(
	ctx context.Context,
	packages []*parcel.Package,
	d label.Decomposition,
) ([]byte, error) {
	args := m.Called(ctx, packages, d)
	if b, ok := args.Get(0).([]byte); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockLabelGenerator) ContentType() string { return "application/pdf" }

func newPackage(t *testing.T, number string) *parcel.Package {
	t.Helper()
	recipient, err := parcel.NewRecipient(parcel.AddressParams{
		Name:    "Eva Dvořáková",
		Street:  "Masarykova 5",
		City:    "Brno",
		ZipCode: "602 00",
		Country: "CZ",
	})
	require.NoError(t, err)

	p, err := parcel.NewPackage(parcel.PackageParams{
		PackageNumber: number,
		ProductType:   carrier.ProductParcelPrivate,
		DepoCode:      carrier.DepoBrno,
		Recipient:     recipient,
	})
	require.NoError(t, err)
	return p
}
