package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "carrierlabel/internal/adapters/out/postgres"
	"carrierlabel/internal/core/application/usecases/queries"
	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/printjob"
	"carrierlabel/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPrintJobQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPrintJobQueryHandler
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *GetPrintJobQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.handler = queries.NewGetPrintJobQueryHandler(db)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *GetPrintJobQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPrintJobQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE print_jobs").Error
	suite.Require().NoError(err)
}

func (suite *GetPrintJobQueryHandlerTestSuite) store(numbers ...string) *printjob.PrintJob {
	job, err := printjob.NewPrintJob(printjob.Params{
		ID:             kernel.NewUUID(),
		Decomposition:  2,
		PackageNumbers: numbers,
		PageCount:      2,
		Document:       []byte("%PDF-1.7\n\x00\xff"),
		ContentType:    "application/pdf",
	}, time.Date(2026, 2, 3, 4, 5, 6, 7000, time.UTC))
	suite.Require().NoError(err)

	err = suite.factory.Create().PrintJobRepository().Add(context.Background(), job)
	suite.Require().NoError(err)
	return job
}

func (suite *GetPrintJobQueryHandlerTestSuite) TestHandle_ReturnsStoredJob() {
	job := suite.store("40990019352", "40990019353", "40990019354", "40990019355", "40990019356")
	query, err := queries.NewGetPrintJobQuery(job.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(job.ID(), resp.ID)
	suite.Equal(2, resp.Decomposition)
	suite.Equal(job.PackageNumbers(), resp.PackageNumbers)
	suite.Equal(2, resp.PageCount)
	suite.Equal("application/pdf", resp.ContentType)
	suite.Equal(job.Document(), resp.Document)
	suite.True(job.CreatedAt().Equal(resp.CreatedAt))
}

func (suite *GetPrintJobQueryHandlerTestSuite) TestHandle_EmptyBatch() {
	job := suite.store()
	query, err := queries.NewGetPrintJobQuery(job.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(resp.PackageNumbers)
}

func (suite *GetPrintJobQueryHandlerTestSuite) TestHandle_UnknownJob_ReturnsNotFound() {
	query, err := queries.NewGetPrintJobQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetPrintJobQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPrintJobQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetPrintJobQueryIsNotConstructed)
}

func (suite *GetPrintJobQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	job := suite.store("1")
	query, err := queries.NewGetPrintJobQuery(job.ID())
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
}

func TestGetPrintJobQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPrintJobQueryHandlerTestSuite))
}
