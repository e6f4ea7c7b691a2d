package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"carrierlabel/internal/core/application/usecases/commands"
	"carrierlabel/internal/core/application/usecases/queries"
	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/printjob"
	"carrierlabel/internal/core/domain/services/label"
	"carrierlabel/internal/generated/servers"
	"carrierlabel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PrintJobIDHeader carries the id of the archived print job on label responses.
const PrintJobIDHeader = "X-Print-Job-Id"

type PrintLabelsHandler interface {
	Handle(ctx context.Context, cmd commands.PrintLabelsCommand) (*printjob.PrintJob, error)
}

type GetPrintJobHandler interface {
	Handle(ctx context.Context, query queries.GetPrintJobQuery) (queries.GetPrintJobQueryResponse, error)
}

type GetPackageNumberChecksumHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetPackageNumberChecksumQuery,
	) (queries.GetPackageNumberChecksumQueryResponse, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	printLabelsHandler PrintLabelsHandler

	// Query handlers
	getPrintJobHandler              GetPrintJobHandler
	getPackageNumberChecksumHandler GetPackageNumberChecksumHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	printLabelsHandler PrintLabelsHandler,
	getPrintJobHandler GetPrintJobHandler,
	getPackageNumberChecksumHandler GetPackageNumberChecksumHandler,
	logger *slog.Logger,
) (*Server, error) {
	if printLabelsHandler == nil {
		return nil, errs.NewValueIsRequiredError("printLabelsHandler")
	}
	if getPrintJobHandler == nil {
		return nil, errs.NewValueIsRequiredError("getPrintJobHandler")
	}
	if getPackageNumberChecksumHandler == nil {
		return nil, errs.NewValueIsRequiredError("getPackageNumberChecksumHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		printLabelsHandler:              printLabelsHandler,
		getPrintJobHandler:              getPrintJobHandler,
		getPackageNumberChecksumHandler: getPackageNumberChecksumHandler,
		logger:                          logger.With("component", "http"),
	}, nil
}

// PrintLabels handles POST /api/v1/labels - renders and archives a label document.
func (s *Server) PrintLabels(ctx echo.Context) error {
	var request servers.PrintLabelsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	decomposition, err := label.ParseDecomposition(string(request.Decomposition))
	if err != nil {
		return s.fail(ctx, err, "Invalid decomposition")
	}

	packages, err := toPackages(request.Packages)
	if err != nil {
		return s.fail(ctx, err, "Invalid package data")
	}

	cmd, err := commands.NewPrintLabelsCommand(kernel.NewUUID(), packages, decomposition)
	if err != nil {
		return s.fail(ctx, err, "Invalid print request")
	}

	job, err := s.printLabelsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to print labels")
	}

	ctx.Response().Header().Set(PrintJobIDHeader, job.ID().String())
	ctx.Response().Header().Set(echo.HeaderContentDisposition, contentDisposition(job.ID()))
	return ctx.Blob(http.StatusCreated, job.ContentType(), job.Document())
}

// GetLabels handles GET /api/v1/labels/{jobId} - returns an archived document for reprinting.
func (s *Server) GetLabels(ctx echo.Context, jobID servers.JobId) error {
	job, err := s.loadPrintJob(ctx, jobID)
	if err != nil {
		return s.fail(ctx, err, "Failed to load labels")
	}

	ctx.Response().Header().Set(PrintJobIDHeader, job.ID.String())
	ctx.Response().Header().Set(echo.HeaderContentDisposition, contentDisposition(job.ID))
	return ctx.Blob(http.StatusOK, job.ContentType, job.Document)
}

// GetPrintJob handles GET /api/v1/labels/{jobId}/info - describes an archived document.
func (s *Server) GetPrintJob(ctx echo.Context, jobID servers.JobId) error {
	job, err := s.loadPrintJob(ctx, jobID)
	if err != nil {
		return s.fail(ctx, err, "Failed to load print job")
	}

	return ctx.JSON(http.StatusOK, toPrintJob(job))
}

// GetPackageNumberChecksum handles GET /api/v1/package-numbers/{number}/checksum.
func (s *Server) GetPackageNumberChecksum(ctx echo.Context, number string) error {
	query, err := queries.NewGetPackageNumberChecksumQuery(number)
	if err != nil {
		return s.fail(ctx, err, "Invalid package number")
	}

	result, err := s.getPackageNumberChecksumHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to compute checksum")
	}

	return ctx.JSON(http.StatusOK, servers.PackageNumberChecksum{
		PackageNumber:  result.PackageNumber,
		Checksum:       result.Checksum,
		BarcodePayload: result.BarcodePayload,
	})
}

func (s *Server) loadPrintJob(ctx echo.Context, jobID servers.JobId) (queries.GetPrintJobQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(jobID[:])
	if err != nil {
		return queries.GetPrintJobQueryResponse{}, err
	}
	query, err := queries.NewGetPrintJobQuery(id)
	if err != nil {
		return queries.GetPrintJobQueryResponse{}, err
	}
	return s.getPrintJobHandler.Handle(ctx.Request().Context(), query)
}

// fail writes err as an Error body. Client mistakes carry the cause, server
// failures are logged and answered with message only.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(status, servers.Error{Code: int32(status), Message: message})
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: fmt.Sprintf("%s: %s", message, err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsNotAllowed),
		errors.Is(err, errs.ErrValueIsTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func contentDisposition(id kernel.UUID) string {
	return fmt.Sprintf("inline; filename=\"labels-%s.pdf\"", id)
}
