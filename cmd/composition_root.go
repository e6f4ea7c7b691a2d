package cmd

import (
	"fmt"
	"log/slog"

	httpin "carrierlabel/internal/adapters/in/http"
	"carrierlabel/internal/adapters/out/pdfrenderer"
	"carrierlabel/internal/adapters/out/postgres"
	"carrierlabel/internal/core/application/usecases/commands"
	"carrierlabel/internal/core/application/usecases/queries"
	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/core/domain/services/label"
	"carrierlabel/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	engine     *label.Engine
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	renderer, err := pdfrenderer.NewRenderer(logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create pdf renderer: %w", err)
	}

	options, err := labelOptions(config, logger)
	if err != nil {
		return CompositionRoot{}, err
	}
	engine, err := label.NewEngine(renderer, options...)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create label engine: %w", err)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     engine,
		logger:     logger,
	}, nil
}

func labelOptions(config Config, logger *slog.Logger) ([]label.Option, error) {
	contact := label.DefaultContact()
	contact.LogoPath = config.LabelLogoPath
	if config.LabelContactPhone != "" {
		contact.Phone = config.LabelContactPhone
	}
	if config.LabelContactEmail != "" {
		contact.Email = config.LabelContactEmail
	}
	if config.LabelContactWeb != "" {
		contact.Web = config.LabelContactWeb
	}

	options := []label.Option{
		label.WithContact(contact),
		label.WithDayNightBadge(config.LabelDayNightBadge),
		label.WithAuthor(config.LabelAuthor),
		label.WithLogger(logger),
	}

	if config.LabelSenderName != "" {
		sender, err := parcel.NewSender(parcel.AddressParams{
			Name:    config.LabelSenderName,
			Street:  config.LabelSenderStreet,
			City:    config.LabelSenderCity,
			ZipCode: config.LabelSenderZipCode,
			Country: config.LabelSenderCountry,
		})
		if err != nil {
			return nil, fmt.Errorf("default sender: %w", err)
		}
		options = append(options, label.WithDefaultSender(sender))
	}

	return options, nil
}

func (c *CompositionRoot) CreatePrintLabelsCommandHandler() (*commands.PrintLabelsCommandHandler, error) {
	var f commands.PrintJobUoWFactory = FuncPrintJobUoWFactory(func() commands.PrintJobUoW {
		return c.uowFactory.Create()
	})
	handler, err := commands.NewPrintLabelsCommandHandler(f, c.engine)
	if err != nil {
		return nil, err
	}
	return &handler, nil
}

func (c *CompositionRoot) CreatePurgePrintJobsCommandHandler() *commands.PurgePrintJobsCommandHandler {
	var f commands.PrintJobUoWFactory = FuncPrintJobUoWFactory(func() commands.PrintJobUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewPurgePrintJobsCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateGetPrintJobQueryHandler() queries.GetPrintJobQueryHandler {
	return queries.NewGetPrintJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageNumberChecksumQueryHandler() queries.GetPackageNumberChecksumQueryHandler {
	return queries.NewGetPackageNumberChecksumQueryHandler()
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	printLabelsHandler, err := c.CreatePrintLabelsCommandHandler()
	if err != nil {
		return nil, err
	}
	return httpin.NewServer(
		printLabelsHandler,
		c.CreateGetPrintJobQueryHandler(),
		c.CreateGetPackageNumberChecksumQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreatePurgePrintJobsCommandHandler(),
		c.config.LabelRetentionSchedule,
		c.config.LabelRetention,
		c.logger,
	)
}

type FuncPrintJobUoWFactory func() commands.PrintJobUoW

func (f FuncPrintJobUoWFactory) Create() commands.PrintJobUoW {
	return f()
}
