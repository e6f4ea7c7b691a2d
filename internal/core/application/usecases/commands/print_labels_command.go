package commands

import (
	"errors"
	"fmt"
	"slices"

	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/core/domain/services/label"
	"carrierlabel/internal/pkg/guard"
)

var (
	ErrPrintLabelsCommandIsNotConstructed = errors.New(
		"PrintLabelsCommand must be created via NewPrintLabelsCommand constructor",
	)
)

// PrintLabelsCommand represents a request to render labels for a batch of packages
// and archive the resulting document.
//
// Example:
//
//	cmd, err := NewPrintLabelsCommand(kernel.NewUUID(), packages, label.Quarter)
//	if err != nil {
//	    return fmt.Errorf("invalid print request: %w", err)
//	}
//
//	job, err := handler.Handle(ctx, cmd)
type PrintLabelsCommand struct { //nolint:recvcheck //using for validation
	jobID         kernel.UUID
	packages      []*parcel.Package
	decomposition label.Decomposition

	guard guard.ConstructorGuard
}

// NewPrintLabelsCommand creates a command to print packages with the given decomposition.
// An empty batch is allowed and produces a document without pages.
func NewPrintLabelsCommand(
	jobID kernel.UUID,
	packages []*parcel.Package,
	decomposition label.Decomposition,
) (PrintLabelsCommand, error) {
	command := PrintLabelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	// Packages are only inspected for a known decomposition.
	if err := errors.Join(
		command.setJobID(jobID),
		command.setDecomposition(decomposition),
	); err != nil {
		return PrintLabelsCommand{}, err
	}

	if err := command.setPackages(packages); err != nil {
		return PrintLabelsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PrintLabelsCommand) Validate() error {
	return c.guard.Validate(ErrPrintLabelsCommandIsNotConstructed)
}

func (c PrintLabelsCommand) JobID() kernel.UUID                 { return c.jobID }
func (c PrintLabelsCommand) Packages() []*parcel.Package        { return slices.Clone(c.packages) }
func (c PrintLabelsCommand) Decomposition() label.Decomposition { return c.decomposition }

// PackageNumbers lists the package numbers in print order.
func (c PrintLabelsCommand) PackageNumbers() []string {
	numbers := make([]string, 0, len(c.packages))
	for _, p := range c.packages {
		numbers = append(numbers, p.PackageNumber())
	}
	return numbers
}

func (c *PrintLabelsCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *PrintLabelsCommand) setDecomposition(decomposition label.Decomposition) error {
	if err := decomposition.Validate(); err != nil {
		return err
	}

	c.decomposition = decomposition
	return nil
}

func (c *PrintLabelsCommand) setPackages(packages []*parcel.Package) error {
	var errList []error
	for i, p := range packages {
		if err := p.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("package #%d: %w", i+1, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.packages = slices.Clone(packages)
	return nil
}
