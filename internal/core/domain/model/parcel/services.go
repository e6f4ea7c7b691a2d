package parcel

import (
	"strings"

	"carrierlabel/internal/core/domain/model/carrier"
	"carrierlabel/internal/pkg/errs"
)

// PackageService is an additional service ordered for a package.
type PackageService interface {
	SvcCode() carrier.ServiceCode
}

// Flag is a boolean delivery option.
type Flag interface {
	Code() carrier.FlagCode
	Value() bool
}

// ExternalNumber links the package to a number in another system, e.g. an order id.
type ExternalNumber interface {
	Code() string
	Number() string
}

type Service struct {
	code carrier.ServiceCode
}

func NewService(code carrier.ServiceCode) (Service, error) {
	if err := code.Validate(); err != nil {
		return Service{}, err
	}
	return Service{code: code}, nil
}

func (s Service) SvcCode() carrier.ServiceCode {
	return s.code
}

type FlagValue struct {
	code  carrier.FlagCode
	value bool
}

func NewFlag(code carrier.FlagCode, value bool) (FlagValue, error) {
	if err := code.Validate(); err != nil {
		return FlagValue{}, err
	}
	return FlagValue{code: code, value: value}, nil
}

func (f FlagValue) Code() carrier.FlagCode { return f.code }
func (f FlagValue) Value() bool            { return f.value }

const (
	maxExternalCodeLength   = 10
	maxExternalNumberLength = 50
)

type ExtNumber struct {
	code   string
	number string
}

func NewExternalNumber(code, number string) (ExtNumber, error) {
	code = strings.TrimSpace(code)
	number = strings.TrimSpace(number)
	switch {
	case code == "":
		return ExtNumber{}, errs.NewValueIsRequiredError("externalNumber.code")
	case number == "":
		return ExtNumber{}, errs.NewValueIsRequiredError("externalNumber.number")
	case len(code) > maxExternalCodeLength:
		return ExtNumber{}, errs.NewValueIsTooLongErrorWithCause(
			"externalNumber.code", len(code), maxExternalCodeLength, ErrFieldTooLong)
	case len(number) > maxExternalNumberLength:
		return ExtNumber{}, errs.NewValueIsTooLongErrorWithCause(
			"externalNumber.number", len(number), maxExternalNumberLength, ErrFieldTooLong)
	}
	return ExtNumber{code: code, number: number}, nil
}

func (e ExtNumber) Code() string   { return e.code }
func (e ExtNumber) Number() string { return e.number }
