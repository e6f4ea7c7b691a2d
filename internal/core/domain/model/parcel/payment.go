package parcel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/pkg/errs"
)

// PaymentInfo describes how a cash on delivery amount is collected and remitted.
type PaymentInfo interface {
	CashOnDeliveryPrice() kernel.Money
	InsurancePrice() (kernel.Money, bool)
	BankAccount() string
	BankCode() string
	IBAN() string
	SWIFT() string
	VariableSymbol() string
	SpecificSymbol() string
}

// PaymentParams carries the raw payment values. Either a domestic account with bank code
// or an IBAN with SWIFT code may be given; both are optional for the label itself.
type PaymentParams struct {
	CashOnDeliveryPrice kernel.Money
	InsurancePrice      *kernel.Money
	BankAccount         string
	BankCode            string
	IBAN                string
	SWIFT               string
	VariableSymbol      string
	SpecificSymbol      string
}

// Payment is the stock implementation of PaymentInfo.
type Payment struct {
	codPrice       kernel.Money
	insurance      *kernel.Money
	bankAccount    string
	bankCode       string
	iban           string
	swift          string
	variableSymbol string
	specificSymbol string
}

var _ PaymentInfo = (*Payment)(nil)

var (
	symbolPattern   = regexp.MustCompile(`^[0-9]{0,10}$`)
	bankCodePattern = regexp.MustCompile(`^[0-9]{4}$`)
)

func NewPayment(params PaymentParams) (*Payment, error) {
	p := &Payment{
		bankAccount: strings.TrimSpace(params.BankAccount),
		bankCode:    strings.TrimSpace(params.BankCode),
		iban:        strings.ToUpper(strings.ReplaceAll(params.IBAN, " ", "")),
		swift:       strings.ToUpper(strings.TrimSpace(params.SWIFT)),
	}

	var errList []error
	if err := params.CashOnDeliveryPrice.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("cashOnDeliveryPrice", err))
	}
	p.codPrice = params.CashOnDeliveryPrice

	if params.InsurancePrice != nil {
		if err := params.InsurancePrice.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("insurancePrice", err))
		}
		insurance := *params.InsurancePrice
		p.insurance = &insurance
	}

	if p.bankCode != "" && !bankCodePattern.MatchString(p.bankCode) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("bankCode",
			fmt.Errorf("%q must have four digits", p.bankCode)))
	}

	for _, symbol := range []struct{ name, value string }{
		{name: "variableSymbol", value: params.VariableSymbol},
		{name: "specificSymbol", value: params.SpecificSymbol},
	} {
		if !symbolPattern.MatchString(symbol.value) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(symbol.name,
				fmt.Errorf("%q must have at most ten digits", symbol.value)))
		}
	}
	p.variableSymbol = params.VariableSymbol
	p.specificSymbol = params.SpecificSymbol

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Payment) CashOnDeliveryPrice() kernel.Money {
	return p.codPrice
}

// InsurancePrice returns the declared value and whether one was set.
func (p *Payment) InsurancePrice() (kernel.Money, bool) {
	if p.insurance == nil {
		return kernel.Money{}, false
	}
	return *p.insurance, true
}

func (p *Payment) BankAccount() string    { return p.bankAccount }
func (p *Payment) BankCode() string       { return p.bankCode }
func (p *Payment) IBAN() string           { return p.iban }
func (p *Payment) SWIFT() string          { return p.swift }
func (p *Payment) VariableSymbol() string { return p.variableSymbol }
func (p *Payment) SpecificSymbol() string { return p.specificSymbol }
