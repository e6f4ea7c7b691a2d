package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"carrierlabel/internal/pkg/errs"
	"carrierlabel/internal/pkg/guard"

	"golang.org/x/text/currency"
)

// ErrMoneyIsNotConstructed is returned when a zero Money is validated.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// Money is an amount in an ISO 4217 currency, used for cash on delivery prices
// and declared insurance values.
type Money struct { //nolint:recvcheck //using for validation
	amount   float64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney validates that amount is a finite non-negative number and that
// currencyCode is a known ISO 4217 code such as "CZK" or "EUR".
func NewMoney(amount float64, currencyCode string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(m.setAmount(amount), m.setCurrency(currencyCode)); err != nil {
		return Money{}, err
	}

	return m, nil
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() float64 {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

// FormatAmount renders the amount with the fewest digits that still parse back to the
// same value: 250.50 becomes "250.5" and 100 becomes "100".
func (m Money) FormatAmount() string {
	return strconv.FormatFloat(m.amount, 'f', -1, 64)
}

// String returns "{amount} {currency}", the text printed on the cash on delivery badge.
func (m Money) String() string {
	return m.FormatAmount() + " " + m.currency
}

func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount == other.amount && m.currency == other.currency, nil
}

func (m *Money) setAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, math.MaxFloat64)
	}

	m.amount = amount
	return nil
}

func (m *Money) setCurrency(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("currency", err)
	}

	m.currency = unit.String()
	return nil
}
