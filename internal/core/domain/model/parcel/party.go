package parcel

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"carrierlabel/internal/pkg/errs"
	"carrierlabel/internal/pkg/guard"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Party is the capability surface the label needs from an address.
type Party interface {
	Name() string
	Name2() string
	Street() string
	City() string
	ZipCode() string
	Country() string
	Contact() string
	Phone() string
	Email() string
}

// Sender is the address printed in the sender frame of the label.
type Sender interface {
	Party
}

// Recipient is the delivery address printed in the recipient frame of the label.
type Recipient interface {
	Party
}

const (
	maxNameLength    = 250
	maxStreetLength  = 60
	maxCityLength    = 50
	maxZipCodeLength = 10
	maxContactLength = 300
	maxPhoneLength   = 30
	maxEmailLength   = 100
)

// AddressParams carries the raw values of an address.
type AddressParams struct {
	Name    string
	Name2   string
	Street  string
	City    string
	ZipCode string
	// Country is an ISO 3166-1 alpha-2 code such as "CZ".
	Country string
	Contact string
	Phone   string
	Email   string
}

// Address is the stock implementation of Sender and Recipient.
type Address struct {
	name    string
	name2   string
	street  string
	city    string
	zipCode string
	country string
	contact string
	phone   string
	email   string
	guard   guard.ConstructorGuard
}

var (
	_ Sender    = (*Address)(nil)
	_ Recipient = (*Address)(nil)
)

// NewSender builds a sender address. Name, street, city, zip code and country are required.
func NewSender(params AddressParams) (*Address, error) {
	a, err := newAddress(params)
	if err != nil {
		return nil, err
	}
	if a.name == "" {
		return nil, errs.NewValueIsRequiredError("sender.name")
	}
	return a, nil
}

// NewRecipient builds a delivery address. Either a name or a contact person must be given
// next to street, city, zip code and country.
func NewRecipient(params AddressParams) (*Address, error) {
	a, err := newAddress(params)
	if err != nil {
		return nil, err
	}
	if a.name == "" && a.contact == "" {
		return nil, errs.NewValueIsRequiredErrorWithCause("recipient.name",
			errors.New("name or contact must be set"))
	}
	return a, nil
}

func newAddress(params AddressParams) (*Address, error) {
	a := &Address{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		setText(&a.name, "name", params.Name, maxNameLength, false),
		setText(&a.name2, "name2", params.Name2, maxNameLength, false),
		setText(&a.street, "street", params.Street, maxStreetLength, true),
		setText(&a.city, "city", params.City, maxCityLength, true),
		setText(&a.zipCode, "zipCode", strings.ReplaceAll(params.ZipCode, " ", ""), maxZipCodeLength, true),
		a.setCountry(params.Country),
		setText(&a.contact, "contact", params.Contact, maxContactLength, false),
		setText(&a.phone, "phone", params.Phone, maxPhoneLength, false),
		setText(&a.email, "email", params.Email, maxEmailLength, false),
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Address) Validate() error {
	return a.guard.Validate(errs.NewValueIsRequiredError("address must be created via NewSender or NewRecipient"))
}

func (a *Address) Name() string    { return a.name }
func (a *Address) Name2() string   { return a.name2 }
func (a *Address) Street() string  { return a.street }
func (a *Address) City() string    { return a.city }
func (a *Address) ZipCode() string { return a.zipCode }
func (a *Address) Country() string { return a.country }
func (a *Address) Contact() string { return a.contact }
func (a *Address) Phone() string   { return a.phone }
func (a *Address) Email() string   { return a.email }

func (a *Address) setCountry(country string) error {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	region, err := language.ParseRegion(country)
	if err != nil || !region.IsCountry() || len(country) != 2 {
		return errs.NewValueIsInvalidErrorWithCause("country",
			fmt.Errorf("%q is not an ISO 3166-1 alpha-2 country code", country))
	}
	a.country = country
	return nil
}

// setText normalises value to NFC, trims it and checks its length in characters.
func setText(dst *string, paramName, value string, maxLength int, required bool) error {
	value = strings.TrimSpace(norm.NFC.String(value))
	if required && value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(value); n > maxLength {
		return errs.NewValueIsTooLongErrorWithCause(paramName, n, maxLength, ErrFieldTooLong)
	}
	*dst = value
	return nil
}
