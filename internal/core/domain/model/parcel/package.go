package parcel

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"unicode/utf8"

	"carrierlabel/internal/core/domain/model/carrier"
	"carrierlabel/internal/pkg/errs"

	"golang.org/x/text/unicode/norm"
)

// MaxNoteLength is the longest note, in characters, the carrier accepts.
const MaxNoteLength = 300

// PackageParams carries everything needed to build a Package.
// Sender may be nil, in which case the account default sender applies.
// PackageCount and PackagePosition default to 1 when left at zero.
type PackageParams struct {
	PackageNumber       string
	ProductType         carrier.ProductType
	Weight              float64
	Note                string
	DepoCode            carrier.DepoCode
	Sender              Sender
	Recipient           Recipient
	SpecialDelivery     *SpecialDelivery
	PaymentInfo         PaymentInfo
	ExternalNumbers     []ExternalNumber
	Services            []PackageService
	Flags               []Flag
	PalletInfo          *PalletInfo
	WeightedPackageInfo *WeightedPackageInfo
	PackageCount        int
	PackagePosition     int
}

// Package is one physical piece of a shipment and the unit a label is printed for.
//
// Package follows these invariants:
//   - The package number is empty or a string of ASCII digits
//   - The product type is one of carrier.KnownProductTypes
//   - A cash on delivery product always carries payment info
//   - The depo code is one of carrier.KnownDepoCodes
//   - A recipient is always present
//   - The note has at most MaxNoteLength characters
//   - Package count and position are positive; the position is not compared
//     against the count
//   - Can only be created through NewPackage
//
// Every setter applies the same validation as the constructor and leaves the
// package untouched when it fails. Values are stored exactly as given.
type Package struct {
	// packageNumber is the carrier-assigned number without check digit
	packageNumber string

	productType carrier.ProductType

	// weight is in kilograms
	weight float64

	note     string
	depoCode carrier.DepoCode

	// sender is nil when the account default sender applies
	sender    Sender
	recipient Recipient

	specialDelivery *SpecialDelivery

	// paymentInfo is required for cash on delivery products
	paymentInfo PaymentInfo

	externalNumbers     []ExternalNumber
	services            []PackageService
	flags               []Flag
	palletInfo          *PalletInfo
	weightedPackageInfo *WeightedPackageInfo

	// packageCount and packagePosition print as "position/count"
	packageCount    int
	packagePosition int

	// isConstructed ensures the package was created via NewPackage
	isConstructed bool
}

// NewPackage validates params and returns a Package. This is the only way to create
// a valid Package.
//
// Parameters:
//   - params: package data; Recipient, ProductType and DepoCode are required,
//     PaymentInfo is required for cash on delivery products
//
// Returns:
//   - *Package: the created package if all validations pass
//   - error: every violation, joined with errors.Join
//
// Example:
//
//	recipient, _ := parcel.NewRecipient(parcel.AddressParams{
//	    Name: "Jan Novák", Street: "Dlouhá 1", City: "Praha", ZipCode: "11000", Country: "CZ",
//	})
//	pkg, err := parcel.NewPackage(parcel.PackageParams{
//	    PackageNumber: "40990019352",
//	    ProductType:   carrier.ProductParcelPrivate,
//	    DepoCode:      carrier.DepoPrahaJinocany,
//	    Recipient:     recipient,
//	})
//	if err != nil {
//	    // Handle validation error
//	}
func NewPackage(params PackageParams) (*Package, error) {
	p := &Package{
		packageCount:    1,
		packagePosition: 1,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setPackageNumber(params.PackageNumber),
		p.setProductType(params.ProductType),
		p.setWeight(params.Weight),
		p.setNote(params.Note),
		p.setDepoCode(params.DepoCode),
		p.setSender(params.Sender),
		p.setRecipient(params.Recipient),
		p.setSpecialDelivery(params.SpecialDelivery),
		p.setPaymentInfo(params.PaymentInfo),
		p.setExternalNumbers(params.ExternalNumbers),
		p.setServices(params.Services),
		p.setFlags(params.Flags),
		p.setPalletInfo(params.PalletInfo),
		p.setWeightedPackageInfo(params.WeightedPackageInfo),
		p.setPackageCount(params.PackageCount),
		p.setPackagePosition(params.PackagePosition),
		checkCashOnDelivery(params.ProductType, normalizeNil(params.PaymentInfo)),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Package was created through NewPackage.
//
// Returns:
//   - nil if the package is valid
//   - ErrPackageNotConstructed for a nil or zero-value package
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageNotConstructed
	}
	return nil
}

// PackageNumber returns the package number without check digit. It may be empty.
func (p *Package) PackageNumber() string { return p.packageNumber }

// ProductType returns the carrier product the package is shipped as.
func (p *Package) ProductType() carrier.ProductType { return p.productType }

// Weight returns the weight in kilograms.
func (p *Package) Weight() float64 { return p.weight }

// Note returns the free-text note exactly as it was set.
func (p *Package) Note() string { return p.note }

// DepoCode returns the depot that handles the package.
func (p *Package) DepoCode() carrier.DepoCode { return p.depoCode }

// Sender returns the sender, or nil when the account default applies.
func (p *Package) Sender() Sender { return p.sender }

// Recipient returns the recipient.
func (p *Package) Recipient() Recipient { return p.recipient }

// PaymentInfo returns the payment details, or nil when none were given.
func (p *Package) PaymentInfo() PaymentInfo { return p.paymentInfo }

// PackageCount returns the number of pieces in the shipment.
func (p *Package) PackageCount() int { return p.packageCount }

// PackagePosition returns the 1-based position of this piece in the shipment.
func (p *Package) PackagePosition() int { return p.packagePosition }

// ExternalNumbers returns a copy of the external reference numbers.
func (p *Package) ExternalNumbers() []ExternalNumber { return slices.Clone(p.externalNumbers) }

// Services returns a copy of the ordered additional services.
func (p *Package) Services() []PackageService { return slices.Clone(p.services) }

// Flags returns a copy of the package flags.
func (p *Package) Flags() []Flag { return slices.Clone(p.flags) }

// SpecialDelivery returns the special delivery details and whether they are set.
func (p *Package) SpecialDelivery() (SpecialDelivery, bool) {
	if p.specialDelivery == nil {
		return SpecialDelivery{}, false
	}
	return *p.specialDelivery, true
}

// PalletInfo returns the pallet details and whether they are set.
func (p *Package) PalletInfo() (PalletInfo, bool) {
	if p.palletInfo == nil {
		return PalletInfo{}, false
	}
	return *p.palletInfo, true
}

// WeightedPackageInfo returns a copy of the per-piece weights and whether they are set.
func (p *Package) WeightedPackageInfo() (WeightedPackageInfo, bool) {
	if p.weightedPackageInfo == nil {
		return WeightedPackageInfo{}, false
	}
	return WeightedPackageInfo{Weights: slices.Clone(p.weightedPackageInfo.Weights)}, true
}

// IsCashOnDelivery reports whether the product type collects money on delivery.
func (p *Package) IsCashOnDelivery() bool {
	return p.productType.IsCashOnDelivery()
}

// HasService reports whether any ordered service has the given code.
func (p *Package) HasService(code carrier.ServiceCode) bool {
	return slices.ContainsFunc(p.services, func(s PackageService) bool {
		return s.SvcCode() == code
	})
}

// PackageNumberChecksum returns the check digit of the package number.
// It fails for an empty number.
func (p *Package) PackageNumberChecksum() (int, error) {
	return PackageNumberChecksum(p.packageNumber)
}

// SetPackageNumber replaces the package number. The number is stored as given:
// an empty string is accepted, anything else must consist of ASCII digits only,
// so surrounding whitespace is rejected rather than trimmed.
func (p *Package) SetPackageNumber(number string) error {
	return p.setPackageNumber(number)
}

// SetProductType switches the product. Switching to a cash on delivery product
// fails unless payment info is already present.
func (p *Package) SetProductType(productType carrier.ProductType) error {
	if err := errors.Join(validateProductType(productType), checkCashOnDelivery(productType, p.paymentInfo)); err != nil {
		return err
	}
	p.productType = productType
	return nil
}

// SetWeight sets the weight in kilograms. Negative and non-finite weights fail.
func (p *Package) SetWeight(weight float64) error {
	return p.setWeight(weight)
}

// SetNote replaces the note. The note is stored as given; its length is counted
// in characters of the NFC-normalised form, so combining sequences that compose
// into one character count once.
func (p *Package) SetNote(note string) error {
	return p.setNote(note)
}

// SetDepoCode sets the handling depot. Unknown codes fail with ErrInvalidDepoCode.
func (p *Package) SetDepoCode(depoCode carrier.DepoCode) error {
	return p.setDepoCode(depoCode)
}

// SetSender replaces the sender. Nil selects the account default sender.
func (p *Package) SetSender(sender Sender) error {
	return p.setSender(sender)
}

// SetRecipient replaces the recipient. Nil fails with ErrMissingRecipient.
func (p *Package) SetRecipient(recipient Recipient) error {
	return p.setRecipient(recipient)
}

// SetSpecialDelivery replaces the special delivery details. Nil clears them.
func (p *Package) SetSpecialDelivery(specialDelivery *SpecialDelivery) error {
	return p.setSpecialDelivery(specialDelivery)
}

// SetPaymentInfo replaces the payment details. Clearing them on a cash on delivery
// package fails.
func (p *Package) SetPaymentInfo(paymentInfo PaymentInfo) error {
	if err := checkCashOnDelivery(p.productType, normalizeNil(paymentInfo)); err != nil {
		return err
	}
	return p.setPaymentInfo(paymentInfo)
}

// SetExternalNumbers replaces the external reference numbers. Nil entries fail.
func (p *Package) SetExternalNumbers(numbers []ExternalNumber) error {
	return p.setExternalNumbers(numbers)
}

// SetServices replaces the ordered services. Nil entries and unknown codes fail.
func (p *Package) SetServices(services []PackageService) error {
	return p.setServices(services)
}

// SetFlags replaces the package flags. Nil entries and unknown codes fail.
func (p *Package) SetFlags(flags []Flag) error {
	return p.setFlags(flags)
}

// SetPalletInfo replaces the pallet details. Nil clears them.
func (p *Package) SetPalletInfo(palletInfo *PalletInfo) error {
	return p.setPalletInfo(palletInfo)
}

// SetWeightedPackageInfo replaces the per-piece weights. Nil clears them.
func (p *Package) SetWeightedPackageInfo(info *WeightedPackageInfo) error {
	return p.setWeightedPackageInfo(info)
}

// SetPackageCount sets the number of pieces of the shipment. The position is not
// compared against the count.
func (p *Package) SetPackageCount(count int) error {
	if count == 0 {
		return errs.NewValueIsOutOfRangeError("packageCount", count, 1, math.MaxInt)
	}
	return p.setPackageCount(count)
}

// SetPackagePosition sets the 1-based position of this piece in the shipment.
func (p *Package) SetPackagePosition(position int) error {
	if position == 0 {
		return errs.NewValueIsOutOfRangeError("packagePosition", position, 1, math.MaxInt)
	}
	return p.setPackagePosition(position)
}

// An empty number is accepted because the carrier may assign it on submission.
func (p *Package) setPackageNumber(number string) error {
	if number != "" {
		if err := ValidatePackageNumber(number); err != nil {
			return err
		}
	}
	p.packageNumber = number
	return nil
}

func (p *Package) setProductType(productType carrier.ProductType) error {
	if err := validateProductType(productType); err != nil {
		return err
	}
	p.productType = productType
	return nil
}

func (p *Package) setWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, math.MaxFloat64)
	}
	p.weight = weight
	return nil
}

func (p *Package) setNote(note string) error {
	if n := utf8.RuneCountInString(norm.NFC.String(note)); n > MaxNoteLength {
		return errs.NewValueIsTooLongErrorWithCause("note", n, MaxNoteLength, ErrFieldTooLong)
	}
	p.note = note
	return nil
}

func (p *Package) setDepoCode(depoCode carrier.DepoCode) error {
	if err := depoCode.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDepoCode, err)
	}
	p.depoCode = depoCode
	return nil
}

func (p *Package) setSender(sender Sender) error {
	p.sender = normalizeNil(sender)
	return nil
}

func (p *Package) setRecipient(recipient Recipient) error {
	recipient = normalizeNil(recipient)
	if recipient == nil {
		return errs.NewValueIsRequiredErrorWithCause("recipient", ErrMissingRecipient)
	}
	p.recipient = recipient
	return nil
}

func (p *Package) setSpecialDelivery(specialDelivery *SpecialDelivery) error {
	if specialDelivery == nil {
		p.specialDelivery = nil
		return nil
	}
	if err := specialDelivery.Validate(); err != nil {
		return err
	}
	sd := *specialDelivery
	p.specialDelivery = &sd
	return nil
}

func (p *Package) setPaymentInfo(paymentInfo PaymentInfo) error {
	p.paymentInfo = normalizeNil(paymentInfo)
	return nil
}

func (p *Package) setExternalNumbers(numbers []ExternalNumber) error {
	if slices.ContainsFunc(numbers, func(n ExternalNumber) bool { return normalizeNil(n) == nil }) {
		return errs.NewValueIsRequiredError("externalNumbers[]")
	}
	p.externalNumbers = slices.Clone(numbers)
	return nil
}

func (p *Package) setServices(services []PackageService) error {
	for _, s := range services {
		if normalizeNil(s) == nil {
			return errs.NewValueIsRequiredError("services[]")
		}
		if err := s.SvcCode().Validate(); err != nil {
			return err
		}
	}
	p.services = slices.Clone(services)
	return nil
}

func (p *Package) setFlags(flags []Flag) error {
	for _, f := range flags {
		if normalizeNil(f) == nil {
			return errs.NewValueIsRequiredError("flags[]")
		}
		if err := f.Code().Validate(); err != nil {
			return err
		}
	}
	p.flags = slices.Clone(flags)
	return nil
}

func (p *Package) setPalletInfo(palletInfo *PalletInfo) error {
	if palletInfo == nil {
		p.palletInfo = nil
		return nil
	}
	if err := palletInfo.Validate(); err != nil {
		return err
	}
	pi := *palletInfo
	p.palletInfo = &pi
	return nil
}

func (p *Package) setWeightedPackageInfo(info *WeightedPackageInfo) error {
	if info == nil {
		p.weightedPackageInfo = nil
		return nil
	}
	if err := info.Validate(); err != nil {
		return err
	}
	p.weightedPackageInfo = &WeightedPackageInfo{Weights: slices.Clone(info.Weights)}
	return nil
}

// Zero keeps the default of 1.
func (p *Package) setPackageCount(count int) error {
	if count == 0 {
		return nil
	}
	if count < 0 {
		return errs.NewValueIsOutOfRangeError("packageCount", count, 1, math.MaxInt)
	}
	p.packageCount = count
	return nil
}

// Zero keeps the default of 1.
func (p *Package) setPackagePosition(position int) error {
	if position == 0 {
		return nil
	}
	if position < 0 {
		return errs.NewValueIsOutOfRangeError("packagePosition", position, 1, math.MaxInt)
	}
	p.packagePosition = position
	return nil
}

func validateProductType(productType carrier.ProductType) error {
	if err := productType.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProductType, err)
	}
	return nil
}

func checkCashOnDelivery(productType carrier.ProductType, paymentInfo PaymentInfo) error {
	if productType.IsCashOnDelivery() && paymentInfo == nil {
		return errs.NewValueIsRequiredErrorWithCause("paymentInfo", ErrMissingPaymentInfo)
	}
	return nil
}

// normalizeNil turns an interface holding a typed nil pointer into a plain nil.
func normalizeNil[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Interface && !rv.IsNil() {
		inner := rv.Elem()
		if inner.Kind() == reflect.Pointer && inner.IsNil() {
			var zero T
			return zero
		}
	}
	return v
}
