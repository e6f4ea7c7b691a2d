package parcel

import "errors"

var (
	ErrInvalidProductType    = errors.New("invalid product type")
	ErrInvalidDepoCode       = errors.New("invalid depo code")
	ErrMissingPaymentInfo    = errors.New("cash on delivery product requires payment info")
	ErrFieldTooLong          = errors.New("field is too long")
	ErrInvalidPackageNumber  = errors.New("invalid package number")
	ErrMissingRecipient      = errors.New("recipient is required")
	ErrPackageNotConstructed = errors.New("package must be created via NewPackage")
)
