// Package parcel models one physical piece of a shipment as the carrier API sees it.
//
// Package is the aggregate root. It is built with NewPackage from a PackageParams
// value and keeps the carrier invariants on every setter:
//   - the product type belongs to the carrier product table
//   - a cash on delivery product always carries payment info
//   - the depo code belongs to the carrier depo table
//   - the note is at most MaxNoteLength characters
//
// Parties, payment details, services, flags and external numbers are referenced
// through small interfaces so that callers can plug in their own address or
// payment types. Address, Payment, Service, FlagValue and ExtNumber are the
// implementations shipped with the package.
//
// The package number checksum used on the label barcode lives in checksum.go.
package parcel
