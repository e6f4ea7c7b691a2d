package http

import (
	"errors"
	"fmt"

	"carrierlabel/internal/core/application/usecases/queries"
	"carrierlabel/internal/core/domain/model/carrier"
	"carrierlabel/internal/core/domain/model/kernel"
	"carrierlabel/internal/core/domain/model/parcel"
	"carrierlabel/internal/core/domain/services/label"
	"carrierlabel/internal/generated/servers"
)

// toPackages converts the request body into domain packages. Every invalid
// package is reported, prefixed with its index.
func toPackages(in []servers.Package) ([]*parcel.Package, error) {
	packages := make([]*parcel.Package, 0, len(in))
	var errList []error
	for i, p := range in {
		pkg, err := toPackage(p)
		if err != nil {
			errList = append(errList, fmt.Errorf("package #%d: %w", i+1, err))
			continue
		}
		packages = append(packages, pkg)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return packages, nil
}

func toPackage(in servers.Package) (*parcel.Package, error) {
	productType, err := carrier.ParseProductType(in.ProductType)
	if err != nil {
		return nil, err
	}
	depoCode, err := carrier.ParseDepoCode(in.DepoCode)
	if err != nil {
		return nil, err
	}
	recipient, err := parcel.NewRecipient(toAddressParams(in.Recipient))
	if err != nil {
		return nil, err
	}

	params := parcel.PackageParams{
		PackageNumber:   in.PackageNumber,
		ProductType:     productType,
		Weight:          deref(in.Weight),
		Note:            deref(in.Note),
		DepoCode:        depoCode,
		Recipient:       recipient,
		PackageCount:    deref(in.PackageCount),
		PackagePosition: deref(in.PackagePosition),
	}

	// Interfaces stay nil when the part is absent, never a typed nil pointer.
	if in.Sender != nil {
		sender, err := parcel.NewSender(toAddressParams(*in.Sender))
		if err != nil {
			return nil, err
		}
		params.Sender = sender
	}
	if in.Payment != nil {
		payment, err := toPayment(*in.Payment)
		if err != nil {
			return nil, err
		}
		params.PaymentInfo = payment
	}
	if in.SpecialDelivery != nil {
		params.SpecialDelivery = &parcel.SpecialDelivery{
			ParcelShopCode: deref(in.SpecialDelivery.ParcelShopCode),
			DeliveryFrom:   deref(in.SpecialDelivery.DeliveryFrom),
			DeliveryTo:     deref(in.SpecialDelivery.DeliveryTo),
		}
	}

	if in.PalletInfo != nil {
		params.PalletInfo = &parcel.PalletInfo{
			CollieCount:      deref(in.PalletInfo.CollieCount),
			PalletEAN:        deref(in.PalletInfo.PalletEan),
			Description:      deref(in.PalletInfo.Description),
			ManipulationType: deref(in.PalletInfo.ManipulationType),
		}
	}
	if in.WeightedPackageInfo != nil {
		params.WeightedPackageInfo = &parcel.WeightedPackageInfo{Weights: in.WeightedPackageInfo.Weights}
	}

	if params.Services, err = toServices(deref(in.Services)); err != nil {
		return nil, err
	}
	if params.Flags, err = toFlags(deref(in.Flags)); err != nil {
		return nil, err
	}
	if params.ExternalNumbers, err = toExternalNumbers(deref(in.ExternalNumbers)); err != nil {
		return nil, err
	}

	return parcel.NewPackage(params)
}

func toAddressParams(in servers.Address) parcel.AddressParams {
	return parcel.AddressParams{
		Name:    deref(in.Name),
		Name2:   deref(in.Name2),
		Street:  in.Street,
		City:    in.City,
		ZipCode: in.ZipCode,
		Country: in.Country,
		Contact: deref(in.Contact),
		Phone:   deref(in.Phone),
		Email:   deref(in.Email),
	}
}

func toPayment(in servers.Payment) (*parcel.Payment, error) {
	params := parcel.PaymentParams{
		BankAccount:    deref(in.BankAccount),
		BankCode:       deref(in.BankCode),
		IBAN:           deref(in.Iban),
		SWIFT:          deref(in.Swift),
		VariableSymbol: deref(in.VariableSymbol),
		SpecificSymbol: deref(in.SpecificSymbol),
	}

	if in.CashOnDelivery != nil {
		cod, err := kernel.NewMoney(in.CashOnDelivery.Amount, in.CashOnDelivery.Currency)
		if err != nil {
			return nil, fmt.Errorf("cashOnDelivery: %w", err)
		}
		params.CashOnDeliveryPrice = cod
	}
	if in.Insurance != nil {
		insurance, err := kernel.NewMoney(in.Insurance.Amount, in.Insurance.Currency)
		if err != nil {
			return nil, fmt.Errorf("insurance: %w", err)
		}
		params.InsurancePrice = &insurance
	}

	return parcel.NewPayment(params)
}

func toServices(codes []string) ([]parcel.PackageService, error) {
	services := make([]parcel.PackageService, 0, len(codes))
	for _, code := range codes {
		service, err := parcel.NewService(carrier.ServiceCode(code))
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

func toFlags(in []servers.Flag) ([]parcel.Flag, error) {
	flags := make([]parcel.Flag, 0, len(in))
	for _, f := range in {
		flag, err := parcel.NewFlag(carrier.FlagCode(f.Code), f.Value)
		if err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}
	return flags, nil
}

func toExternalNumbers(in []servers.ExternalNumber) ([]parcel.ExternalNumber, error) {
	numbers := make([]parcel.ExternalNumber, 0, len(in))
	for _, n := range in {
		number, err := parcel.NewExternalNumber(n.Code, n.Number)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}
	return numbers, nil
}

func toPrintJob(job queries.GetPrintJobQueryResponse) servers.PrintJob {
	return servers.PrintJob{
		Id:             job.ID.Bytes(),
		Decomposition:  label.Decomposition(job.Decomposition).String(),
		PackageNumbers: job.PackageNumbers,
		PageCount:      job.PageCount,
		ContentType:    job.ContentType,
		Size:           len(job.Document),
		CreatedAt:      job.CreatedAt,
	}
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
