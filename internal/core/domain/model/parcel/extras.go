package parcel

import (
	"time"

	"carrierlabel/internal/pkg/errs"
)

const unbounded = "unbounded"

// SpecialDelivery redirects the package to a parcel shop or into a delivery window.
type SpecialDelivery struct {
	ParcelShopCode string
	DeliveryFrom   time.Time
	DeliveryTo     time.Time
}

func (s SpecialDelivery) Validate() error {
	if !s.DeliveryFrom.IsZero() && !s.DeliveryTo.IsZero() && s.DeliveryTo.Before(s.DeliveryFrom) {
		return errs.NewValueIsOutOfRangeError("specialDelivery.deliveryTo",
			s.DeliveryTo.Format(time.RFC3339), s.DeliveryFrom.Format(time.RFC3339), unbounded)
	}
	return nil
}

// PalletInfo describes a pallet shipment.
type PalletInfo struct {
	CollieCount      int
	PalletEAN        string
	Description      string
	ManipulationType string
}

func (p PalletInfo) Validate() error {
	if p.CollieCount < 0 {
		return errs.NewValueIsOutOfRangeError("palletInfo.collieCount", p.CollieCount, 0, unbounded)
	}
	return nil
}

// WeightedPackageInfo lists per-piece weights in kilograms for weighted products.
type WeightedPackageInfo struct {
	Weights []float64
}

func (w WeightedPackageInfo) Validate() error {
	for _, weight := range w.Weights {
		if weight < 0 {
			return errs.NewValueIsOutOfRangeError("weightedPackageInfo.weight", weight, 0, unbounded)
		}
	}
	return nil
}
