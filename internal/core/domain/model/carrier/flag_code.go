package carrier

import (
	"slices"

	"carrierlabel/internal/pkg/errs"
)

// FlagCode names a boolean delivery option.
type FlagCode string

const (
	FlagSaturdayDelivery FlagCode = "SL"
	FlagCityLogistic     FlagCode = "CL"
	FlagPrivateAddress   FlagCode = "PR"
)

func getFlagDescriptions() map[FlagCode]string {
	return map[FlagCode]string{
		FlagSaturdayDelivery: "Saturday delivery",
		FlagCityLogistic:     "City logistic",
		FlagPrivateAddress:   "Private address",
	}
}

func KnownFlagCodes() []FlagCode {
	known := make([]FlagCode, 0, len(getFlagDescriptions()))
	for f := range getFlagDescriptions() {
		known = append(known, f)
	}
	slices.Sort(known)
	return known
}

func (f FlagCode) Validate() error {
	if _, ok := getFlagDescriptions()[f]; !ok {
		known := KnownFlagCodes()
		codes := make([]string, 0, len(known))
		for _, k := range known {
			codes = append(codes, string(k))
		}
		return errs.NewValueIsNotAllowedError("flagCode", string(f), codes)
	}
	return nil
}

func (f FlagCode) String() string {
	return string(f)
}
