package carrier

import (
	"slices"

	"carrierlabel/internal/pkg/errs"
)

// ServiceCode names an additional service ordered for a package.
type ServiceCode string

const (
	// ServiceEveningDelivery switches the day/night badge of the label to the evening text.
	ServiceEveningDelivery  ServiceCode = "ED"
	ServiceSaturdayDelivery ServiceCode = "SD"
	ServiceCashOnDelivery   ServiceCode = "COD"
	ServiceInsurance        ServiceCode = "INSR"
	ServiceAgeCheck18       ServiceCode = "AGE18"
	ServicePhoneAdvice      ServiceCode = "PHA"
)

func getServiceDescriptions() map[ServiceCode]string {
	return map[ServiceCode]string{
		ServiceEveningDelivery:  "Evening delivery",
		ServiceSaturdayDelivery: "Saturday delivery",
		ServiceCashOnDelivery:   "Cash on delivery",
		ServiceInsurance:        "Additional insurance",
		ServiceAgeCheck18:       "Age verification 18+",
		ServicePhoneAdvice:      "Phone advice before delivery",
	}
}

func KnownServiceCodes() []ServiceCode {
	known := make([]ServiceCode, 0, len(getServiceDescriptions()))
	for s := range getServiceDescriptions() {
		known = append(known, s)
	}
	slices.Sort(known)
	return known
}

func (s ServiceCode) Validate() error {
	if _, ok := getServiceDescriptions()[s]; !ok {
		known := KnownServiceCodes()
		codes := make([]string, 0, len(known))
		for _, k := range known {
			codes = append(codes, string(k))
		}
		return errs.NewValueIsNotAllowedError("serviceCode", string(s), codes)
	}
	return nil
}

func (s ServiceCode) Description() string {
	return getServiceDescriptions()[s]
}

func (s ServiceCode) String() string {
	return string(s)
}
