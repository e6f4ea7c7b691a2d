package carrier

import (
	"fmt"
	"slices"
	"strconv"

	"carrierlabel/internal/pkg/errs"
)

// ProductType is the carrier product a package is shipped with.
// Cash on delivery is a property of the product, not of the package.
type ProductType int

const (
	// ProductUnknown catches uninitialised values.
	ProductUnknown ProductType = 0

	ProductParcelBusiness       ProductType = 1
	ProductParcelBusinessCOD    ProductType = 2
	ProductExportPackage        ProductType = 3
	ProductParcelSmart          ProductType = 8
	ProductExportPackageCOD     ProductType = 9
	ProductParcelPrivate        ProductType = 13
	ProductParcelPrivateCOD     ProductType = 14
	ProductParcelSmartCOD       ProductType = 15
	ProductPalletConnect        ProductType = 19
	ProductParcelSmartEurope    ProductType = 20
	ProductParcelSmartEuropeCOD ProductType = 21
)

func getProductTypeStrings() map[ProductType]string {
	return map[ProductType]string{
		ProductUnknown:              "Unknown",
		ProductParcelBusiness:       "PPL Parcel CZ Business",
		ProductParcelBusinessCOD:    "PPL Parcel CZ Business - COD",
		ProductExportPackage:        "Export Package",
		ProductParcelSmart:          "PPL Parcel CZ Smart",
		ProductExportPackageCOD:     "Export Package - COD",
		ProductParcelPrivate:        "PPL Parcel CZ Private",
		ProductParcelPrivateCOD:     "PPL Parcel CZ Private - COD",
		ProductParcelSmartCOD:       "PPL Parcel CZ Smart - COD",
		ProductPalletConnect:        "PPL Parcel Connect",
		ProductParcelSmartEurope:    "PPL Parcel Smart Europe",
		ProductParcelSmartEuropeCOD: "PPL Parcel Smart Europe - COD",
	}
}

func getCashOnDeliveryProductTypes() map[ProductType]struct{} {
	return map[ProductType]struct{}{
		ProductParcelBusinessCOD:    {},
		ProductExportPackageCOD:     {},
		ProductParcelPrivateCOD:     {},
		ProductParcelSmartCOD:       {},
		ProductParcelSmartEuropeCOD: {},
	}
}

// KnownProductTypes returns every product type the carrier accepts, in ascending order.
func KnownProductTypes() []ProductType {
	known := make([]ProductType, 0, len(getProductTypeStrings()))
	for p := range getProductTypeStrings() {
		if p != ProductUnknown {
			known = append(known, p)
		}
	}
	slices.Sort(known)
	return known
}

// CashOnDeliveryProductTypes returns the subset of KnownProductTypes that collects money on delivery.
func CashOnDeliveryProductTypes() []ProductType {
	cod := make([]ProductType, 0, len(getCashOnDeliveryProductTypes()))
	for p := range getCashOnDeliveryProductTypes() {
		cod = append(cod, p)
	}
	slices.Sort(cod)
	return cod
}

// ParseProductType converts the numeric code used on the wire.
func ParseProductType(code int) (ProductType, error) {
	p := ProductType(code)
	if err := p.Validate(); err != nil {
		return ProductUnknown, err
	}
	return p, nil
}

// Validate fails with errs.ValueIsNotAllowedError for values outside KnownProductTypes.
func (p ProductType) Validate() error {
	if _, ok := getProductTypeStrings()[p]; !ok || p == ProductUnknown {
		return errs.NewValueIsNotAllowedError("productType", int(p), productTypeCodes())
	}
	return nil
}

func (p ProductType) IsCashOnDelivery() bool {
	_, ok := getCashOnDeliveryProductTypes()[p]
	return ok
}

func (p ProductType) Code() int {
	return int(p)
}

func (p ProductType) String() string {
	if str, ok := getProductTypeStrings()[p]; ok {
		return str
	}
	return fmt.Sprintf("Unknown(%d)", int(p))
}

func productTypeCodes() []string {
	known := KnownProductTypes()
	codes := make([]string, 0, len(known))
	for _, p := range known {
		codes = append(codes, strconv.Itoa(int(p)))
	}
	return codes
}
