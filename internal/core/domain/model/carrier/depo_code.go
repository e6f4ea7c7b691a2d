package carrier

import (
	"slices"
	"strings"

	"carrierlabel/internal/pkg/errs"
)

// DepoCode identifies the regional depot that sorts a package.
type DepoCode string

const (
	DepoPrahaJinocany   DepoCode = "01"
	DepoPrahaStodulky   DepoCode = "02"
	DepoBrno            DepoCode = "03"
	DepoOstrava         DepoCode = "04"
	DepoPlzen           DepoCode = "05"
	DepoCeskeBudejovice DepoCode = "06"
	DepoHradecKralove   DepoCode = "07"
	DepoUstiNadLabem    DepoCode = "08"
	DepoOlomouc         DepoCode = "09"
	DepoJihlava         DepoCode = "10"
	DepoLiberec         DepoCode = "11"
	DepoPardubice       DepoCode = "12"
	DepoZlin            DepoCode = "13"
	DepoKarlovyVary     DepoCode = "14"
	DepoKladno          DepoCode = "15"
	DepoMladaBoleslav   DepoCode = "16"
	DepoTabor           DepoCode = "17"
	DepoPribram         DepoCode = "18"
	DepoCeskaLipa       DepoCode = "19"
	DepoKolin           DepoCode = "20"
	DepoChomutov        DepoCode = "21"
	DepoPraha           DepoCode = "22"
)

func getDepoNames() map[DepoCode]string {
	return map[DepoCode]string{
		DepoPrahaJinocany:   "Praha - Jinočany",
		DepoPrahaStodulky:   "Praha - Stodůlky",
		DepoBrno:            "Brno",
		DepoOstrava:         "Ostrava",
		DepoPlzen:           "Plzeň",
		DepoCeskeBudejovice: "České Budějovice",
		DepoHradecKralove:   "Hradec Králové",
		DepoUstiNadLabem:    "Ústí nad Labem",
		DepoOlomouc:         "Olomouc",
		DepoJihlava:         "Jihlava",
		DepoLiberec:         "Liberec",
		DepoPardubice:       "Pardubice",
		DepoZlin:            "Zlín",
		DepoKarlovyVary:     "Karlovy Vary",
		DepoKladno:          "Kladno",
		DepoMladaBoleslav:   "Mladá Boleslav",
		DepoTabor:           "Tábor",
		DepoPribram:         "Příbram",
		DepoCeskaLipa:       "Česká Lípa",
		DepoKolin:           "Kolín",
		DepoChomutov:        "Chomutov",
		DepoPraha:           "Praha",
	}
}

// KnownDepoCodes returns the accepted depo codes sorted by code.
func KnownDepoCodes() []DepoCode {
	known := make([]DepoCode, 0, len(getDepoNames()))
	for d := range getDepoNames() {
		known = append(known, d)
	}
	slices.Sort(known)
	return known
}

// ParseDepoCode trims surrounding whitespace and validates the code.
func ParseDepoCode(code string) (DepoCode, error) {
	d := DepoCode(strings.TrimSpace(code))
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

func (d DepoCode) Validate() error {
	if _, ok := getDepoNames()[d]; !ok {
		known := KnownDepoCodes()
		codes := make([]string, 0, len(known))
		for _, k := range known {
			codes = append(codes, string(k))
		}
		return errs.NewValueIsNotAllowedError("depoCode", string(d), codes)
	}
	return nil
}

// Name returns the depot location, or an empty string for unknown codes.
func (d DepoCode) Name() string {
	return getDepoNames()[d]
}

func (d DepoCode) String() string {
	return string(d)
}
