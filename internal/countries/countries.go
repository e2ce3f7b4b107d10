// Package countries resolves ISO 3166-1 country codes to display names and
// converts two-letter codes to their three-letter form.
//
// Every lookup is total: a code that cannot be resolved is returned
// unchanged, so callers never have to handle a miss.
package countries

import (
	"golang.org/x/text/language"
)

// alpha3Overrides covers user-assigned codes that are in common use in
// salary data but unknown to the CLDR region tables.
var alpha3Overrides = map[string]string{
	"XK": "XKX",
}

// NameAlpha2 returns the display name for a two-letter code, or the code
// itself when it is not in the table. Matching is exact.
func NameAlpha2(code string) string {
	if name, ok := alpha2Names[code]; ok {
		return name
	}
	return code
}

// NameAlpha3 returns the display name for a three-letter code, or the code
// itself when it is not in the table. Matching is exact.
func NameAlpha3(code string) string {
	if name, ok := alpha3Names[code]; ok {
		return name
	}
	return code
}

// Alpha3 converts a two-letter code to its three-letter equivalent. Input
// that is not a known two-letter region is passed through unchanged.
func Alpha3(code string) string {
	if iso3, ok := alpha3Overrides[code]; ok {
		return iso3
	}
	if len(code) != 2 {
		return code
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	iso3 := region.ISO3()
	if iso3 == "" || iso3 == "ZZZ" {
		return code
	}
	return iso3
}

// Resolver is the country lookup used by the aggregations.
type Resolver interface {
	Name2(code string) string
	Name3(code string) string
	Alpha3(code string) string
}

// Static resolves codes from the built-in tables.
type Static struct{}

func (Static) Name2(code string) string  { return NameAlpha2(code) }
func (Static) Name3(code string) string  { return NameAlpha3(code) }
func (Static) Alpha3(code string) string { return Alpha3(code) }
