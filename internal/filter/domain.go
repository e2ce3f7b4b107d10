package filter

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// Form parameter names used by the dashboard and the chart URLs.
const (
	ParamMarker      = "f"
	ParamYear        = "year"
	ParamSeniority   = "seniority"
	ParamContract    = "contract"
	ParamCompanySize = "size"
)

// Domain holds the distinct observed values of each filterable field,
// sorted ascending.
type Domain struct {
	Years        []int    `json:"years"`
	Seniorities  []string `json:"seniorities"`
	Contracts    []string `json:"contracts"`
	CompanySizes []string `json:"company_sizes"`
}

// DomainOf collects the filter choices present in records.
func DomainOf(records []models.Record) Domain {
	years := NewSet[int]()
	seniorities := NewSet[string]()
	contracts := NewSet[string]()
	sizes := NewSet[string]()
	for _, r := range records {
		years[r.Year] = struct{}{}
		seniorities[r.Seniority] = struct{}{}
		contracts[r.Contract] = struct{}{}
		sizes[r.CompanySize] = struct{}{}
	}
	return Domain{
		Years:        sortedKeys(years),
		Seniorities:  sortedKeys(seniorities),
		Contracts:    sortedKeys(contracts),
		CompanySizes: sortedKeys(sizes),
	}
}

func sortedKeys[T int | string](s Set[T]) []T {
	keys := make([]T, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All selects every value of the domain. This is the dashboard's default.
func All(d Domain) Criteria {
	return Criteria{
		Years:        NewSet(d.Years...),
		Seniorities:  NewSet(d.Seniorities...),
		Contracts:    NewSet(d.Contracts...),
		CompanySizes: NewSet(d.CompanySizes...),
	}
}

// FromQuery builds criteria from submitted form values. Without the form
// marker the request is a first visit and every value is selected; with it,
// each field holds exactly the submitted values, so a field left blank
// selects nothing. Years that do not parse are dropped.
func FromQuery(q url.Values, d Domain) Criteria {
	if !q.Has(ParamMarker) {
		return All(d)
	}
	years := NewSet[int]()
	for _, v := range q[ParamYear] {
		if y, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			years[y] = struct{}{}
		}
	}
	return Criteria{
		Years:        years,
		Seniorities:  NewSet(q[ParamSeniority]...),
		Contracts:    NewSet(q[ParamContract]...),
		CompanySizes: NewSet(q[ParamCompanySize]...),
	}
}

// Query encodes c so that FromQuery returns an equivalent selection.
func Query(c Criteria) url.Values {
	q := url.Values{}
	q.Set(ParamMarker, "1")
	for _, y := range sortedKeys(c.Years) {
		q.Add(ParamYear, strconv.Itoa(y))
	}
	for _, v := range sortedKeys(c.Seniorities) {
		q.Add(ParamSeniority, v)
	}
	for _, v := range sortedKeys(c.Contracts) {
		q.Add(ParamContract, v)
	}
	for _, v := range sortedKeys(c.CompanySizes) {
		q.Add(ParamCompanySize, v)
	}
	return q
}

// ParseList parses a comma-separated CLI value. An empty value selects the
// whole of domain.
func ParseList(value string, domain []string) Set[string] {
	if strings.TrimSpace(value) == "" {
		return NewSet(domain...)
	}
	s := NewSet[string]()
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			s[part] = struct{}{}
		}
	}
	return s
}

// ParseYears is ParseList for the year field.
func ParseYears(value string, domain []int) (Set[int], error) {
	if strings.TrimSpace(value) == "" {
		return NewSet(domain...), nil
	}
	s := NewSet[int]()
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		y, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		s[y] = struct{}{}
	}
	return s, nil
}

// Selected lists the selected values of s in ascending order.
func Selected[T int | string](s Set[T]) []T {
	return sortedKeys(s)
}
