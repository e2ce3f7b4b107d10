// Package dashboard computes everything the salary dashboard shows for one
// filter selection.
//
// Build is a pure function of the store and the criteria. The web server
// calls it on every request and the CLI calls it once; nothing is cached
// between calls.
package dashboard

import (
	"github.com/fr4nk3nst1ner/salarydash/internal/aggregate"
	"github.com/fr4nk3nst1ner/salarydash/internal/countries"
	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// Options tunes the derived tables.
type Options struct {
	TopRoles      int
	HistogramBins int
	MapRole       string
	Resolver      countries.Resolver
}

// DefaultOptions returns the dashboard's standard layout: ten roles, thirty
// histogram bins and the data scientist salary map.
func DefaultOptions() Options {
	return Options{
		TopRoles:      10,
		HistogramBins: 30,
		MapRole:       aggregate.DefaultMapRole,
		Resolver:      countries.Static{},
	}
}

// Selection is the criteria snapshot a model was built from, as sorted
// lists for display.
type Selection struct {
	Years        []int    `json:"years"`
	Seniorities  []string `json:"seniorities"`
	Contracts    []string `json:"contracts"`
	CompanySizes []string `json:"company_sizes"`
}

// Model is the complete display state for one selection.
type Model struct {
	Domain    filter.Domain          `json:"domain"`
	Selection Selection              `json:"selection"`
	Summary   models.Summary         `json:"summary"`
	TopRoles  []models.RoleMean      `json:"top_roles"`
	Histogram []models.Bin           `json:"histogram"`
	Remote    []models.CategoryCount `json:"remote"`
	Countries []models.CountryMean   `json:"countries"`
	RoleMap   []models.CountryMean   `json:"role_map"`
	MapRole   string                 `json:"map_role"`
	Records   []models.Record        `json:"records,omitempty"`

	criteria filter.Criteria
}

// Build filters the store with c and runs every aggregation on the result.
func Build(store *dataset.Store, c filter.Criteria, opts Options) Model {
	if opts.Resolver == nil {
		opts.Resolver = countries.Static{}
	}
	view := store.Select(c.Predicate())
	return Model{
		Domain: store.Domain(),
		Selection: Selection{
			Years:        filter.Selected(c.Years),
			Seniorities:  filter.Selected(c.Seniorities),
			Contracts:    filter.Selected(c.Contracts),
			CompanySizes: filter.Selected(c.CompanySizes),
		},
		Summary:   aggregate.Summarize(view),
		TopRoles:  aggregate.TopRolesByMeanSalary(view, opts.TopRoles),
		Histogram: aggregate.SalaryHistogram(view, opts.HistogramBins),
		Remote:    aggregate.RemoteComposition(view),
		Countries: aggregate.MeanSalaryByCountry(view, opts.Resolver),
		RoleMap:   aggregate.RoleSalaryByCountry(view, opts.MapRole, opts.Resolver),
		MapRole:   opts.MapRole,
		Records:   view,
		criteria:  c,
	}
}

// Empty reports whether no record matched, in which case the dashboard
// shows placeholders instead of charts.
func (m Model) Empty() bool {
	return m.Summary.Count == 0
}

// Criteria returns the selection the model was built from.
func (m Model) Criteria() filter.Criteria {
	return m.criteria
}

// Selected reports whether v is part of the selection for the given form
// field. It backs the pre-selected options of the filter form.
func (m Model) Selected(field string, v any) bool {
	switch field {
	case filter.ParamYear:
		y, ok := v.(int)
		return ok && m.criteria.Years.Has(y)
	case filter.ParamSeniority:
		s, ok := v.(string)
		return ok && m.criteria.Seniorities.Has(s)
	case filter.ParamContract:
		s, ok := v.(string)
		return ok && m.criteria.Contracts.Has(s)
	case filter.ParamCompanySize:
		s, ok := v.(string)
		return ok && m.criteria.CompanySizes.Has(s)
	}
	return false
}
