// Package aggregate reduces a filtered set of salary records to the small
// tables the dashboard displays.
//
// Every function is pure. Given no records each returns its empty result:
// zero scalars, an empty string, or a nil slice. Callers show a placeholder
// instead of a chart in that case.
package aggregate

import (
	"cmp"
	"slices"

	"github.com/aclements/go-moremath/stats"

	"github.com/fr4nk3nst1ner/salarydash/internal/countries"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// DefaultMapRole is the role shown on the salary map.
const DefaultMapRole = "Data Scientist"

func salaries(records []models.Record) []float64 {
	xs := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.SalaryUSD
	}
	return xs
}

// Summarize computes the headline metrics. The most frequent role is the
// first role, by order of appearance, to reach the highest count.
func Summarize(records []models.Record) models.Summary {
	if len(records) == 0 {
		return models.Summary{}
	}
	xs := salaries(records)
	_, hi := stats.Bounds(xs)
	return models.Summary{
		MeanSalary: stats.Mean(xs),
		MaxSalary:  hi,
		Count:      len(records),
		TopRole:    mode(records, func(r models.Record) string { return r.Role }),
	}
}

func mode(records []models.Record, key func(models.Record) string) string {
	var best string
	bestCount := 0
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}
	// Walk in record order so the earliest value wins a tie.
	for _, r := range records {
		k := key(r)
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

// group collects salaries per key, keeping groups in first-appearance order.
type group struct {
	key string
	xs  []float64
}

func groupSalaries(records []models.Record, key func(models.Record) string) []*group {
	var groups []*group
	index := make(map[string]*group)
	for _, r := range records {
		k := key(r)
		g, ok := index[k]
		if !ok {
			g = &group{key: k}
			index[k] = g
			groups = append(groups, g)
		}
		g.xs = append(g.xs, r.SalaryUSD)
	}
	return groups
}

// TopRolesByMeanSalary returns the k roles with the highest mean salary,
// ordered ascending by mean for display. Ties keep first-appearance order.
func TopRolesByMeanSalary(records []models.Record, k int) []models.RoleMean {
	if len(records) == 0 || k <= 0 {
		return nil
	}
	var out []models.RoleMean
	for _, g := range groupSalaries(records, func(r models.Record) string { return r.Role }) {
		out = append(out, models.RoleMean{Role: g.key, MeanSalary: stats.Mean(g.xs)})
	}
	slices.SortStableFunc(out, func(a, b models.RoleMean) int {
		return cmp.Compare(b.MeanSalary, a.MeanSalary)
	})
	if len(out) > k {
		out = out[:k]
	}
	slices.SortStableFunc(out, func(a, b models.RoleMean) int {
		return cmp.Compare(a.MeanSalary, b.MeanSalary)
	})
	return out
}

// SalaryHistogram splits the observed salary range into bins equal-width
// buckets and counts the records in each. Every record falls in
// [Lower, Upper) of the bin that counts it, except the maximum salary, which
// falls in the last bin. A single distinct salary is binned over
// [min, min+1].
func SalaryHistogram(records []models.Record, bins int) []models.Bin {
	if len(records) == 0 || bins <= 0 {
		return nil
	}
	xs := salaries(records)
	lo, hi := stats.Bounds(xs)
	if hi <= lo {
		hi = lo + 1
	}

	width := (hi - lo) / float64(bins)
	out := make([]models.Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, x := range xs {
		i := min(max(int((x-lo)/width), 0), bins-1)
		// Rounding can land one bin off the emitted edges.
		for i > 0 && x < out[i].Lower {
			i--
		}
		for i < bins-1 && x >= out[i+1].Lower {
			i++
		}
		out[i].Count++
	}
	return out
}

// RemoteComposition counts records per remote-work category, largest first.
func RemoteComposition(records []models.Record) []models.CategoryCount {
	var out []models.CategoryCount
	index := make(map[string]int)
	for _, r := range records {
		i, ok := index[r.Remote]
		if !ok {
			i = len(out)
			index[r.Remote] = i
			out = append(out, models.CategoryCount{Category: r.Remote})
		}
		out[i].Count++
	}
	slices.SortStableFunc(out, func(a, b models.CategoryCount) int {
		return b.Count - a.Count
	})
	return out
}

// MeanSalaryByCountry averages salaries per residence country, highest
// first, naming each country from its two-letter code.
func MeanSalaryByCountry(records []models.Record, res countries.Resolver) []models.CountryMean {
	var out []models.CountryMean
	for _, g := range groupSalaries(records, func(r models.Record) string { return r.Residence }) {
		out = append(out, models.CountryMean{
			Code:       g.key,
			MeanSalary: stats.Mean(g.xs),
			Name:       res.Name2(g.key),
		})
	}
	slices.SortStableFunc(out, func(a, b models.CountryMean) int {
		return cmp.Compare(b.MeanSalary, a.MeanSalary)
	})
	return out
}

// RoleSalaryByCountry averages the salaries of one role per residence
// country, keyed by three-letter code for the map and ordered by code.
func RoleSalaryByCountry(records []models.Record, role string, res countries.Resolver) []models.CountryMean {
	var matching []models.Record
	for _, r := range records {
		if r.Role == role {
			matching = append(matching, r)
		}
	}
	var out []models.CountryMean
	for _, g := range groupSalaries(matching, func(r models.Record) string { return res.Alpha3(r.Residence) }) {
		out = append(out, models.CountryMean{
			Code:       g.key,
			MeanSalary: stats.Mean(g.xs),
			Name:       res.Name3(g.key),
		})
	}
	slices.SortFunc(out, func(a, b models.CountryMean) int {
		return cmp.Compare(a.Code, b.Code)
	})
	return out
}
