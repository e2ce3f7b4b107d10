package ui

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarydash/internal/dashboard"
	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

func init() {
	pterm.DisableColor()
}

func testModel(c func(*filter.Criteria)) dashboard.Model {
	store := dataset.NewStore([]models.Record{
		{Year: 2023, Seniority: "senior", Contract: "full_time", CompanySize: "M", Role: "Data Scientist", Residence: "US", Remote: "remote", SalaryUSD: 100000},
		{Year: 2023, Seniority: "junior", Contract: "full_time", CompanySize: "M", Role: "Data Scientist", Residence: "BR", Remote: "hybrid", SalaryUSD: 50000},
		{Year: 2022, Seniority: "senior", Contract: "full_time", CompanySize: "L", Role: "Analyst", Residence: "US", Remote: "remote", SalaryUSD: 70000},
	})
	criteria := filter.All(store.Domain())
	if c != nil {
		c(&criteria)
	}
	return dashboard.Build(store, criteria, dashboard.DefaultOptions())
}

func TestRenderSummary(t *testing.T) {
	out, err := RenderSummary(testModel(func(c *filter.Criteria) { c.Years = filter.NewSet(2023) }))
	if err != nil {
		t.Fatalf("RenderSummary: %v", err)
	}
	for _, want := range []string{"Years: 2023", "$75,000", "$100,000", "Data Scientist", "United States", "Brazil", "remote", "50.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, EmptyMessage) {
		t.Error("non-empty model rendered the empty message")
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	out, err := RenderSummary(testModel(func(c *filter.Criteria) { c.Seniorities = nil }))
	if err != nil {
		t.Fatalf("RenderSummary: %v", err)
	}
	if !strings.Contains(out, EmptyMessage) {
		t.Fatalf("expected empty message:\n%s", out)
	}
	if !strings.Contains(out, "Seniority: none") {
		t.Fatalf("expected empty seniority selection:\n%s", out)
	}
	if strings.Contains(out, "Mean salary by country") {
		t.Fatal("empty model should not render tables")
	}
}

func TestColorizeSalary(t *testing.T) {
	tests := map[float64]string{
		250000: "$250,000",
		80000:  "$80,000",
		0:      "$0",
	}
	for in, want := range tests {
		if got := ColorizeSalary(in); !strings.Contains(got, want) {
			t.Errorf("ColorizeSalary(%v) = %q, want it to contain %q", in, got, want)
		}
	}
}
