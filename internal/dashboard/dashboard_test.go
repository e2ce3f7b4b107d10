package dashboard

import (
	"reflect"
	"testing"

	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

func testStore() *dataset.Store {
	return dataset.NewStore([]models.Record{
		{Year: 2023, Seniority: "senior", Contract: "full_time", CompanySize: "M", Role: "Data Scientist", Residence: "US", Remote: "remote", SalaryUSD: 100000},
		{Year: 2023, Seniority: "junior", Contract: "full_time", CompanySize: "M", Role: "Data Scientist", Residence: "BR", Remote: "hybrid", SalaryUSD: 50000},
		{Year: 2022, Seniority: "senior", Contract: "full_time", CompanySize: "M", Role: "Analyst", Residence: "US", Remote: "remote", SalaryUSD: 70000},
	})
}

func TestBuildFilteredByYear(t *testing.T) {
	store := testStore()
	c := filter.All(store.Domain())
	c.Years = filter.NewSet(2023)

	m := Build(store, c, DefaultOptions())

	if m.Empty() {
		t.Fatal("model should not be empty")
	}
	want := models.Summary{MeanSalary: 75000, MaxSalary: 100000, Count: 2, TopRole: "Data Scientist"}
	if m.Summary != want {
		t.Fatalf("summary = %+v, want %+v", m.Summary, want)
	}
	if len(m.Records) != 2 {
		t.Fatalf("expected 2 records in view, got %d", len(m.Records))
	}
	wantCountries := []models.CountryMean{
		{Code: "US", MeanSalary: 100000, Name: "United States"},
		{Code: "BR", MeanSalary: 50000, Name: "Brazil"},
	}
	if !reflect.DeepEqual(m.Countries, wantCountries) {
		t.Fatalf("countries = %+v", m.Countries)
	}
	if len(m.RoleMap) != 2 || m.RoleMap[0].Code != "BRA" {
		t.Fatalf("role map = %+v", m.RoleMap)
	}
	if len(m.Histogram) != 30 {
		t.Fatalf("expected 30 bins, got %d", len(m.Histogram))
	}
	if !reflect.DeepEqual(m.Selection.Years, []int{2023}) {
		t.Fatalf("selection = %+v", m.Selection)
	}
	if !m.Selected(filter.ParamYear, 2023) || m.Selected(filter.ParamYear, 2022) {
		t.Fatal("Selected does not reflect the criteria")
	}
}

func TestBuildNoMatches(t *testing.T) {
	store := testStore()
	c := filter.All(store.Domain())
	c.Years = filter.NewSet(1999)

	m := Build(store, c, DefaultOptions())

	if !m.Empty() {
		t.Fatal("model should be empty")
	}
	if m.Summary != (models.Summary{}) {
		t.Errorf("summary = %+v", m.Summary)
	}
	if len(m.TopRoles)+len(m.Histogram)+len(m.Remote)+len(m.Countries)+len(m.RoleMap)+len(m.Records) != 0 {
		t.Errorf("expected every table empty: %+v", m)
	}
	if len(m.Domain.Years) != 2 {
		t.Errorf("domain should still list every year: %v", m.Domain.Years)
	}
}

func TestBuildDefaultsResolver(t *testing.T) {
	store := testStore()
	opts := DefaultOptions()
	opts.Resolver = nil
	m := Build(store, filter.All(store.Domain()), opts)
	if m.Countries[0].Name != "United States" {
		t.Fatalf("countries = %+v", m.Countries)
	}
}

func TestSelectedUnknownField(t *testing.T) {
	store := testStore()
	m := Build(store, filter.All(store.Domain()), DefaultOptions())
	if m.Selected("nope", "senior") || m.Selected(filter.ParamYear, "2023") {
		t.Fatal("unexpected selection")
	}
	if !m.Selected(filter.ParamCompanySize, "M") {
		t.Fatal("expected M to be selected")
	}
}
