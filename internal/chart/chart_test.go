package chart

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

func parse(t *testing.T, buf *bytes.Buffer) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("parse svg: %v", err)
	}
	return doc
}

func TestRenderersDrawPlaceholderOnEmptyInput(t *testing.T) {
	tests := []struct {
		name    string
		render  func(io.Writer) error
		message string
	}{
		{"roles", func(w io.Writer) error { return TopRoles(w, nil) }, NoRolesMessage},
		{"histogram", func(w io.Writer) error { return Histogram(w, nil) }, NoSalariesMessage},
		{"remote", func(w io.Writer) error { return RemoteDonut(w, nil) }, NoRemoteMessage},
		{"countries", func(w io.Writer) error { return CountryBars(w, nil) }, NoCountriesMessage},
		{"map", func(w io.Writer) error { return CountryTiles(w, nil, "Data Scientist") }, NoCountriesMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.render(&buf); err != nil {
				t.Fatalf("render: %v", err)
			}
			doc := parse(t, &buf)
			if got := doc.Find(".placeholder").Text(); got != tt.message {
				t.Fatalf("placeholder = %q, want %q", got, tt.message)
			}
			if doc.Find(".bar").Length() != 0 {
				t.Fatal("placeholder should not draw bars")
			}
		})
	}
}

func TestTopRoles(t *testing.T) {
	rows := []models.RoleMean{
		{Role: "Analyst", MeanSalary: 70000},
		{Role: "Data Scientist <ML>", MeanSalary: 120000},
	}
	var buf bytes.Buffer
	if err := TopRoles(&buf, rows); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, &buf)
	if n := doc.Find("g.bar").Length(); n != 2 {
		t.Fatalf("expected 2 bars, got %d", n)
	}
	if !strings.Contains(doc.Find("g.bar title").Last().Text(), "Data Scientist <ML>: $120,000") {
		t.Fatalf("tooltip = %q", doc.Find("g.bar title").Last().Text())
	}
}

func TestHistogram(t *testing.T) {
	bins := []models.Bin{
		{Lower: 0, Upper: 50000, Count: 3},
		{Lower: 50000, Upper: 100000, Count: 0},
		{Lower: 100000, Upper: 150000, Count: 1},
	}
	var buf bytes.Buffer
	if err := Histogram(&buf, bins); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, &buf)
	if n := doc.Find("g.bar").Length(); n != 3 {
		t.Fatalf("expected one bar per bin, got %d", n)
	}
	if !strings.Contains(buf.String(), histogramColor) {
		t.Fatal("histogram color missing")
	}
}

func TestRemoteDonut(t *testing.T) {
	rows := []models.CategoryCount{{Category: "remote", Count: 3}, {Category: "hybrid", Count: 1}}
	var buf bytes.Buffer
	if err := RemoteDonut(&buf, rows); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, &buf)
	if n := doc.Find("g.slice path").Length(); n != 2 {
		t.Fatalf("expected 2 slices, got %d", n)
	}
	if !strings.Contains(doc.Text(), "remote: 75.0%") {
		t.Fatal("legend should show percentages")
	}
}

func TestRemoteDonutSingleCategory(t *testing.T) {
	var buf bytes.Buffer
	if err := RemoteDonut(&buf, []models.CategoryCount{{Category: "on-site", Count: 5}}); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, &buf)
	if n := doc.Find("g.slice circle").Length(); n != 2 {
		t.Fatalf("a single category is drawn as a full ring, got %d circles", n)
	}
}

func TestCountryBarsAndTiles(t *testing.T) {
	rows := []models.CountryMean{
		{Code: "US", MeanSalary: 100000, Name: "United States"},
		{Code: "BR", MeanSalary: 50000, Name: "Brazil"},
	}
	var buf bytes.Buffer
	if err := CountryBars(&buf, rows); err != nil {
		t.Fatal(err)
	}
	if n := parse(t, &buf).Find("g.bar").Length(); n != 2 {
		t.Fatalf("expected 2 bars, got %d", n)
	}

	buf.Reset()
	tiles := []models.CountryMean{
		{Code: "BRA", MeanSalary: 50000, Name: "Brazil"},
		{Code: "USA", MeanSalary: 100000, Name: "United States"},
	}
	if err := CountryTiles(&buf, tiles, "Data Scientist"); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, &buf)
	if n := doc.Find("g.tile").Length(); n != 2 {
		t.Fatalf("expected 2 tiles, got %d", n)
	}
	usa, ok := doc.Find(`g.tile[data-code="USA"] rect`).Attr("style")
	if !ok || !strings.Contains(usa, "#1a9850") {
		t.Fatalf("highest salary should be green, style = %q", usa)
	}
}

func TestCountryTilesEscapesCodes(t *testing.T) {
	rows := []models.CountryMean{{Code: `X" onload="alert(1)`, MeanSalary: 1, Name: "<Nowhere>"}}
	var buf bytes.Buffer
	if err := CountryTiles(&buf, rows, "Data Scientist"); err != nil {
		t.Fatal(err)
	}
	tile := parse(t, &buf).Find("g.tile")
	if tile.Length() != 1 {
		t.Fatalf("expected 1 tile, got %d", tile.Length())
	}
	if code, _ := tile.Attr("data-code"); code != rows[0].Code {
		t.Fatalf("data-code = %q", code)
	}
	if _, ok := tile.Attr("onload"); ok {
		t.Fatal("code leaked into an attribute")
	}
}

func TestScaleColor(t *testing.T) {
	tests := []struct {
		v, lo, hi float64
		want      string
	}{
		{0, 0, 10, "#d73027"},
		{5, 0, 10, "#ffffbf"},
		{10, 0, 10, "#1a9850"},
		{42, 42, 42, "#ffffbf"},
		{-5, 0, 10, "#d73027"},
	}
	for _, tt := range tests {
		if got := scaleColor(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("scaleColor(%v, %v, %v) = %s, want %s", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestNiceMax(t *testing.T) {
	for in, want := range map[float64]float64{0: 1, 1: 1, 3: 5, 120000: 200000, 99: 100} {
		if got := niceMax(in); got != want {
			t.Errorf("niceMax(%v) = %v, want %v", in, got, want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorIsReturned(t *testing.T) {
	err := Histogram(failingWriter{}, []models.Bin{{Lower: 0, Upper: 1, Count: 1}})
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("err = %v", err)
	}
}
