package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/fr4nk3nst1ner/salarydash/internal/chart"
	"github.com/fr4nk3nst1ner/salarydash/internal/dashboard"
	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

// maxTableRows caps the detail table; the CSV export always carries the
// full view.
const maxTableRows = 1000

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"money": utils.FormatMoney,
	"count": utils.FormatCount,
}).ParseFS(templateFS, "templates/dashboard.html"))

// chartDef is one chart of the page.
type chartDef struct {
	Name    string
	Title   string
	Message string
	empty   func(dashboard.Model) bool
	render  func(io.Writer, dashboard.Model) error
}

var charts = []chartDef{
	{
		Name: "top-roles", Title: "Top roles by mean salary", Message: chart.NoRolesMessage,
		empty:  func(m dashboard.Model) bool { return len(m.TopRoles) == 0 },
		render: func(w io.Writer, m dashboard.Model) error { return chart.TopRoles(w, m.TopRoles) },
	},
	{
		Name: "histogram", Title: "Salary distribution", Message: chart.NoSalariesMessage,
		empty:  func(m dashboard.Model) bool { return len(m.Histogram) == 0 },
		render: func(w io.Writer, m dashboard.Model) error { return chart.Histogram(w, m.Histogram) },
	},
	{
		Name: "remote", Title: "Work arrangements", Message: chart.NoRemoteMessage,
		empty:  func(m dashboard.Model) bool { return len(m.Remote) == 0 },
		render: func(w io.Writer, m dashboard.Model) error { return chart.RemoteDonut(w, m.Remote) },
	},
	{
		Name: "countries", Title: "Mean salary by country", Message: chart.NoCountriesMessage,
		empty:  func(m dashboard.Model) bool { return len(m.Countries) == 0 },
		render: func(w io.Writer, m dashboard.Model) error { return chart.CountryBars(w, m.Countries) },
	},
	{
		Name: "map", Title: "Role salary map", Message: chart.NoCountriesMessage,
		empty:  func(m dashboard.Model) bool { return len(m.RoleMap) == 0 },
		render: func(w io.Writer, m dashboard.Model) error { return chart.CountryTiles(w, m.RoleMap, m.MapRole) },
	},
}

func chartByName(name string) (chartDef, bool) {
	for _, c := range charts {
		if c.Name == name {
			return c, true
		}
	}
	return chartDef{}, false
}

type chartView struct {
	Name    string
	Title   string
	Src     template.URL
	Message string
	Empty   bool
}

type pageData struct {
	Title     string
	Model     dashboard.Model
	Query     template.URL
	Charts    []chartView
	Rows      []models.Record
	Truncated bool
}

func (s *Server) build(r *http.Request) dashboard.Model {
	c := filter.FromQuery(r.URL.Query(), s.store.Domain())
	return dashboard.Build(s.store, c, s.opts)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	m := s.build(r)
	// Encoded by url.Values, so safe to place in a query string as is.
	query := template.URL(filter.Query(m.Criteria()).Encode())

	data := pageData{
		Title: s.cfg.Display.Title,
		Model: m,
		Query: query,
		Rows:  m.Records,
	}
	for _, c := range charts {
		data.Charts = append(data.Charts, chartView{
			Name:    c.Name,
			Title:   c.Title,
			Src:     template.URL("/chart/"+c.Name+".svg?") + query,
			Message: c.Message,
			Empty:   c.empty(m),
		})
	}
	if len(data.Rows) > maxTableRows {
		data.Rows = data.Rows[:maxTableRows]
		data.Truncated = true
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("render dashboard", s.logger.Args("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/chart/"), ".svg")
	def, ok := chartByName(name)
	if !ok || !strings.HasSuffix(r.URL.Path, ".svg") {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := def.render(&buf, s.build(r)); err != nil {
		s.logger.Error("render chart", s.logger.Args("chart", name, "error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(buf.Bytes())
}

func (s *Server) handleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	m := s.build(r)
	m.Records = nil
	// An empty view still answers with empty tables.
	m.TopRoles = nonNil(m.TopRoles)
	m.Histogram = nonNil(m.Histogram)
	m.Remote = nonNil(m.Remote)
	m.Countries = nonNil(m.Countries)
	m.RoleMap = nonNil(m.RoleMap)
	writeJSON(w, m)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (s *Server) handleAPIRecords(w http.ResponseWriter, r *http.Request) {
	m := s.build(r)
	records := nonNil(m.Records)
	writeJSON(w, struct {
		Count   int             `json:"count"`
		Records []models.Record `json:"records"`
	}{
		Count:   len(records),
		Records: records,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	m := s.build(r)
	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, m.Records); err != nil {
		s.logger.Error("export csv", s.logger.Args("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="salaries.csv"`)
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
