package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarydash/internal/dashboard"
	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

// EmptyMessage is shown instead of the tables when no record matched.
const EmptyMessage = "No records match the selected filters. Widen the selection to see the dashboard."

// RenderSummary renders the model for a terminal: the headline metrics, a bar
// chart of the best paid roles and a table of mean salary by country.
func RenderSummary(m dashboard.Model) (string, error) {
	var b strings.Builder

	b.WriteString(pterm.DefaultSection.Sprint("Selection"))
	fmt.Fprintf(&b, "Years: %s\n", joinInts(m.Selection.Years))
	fmt.Fprintf(&b, "Seniority: %s\n", joinOrNone(m.Selection.Seniorities))
	fmt.Fprintf(&b, "Contract: %s\n", joinOrNone(m.Selection.Contracts))
	fmt.Fprintf(&b, "Company size: %s\n", joinOrNone(m.Selection.CompanySizes))

	if m.Empty() {
		b.WriteString("\n")
		b.WriteString(pterm.Warning.Sprint(EmptyMessage))
		b.WriteString("\n")
		return b.String(), nil
	}

	b.WriteString(pterm.DefaultSection.Sprint("Summary"))
	metrics, err := pterm.DefaultTable.WithData(pterm.TableData{
		{"Mean salary", ColorizeSalary(m.Summary.MeanSalary)},
		{"Max salary", ColorizeSalary(m.Summary.MaxSalary)},
		{"Records", utils.FormatCount(m.Summary.Count)},
		{"Most frequent role", m.Summary.TopRole},
	}).Srender()
	if err != nil {
		return "", fmt.Errorf("render metrics: %w", err)
	}
	b.WriteString(metrics)
	b.WriteString("\n")

	b.WriteString(pterm.DefaultSection.Sprint("Top roles by mean salary"))
	bars := make(pterm.Bars, 0, len(m.TopRoles))
	// Best paid first.
	for i := len(m.TopRoles) - 1; i >= 0; i-- {
		r := m.TopRoles[i]
		bars = append(bars, pterm.Bar{
			Label: utils.TruncateString(r.Role, 32),
			Value: int(r.MeanSalary + 0.5),
		})
	}
	chart, err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Srender()
	if err != nil {
		return "", fmt.Errorf("render top roles: %w", err)
	}
	b.WriteString(chart)
	b.WriteString("\n")

	b.WriteString(pterm.DefaultSection.Sprint("Work arrangement"))
	remote := pterm.TableData{{"Category", "Records", "Share"}}
	for _, r := range m.Remote {
		share := float64(r.Count) / float64(m.Summary.Count) * 100
		remote = append(remote, []string{r.Category, utils.FormatCount(r.Count), strconv.FormatFloat(share, 'f', 1, 64) + "%"})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(remote).Srender()
	if err != nil {
		return "", fmt.Errorf("render work arrangement: %w", err)
	}
	b.WriteString(table)
	b.WriteString("\n")

	b.WriteString(pterm.DefaultSection.Sprint("Mean salary by country"))
	if len(m.Countries) == 0 {
		b.WriteString(pterm.Warning.Sprint("Not enough data to display the countries table"))
		b.WriteString("\n")
		return b.String(), nil
	}
	rows := pterm.TableData{{"Code", "Country", "Mean salary"}}
	for _, c := range m.Countries {
		rows = append(rows, []string{c.Code, c.Name, utils.FormatMoney(c.MeanSalary)})
	}
	table, err = pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(rows).Srender()
	if err != nil {
		return "", fmt.Errorf("render countries: %w", err)
	}
	b.WriteString(table)
	b.WriteString("\n")
	return b.String(), nil
}

func joinInts(vs []int) string {
	if len(vs) == 0 {
		return "none"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func joinOrNone(vs []string) string {
	if len(vs) == 0 {
		return "none"
	}
	return strings.Join(vs, ", ")
}
