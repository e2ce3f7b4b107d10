package chart

import (
	"io"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

const (
	roleBarColor    = "#636EFA"
	histogramColor  = "#EB5338"
	countryBarColor = "#FBB4AE"
	roleLabelWidth  = 180
)

// TopRoles draws the roles as horizontal bars in the order given, the first
// row at the bottom, so an ascending table puts the best paid role on top.
func TopRoles(w io.Writer, rows []models.RoleMean) error {
	if len(rows) == 0 {
		return Placeholder(w, NoRolesMessage)
	}
	canvas, ew := newCanvas(w, "Top roles by mean annual salary (USD)")

	maxVal := 0.0
	for _, r := range rows {
		maxVal = max(maxVal, r.MeanSalary)
	}
	maxVal = niceMax(maxVal)

	left := roleLabelWidth
	plotW := width - left - marginRight
	plotH := height - marginTop - marginBottom
	rowH := plotH / len(rows)
	barH := max(rowH*7/10, 1)

	for i := 0; i <= 4; i++ {
		x := left + plotW*i/4
		canvas.Line(x, marginTop, x, height-marginBottom, gridStyle)
		canvas.Text(x, height-marginBottom+16, utils.FormatCompact(maxVal*float64(i)/4), labelStyle+";text-anchor:middle")
	}

	for i, r := range rows {
		y := height - marginBottom - (i+1)*rowH + (rowH-barH)/2
		barW := int(float64(plotW) * r.MeanSalary / maxVal)
		canvas.Group(`class="bar"`)
		canvas.Title(r.Role + ": " + utils.FormatMoney(r.MeanSalary))
		canvas.Rect(left, y, barW, barH, "fill:"+roleBarColor)
		canvas.Gend()
		canvas.Text(left-6, y+barH/2+4, utils.TruncateString(r.Role, 28), labelStyle+";text-anchor:end")
	}
	canvas.Text(left+plotW/2, height-12, "Mean annual salary (USD)", labelStyle+";text-anchor:middle")
	return finish(canvas, ew)
}

// Histogram draws the salary distribution.
func Histogram(w io.Writer, bins []models.Bin) error {
	if len(bins) == 0 {
		return Placeholder(w, NoSalariesMessage)
	}
	canvas, ew := newCanvas(w, "Salary distribution")

	maxCount := 0
	for _, b := range bins {
		maxCount = max(maxCount, b.Count)
	}
	maxVal := niceMax(float64(maxCount))
	valueGrid(canvas, maxVal, 4, func(v float64) string { return utils.FormatCount(int(v)) })

	plotW := width - marginLeft - marginRight
	plotH := height - marginTop - marginBottom
	for i, b := range bins {
		x0 := marginLeft + plotW*i/len(bins)
		x1 := marginLeft + plotW*(i+1)/len(bins)
		h := int(float64(plotH) * float64(b.Count) / maxVal)
		canvas.Group(`class="bar"`)
		canvas.Title(utils.FormatMoney(b.Lower) + " - " + utils.FormatMoney(b.Upper) + ": " + utils.FormatCount(b.Count) + " records")
		canvas.Rect(x0, height-marginBottom-h, max(x1-x0-1, 1), h, "fill:"+histogramColor)
		canvas.Gend()
	}

	baseline := height - marginBottom + 16
	canvas.Text(marginLeft, baseline, utils.FormatCompact(bins[0].Lower), labelStyle+";text-anchor:start")
	canvas.Text(marginLeft+plotW/2, baseline, utils.FormatCompact((bins[0].Lower+bins[len(bins)-1].Upper)/2), labelStyle+";text-anchor:middle")
	canvas.Text(width-marginRight, baseline, utils.FormatCompact(bins[len(bins)-1].Upper), labelStyle+";text-anchor:end")
	canvas.Text(marginLeft+plotW/2, height-12, "Annual salary range (USD)", labelStyle+";text-anchor:middle")
	return finish(canvas, ew)
}

// CountryBars draws one vertical bar per country in the order given.
func CountryBars(w io.Writer, rows []models.CountryMean) error {
	if len(rows) == 0 {
		return Placeholder(w, NoCountriesMessage)
	}
	canvas, ew := newCanvas(w, "Mean annual salary by country")

	maxVal := 0.0
	for _, r := range rows {
		maxVal = max(maxVal, r.MeanSalary)
	}
	maxVal = niceMax(maxVal)
	valueGrid(canvas, maxVal, 4, utils.FormatCompact)

	plotW := width - marginLeft - marginRight
	plotH := height - marginTop - marginBottom
	for i, r := range rows {
		x0 := marginLeft + plotW*i/len(rows)
		x1 := marginLeft + plotW*(i+1)/len(rows)
		h := int(float64(plotH) * r.MeanSalary / maxVal)
		canvas.Group(`class="bar"`)
		canvas.Title(r.Name + ": " + utils.FormatMoney(r.MeanSalary))
		canvas.Rect(x0, height-marginBottom-h, max(x1-x0-1, 1), h, "fill:"+countryBarColor+";stroke:#d88")
		canvas.Gend()
		if len(rows) <= 40 || i%2 == 0 {
			cx := (x0 + x1) / 2
			canvas.Text(cx, height-marginBottom+14, r.Code, labelStyle+";font-size:9px;text-anchor:middle")
		}
	}
	canvas.Text(marginLeft+plotW/2, height-12, "Country (code)", labelStyle+";text-anchor:middle")
	return finish(canvas, ew)
}
