package chart

import (
	"fmt"
	"html"
	"io"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
	"github.com/fr4nk3nst1ner/salarydash/internal/utils"
)

const (
	tileSize = 44
	tileGap  = 4
	tileCols = 12
)

// rdYlGn is a three stop red, yellow and green scale, low salaries in red.
var rdYlGn = [3][3]float64{
	{0xd7, 0x30, 0x27},
	{0xff, 0xff, 0xbf},
	{0x1a, 0x98, 0x50},
}

// CountryTiles draws one tile per country, labelled with its alpha-3 code and
// colored by mean salary. It stands in for a choropleth map.
func CountryTiles(w io.Writer, rows []models.CountryMean, role string) error {
	if len(rows) == 0 {
		return Placeholder(w, NoCountriesMessage)
	}
	canvas, ew := newCanvas(w, "Mean salary of "+role+" by country")

	lo, hi := rows[0].MeanSalary, rows[0].MeanSalary
	for _, r := range rows {
		lo = min(lo, r.MeanSalary)
		hi = max(hi, r.MeanSalary)
	}

	// Shrink tiles when the rows would run into the legend.
	size := tileSize
	if n := (len(rows) + tileCols - 1) / tileCols; n*(size+tileGap) > height-marginTop-48 {
		size = max((height-marginTop-48)/n-tileGap, 8)
	}
	for i, r := range rows {
		x := marginRight + (i%tileCols)*(size+tileGap)
		y := marginTop + (i/tileCols)*(size+tileGap)
		canvas.Group(`class="tile"`, `data-code="`+html.EscapeString(r.Code)+`"`)
		canvas.Title(r.Name + " (" + r.Code + "): " + utils.FormatMoney(r.MeanSalary))
		canvas.Rect(x, y, size, size, "fill:"+scaleColor(r.MeanSalary, lo, hi)+";stroke:#fff")
		canvas.Text(x+size/2, y+size/2+4, r.Code, labelStyle+";font-size:10px;fill:#222;text-anchor:middle")
		canvas.Gend()
	}

	// Legend.
	ly := height - 36
	for i := 0; i <= 10; i++ {
		v := lo + (hi-lo)*float64(i)/10
		canvas.Rect(marginRight+i*24, ly, 24, 10, "fill:"+scaleColor(v, lo, hi))
	}
	canvas.Text(marginRight, ly+24, utils.FormatCompact(lo), labelStyle)
	canvas.Text(marginRight+11*24, ly+24, utils.FormatCompact(hi), labelStyle+";text-anchor:end")
	return finish(canvas, ew)
}

// scaleColor maps v in [lo, hi] onto the red to green scale. A degenerate
// range maps to the middle of the scale.
func scaleColor(v, lo, hi float64) string {
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	t = min(max(t, 0), 1)

	from, to := rdYlGn[0], rdYlGn[1]
	if t >= 0.5 {
		from, to = rdYlGn[1], rdYlGn[2]
		t -= 0.5
	}
	t *= 2
	var c [3]int
	for i := range c {
		c[i] = int(from[i] + (to[i]-from[i])*t + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
