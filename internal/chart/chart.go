// Package chart draws the dashboard's charts as SVG documents.
//
// Each renderer takes one derived table. Given an empty table it draws a
// placeholder carrying a message instead of an empty chart.
package chart

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const (
	width  = 640
	height = 400

	marginTop    = 48
	marginRight  = 24
	marginBottom = 56
	marginLeft   = 72

	titleStyle = "font-family:sans-serif;font-size:16px;font-weight:600;fill:#222"
	labelStyle = "font-family:sans-serif;font-size:11px;fill:#555"
	gridStyle  = "stroke:#e5e5e5;stroke-width:1"
	axisStyle  = "stroke:#999;stroke-width:1"
)

// Messages shown when a chart has nothing to draw.
const (
	NoRolesMessage     = "No data to display in the roles chart"
	NoSalariesMessage  = "No data to display in the salary chart"
	NoRemoteMessage    = "No data to display in the work arrangement chart"
	NoCountriesMessage = "Not enough data to display the countries chart"
)

// errWriter remembers the first write error, since svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func newCanvas(w io.Writer, title string) (*svg.SVG, *errWriter) {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height, `viewBox="0 0 640 400"`)
	canvas.Title(title)
	canvas.Rect(0, 0, width, height, "fill:#fff")
	canvas.Text(marginLeft/2, 28, title, titleStyle)
	return canvas, ew
}

func finish(canvas *svg.SVG, ew *errWriter) error {
	canvas.End()
	return ew.err
}

// Placeholder draws a blank chart holding message.
func Placeholder(w io.Writer, message string) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height, `viewBox="0 0 640 400"`)
	canvas.Rect(0, 0, width, height, "fill:#fff8e1;stroke:#f0c36d")
	canvas.Text(width/2, height/2, message, `class="placeholder"`,
		"font-family:sans-serif;font-size:14px;fill:#8a6d3b;text-anchor:middle")
	return finish(canvas, ew)
}

// niceMax rounds v up to 1, 2 or 5 times a power of ten so axis ticks land
// on round numbers.
func niceMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*exp {
			return m * exp
		}
	}
	return 10 * exp
}

// valueGrid draws horizontal gridlines for a vertical value axis.
func valueGrid(canvas *svg.SVG, maxVal float64, ticks int, format func(float64) string) {
	plotH := height - marginTop - marginBottom
	for i := 0; i <= ticks; i++ {
		v := maxVal * float64(i) / float64(ticks)
		y := height - marginBottom - int(float64(plotH)*float64(i)/float64(ticks))
		canvas.Line(marginLeft, y, width-marginRight, y, gridStyle)
		canvas.Text(marginLeft-6, y+4, format(v), labelStyle+";text-anchor:end")
	}
	canvas.Line(marginLeft, height-marginBottom, width-marginRight, height-marginBottom, axisStyle)
}

func fmtPoint(x, y float64) string {
	return fmt.Sprintf("%.2f,%.2f", x, y)
}
