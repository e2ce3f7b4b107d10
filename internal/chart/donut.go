package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/fr4nk3nst1ner/salarydash/internal/models"
)

// set3 is the qualitative palette used for the work arrangement slices.
var set3 = []string{
	"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072", "#80B1D3", "#FDB462",
	"#B3DE69", "#FCCDE5", "#D9D9D9", "#BC80BD", "#CCEBC5", "#FFED6F",
}

// RemoteDonut draws the share of each work arrangement as a ring.
func RemoteDonut(w io.Writer, rows []models.CategoryCount) error {
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	if total == 0 {
		return Placeholder(w, NoRemoteMessage)
	}
	canvas, ew := newCanvas(w, "Share of work arrangements")

	const (
		cx, cy = 220, 220
		outer  = 140.0
		inner  = outer / 2
	)
	angle := -math.Pi / 2
	for i, r := range rows {
		color := set3[i%len(set3)]
		share := float64(r.Count) / float64(total)
		label := fmt.Sprintf("%s: %.1f%%", r.Category, share*100)

		canvas.Group(`class="slice"`)
		canvas.Title(label)
		if r.Count == total {
			canvas.Circle(cx, cy, int(outer), "fill:"+color)
			canvas.Circle(cx, cy, int(inner), "fill:#fff")
		} else {
			canvas.Path(ringSegment(cx, cy, outer, inner, angle, angle+share*2*math.Pi), "fill:"+color+";stroke:#fff;stroke-width:2")
		}
		canvas.Gend()
		angle += share * 2 * math.Pi

		ly := 90 + i*24
		canvas.Rect(420, ly-11, 14, 14, "fill:"+color)
		canvas.Text(442, ly, label, labelStyle+";font-size:13px")
	}
	return finish(canvas, ew)
}

// ringSegment returns the path of the ring between radii inner and outer
// from angle a0 to a1, in radians clockwise from the x axis.
func ringSegment(cx, cy, outer, inner, a0, a1 float64) string {
	large := 0
	if a1-a0 > math.Pi {
		large = 1
	}
	pt := func(r, a float64) string {
		return fmtPoint(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return fmt.Sprintf("M%s A%.2f,%.2f 0 %d 1 %s L%s A%.2f,%.2f 0 %d 0 %s Z",
		pt(outer, a0), outer, outer, large, pt(outer, a1),
		pt(inner, a1), inner, inner, large, pt(inner, a0))
}
