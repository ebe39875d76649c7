package style

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/framecode/pkg/scene"
)

// FillColor converts a paint into a CSS color value.
//
// Solid paints with a color alpha below 1 become "rgba(r, g, b, a)" where a
// is the color alpha multiplied by [scene.Paint.Alpha], rounded to three
// decimals. Opaque solid paints become a zero-padded "#rrggbb". Hidden,
// gradient, image and unknown paints yield "".
func FillColor(p scene.Paint) string {
	if !p.IsSolid() || p.Hidden {
		return ""
	}
	c := colorful.Color{R: p.Color.R, G: p.Color.G, B: p.Color.B}.Clamped()
	if p.Color.A < 1 {
		r, g, b := c.RGB255()
		alpha := math.Round(p.Color.A*p.Alpha()*1000) / 1000
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, Number(alpha))
	}
	return c.Hex()
}
