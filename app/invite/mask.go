package invite

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa approximates a quarter circle with a cubic Bézier segment.
const kappa = 0.5522847498

// roundedRectMask rasterizes an anti-aliased rounded rectangle covering the
// whole w x h area, opaque inside and transparent outside.
func roundedRectMask(w, h int, radius float64) *image.Alpha {
	fw, fh := float32(w), float32(h)
	r := float32(radius)
	if r > fw/2 {
		r = fw / 2
	}
	if r > fh/2 {
		r = fh / 2
	}
	k := r * kappa

	z := vector.NewRasterizer(w, h)
	z.MoveTo(r, 0)
	z.LineTo(fw-r, 0)
	z.CubeTo(fw-r+k, 0, fw, r-k, fw, r)
	z.LineTo(fw, fh-r)
	z.CubeTo(fw, fh-r+k, fw-r+k, fh, fw-r, fh)
	z.LineTo(r, fh)
	z.CubeTo(r-k, fh, 0, fh-r+k, 0, fh-r)
	z.LineTo(0, r)
	z.CubeTo(0, r-k, r-k, 0, r, 0)
	z.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// ringMask builds the outline of a rounded rectangle: a filled outer shape
// minus a filled inner shape inset by the stroke width. The outline's
// bounding box hugs the top-left corner and stops one pixel short of the
// layer's bottom-right, matching the template artwork.
func ringMask(w, h int, radius float64, stroke int) *image.Alpha {
	outerW := w - 1
	outerH := h - 1
	outer := roundedRectMask(outerW, outerH, radius)

	innerW := outerW - 2*stroke
	innerH := outerH - 2*stroke
	innerR := radius - float64(stroke)
	if innerR < 0 {
		innerR = 0
	}
	inner := roundedRectMask(innerW, innerH, innerR)

	for y := 0; y < innerH; y++ {
		for x := 0; x < innerW; x++ {
			oi := outer.PixOffset(x+stroke, y+stroke)
			ia := inner.Pix[inner.PixOffset(x, y)]
			if outer.Pix[oi] > ia {
				outer.Pix[oi] -= ia
			} else {
				outer.Pix[oi] = 0
			}
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.Draw(dst, outer.Bounds(), outer, image.Point{}, draw.Src)
	return dst
}
