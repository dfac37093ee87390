package joystick

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/joystick/stick"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// All stick meshes are untextured and sample it.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// renderer draws the outer reference shape and the inner stick.
type renderer struct {
	region     stick.Region
	pal        palette
	innerWidth float64
	outerWidth float64
	outline    []Vec2 // outer shape in surface coordinates, built once
	rim        []Vec2 // scratch for the knob circle
	mesh       mesh
	triOp      ebiten.DrawTrianglesOptions
}

func newRenderer(region stick.Region, pal palette, opts Options) *renderer {
	r := &renderer{
		region:     region,
		pal:        pal,
		innerWidth: opts.InternalLineWidth,
		outerWidth: opts.ExternalLineWidth,
	}
	r.outline = outlinePath(nil, region)
	r.triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	r.triOp.AntiAlias = true
	return r
}

// build fills the mesh for a knob at knob (surface coordinates) and moves it
// to origin in screen space.
func (r *renderer) build(origin, knob Vec2) {
	r.mesh.reset()
	r.mesh.stroke(r.outline, true, r.outerWidth, r.pal.externalStroke)

	r.rim = appendCircle(r.rim[:0], knob, r.region.InnerRadius)
	r.mesh.fillFan(knob, r.rim, r.pal.internalFill, r.pal.internalStroke)
	r.mesh.stroke(r.rim, true, r.innerWidth, r.pal.internalStroke)

	r.mesh.translate(origin.X, origin.Y)
}

// draw renders the stick onto dst.
func (r *renderer) draw(dst *ebiten.Image, origin, knob Vec2) {
	r.build(origin, knob)
	if len(r.mesh.inds) == 0 {
		return
	}
	dst.DrawTriangles(r.mesh.verts, r.mesh.inds, ensureWhitePixel(), &r.triOp)
}
