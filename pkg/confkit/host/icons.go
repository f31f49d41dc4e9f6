package host

import (
	"bytes"
	"fmt"
	"image"
	"unsafe"

	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// iconRasterizer turns SVG icons into textures at the size they are drawn.
type iconRasterizer struct{}

func rasterize(icon confkit.Icon, w, h int32) (*image.RGBA, error) {
	svg, err := oksvg.ReadIconStream(bytes.NewReader(icon.SVG), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg %q: %w", icon.Name, err)
	}
	svg.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	scanner := rasterx.NewScannerGV(int(w), int(h), rgba, rgba.Bounds())
	svg.Draw(rasterx.NewDasher(int(w), int(h), scanner), 1)
	return rgba, nil
}

func (iconRasterizer) texture(renderer *sdl.Renderer, icon confkit.Icon, w, h int32) (*sdl.Texture, error) {
	rgba, err := rasterize(icon, w, h)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), w, h, 32, int32(rgba.Stride), sdl.PIXELFORMAT_RGBA32)
	if err != nil {
		return nil, fmt.Errorf("icon surface %q: %w", icon.Name, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icon texture %q: %w", icon.Name, err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
