package host

import (
	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/BrandonKowalski/confkit/pkg/confkit/theme"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// canvas draws confkit widgets with an SDL renderer and a TTF font.
type canvas struct {
	renderer *sdl.Renderer
	font     *ttf.Font
	textures *textureCache
	icons    *iconRasterizer
	clips    []confkit.Rect
}

func newCanvas(renderer *sdl.Renderer, font *ttf.Font, cacheSize int) *canvas {
	return &canvas{
		renderer: renderer,
		font:     font,
		textures: newTextureCache(cacheSize),
		icons:    &iconRasterizer{},
	}
}

func sdlRect(r confkit.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func sdlColor(c theme.Color) sdl.Color {
	return sdl.Color{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

func (c *canvas) setColor(col theme.Color) {
	c.renderer.SetDrawColor(col.R(), col.G(), col.B(), col.A())
}

func (c *canvas) TextWidth(s string) int32 {
	if s == "" {
		return 0
	}
	w, _, err := c.font.SizeUTF8(s)
	if err != nil {
		return 0
	}
	return int32(w)
}

func (c *canvas) LineHeight() int32 {
	return int32(c.font.Height())
}

func (c *canvas) FillRect(r confkit.Rect, col theme.Color) {
	if r.Empty() || col.A() == 0 {
		return
	}
	c.setColor(col)
	c.renderer.FillRect(sdlRect(r))
}

func (c *canvas) StrokeRect(r confkit.Rect, col theme.Color) {
	if r.Empty() || col.A() == 0 {
		return
	}
	c.setColor(col)
	c.renderer.DrawRect(sdlRect(r))
}

func (c *canvas) DrawText(s string, x, y int32, col theme.Color) {
	if s == "" || col.A() == 0 {
		return
	}
	key := textureKey{name: s, color: uint32(col)}
	t, ok := c.textures.get(key)
	if !ok {
		var err error
		if t, err = c.renderText(s, col); err != nil {
			logger().Debug("failed to render text", "text", s, "error", err)
			return
		}
		c.textures.put(key, t)
	}
	c.renderer.Copy(t.texture, nil, &sdl.Rect{X: x, Y: y, W: t.w, H: t.h})
}

func (c *canvas) renderText(s string, col theme.Color) (cachedTexture, error) {
	surface, err := c.font.RenderUTF8Blended(s, sdlColor(col))
	if err != nil {
		return cachedTexture{}, err
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return cachedTexture{}, err
	}
	return cachedTexture{texture: texture, w: surface.W, h: surface.H}, nil
}

func (c *canvas) DrawIcon(icon confkit.Icon, r confkit.Rect) {
	if r.Empty() || len(icon.SVG) == 0 {
		return
	}
	key := textureKey{name: "icon:" + icon.Name, w: r.W, h: r.H}
	t, ok := c.textures.get(key)
	if !ok {
		texture, err := c.icons.texture(c.renderer, icon, r.W, r.H)
		if err != nil {
			logger().Debug("failed to rasterize icon", "icon", icon.Name, "error", err)
			return
		}
		t = cachedTexture{texture: texture, w: r.W, h: r.H}
		c.textures.put(key, t)
	}
	c.renderer.Copy(t.texture, nil, sdlRect(r))
}

// PushClip narrows drawing to r intersected with the current clip.
func (c *canvas) PushClip(r confkit.Rect) {
	if n := len(c.clips); n > 0 {
		r = c.clips[n-1].Intersect(r)
	}
	c.clips = append(c.clips, r)
	c.applyClip()
}

func (c *canvas) PopClip() {
	if len(c.clips) == 0 {
		return
	}
	c.clips = c.clips[:len(c.clips)-1]
	c.applyClip()
}

func (c *canvas) applyClip() {
	if len(c.clips) == 0 {
		c.renderer.SetClipRect(nil)
		return
	}
	c.renderer.SetClipRect(sdlRect(c.clips[len(c.clips)-1]))
}

func (c *canvas) reset() {
	c.clips = c.clips[:0]
	c.renderer.SetClipRect(nil)
}

func (c *canvas) destroy() {
	c.textures.destroy()
}

var _ confkit.Canvas = (*canvas)(nil)
