package host

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/veandco/go-sdl2/sdl"
)

const defaultTextCacheSize = 256

// textureKey identifies a rendered texture: the text or icon name, the
// color it was drawn in, and for icons the size it was rasterized at.
type textureKey struct {
	name  string
	color uint32
	w, h  int32
}

type cachedTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// textureCache keeps recently drawn textures. Evicted textures are destroyed.
type textureCache struct {
	entries *lru.Cache[textureKey, cachedTexture]
}

func newTextureCache(size int) *textureCache {
	if size <= 0 {
		size = defaultTextCacheSize
	}
	entries, _ := lru.NewWithEvict(size, func(_ textureKey, v cachedTexture) {
		v.texture.Destroy()
	})
	return &textureCache{entries: entries}
}

func (c *textureCache) get(key textureKey) (cachedTexture, bool) {
	return c.entries.Get(key)
}

func (c *textureCache) put(key textureKey, t cachedTexture) {
	c.entries.Add(key, t)
}

// destroy frees every cached texture.
func (c *textureCache) destroy() {
	c.entries.Purge()
}
