package sdl

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/aui/pkg/aui"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
)

const windowIconSize = 64

func isSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// fitSize scales natural into box keeping the aspect ratio. Without
// autoScale only larger pictures shrink.
func fitSize(natural aui.Size, box aui.Rect, autoScale bool) aui.Size {
	if natural.Width <= 0 || natural.Height <= 0 {
		return aui.Size{Width: box.Width, Height: box.Height}
	}
	if !autoScale && natural.Width <= box.Width && natural.Height <= box.Height {
		return natural
	}
	w, h := box.Width, natural.Height*box.Width/natural.Width
	if h > box.Height {
		w, h = natural.Width*box.Height/natural.Height, box.Height
	}
	return aui.Size{Width: max(1, w), Height: max(1, h)}
}

// imageTexture loads path for drawing into box. SVGs are rasterised at
// the final size; bitmaps are loaded once and scaled by the renderer.
func (b *Backend) imageTexture(path string, natural aui.Size, box aui.Rect, autoScale bool) (*sdl.Texture, aui.Size) {
	size := fitSize(natural, box, autoScale)
	key := imageKey{path: path}
	if isSVG(path) {
		key.width, key.height = int32(size.Width), int32(size.Height)
	}
	if tex, ok := b.images.Get(key); ok {
		return tex, size
	}

	var tex *sdl.Texture
	var err error
	if isSVG(path) {
		tex, err = b.svgTexture(path, size)
	} else {
		tex, err = img.LoadTexture(b.win.renderer, path)
	}
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load image", "path", path, "error", err)
		return nil, size
	}
	b.images.Set(key, tex)
	return tex, size
}

// forgetImages drops cached textures after an image widget changed.
func (b *Backend) forgetImages() {
	b.images.Purge()
}

func (b *Backend) svgTexture(path string, size aui.Size) (*sdl.Texture, error) {
	surface, err := svgSurface(path, size)
	if err != nil {
		return nil, err
	}
	defer surface.Free()
	return b.win.renderer.CreateTextureFromSurface(surface)
}

// rasterize draws an SVG file into an RGBA image of the given size.
func rasterize(path string, size aui.Size) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	w, h := size.Width, size.Height
	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return rgba, nil
}

// svgSurface rasterises path and copies the pixels into an SDL surface.
func svgSurface(path string, size aui.Size) (*sdl.Surface, error) {
	rgba, err := rasterize(path, size)
	if err != nil {
		return nil, err
	}
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(size.Width), int32(size.Height), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	if err := surface.Lock(); err != nil {
		surface.Free()
		return nil, err
	}
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	row := size.Width * 4
	for y := 0; y < size.Height; y++ {
		copy(pixels[y*pitch:y*pitch+row], rgba.Pix[y*rgba.Stride:y*rgba.Stride+row])
	}
	surface.Unlock()
	return surface, nil
}

// setWindowIcon shows the application icon in the title bar and task
// switcher. Missing icons are not an error.
func (b *Backend) setWindowIcon() {
	spec := aui.GetApplication().IconSpec()
	if spec == "" {
		return
	}
	path := aui.ResolveIcon(spec)
	if path == "" {
		internal.GetInternalLogger().Debug("Application icon not found", "spec", spec)
		return
	}

	var surface *sdl.Surface
	var err error
	if isSVG(path) {
		surface, err = svgSurface(path, aui.Size{Width: windowIconSize, Height: windowIconSize})
	} else {
		surface, err = img.Load(path)
	}
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load application icon", "path", path, "error", err)
		return
	}
	defer surface.Free()
	b.win.window.SetIcon(surface)
}
