package aui

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/aui/pkg/aui/constants"
	"github.com/BrandonKowalski/aui/pkg/aui/internal"
	"github.com/srwiley/oksvg"
)

// Image shows a picture file. Its preferred size is the picture's pixel
// size in backend units.
type Image struct {
	widgetBase
	path      string
	autoScale bool
	pxSize    Size
	readErr   error
}

func newImage(parent Widget, path string) (*Image, error) {
	img := &Image{}
	if err := img.init(img, "Image", parent, 0); err != nil {
		return nil, err
	}
	img.load(path)
	return img, nil
}

// Path is the resolved file path.
func (img *Image) Path() string { return img.path }

// SetPath loads another picture.
func (img *Image) SetPath(path string) {
	img.load(path)
	img.changed(true)
}

// Err is the error from reading the picture, nil if it loaded.
func (img *Image) Err() error { return img.readErr }

// PixelSize is the picture's size in device pixels.
func (img *Image) PixelSize() Size { return img.pxSize }

func (img *Image) AutoScale() bool { return img.autoScale }

// SetAutoScale lets the picture stretch with the available space.
func (img *Image) SetAutoScale(on bool) {
	img.autoScale = on
	img.stretch = [2]bool{on, on}
	img.changed(true)
}

func (img *Image) load(path string) {
	img.path = ResolveIcon(path)
	if img.path == "" {
		img.path = path
	}
	img.pxSize, img.readErr = imagePixelSize(img.path)
	if img.readErr != nil {
		internal.GetInternalLogger().Warn("Failed to read image", "path", path, "error", img.readErr)
	}
}

func imagePixelSize(path string) (Size, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		icon, err := oksvg.ReadIcon(path, oksvg.IgnoreErrorMode)
		if err != nil {
			return Size{}, err
		}
		return Size{Width: int(icon.ViewBox.W), Height: int(icon.ViewBox.H)}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Size{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: cfg.Width, Height: cfg.Height}, nil
}

func (img *Image) PreferredSize(m Metrics) Size {
	if img.readErr != nil || img.pxSize.Width == 0 {
		return Size{Width: m.TextWidth(img.placeholder()), Height: m.LineHeight()}
	}
	return Size{
		Width:  m.PixelsToUnits(img.pxSize.Width, constants.Horizontal),
		Height: m.PixelsToUnits(img.pxSize.Height, constants.Vertical),
	}
}

func (img *Image) placeholder() string {
	return "[" + filepath.Base(img.path) + "]"
}

// Placeholder is the text drawn by backends that cannot show pictures.
func (img *Image) Placeholder() string { return img.placeholder() }
