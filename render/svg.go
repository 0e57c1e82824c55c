package render

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize reads a vector asset from disk and renders it to a bitmap.
func (l *Loader) Rasterize(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read vector asset: %w", err)
	}
	return l.rasterize(data)
}

func (l *Loader) rasterize(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to parse vector asset: %w", err)
	}

	// Intrinsic size from the viewBox, falling back to the configured
	// raster size for assets that do not declare one.
	srcW, srcH := icon.ViewBox.W, icon.ViewBox.H
	if srcW <= 0 || srcH <= 0 {
		srcW, srcH = float64(l.vectorSize), float64(l.vectorSize)
		icon.ViewBox.W, icon.ViewBox.H = srcW, srcH
	}

	w := int(math.Ceil(srcW))
	h := int(math.Ceil(srcH))
	if l.maxDim > 0 && (w > l.maxDim || h > l.maxDim) {
		scale := float64(l.maxDim) / math.Max(srcW, srcH)
		w = int(math.Ceil(srcW * scale))
		h = int(math.Ceil(srcH * scale))
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
