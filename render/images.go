package render

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	// Decoders for the raster formats image sources may come in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader reads and decodes asset files for image and vector elements.
type Loader struct {
	scaleFactor float64
	maxDim      int
	vectorSize  int
	log         *zap.Logger
}

// NewLoader creates an asset loader. Decoded images are scaled by
// scaleFactor and never exceed maxDim on either side, vector assets
// rasterize to vectorSize when they carry no intrinsic size.
func NewLoader(scaleFactor float64, maxDim, vectorSize int, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		scaleFactor: scaleFactor,
		maxDim:      maxDim,
		vectorSize:  vectorSize,
		log:         log.Named("assets"),
	}
}

// Load reads an image source from disk and decodes it. SVG sources are
// rasterized, everything else must be a raster format the decoders above
// understand.
func (l *Loader) Load(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read image source: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return l.rasterize(data)
	}

	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		return nil, fmt.Errorf("unsupported image source %q", path)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s image: %w", kind.Extension, err)
	}
	return l.resample(img), nil
}

// resample applies the configured scale factor and clamps the result so
// neither side exceeds the raster limit.
func (l *Loader) resample(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if l.scaleFactor > 0 && l.scaleFactor != 1 {
		sw := int(math.Round(float64(w) * l.scaleFactor))
		if sw > 0 && sw != w {
			img = imaging.Resize(img, sw, 0, imaging.Lanczos)
			bounds = img.Bounds()
			w, h = bounds.Dx(), bounds.Dy()
		}
	}
	if l.maxDim > 0 && (w > l.maxDim || h > l.maxDim) {
		l.log.Debug("Downscaling oversized image",
			zap.Int("width", w), zap.Int("height", h), zap.Int("limit", l.maxDim))
		img = imaging.Fit(img, l.maxDim, l.maxDim, imaging.Lanczos)
	}
	return img
}
