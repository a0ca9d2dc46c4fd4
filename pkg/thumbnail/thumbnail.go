package thumbnail

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Defaults for the generator knobs. Target dimensions and decode limits are
// deployment choices, so they are configuration with documented defaults.
const (
	DefaultMaxEdge     = 256
	DefaultMaxPixels   = 50_000_000
	DefaultJPEGQuality = 85
)

// DecodeError reports an input that could not be decoded into an image.
type DecodeError struct {
	Reason   string
	TooLarge bool
	cause    error
}

func (e *DecodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("decode: %s: %v", e.Reason, e.cause)
	}

	return fmt.Sprintf("decode: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

// Config holds the generator knobs.
type Config struct {
	MaxEdge     int   `yaml:"max_edge"`
	MaxPixels   int64 `yaml:"max_pixels"`
	JPEGQuality int   `yaml:"jpeg_quality"`
}

// Result is the outcome of one generation: the encoded thumbnail plus the
// pixel dimensions of both the original and the thumbnail.
type Result struct {
	Thumbnail   []byte
	ContentType string
	Width       int
	Height      int
	ThumbWidth  int
	ThumbHeight int
}

// Generator derives bounded thumbnails from raw image bytes. It performs no
// I/O and is safe for concurrent use.
type Generator struct {
	cfg Config
}

func New(cfg Config) *Generator {
	if cfg.MaxEdge <= 0 {
		cfg.MaxEdge = DefaultMaxEdge
	}
	if cfg.MaxPixels <= 0 {
		cfg.MaxPixels = DefaultMaxPixels
	}
	if cfg.JPEGQuality <= 0 || cfg.JPEGQuality > 100 {
		cfg.JPEGQuality = DefaultJPEGQuality
	}

	return &Generator{cfg: cfg}
}

// Generate decodes original and produces a JPEG thumbnail whose longest edge
// is at most MaxEdge, preserving aspect ratio. Images are never upscaled.
// The pixel count is checked against MaxPixels on the header alone, before
// the full bitmap is allocated.
func (g *Generator) Generate(original []byte) (*Result, error) {
	header, format, err := image.DecodeConfig(bytes.NewReader(original))
	if err != nil {
		return nil, &DecodeError{Reason: "unrecognized image format", cause: err}
	}

	if pixels := int64(header.Width) * int64(header.Height); pixels > g.cfg.MaxPixels {
		return nil, &DecodeError{
			Reason:   fmt.Sprintf("image of %dx%d exceeds pixel limit of %d", header.Width, header.Height, g.cfg.MaxPixels),
			TooLarge: true,
		}
	}

	img, err := imaging.Decode(bytes.NewReader(original))
	if err != nil {
		return nil, &DecodeError{Reason: "corrupt image data", cause: err}
	}

	// Lanczos keeps the output reproducible for identical input.
	thumb := imaging.Fit(img, g.cfg.MaxEdge, g.cfg.MaxEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(g.cfg.JPEGQuality)); err != nil {
		return nil, &DecodeError{Reason: "thumbnail encoding failed", cause: err}
	}

	bounds := img.Bounds()
	thumbBounds := thumb.Bounds()

	return &Result{
		Thumbnail:   buf.Bytes(),
		ContentType: "image/" + format,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ThumbWidth:  thumbBounds.Dx(),
		ThumbHeight: thumbBounds.Dy(),
	}, nil
}
