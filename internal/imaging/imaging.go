package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/sirupsen/logrus"

	"tshirtMarketAi/internal/apperrors"
	"tshirtMarketAi/internal/config"
	"tshirtMarketAi/internal/logger"
)

// Dimensions is the pixel size of a decoded image.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

var supportedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// Preconditioner validates raw uploads and normalizes them into the canonical
// encoded form submitted to the AI model.
type Preconditioner struct {
	maxFileBytes  int
	minDimension  int
	warnDimension int
	maxDimension  int
	jpegQuality   int
}

// NewPreconditioner builds a preconditioner from image configuration.
func NewPreconditioner(cfg config.ImageConfig) *Preconditioner {
	return &Preconditioner{
		maxFileBytes:  cfg.MaxFileBytes,
		minDimension:  cfg.MinDimension,
		warnDimension: cfg.WarnDimension,
		maxDimension:  cfg.MaxDimension,
		jpegQuality:   cfg.JPEGQuality,
	}
}

// Validate rejects payloads that are oversized, undecodable, in an unsupported
// format, or too small to analyze meaningfully.
func (p *Preconditioner) Validate(data []byte, filename string) error {
	if len(data) > p.maxFileBytes {
		return apperrors.NewImageProcessing("file size exceeds maximum limit", nil)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return apperrors.NewImageProcessing(fmt.Sprintf("invalid image file: %v", err), err)
	}

	if !supportedFormats[format] {
		return apperrors.NewImageProcessing("unsupported image format", nil)
	}

	longest := max(cfg.Width, cfg.Height)
	if longest < p.minDimension {
		return apperrors.NewImageProcessing(fmt.Sprintf("image too small (minimum %dpx)", p.minDimension), nil)
	}

	if longest > p.warnDimension {
		logger.WithFields(logrus.Fields{
			"filename": filename,
			"width":    cfg.Width,
			"height":   cfg.Height,
		}).Warn("large image detected")
	}

	return nil
}

// Normalize converts the payload to 3-channel color, downscales it so the
// longer side does not exceed the configured maximum, and re-encodes it as a
// compressed JPEG. This bounds AI submission payload size and cost.
func (p *Preconditioner) Normalize(data []byte) ([]byte, Dimensions, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Dimensions{}, apperrors.NewImageProcessing(fmt.Sprintf("image processing failed: %v", err), err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	target := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(target, target.Bounds(), src, bounds.Min, draw.Src)

	if longest := max(width, height); longest > p.maxDimension {
		ratio := float64(p.maxDimension) / float64(longest)
		newWidth := int(float64(width) * ratio)
		newHeight := int(float64(height) * ratio)

		scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), target, target.Bounds(), xdraw.Over, nil)
		target = scaled

		logger.WithFields(logrus.Fields{
			"from": fmt.Sprintf("%dx%d", width, height),
			"to":   fmt.Sprintf("%dx%d", newWidth, newHeight),
		}).Info("resized image")

		width, height = newWidth, newHeight
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, target, &jpeg.Options{Quality: p.jpegQuality}); err != nil {
		return nil, Dimensions{}, apperrors.NewImageProcessing(fmt.Sprintf("image processing failed: %v", err), err)
	}

	return buf.Bytes(), Dimensions{Width: width, Height: height}, nil
}
