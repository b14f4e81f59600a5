package ocr

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Tesseract is the gosseract-backed Engine.
type Tesseract struct {
	Language string
}

// NewTesseract returns a Tesseract engine for the given language code.
func NewTesseract(language string) *Tesseract {
	if strings.TrimSpace(language) == "" {
		language = "eng"
	}
	return &Tesseract{Language: language}
}

// Recognize decodes the image, normalizes it to a 3-channel frame and runs
// word-level OCR on it.
func (t *Tesseract) Recognize(ctx context.Context, imagePath string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	img, err := imaging.Open(imagePath, imaging.AutoOrientation(true))
	if err != nil {
		return Result{}, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Tesseract wants a file path. Re-encoding the decoded frame as PNG also
	// normalizes palette and grayscale inputs to a standard color model.
	normalized := imaging.Clone(img)
	tmp, err := os.CreateTemp("", "photo2text-ocr-*.png")
	if err != nil {
		return Result{}, fmt.Errorf("create temp image: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, normalized); err != nil {
		tmp.Close()
		return Result{}, fmt.Errorf("encode temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, fmt.Errorf("close temp image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.Language); err != nil {
		return Result{}, fmt.Errorf("set language %q: %w", t.Language, err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return Result{}, fmt.Errorf("recognize: %w", err)
	}

	words := make([]string, 0, len(boxes))
	confidences := make([]float64, 0, len(boxes))
	for _, box := range boxes {
		confidences = append(confidences, box.Confidence)
		if box.Confidence > 0 {
			words = append(words, box.Word)
		}
	}

	return Result{
		Text:       strings.TrimSpace(strings.Join(words, " ")),
		Confidence: AverageConfidence(confidences),
		Width:      width,
		Height:     height,
	}, nil
}
