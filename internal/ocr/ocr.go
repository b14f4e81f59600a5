// Package ocr wraps the Tesseract engine behind an explicit result contract.
// Recognition failures are returned as errors; deciding whether to degrade or
// reject is the caller's job, not the adapter's.
package ocr

import "context"

// Result is the outcome of a successful recognition pass.
type Result struct {
	// Text is the space-joined recognized words, trimmed. Empty when the
	// image contains no recognizable text.
	Text string

	// Confidence is the arithmetic mean of per-word confidences strictly
	// greater than zero, on a 0-100 scale. Exactly 0 when no word qualifies.
	Confidence float64

	// Width and Height are the decoded image dimensions in pixels.
	Width  int
	Height int
}

// Engine recognizes text in an image file.
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (Result, error)
}

// AverageConfidence returns the mean of the confidences strictly greater than
// zero. Tesseract reports non-text regions with confidence <= 0; those are
// excluded. Returns exactly 0 when no confidence qualifies.
func AverageConfidence(confidences []float64) float64 {
	var sum float64
	var n int
	for _, c := range confidences {
		if c > 0 {
			sum += c
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
