package extractions

import "time"

// Extraction is one processed upload. Records are append-only: they are
// created once at the end of the pipeline and never updated or deleted.
type Extraction struct {
	ID               int64     `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	ExtractedText    string    `json:"extracted_text"`
	ConfidenceScore  *float64  `json:"confidence_score"`
	FileSize         *int64    `json:"file_size"`
	ImageWidth       *int64    `json:"image_width"`
	ImageHeight      *int64    `json:"image_height"`
	CreatedAt        time.Time `json:"created_at"`
}
