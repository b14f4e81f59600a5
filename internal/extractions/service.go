package extractions

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"photo2text-backend/internal/config"
	"photo2text-backend/internal/metrics"
	"photo2text-backend/internal/ocr"
	"photo2text-backend/internal/storage/files"
	"photo2text-backend/internal/telemetry"
)

// Service runs the extraction pipeline: validate, persist bytes, recognize,
// persist record. One linear pass per upload; no background work.
type Service struct {
	Repo              Repo
	Files             *files.Store
	Engine            ocr.Engine
	Mode              string
	AllowedExtensions map[string]struct{}
}

func NewService(repo Repo, store *files.Store, engine ocr.Engine, mode string, allowed map[string]struct{}) *Service {
	return &Service{
		Repo:              repo,
		Files:             store,
		Engine:            engine,
		Mode:              mode,
		AllowedExtensions: allowed,
	}
}

// Extract processes one upload end to end and returns the persisted record.
//
// OCR failure does not fail the request: a degraded record with empty text is
// persisted, and the failure is logged and counted so it stays
// distinguishable from a legitimately empty image.
func (s *Service) Extract(ctx context.Context, fileName string, r io.Reader) (Extraction, error) {
	if strings.TrimSpace(fileName) == "" {
		return Extraction{}, ErrEmptyFilename
	}
	if !AllowedExtension(fileName, s.AllowedExtensions) {
		return Extraction{}, ErrUnsupportedType
	}

	metrics.IncExtractionStarted()
	start := time.Now()

	stored, sanitized, size, err := s.Files.Save(ctx, fileName, r)
	if err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, fmt.Errorf("save upload: %w", err)
	}

	path, err := s.Files.Path(stored)
	if err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, fmt.Errorf("resolve upload: %w", err)
	}

	rec := Extraction{
		Filename:         stored,
		OriginalFilename: sanitized,
	}
	if s.Mode == config.ModeRich {
		rec.FileSize = &size
	}

	result, ocrErr := s.Engine.Recognize(ctx, path)
	if ocrErr != nil {
		telemetry.Error("extraction.ocr_failed", map[string]any{
			"filename": stored,
			"err":      ocrErr.Error(),
		})
		metrics.IncExtractionFailed()
	} else {
		rec.ExtractedText = result.Text
		if s.Mode == config.ModeRich {
			confidence := result.Confidence
			width := int64(result.Width)
			height := int64(result.Height)
			rec.ConfidenceScore = &confidence
			rec.ImageWidth = &width
			rec.ImageHeight = &height
		}
	}

	if s.Mode == config.ModeSimple {
		if err := s.Files.Remove(stored); err != nil {
			telemetry.Error("extraction.cleanup_failed", map[string]any{
				"filename": stored,
				"err":      err.Error(),
			})
		}
	}

	if err := s.Repo.Create(ctx, &rec); err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, fmt.Errorf("persist extraction: %w", err)
	}

	if ocrErr == nil {
		metrics.IncExtractionCompleted()
	}
	metrics.ObserveExtractionDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("extraction.complete", map[string]any{
		"extraction_id": rec.ID,
		"filename":      stored,
		"size_bytes":    size,
		"mode":          s.Mode,
		"ocr_failed":    ocrErr != nil,
		"duration_ms":   float64(time.Since(start).Microseconds()) / 1000.0,
	})
	return rec, nil
}

// Get returns one record by id.
func (s *Service) Get(ctx context.Context, id int64) (Extraction, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all records, newest first.
func (s *Service) List(ctx context.Context) ([]Extraction, error) {
	return s.Repo.ListAll(ctx)
}
