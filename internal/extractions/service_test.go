package extractions

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"photo2text-backend/internal/config"
	"photo2text-backend/internal/ocr"
	"photo2text-backend/internal/storage/files"
)

type stubEngine struct {
	result ocr.Result
	err    error
}

func (e stubEngine) Recognize(ctx context.Context, imagePath string) (ocr.Result, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return ocr.Result{}, err
	}
	return e.result, e.err
}

func newTestService(t *testing.T, mode string, engine ocr.Engine) (*Service, *files.Store) {
	t.Helper()
	store, err := files.New(t.TempDir())
	if err != nil {
		t.Fatalf("files.New: %v", err)
	}
	svc := NewService(NewMemoryRepo(), store, engine, mode, testAllowed)
	return svc, store
}

func TestExtractRichModeFillsDetails(t *testing.T) {
	engine := stubEngine{result: ocr.Result{Text: "Hello World!", Confidence: 92.5, Width: 640, Height: 480}}
	svc, store := newTestService(t, config.ModeRich, engine)

	rec, err := svc.Extract(context.Background(), "photo.png", strings.NewReader("not a real png"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if rec.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if rec.ExtractedText != "Hello World!" {
		t.Fatalf("ExtractedText = %q", rec.ExtractedText)
	}
	if rec.OriginalFilename != "photo.png" {
		t.Fatalf("OriginalFilename = %q", rec.OriginalFilename)
	}
	if rec.Filename == "photo.png" || !strings.HasSuffix(rec.Filename, "_photo.png") {
		t.Fatalf("stored name should be uuid-prefixed, got %q", rec.Filename)
	}
	if rec.ConfidenceScore == nil || *rec.ConfidenceScore != 92.5 {
		t.Fatalf("ConfidenceScore = %v", rec.ConfidenceScore)
	}
	if rec.FileSize == nil || *rec.FileSize != int64(len("not a real png")) {
		t.Fatalf("FileSize = %v", rec.FileSize)
	}
	if rec.ImageWidth == nil || *rec.ImageWidth != 640 || rec.ImageHeight == nil || *rec.ImageHeight != 480 {
		t.Fatalf("dimensions = %v x %v", rec.ImageWidth, rec.ImageHeight)
	}

	// Rich mode retains the upload.
	path, err := store.Path(rec.Filename)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("retained file missing: %v", err)
	}
}

func TestExtractSimpleModeDeletesFileAndSkipsDetails(t *testing.T) {
	engine := stubEngine{result: ocr.Result{Text: "plain text", Confidence: 80, Width: 10, Height: 10}}
	svc, store := newTestService(t, config.ModeSimple, engine)

	rec, err := svc.Extract(context.Background(), "scan.jpg", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if rec.ExtractedText != "plain text" {
		t.Fatalf("ExtractedText = %q", rec.ExtractedText)
	}
	if rec.ConfidenceScore != nil || rec.FileSize != nil || rec.ImageWidth != nil || rec.ImageHeight != nil {
		t.Fatal("simple mode must not record details")
	}

	path, err := store.Path(rec.Filename)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("simple mode should delete the upload, stat err = %v", err)
	}
}

func TestExtractOCRFailurePersistsDegradedRecord(t *testing.T) {
	engine := stubEngine{err: errors.New("tesseract exploded")}
	svc, _ := newTestService(t, config.ModeRich, engine)

	rec, err := svc.Extract(context.Background(), "photo.png", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("Extract should not fail on OCR error: %v", err)
	}
	if rec.ID == 0 {
		t.Fatal("degraded record should still be persisted")
	}
	if rec.ExtractedText != "" {
		t.Fatalf("ExtractedText = %q, want empty", rec.ExtractedText)
	}
	if rec.ConfidenceScore != nil || rec.ImageWidth != nil || rec.ImageHeight != nil {
		t.Fatal("OCR details must stay unset on failure")
	}
	if rec.FileSize == nil {
		t.Fatal("file size is known before OCR and should be recorded")
	}
}

func TestExtractRejectsUnsupportedType(t *testing.T) {
	svc, _ := newTestService(t, config.ModeRich, stubEngine{})

	if _, err := svc.Extract(context.Background(), "malware.exe", strings.NewReader("x")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("rejected upload must not leave a record, got %d", len(records))
	}
}

func TestExtractRejectsEmptyFilename(t *testing.T) {
	svc, _ := newTestService(t, config.ModeRich, stubEngine{})

	if _, err := svc.Extract(context.Background(), "  ", strings.NewReader("x")); !errors.Is(err, ErrEmptyFilename) {
		t.Fatalf("err = %v, want ErrEmptyFilename", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	engine := stubEngine{result: ocr.Result{Text: "t", Confidence: 50, Width: 1, Height: 1}}
	svc, _ := newTestService(t, config.ModeRich, engine)

	first, err := svc.Extract(context.Background(), "a.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Extract a: %v", err)
	}
	second, err := svc.Extract(context.Background(), "b.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Extract b: %v", err)
	}
	if first.Filename == second.Filename {
		t.Fatal("stored names must be unique per upload")
	}

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Fatalf("order = [%d %d], want newest first", records[0].ID, records[1].ID)
	}

	if _, err := svc.Get(context.Background(), first.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing err = %v, want ErrNotFound", err)
	}
}
