package extractions

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"photo2text-backend/internal/config"
	"photo2text-backend/internal/server/respond"
)

// Handler serves the web pages and the JSON API for extractions.
type Handler struct {
	Service        *Service
	MaxUploadBytes int64
}

func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Service: svc, MaxUploadBytes: maxUploadBytes}
}

// Index renders the upload form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Upload handles the web upload form. Rich mode redirects to the detail
// page; simple mode answers JSON, which is what the original API promised.
func (h *Handler) Upload(c *gin.Context) {
	rec, ok := h.extract(c, h.pageError)
	if !ok {
		return
	}
	c.Set("extractionId", rec.ID)

	if h.Service.Mode == config.ModeSimple {
		respond.OK(c, gin.H{
			"success":        true,
			"filename":       rec.OriginalFilename,
			"extracted_text": rec.ExtractedText,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/extraction/"+strconv.FormatInt(rec.ID, 10))
}

type detailView struct {
	ID               int64
	OriginalFilename string
	ExtractedText    string
	Confidence       string
	FileSize         string
	Dimensions       string
	CreatedAt        string
}

// Detail renders a single extraction.
func (h *Handler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.pageError(c, http.StatusNotFound, "", "Extraction not found")
		return
	}
	rec, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.pageError(c, http.StatusNotFound, "", "Extraction not found")
			return
		}
		h.pageError(c, http.StatusInternalServerError, "", "Something went wrong")
		return
	}

	view := detailView{
		ID:               rec.ID,
		OriginalFilename: rec.OriginalFilename,
		ExtractedText:    rec.ExtractedText,
		CreatedAt:        rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if rec.ConfidenceScore != nil {
		view.Confidence = fmt.Sprintf("%.1f%%", *rec.ConfidenceScore)
	}
	if rec.FileSize != nil {
		view.FileSize = fmt.Sprintf("%d bytes", *rec.FileSize)
	}
	if rec.ImageWidth != nil && rec.ImageHeight != nil {
		view.Dimensions = fmt.Sprintf("%dx%d", *rec.ImageWidth, *rec.ImageHeight)
	}
	c.HTML(http.StatusOK, "extraction.html", gin.H{"Extraction": view})
}

type historyRow struct {
	ID               int64
	OriginalFilename string
	CreatedAt        string
	Confidence       string
	Preview          string
}

// History renders all extractions newest-first with truncated previews.
func (h *Handler) History(c *gin.Context) {
	records, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.pageError(c, http.StatusInternalServerError, "", "Something went wrong")
		return
	}
	rows := make([]historyRow, 0, len(records))
	for _, rec := range records {
		row := historyRow{
			ID:               rec.ID,
			OriginalFilename: rec.OriginalFilename,
			CreatedAt:        rec.CreatedAt.Format("2006-01-02 15:04:05"),
			Preview:          Preview(rec.ExtractedText, PreviewLength),
		}
		if rec.ConfidenceScore != nil {
			row.Confidence = fmt.Sprintf("%.1f%%", *rec.ConfidenceScore)
		}
		rows = append(rows, row)
	}
	c.HTML(http.StatusOK, "history.html", gin.H{"Extractions": rows})
}

// APIExtract is the JSON upload endpoint.
func (h *Handler) APIExtract(c *gin.Context) {
	rec, ok := h.extract(c, h.apiError)
	if !ok {
		return
	}
	c.Set("extractionId", rec.ID)

	var confidence float64
	var width, height int64
	if rec.ConfidenceScore != nil {
		confidence = *rec.ConfidenceScore
	}
	if rec.ImageWidth != nil {
		width = *rec.ImageWidth
	}
	if rec.ImageHeight != nil {
		height = *rec.ImageHeight
	}
	respond.OK(c, gin.H{
		"extraction_id":    rec.ID,
		"extracted_text":   rec.ExtractedText,
		"confidence_score": confidence,
		"image_dimensions": gin.H{"width": width, "height": height},
	})
}

// APIList returns every record with full fields.
func (h *Handler) APIList(c *gin.Context) {
	records, err := h.Service.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list extractions", nil)
		return
	}
	if records == nil {
		records = []Extraction{}
	}
	respond.OK(c, records)
}

// APIGet returns one record with full fields.
func (h *Handler) APIGet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "extraction not found", nil)
		return
	}
	rec, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "extraction not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load extraction", nil)
		return
	}
	respond.OK(c, rec)
}

type textRow struct {
	ID            int64  `json:"id"`
	Filename      string `json:"filename"`
	ExtractedText string `json:"extracted_text"`
	CreatedAt     string `json:"created_at"`
}

// APITexts returns a compact view of all extracted texts.
func (h *Handler) APITexts(c *gin.Context) {
	records, err := h.Service.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list extractions", nil)
		return
	}
	rows := make([]textRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, textRow{
			ID:            rec.ID,
			Filename:      rec.Filename,
			ExtractedText: rec.ExtractedText,
			CreatedAt:     rec.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	respond.OK(c, rows)
}

// extract validates the multipart request and runs the pipeline, reporting
// failures through fail (page or API flavored). The bool result reports
// whether a record was produced.
func (h *Handler) extract(c *gin.Context, fail func(c *gin.Context, status int, code, message string)) (Extraction, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid_request", "No file selected")
		return Extraction{}, false
	}
	if header.Filename == "" {
		fail(c, http.StatusBadRequest, "invalid_request", "No file selected")
		return Extraction{}, false
	}
	if h.MaxUploadBytes > 0 && header.Size > h.MaxUploadBytes {
		fail(c, http.StatusRequestEntityTooLarge, "file_too_large", "File is too large")
		return Extraction{}, false
	}

	file, err := header.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid_request", "No file selected")
		return Extraction{}, false
	}
	defer file.Close()

	rec, err := h.Service.Extract(c.Request.Context(), header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFilename), errors.Is(err, ErrNoFile):
			fail(c, http.StatusBadRequest, "invalid_request", "No file selected")
		case errors.Is(err, ErrUnsupportedType):
			fail(c, http.StatusBadRequest, "unsupported_file_type", "Invalid file type. Please upload an image file.")
		default:
			fail(c, http.StatusInternalServerError, "internal", "Something went wrong")
		}
		return Extraction{}, false
	}
	return rec, true
}

// pageError renders the upload form with an inline error message.
func (h *Handler) pageError(c *gin.Context, status int, _ string, message string) {
	c.HTML(status, "index.html", gin.H{"Error": message})
	c.Abort()
}

func (h *Handler) apiError(c *gin.Context, status int, code, message string) {
	respond.Error(c, status, code, message, nil)
}
