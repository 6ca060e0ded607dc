package extract

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvanaliz-backend/internal/shared/server/respond"
)

// Handler serves the file-to-text endpoint.
type Handler struct {
	MaxUploadBytes int64
}

func NewHandler(maxUploadBytes int64) *Handler {
	return &Handler{MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
}

// ExtractResponse is the success payload for POST /extract.
type ExtractResponse struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
}

func (h *Handler) extract(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "Dosya boyutu limiti aşıldı", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file alanı zorunludur", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Dosya açılamadı", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Dosya okunamadı", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	text, err := FromBytes(c.Request.Context(), data, mimeType, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			respond.Error(c, http.StatusUnprocessableEntity, "unsupported_file_type", "Desteklenmeyen dosya türü. PDF, DOCX veya TXT yükleyin.", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "Dosyadan metin çıkarılamadı", nil)
		return
	}
	if text == "" {
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "Dosyada okunabilir metin bulunamadı", nil)
		return
	}

	respond.OK(c, ExtractResponse{
		Text:     text,
		FileName: fileHeader.Filename,
	})
}
