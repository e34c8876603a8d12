package http

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gymrepublic/gym-console/internal/domain/report"
	"github.com/gymrepublic/gym-console/internal/handler/http/response"
	"github.com/gymrepublic/gym-console/internal/service/file"
)

// ExportHandler serves stored copies of generated documents.
type ExportHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	fileService file.FileService
}

func NewExportHandler(fileService file.FileService) ExportHandler {
	return &exportHandlerImpl{fileService: fileService}
}

func writeDocument(w http.ResponseWriter, doc report.Document) {
	response.File(w, doc.Filename, doc.ContentType, doc.URL, doc.Data)
}

func (h *exportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	p := path.Clean("/exports/" + chi.URLParam(r, "*"))[1:]
	if !strings.HasPrefix(p, "exports/") {
		response.NotFound(w, "Document not found")
		return
	}
	rc, err := h.fileService.OpenDocument(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		response.InternalServerError(w, "Failed to read document")
		return
	}

	contentType := mime.TypeByExtension(path.Ext(p))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	response.File(w, path.Base(p), contentType, "", data)
}
