package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shivayapandey/invoice/pkg/extractor"
	"github.com/shivayapandey/invoice/pkg/pipeline"
)

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	files, err := h.readFiles(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("no files uploaded"))
		return
	}

	e, err := h.Extractor(valueModel(r))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := pipeline.New(e, h.Classifier(), h.Renderer(), h.Renderer(), h.Geometry())

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	result, err := p.Process(r.Context(), files)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if result.Text == "" {
		writeError(w, http.StatusUnprocessableEntity, errors.New("no invoices could be detected in the uploaded documents"))
		return
	}

	if valueFormat(r) == "text" {
		writeJson(w, processResponse{
			Text: result.Text,

			Files:     result.Files,
			Extracted: result.Extracted,

			Warnings: convertWarnings(result.Warnings),
		})

		return
	}

	data, err := p.Render(result.Text)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	name := fmt.Sprintf("invoices_%s.pdf", time.Now().Format("20060102_1504"))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)

	w.Write(data)
}

type processResponse struct {
	Text string `json:"text"`

	Files     int `json:"files"`
	Extracted int `json:"extracted"`

	Warnings []string `json:"warnings,omitempty"`
}

func convertWarnings(warnings []pipeline.Warning) []string {
	var result []string

	for _, w := range warnings {
		result = append(result, fmt.Sprintf("%s: %v", w.File, w.Err))
	}

	return result
}

func (h *Handler) readFiles(r *http.Request) ([]extractor.File, error) {
	if r.MultipartForm == nil {
		return nil, errors.New("multipart form required")
	}

	var files []extractor.File

	for _, header := range r.MultipartForm.File["files"] {
		f, err := header.Open()

		if err != nil {
			return nil, err
		}

		content, err := io.ReadAll(f)
		f.Close()

		if err != nil {
			return nil, err
		}

		files = append(files, extractor.File{
			Name: header.Filename,

			Content:     content,
			ContentType: header.Header.Get("Content-Type"),
		})
	}

	return files, nil
}

func valueModel(r *http.Request) string {
	if val := r.FormValue("model"); val != "" {
		return val
	}

	return ""
}

func valueFormat(r *http.Request) string {
	if val := r.FormValue("format"); val != "" {
		return val
	}

	return ""
}
