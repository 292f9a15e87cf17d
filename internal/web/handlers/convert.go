package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/kozaktomas/img2pdf/internal/config"
	"github.com/kozaktomas/img2pdf/internal/constants"
	"github.com/kozaktomas/img2pdf/internal/convert"
	"github.com/kozaktomas/img2pdf/internal/document"
	"github.com/kozaktomas/img2pdf/internal/imageset"
	"github.com/kozaktomas/img2pdf/internal/layout"
	"github.com/kozaktomas/img2pdf/internal/output"
)

// ConvertHandler turns uploaded images into PDF documents.
type ConvertHandler struct {
	config    *config.Config
	spec      layout.PageSpec
	font      *document.Font
	captions  bool  // used when a request has no "captions" field
	maxUpload int64 // request body limit in bytes
}

// NewConvertHandler creates a new convert handler using spec as the default
// page geometry and cfg.Page.Captions as the default caption setting.
func NewConvertHandler(cfg *config.Config, spec layout.PageSpec, font *document.Font) *ConvertHandler {
	return &ConvertHandler{
		config:    cfg,
		spec:      spec,
		font:      font,
		captions:  cfg.Page.Captions,
		maxUpload: constants.MaxUploadSize,
	}
}

// pageSpec applies the optional "paper", "margin_mm" and "dpi" form fields.
func (h *ConvertHandler) pageSpec(r *http.Request) (layout.PageSpec, error) {
	spec := h.spec
	if name := r.FormValue("paper"); name != "" {
		paper, err := h.config.Paper(name)
		if err != nil {
			return spec, fmt.Errorf("%w: %v", errBadUpload, err)
		}
		spec.Paper = paper
	}
	if v := r.FormValue("margin_mm"); v != "" {
		margin, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return spec, fmt.Errorf("%w: invalid margin_mm", errBadUpload)
		}
		spec.MarginMM = margin
	}
	if v := r.FormValue("dpi"); v != "" {
		dpi, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return spec, fmt.Errorf("%w: invalid dpi", errBadUpload)
		}
		spec.DPI = dpi
	}
	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("%w: %v", errBadUpload, err)
	}
	return spec, nil
}

// wantCaptions reads the optional "captions" form field.
func (h *ConvertHandler) wantCaptions(r *http.Request) (bool, error) {
	v := r.FormValue("captions")
	if v == "" {
		return h.captions, nil
	}
	captions, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: invalid captions", errBadUpload)
	}
	return captions, nil
}

// respondConversionError maps pipeline errors to HTTP responses.
func respondConversionError(w http.ResponseWriter, err error) {
	var (
		notImage *imageset.NotAnImageError
		convErr  *document.ConversionError
	)
	switch {
	case errors.Is(err, errUploadTooLarge):
		respondError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, errBadUpload):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, imageset.ErrEmptyCollection):
		respondError(w, http.StatusUnprocessableEntity, "no images found in upload")
	case errors.As(err, &notImage):
		respondIndexedError(w, http.StatusUnprocessableEntity, notImage.Error(), notImage.Index)
	case errors.As(err, &convErr):
		respondIndexedError(w, http.StatusUnprocessableEntity, convErr.Error(), convErr.Index)
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// Convert handles POST /convert and streams the PDF back.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	up, err := readUpload(w, r, h.maxUpload)
	if err != nil {
		respondConversionError(w, err)
		return
	}
	spec, err := h.pageSpec(r)
	if err != nil {
		respondConversionError(w, err)
		return
	}

	captions, err := h.wantCaptions(r)
	if err != nil {
		respondConversionError(w, err)
		return
	}
	opts := convert.Options{
		Spec:     spec,
		Font:     h.font,
		Document: document.Options{Captions: captions},
	}

	id := uuid.New().String()
	rendered, err := convert.Build(up.name, up.entries, opts)
	if err != nil {
		log.Printf("Conversion %s of %q failed: %v", id, sanitizeForLog(up.name), err)
		respondConversionError(w, err)
		return
	}
	log.Printf("Conversion %s of %q: %d page(s), %d bytes", id, sanitizeForLog(up.name), rendered.PageCount, len(rendered.Data))

	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": output.FileName(up.name),
	})
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Length", strconv.Itoa(len(rendered.Data)))
	w.Header().Set("X-Conversion-ID", id)
	w.Header().Set("X-Page-Count", strconv.Itoa(rendered.PageCount))
	w.WriteHeader(http.StatusOK)
	w.Write(rendered.Data)
}

// Plan handles POST /plan and returns the layout report without rendering.
func (h *ConvertHandler) Plan(w http.ResponseWriter, r *http.Request) {
	up, err := readUpload(w, r, h.maxUpload)
	if err != nil {
		respondConversionError(w, err)
		return
	}
	spec, err := h.pageSpec(r)
	if err != nil {
		respondConversionError(w, err)
		return
	}

	doc, err := convert.Plan(up.name, up.entries, spec)
	if err != nil {
		respondConversionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, doc.Report())
}

// Papers handles GET /papers.
func (h *ConvertHandler) Papers(w http.ResponseWriter, r *http.Request) {
	papers := make([]layout.Paper, 0, len(h.config.Papers.Papers))
	for _, name := range h.config.PaperNames() {
		p, err := h.config.Paper(name)
		if err != nil {
			continue
		}
		papers = append(papers, p)
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"default": h.spec.Paper.Name,
		"papers":  papers,
	})
}
