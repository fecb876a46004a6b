package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstgenius/internal/domain"
	"gstgenius/internal/extract"
	"gstgenius/internal/pdf"
	"gstgenius/internal/port"
	"gstgenius/internal/ruleset"
	"gstgenius/internal/share"
	"gstgenius/internal/tax"
)

// DraftHandler serves the stateless draft operations: factory, tax
// computation, validation, HSN suggestion, share links, PDF export and the
// text extractor. None of these require authentication; they operate on the
// draft the caller sends.
type DraftHandler struct {
	extractor port.DraftExtractor
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(extractor port.DraftExtractor) *DraftHandler {
	return &DraftHandler{extractor: extractor}
}

// New handles POST /api/v1/drafts/new.
func (h *DraftHandler) New(c *gin.Context) {
	RespondOK(c, domain.NewDraft())
}

// Compute handles POST /api/v1/drafts/compute.
func (h *DraftHandler) Compute(c *gin.Context) {
	var draft domain.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	RespondOK(c, tax.ComputeSummary(draft))
}

// Validate handles POST /api/v1/drafts/validate. The error list is empty for
// a valid draft; the advisory, when present, does not block anything.
func (h *DraftHandler) Validate(c *gin.Context) {
	var draft domain.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	RespondOK(c, gin.H{
		"errors":   ruleset.ValidateDraft(draft),
		"advisory": ruleset.AdviseBillOfSupply(draft),
	})
}

// SuggestHSN handles GET /api/v1/hsn/suggest?description=...
func (h *DraftHandler) SuggestHSN(c *gin.Context) {
	RespondOK(c, gin.H{"hsn": ruleset.SuggestHSN(c.Query("description"))})
}

// Share handles POST /api/v1/drafts/share. Sharing is gated on validation,
// matching the save and export paths.
func (h *DraftHandler) Share(c *gin.Context) {
	var draft domain.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if errs := ruleset.ValidateDraft(draft); len(errs) > 0 {
		HandleError(c, &domain.ValidationError{Errors: errs})
		return
	}

	token, err := share.Encode(draft)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"token": token})
}

// OpenShare handles GET /api/v1/drafts/share/:token.
func (h *DraftHandler) OpenShare(c *gin.Context) {
	draft, err := share.Decode(c.Param("token"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, draft)
}

// ExportPDF handles POST /api/v1/drafts/pdf. The summary is always
// recomputed from the submitted draft before rendering.
func (h *DraftHandler) ExportPDF(c *gin.Context) {
	var draft domain.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if errs := ruleset.ValidateDraft(draft); len(errs) > 0 {
		HandleError(c, &domain.ValidationError{Errors: errs})
		return
	}

	data, err := pdf.Render(draft, tax.ComputeSummary(draft))
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := draft.InvoiceNumber
	if filename == "" {
		filename = "invoice"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExtractInput is the request body for the text extractor.
type ExtractInput struct {
	Prompt string              `json:"prompt" binding:"required"`
	Draft  domain.InvoiceDraft `json:"draft"`
}

// Extract handles POST /api/v1/drafts/extract. On any failure the caller's
// draft comes back unchanged in meaning: the patch either applies whole or
// not at all.
func (h *DraftHandler) Extract(c *gin.Context) {
	var input ExtractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	patch, err := h.extractor.Extract(c.Request.Context(), input.Prompt)
	if err != nil {
		HandleError(c, err)
		return
	}

	draft, err := extract.Apply(input.Draft, patch)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, draft)
}
