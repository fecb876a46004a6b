package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstgenius/internal/config"
	"gstgenius/internal/domain"
	"gstgenius/internal/port"
	"gstgenius/internal/service"
)

var allowedLogoTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// InvoiceHandler serves the authenticated invoice endpoints.
type InvoiceHandler struct {
	invoices service.InvoiceService
	storage  port.ObjectStorage
	s3Cfg    config.S3Config
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoices service.InvoiceService, storage port.ObjectStorage, s3Cfg config.S3Config) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, storage: storage, s3Cfg: s3Cfg}
}

// Save handles POST /api/v1/invoices.
func (h *InvoiceHandler) Save(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var draft domain.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	creating := draft.IsNew()
	inv, err := h.invoices.Save(c.Request.Context(), userID, draft)
	if err != nil {
		HandleError(c, err)
		return
	}
	if creating {
		RespondCreated(c, inv)
		return
	}
	RespondOK(c, inv)
}

// List handles GET /api/v1/invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoices, err := h.invoices.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoices)
}

// Get handles GET /api/v1/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	inv, err := h.invoices.Get(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// Delete handles DELETE /api/v1/invoices/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	if err := h.invoices.Delete(c.Request.Context(), userID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// ExportRegister handles GET /api/v1/invoices/export.
func (h *InvoiceHandler) ExportRegister(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	data, err := h.invoices.ExportRegister(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoice-register.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// EmailShareLink handles POST /api/v1/invoices/:id/email.
func (h *InvoiceHandler) EmailShareLink(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	if err := h.invoices.EmailShareLink(c.Request.Context(), userID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"sent": true})
}

// UploadLogo handles POST /api/v1/logo. The stored object key is returned
// along with a presigned URL the client can put on the draft's party.
func (h *InvoiceHandler) UploadLogo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "logo file is required")
		return
	}
	if file.Size > h.s3Cfg.MaxFileSizeMB*1024*1024 {
		HandleError(c, domain.ErrLogoTooLarge)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, allowed := allowedLogoTypes[ext]
	if !allowed {
		HandleError(c, domain.ErrUnsupportedLogo)
		return
	}

	src, err := file.Open()
	if err != nil {
		HandleError(c, domain.ErrUploadFailed)
		return
	}
	defer src.Close()

	key := fmt.Sprintf("logos/%s/%s%s", userID, uuid.New(), ext)
	if err := h.storage.Upload(c.Request.Context(), key, contentType, src); err != nil {
		HandleError(c, domain.ErrUploadFailed)
		return
	}

	url, err := h.storage.PresignGet(c.Request.Context(), key,
		time.Duration(h.s3Cfg.PresignExpiry)*time.Second)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"key": key, "url": url})
}
