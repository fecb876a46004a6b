package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"gstgenius/internal/config"
	"gstgenius/internal/domain"
	"gstgenius/internal/export"
	"gstgenius/internal/port"
	"gstgenius/internal/ruleset"
	"gstgenius/internal/share"
	"gstgenius/internal/tax"
)

// InvoiceService owns the lifecycle of saved invoices.
type InvoiceService interface {
	Save(ctx context.Context, userID uuid.UUID, draft domain.InvoiceDraft) (*domain.Invoice, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Invoice, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	EmailShareLink(ctx context.Context, userID, id uuid.UUID) error
	ExportRegister(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

type invoiceService struct {
	repo     port.InvoiceRepository
	email    port.EmailSender
	shareCfg config.ShareConfig

	// One mutex per draft identity so concurrent saves of the same draft
	// serialize instead of racing. Entries are never removed; the set of
	// drafts a single process touches is small.
	saveLocks sync.Map
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	repo port.InvoiceRepository,
	email port.EmailSender,
	shareCfg config.ShareConfig,
) InvoiceService {
	return &invoiceService{
		repo:     repo,
		email:    email,
		shareCfg: shareCfg,
	}
}

// Save validates the draft, recomputes its summary and persists it. A draft
// with the "new" sentinel ID is inserted under a fresh UUID; anything else
// must be an existing invoice owned by the user. The stored summary is a
// cache: it is always recomputed here, never taken from the caller.
func (s *invoiceService) Save(ctx context.Context, userID uuid.UUID, draft domain.InvoiceDraft) (*domain.Invoice, error) {
	if errs := ruleset.ValidateDraft(draft); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	summary := tax.ComputeSummary(draft)
	draft.Summary = &summary

	var id uuid.UUID
	creating := draft.IsNew()
	if creating {
		id = uuid.New()
	} else {
		parsed, err := uuid.Parse(draft.ID)
		if err != nil {
			return nil, domain.ErrNotFound
		}
		id = parsed
	}
	draft.ID = id.String()

	unlock := s.lockDraft(userID, id)
	defer unlock()

	doc, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("invoice.Save marshal: %w", err)
	}

	inv := &domain.Invoice{
		ID:            id,
		UserID:        userID,
		InvoiceNumber: draft.InvoiceNumber,
		InvoiceDate:   draft.InvoiceDate,
		DocType:       draft.Type,
		BuyerName:     draft.Buyer.Name,
		GrandTotal:    summary.GrandTotal,
		Document:      doc,
	}

	if creating {
		if err := s.repo.Create(ctx, inv); err != nil {
			return nil, fmt.Errorf("invoice.Save: %w", err)
		}
	} else {
		if err := s.repo.Update(ctx, inv); err != nil {
			return nil, fmt.Errorf("invoice.Save: %w", err)
		}
	}
	return inv, nil
}

func (s *invoiceService) List(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error) {
	invoices, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("invoice.List: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// EmailShareLink mails the buyer a link that reopens the invoice via the
// share token.
func (s *invoiceService) EmailShareLink(ctx context.Context, userID, id uuid.UUID) error {
	inv, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	draft, err := inv.Draft()
	if err != nil {
		return fmt.Errorf("invoice.EmailShareLink: %w", err)
	}
	if draft.Buyer.Email == "" {
		return domain.ErrBuyerEmailMissing
	}

	token, err := share.Encode(draft)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s#data=%s", s.shareCfg.BaseURL, url.QueryEscape(token))

	label := "Invoice"
	if draft.Type.IsNote() {
		label = "Note"
	}
	subject := fmt.Sprintf("%s %s from %s", label, draft.InvoiceNumber, draft.Seller.Name)
	textBody := fmt.Sprintf(
		"%s has sent you %s %s.\n\nView it here: %s\n",
		draft.Seller.Name, draft.Type, draft.InvoiceNumber, link,
	)
	htmlBody := fmt.Sprintf(
		`<p>%s has sent you %s <strong>%s</strong>.</p><p><a href="%s">View the document</a></p>`,
		draft.Seller.Name, draft.Type, draft.InvoiceNumber, link,
	)

	if err := s.email.Send(ctx, draft.Buyer.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("invoice.EmailShareLink send: %w", err)
	}
	return nil
}

// ExportRegister renders all of the user's invoices as an XLSX register.
func (s *invoiceService) ExportRegister(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	invoices, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("invoice.ExportRegister: %w", err)
	}
	return export.WriteRegister(invoices)
}

func (s *invoiceService) lockDraft(userID, id uuid.UUID) func() {
	key := userID.String() + "/" + id.String()
	v, _ := s.saveLocks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
