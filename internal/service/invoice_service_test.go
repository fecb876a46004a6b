package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstgenius/internal/config"
	"gstgenius/internal/domain"
	"gstgenius/internal/service"
)

type fakeInvoiceRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{items: map[uuid.UUID]domain.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[inv.ID]
	if !ok || existing.UserID != inv.UserID {
		return domain.ErrNotFound
	}
	r.items[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.items[id]
	if !ok || inv.UserID != userID {
		return nil, domain.ErrNotFound
	}
	out := inv
	return &out, nil
}

func (r *fakeInvoiceRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Invoice
	for _, inv := range r.items {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.items[id]
	if !ok || inv.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type recordingSender struct {
	to, subject, text string
	sends             int
}

func (s *recordingSender) Send(_ context.Context, to, subject, _, textBody string) error {
	s.to, s.subject, s.text = to, subject, textBody
	s.sends++
	return nil
}

func newService(repo *fakeInvoiceRepo, sender *recordingSender) service.InvoiceService {
	return service.NewInvoiceService(repo, sender, config.ShareConfig{BaseURL: "http://localhost:3000"})
}

func savableDraft() domain.InvoiceDraft {
	d := domain.NewDraft()
	d.Seller.GSTIN = "27ABCDE1234F1Z5"
	d.Buyer.Name = "Bharat Retail"
	return d
}

func TestSave_CreatesNewInvoice(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := newService(repo, &recordingSender{})
	userID := uuid.New()

	inv, err := svc.Save(context.Background(), userID, savableDraft())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.Equal(t, userID, inv.UserID)
	assert.Equal(t, "Bharat Retail", inv.BuyerName)
	assert.Equal(t, 1180.0, inv.GrandTotal)

	stored, err := repo.GetByID(context.Background(), userID, inv.ID)
	require.NoError(t, err)
	draft, err := stored.Draft()
	require.NoError(t, err)
	assert.Equal(t, inv.ID.String(), draft.ID)
}

func TestSave_RecomputesSummary(t *testing.T) {
	svc := newService(newFakeInvoiceRepo(), &recordingSender{})

	d := savableDraft()
	d.Summary = &domain.TaxSummary{GrandTotal: 999999}

	inv, err := svc.Save(context.Background(), uuid.New(), d)
	require.NoError(t, err)
	assert.Equal(t, 1180.0, inv.GrandTotal, "stale caller summary must be ignored")

	draft, err := inv.Draft()
	require.NoError(t, err)
	require.NotNil(t, draft.Summary)
	assert.Equal(t, 1180.0, draft.Summary.GrandTotal)
}

func TestSave_RejectsInvalidDraft(t *testing.T) {
	svc := newService(newFakeInvoiceRepo(), &recordingSender{})

	d := savableDraft()
	d.Seller.Name = ""
	d.Items = nil

	_, err := svc.Save(context.Background(), uuid.New(), d)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDraft)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, "Seller Name is required")
	assert.Contains(t, verr.Errors, "At least one item is required")
}

func TestSave_UpdatesExistingInvoice(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := newService(repo, &recordingSender{})
	userID := uuid.New()

	inv, err := svc.Save(context.Background(), userID, savableDraft())
	require.NoError(t, err)

	draft, err := inv.Draft()
	require.NoError(t, err)
	draft.Buyer.Name = "Renamed Buyer"

	updated, err := svc.Save(context.Background(), userID, draft)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, updated.ID)
	assert.Equal(t, "Renamed Buyer", updated.BuyerName)

	all, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSave_UnknownIDNotFound(t *testing.T) {
	svc := newService(newFakeInvoiceRepo(), &recordingSender{})

	d := savableDraft()
	d.ID = uuid.New().String()

	_, err := svc.Save(context.Background(), uuid.New(), d)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmailShareLink(t *testing.T) {
	repo := newFakeInvoiceRepo()
	sender := &recordingSender{}
	svc := newService(repo, sender)
	userID := uuid.New()

	t.Run("missing buyer email", func(t *testing.T) {
		inv, err := svc.Save(context.Background(), userID, savableDraft())
		require.NoError(t, err)

		err = svc.EmailShareLink(context.Background(), userID, inv.ID)
		assert.ErrorIs(t, err, domain.ErrBuyerEmailMissing)
		assert.Zero(t, sender.sends)
	})

	t.Run("sends share link", func(t *testing.T) {
		d := savableDraft()
		d.Buyer.Email = "accounts@bharatretail.in"
		inv, err := svc.Save(context.Background(), userID, d)
		require.NoError(t, err)

		require.NoError(t, svc.EmailShareLink(context.Background(), userID, inv.ID))
		assert.Equal(t, 1, sender.sends)
		assert.Equal(t, "accounts@bharatretail.in", sender.to)
		assert.Contains(t, sender.subject, d.InvoiceNumber)
		assert.Contains(t, sender.text, "http://localhost:3000#data=")
	})
}

func TestExportRegister(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := newService(repo, &recordingSender{})
	userID := uuid.New()

	_, err := svc.Save(context.Background(), userID, savableDraft())
	require.NoError(t, err)

	data, err := svc.ExportRegister(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PK"), "xlsx files are zip archives")
}
