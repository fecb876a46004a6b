// Package port declares the interfaces the service layer depends on. Concrete
// implementations live under repository/, storage/, email/ and extract/.
package port

import (
	"context"

	"github.com/google/uuid"

	"gstgenius/internal/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// InvoiceRepository persists invoice snapshots, always scoped to the owning
// user.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	Update(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Invoice, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
