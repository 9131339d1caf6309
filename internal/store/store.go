package store

import (
	"context"

	"finance_tracker/internal/domain"
)

// AccountStore is the durable record store for accounts. Every read is scoped
// to one owner and excludes soft-deleted rows; a missing record is (nil, nil),
// not an error.
type AccountStore interface {
	// FindByTitle returns the owner's non-deleted account with a
	// case-insensitive matching title.
	FindByTitle(ctx context.Context, userID uint, title string) (*domain.Account, error)
	// FindByID returns the owner's non-deleted account with the given id.
	FindByID(ctx context.Context, userID, id uint) (*domain.Account, error)
	// FindAll returns all of the owner's non-deleted accounts in store order.
	FindAll(ctx context.Context, userID uint) ([]domain.Account, error)
	// Create persists a new account and fills in its generated identifier.
	Create(ctx context.Context, account *domain.Account) error
	// Save persists in-memory mutations to an existing account.
	Save(ctx context.Context, account *domain.Account) error
}
