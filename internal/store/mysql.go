package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm" // GORM ORM library

	"finance_tracker/internal/domain"
)

// GormAccountStore is the MySQL-backed AccountStore
type GormAccountStore struct {
	db *gorm.DB
}

func NewGormAccountStore(db *gorm.DB) *GormAccountStore {
	return &GormAccountStore{db: db}
}

func (s *GormAccountStore) FindByTitle(ctx context.Context, userID uint, title string) (*domain.Account, error) {
	var account domain.Account
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(title) = LOWER(?) AND deleted = ?", userID, title, false).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by title: %w", err)
	}
	return &account, nil
}

func (s *GormAccountStore) FindByID(ctx context.Context, userID, id uint) (*domain.Account, error) {
	var account domain.Account
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND deleted = ?", id, userID, false).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return &account, nil
}

func (s *GormAccountStore) FindAll(ctx context.Context, userID uint) ([]domain.Account, error) {
	var accounts []domain.Account
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND deleted = ?", userID, false).
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	return accounts, nil
}

func (s *GormAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (s *GormAccountStore) Save(ctx context.Context, account *domain.Account) error {
	if err := s.db.WithContext(ctx).Save(account).Error; err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}
