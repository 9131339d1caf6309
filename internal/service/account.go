package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus" // Logging library

	"finance_tracker/internal/cache"
	"finance_tracker/internal/domain"
	"finance_tracker/internal/schema"
	"finance_tracker/internal/store"
)

// ErrUnauthenticated is returned by read operations when no session is present
var ErrUnauthenticated = errors.New("authentication failed")

// ViewInvalidator receives the logical view keys the service marks stale
// after a mutation. The presentation layer decides how to recompute them.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// AccountService orchestrates validation, ownership checks, uniqueness,
// soft-delete filtering and persistence for account operations. It is the
// failure boundary: every failure becomes a State, never a panic.
type AccountService struct {
	store  store.AccountStore
	views  ViewInvalidator
	logger *logrus.Logger
}

func NewAccountService(accounts store.AccountStore, views ViewInvalidator, logger *logrus.Logger) *AccountService {
	return &AccountService{store: accounts, views: views, logger: logger}
}

// Create validates the payload and persists a new account owned by userID.
// The owner is always bound from the session, never from client input.
func (s *AccountService) Create(ctx context.Context, userID uint, in schema.CreateInput) State {
	data, ferr := schema.ValidateCreate(in)
	if ferr != nil {
		return failure("Data validation failed.", ferr)
	}
	if userID == 0 {
		return unauthenticated()
	}
	// Title must be unique per owner, case-insensitive, among non-deleted accounts
	existing, err := s.store.FindByTitle(ctx, userID, data.Title)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Account uniqueness check failed")
		return unexpected()
	}
	if existing != nil {
		return failure("Account with this Title already exists.", schema.FieldErrors{
			"title": {"Title already exists."},
		})
	}
	account := &domain.Account{
		UserID:   userID,
		Title:    data.Title,
		Category: data.Category,
		Balance:  data.Balance,
		Bill:     data.Bill,
		Due:      data.Due,
	}
	if err := s.store.Create(ctx, account); err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"title":   data.Title,
			"error":   err.Error(),
		}).Error("Account creation failed")
		return unexpected()
	}
	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": account.ID,
		"category":   account.Category,
	}).Info("Account created")
	s.invalidate(ctx, cache.AccountListKey(userID))
	return success("Account added Successfully.", account)
}

// List returns all non-deleted accounts owned by userID, in store order
func (s *AccountService) List(ctx context.Context, userID uint) ([]domain.Account, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	accounts, err := s.store.FindAll(ctx, userID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Account list failed")
		return nil, err
	}
	return accounts, nil
}

// Detail returns the single non-deleted account matching id and owned by
// userID, or (nil, nil) when no such account exists.
func (s *AccountService) Detail(ctx context.Context, userID, id uint) (*domain.Account, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	account, err := s.store.FindByID(ctx, userID, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": id,
			"error":      err.Error(),
		}).Error("Account detail failed")
		return nil, err
	}
	return account, nil
}

// Update applies the new title, and bill/due when the stored account is a
// CREDIT account. Category and balance are never modified.
func (s *AccountService) Update(ctx context.Context, userID uint, in schema.UpdateInput) State {
	data, ferr := schema.ValidateUpdate(in)
	if ferr != nil {
		return failure("Data validation failed.", ferr)
	}
	if userID == 0 {
		return unauthenticated()
	}
	account, err := s.store.FindByID(ctx, userID, data.ID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": data.ID,
			"error":      err.Error(),
		}).Error("Account lookup failed")
		return unexpected()
	}
	if account == nil {
		return failure("Account does not exists.", nil)
	}
	account.Title = data.Title
	// The stored category decides whether bill/due apply; the submitted
	// category never converts an account.
	if account.Category == domain.CategoryCredit {
		account.Bill = data.Bill
		account.Due = data.Due
	}
	if err := s.store.Save(ctx, account); err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Account update failed")
		return unexpected()
	}
	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": account.ID,
	}).Info("Account updated")
	s.invalidate(ctx, cache.AccountDetailKey(userID, account.ID), cache.AccountListKey(userID))
	return success("Account updated Successfully.", account)
}

// Delete flips the soft-delete flag; the record is never physically removed.
// A second delete of the same id reports the account as missing because
// deleted rows are filtered out of every lookup.
func (s *AccountService) Delete(ctx context.Context, userID uint, in schema.DeleteInput) State {
	data, ferr := schema.ValidateDelete(in)
	if ferr != nil {
		return failure("Data validation failed.", ferr)
	}
	if userID == 0 {
		return unauthenticated()
	}
	account, err := s.store.FindByID(ctx, userID, data.ID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": data.ID,
			"error":      err.Error(),
		}).Error("Account lookup failed")
		return unexpected()
	}
	if account == nil {
		return failure("Account does not exists.", nil)
	}
	account.Deleted = true
	if err := s.store.Save(ctx, account); err != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Account deletion failed")
		return unexpected()
	}
	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": account.ID,
	}).Info("Account deleted")
	s.invalidate(ctx, cache.AccountListKey(userID))
	return success("Account deleted Successfully.", nil)
}

// invalidate signals stale view keys; a failed signal only loses cache
// freshness, so it is logged and not surfaced.
func (s *AccountService) invalidate(ctx context.Context, keys ...string) {
	if s.views == nil {
		return
	}
	if err := s.views.Invalidate(ctx, keys...); err != nil {
		s.logger.WithFields(logrus.Fields{
			"keys":  keys,
			"error": err.Error(),
		}).Warn("View invalidation failed")
	}
}
