package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/aggregate"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// TransactionService handles income and expense business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	invalidator     Invalidator
	now             func() time.Time
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
// The invalidator may be nil.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	invalidator Invalidator,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		invalidator:     invalidator,
		now:             time.Now,
	}
}

// WithClock replaces the time source used to reject future-dated transactions.
func (s *TransactionService) WithClock(now func() time.Time) *TransactionService {
	s.now = now
	return s
}

// GetTransactions returns every transaction, newest first.
func (s *TransactionService) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactions(ctx)
}

// GetTransaction retrieves a single transaction by its ID.
// Returns apperrors.ErrTransactionNotFound if it does not exist.
func (s *TransactionService) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(ctx, id)
}

// FilterTransactions returns the transactions matching every active filter, newest first.
func (s *TransactionService) FilterTransactions(ctx context.Context, filters model.TransactionFilters) ([]model.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.ApplyFilters(transactions, filters), nil
}

// GetCategories returns the distinct categories in use, in the order they first appear.
func (s *TransactionService) GetCategories(ctx context.Context) ([]string, error) {
	transactions, err := s.transactionRepo.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.Categories(transactions), nil
}

// CreateTransaction stores a new transaction with a generated ID.
// The amount sign is normalised to the type. Future dates are rejected with apperrors.ErrFutureDate.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	transactionDate, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := checkNotFuture(transactionDate, s.now()); err != nil {
		return nil, err
	}

	txType := model.TransactionType(req.Type)
	transaction := &model.Transaction{
		ID:          uuid.New().String(),
		Amount:      normaliseAmount(req.Amount, txType),
		Type:        txType,
		Category:    req.Category,
		Description: req.Description,
		Date:        transactionDate,
		Tags:        slices.Clone(req.Tags),
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.changed()
	return transaction, nil
}

// UpdateTransaction applies the provided fields to an existing transaction.
// The ID never changes and the amount sign is renormalised against the resulting type.
// Returns apperrors.ErrTransactionNotFound if it does not exist.
//
//nolint:gocyclo // One branch per optional field
func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		transactionDate, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		if err := checkNotFuture(transactionDate, s.now()); err != nil {
			return nil, err
		}
		transaction.Date = transactionDate
	}
	if req.Type != nil {
		transaction.Type = model.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Tags != nil {
		transaction.Tags = slices.Clone(*req.Tags)
	}
	transaction.Amount = normaliseAmount(transaction.Amount, transaction.Type)

	if err := s.transactionRepo.UpdateTransaction(ctx, &transaction); err != nil {
		return nil, err
	}

	s.changed()
	return &transaction, nil
}

// DeleteTransaction removes a transaction.
// Returns apperrors.ErrTransactionNotFound if it does not exist.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.changed()
	return nil
}

func (s *TransactionService) changed() {
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
}
