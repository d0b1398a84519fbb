package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/aggregate"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
)

// InvestmentService handles holding lot business logic operations.
type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
	invalidator    Invalidator
}

// NewInvestmentService creates a new InvestmentService. The invalidator may be nil.
func NewInvestmentService(
	investmentRepo *repository.InvestmentRepository,
	invalidator Invalidator,
) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		invalidator:    invalidator,
	}
}

// GetInvestments returns every lot, newest first.
func (s *InvestmentService) GetInvestments(ctx context.Context) ([]model.Investment, error) {
	return s.investmentRepo.GetInvestments(ctx)
}

// GetInvestment retrieves a single lot by its ID.
func (s *InvestmentService) GetInvestment(ctx context.Context, id string) (model.Investment, error) {
	return s.investmentRepo.GetInvestment(ctx, id)
}

// GetOverview returns the valuation of every lot plus portfolio totals.
func (s *InvestmentService) GetOverview(ctx context.Context) (model.InvestmentOverview, error) {
	investments, err := s.investmentRepo.GetInvestments(ctx)
	if err != nil {
		return model.InvestmentOverview{}, err
	}
	return aggregate.Overview(investments), nil
}

// CreateInvestment stores a new lot with a generated ID.
func (s *InvestmentService) CreateInvestment(ctx context.Context, req request.CreateInvestmentRequest) (*model.Investment, error) {
	purchaseDate, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	investment := &model.Investment{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Type:          model.InvestmentType(req.Type),
		Amount:        req.Amount,
		PurchasePrice: req.PurchasePrice,
		CurrentPrice:  req.CurrentPrice,
		Quantity:      req.Quantity,
		Date:          purchaseDate,
	}

	if err := s.investmentRepo.InsertInvestment(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	s.changed()
	return investment, nil
}

// UpdateInvestment applies the provided fields to an existing lot.
// Returns apperrors.ErrInvestmentNotFound if it does not exist.
//
//nolint:gocyclo // One branch per optional field
func (s *InvestmentService) UpdateInvestment(ctx context.Context, id string, req request.UpdateInvestmentRequest) (*model.Investment, error) {
	investment, err := s.investmentRepo.GetInvestment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		investment.Name = *req.Name
	}
	if req.Type != nil {
		investment.Type = model.InvestmentType(*req.Type)
	}
	if req.Amount != nil {
		investment.Amount = *req.Amount
	}
	if req.PurchasePrice != nil {
		investment.PurchasePrice = *req.PurchasePrice
	}
	if req.CurrentPrice != nil {
		investment.CurrentPrice = *req.CurrentPrice
	}
	if req.Quantity != nil {
		investment.Quantity = *req.Quantity
	}
	if req.Date != nil {
		purchaseDate, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		investment.Date = purchaseDate
	}

	if err := s.investmentRepo.UpdateInvestment(ctx, &investment); err != nil {
		return nil, err
	}

	s.changed()
	return &investment, nil
}

// DeleteInvestment removes a lot.
// Returns apperrors.ErrInvestmentNotFound if it does not exist.
func (s *InvestmentService) DeleteInvestment(ctx context.Context, id string) error {
	if err := s.investmentRepo.DeleteInvestment(ctx, id); err != nil {
		return err
	}
	s.changed()
	return nil
}

func (s *InvestmentService) changed() {
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
}
