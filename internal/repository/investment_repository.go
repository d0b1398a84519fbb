package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// InvestmentRepository provides data access methods for the investment table.
type InvestmentRepository struct {
	db *sql.DB
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

const investmentColumns = `id, name, type, amount, purchase_price, current_price, quantity, date`

func scanInvestment(row rowScanner) (model.Investment, error) {
	var inv model.Investment
	var dateStr string

	err := row.Scan(
		&inv.ID,
		&inv.Name,
		&inv.Type,
		&inv.Amount,
		&inv.PurchasePrice,
		&inv.CurrentPrice,
		&inv.Quantity,
		&dateStr,
	)
	if err != nil {
		return inv, err
	}

	inv.Date, err = ParseTime(dateStr)
	if err != nil {
		return inv, err
	}
	return inv, nil
}

// GetInvestments retrieves every investment lot, newest first.
func (r *InvestmentRepository) GetInvestments(ctx context.Context) ([]model.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investment
		ORDER BY seq DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment table results: %w", err)
		}
		investments = append(investments, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	return investments, nil
}

// GetInvestment retrieves a single lot by its ID.
// Returns apperrors.ErrInvestmentNotFound if no lot has that ID.
func (r *InvestmentRepository) GetInvestment(ctx context.Context, id string) (model.Investment, error) {
	query := `
		SELECT ` + investmentColumns + `
		FROM investment
		WHERE id = ?
	`

	inv, err := scanInvestment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to scan investment table results: %w", err)
	}
	return inv, nil
}

// InsertInvestment stores a new lot. The ID must already be assigned.
func (r *InvestmentRepository) InsertInvestment(ctx context.Context, inv *model.Investment) error {
	query := `
		INSERT INTO investment (id, name, type, amount, purchase_price, current_price, quantity, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID,
		inv.Name,
		inv.Type,
		inv.Amount,
		inv.PurchasePrice,
		inv.CurrentPrice,
		inv.Quantity,
		formatDate(inv.Date),
	)
	if err != nil {
		return fmt.Errorf("failed to insert investment: %w", err)
	}
	return nil
}

// UpdateInvestment replaces every field of the lot with the same ID.
// Returns apperrors.ErrInvestmentNotFound if no lot has that ID.
func (r *InvestmentRepository) UpdateInvestment(ctx context.Context, inv *model.Investment) error {
	query := `
		UPDATE investment
		SET name = ?, type = ?, amount = ?, purchase_price = ?, current_price = ?, quantity = ?, date = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		inv.Name,
		inv.Type,
		inv.Amount,
		inv.PurchasePrice,
		inv.CurrentPrice,
		inv.Quantity,
		formatDate(inv.Date),
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
	}

	return requireAffected(result, apperrors.ErrInvestmentNotFound)
}

// DeleteInvestment removes the lot with the given ID.
// Returns apperrors.ErrInvestmentNotFound if no lot has that ID.
func (r *InvestmentRepository) DeleteInvestment(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM investment WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	return requireAffected(result, apperrors.ErrInvestmentNotFound)
}

// CountInvestments returns the number of stored lots.
func (r *InvestmentRepository) CountInvestments(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM investment`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count investments: %w", err)
	}
	return count, nil
}
