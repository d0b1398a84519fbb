package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
// It handles listing, retrieving and mutating income and expense records.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, amount, type, category, description, date, tags`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var t model.Transaction
	var dateStr string
	var tagsStr sql.NullString

	err := row.Scan(
		&t.ID,
		&t.Amount,
		&t.Type,
		&t.Category,
		&t.Description,
		&dateStr,
		&tagsStr,
	)
	if err != nil {
		return t, err
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil {
		return t, err
	}

	if tagsStr.Valid {
		t.Tags, err = decodeTags(tagsStr.String)
		if err != nil {
			return t, err
		}
	}
	return t, nil
}

// GetTransactions retrieves every transaction, newest first.
// Returns an empty slice (never nil) when the table is empty.
func (r *TransactionRepository) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM "transaction"
		ORDER BY seq DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
// Returns apperrors.ErrTransactionNotFound if no transaction has that ID.
func (r *TransactionRepository) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM "transaction"
		WHERE id = ?
	`

	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction table results: %w", err)
	}
	return t, nil
}

// InsertTransaction stores a new transaction. The ID must already be assigned.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO "transaction" (id, amount, type, category, description, date, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		t.Amount,
		t.Type,
		t.Category,
		t.Description,
		formatDate(t.Date),
		tags,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// UpdateTransaction replaces every field of the transaction with the same ID.
// The record keeps its position in listings.
// Returns apperrors.ErrTransactionNotFound if no transaction has that ID.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE "transaction"
		SET amount = ?, type = ?, category = ?, description = ?, date = ?, tags = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		t.Amount,
		t.Type,
		t.Category,
		t.Description,
		formatDate(t.Date),
		tags,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return requireAffected(result, apperrors.ErrTransactionNotFound)
}

// DeleteTransaction removes the transaction with the given ID.
// Returns apperrors.ErrTransactionNotFound if no transaction has that ID.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM "transaction" WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return requireAffected(result, apperrors.ErrTransactionNotFound)
}

// CountTransactions returns the number of stored transactions.
func (r *TransactionRepository) CountTransactions(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "transaction"`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
