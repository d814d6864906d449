package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/fintrack/fintrack_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const insertTransactionSQL = `
	INSERT INTO transactions (transaction_id, user_id, category_id, amount, date, is_income, is_reserved, reserve_months, reserve_parent_id, comment, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

const selectTransactionSQL = `
	SELECT t.transaction_id, t.user_id, t.category_id, c.name AS category_name, t.amount, t.date,
	       t.is_income, t.is_reserved, t.reserve_months, t.reserve_parent_id, t.comment, t.created_at
	FROM transactions t
	JOIN categories c ON c.category_id = t.category_id
`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.CategoryID,
		&m.CategoryName,
		&m.Amount,
		&m.Date,
		&m.IsIncome,
		&m.IsReserved,
		&m.ReserveMonths,
		&m.ReserveParentID,
		&m.Comment,
		&m.CreatedAt,
	)
	return m, err
}

func execInsertTransaction(ctx context.Context, tx pgx.Tx, m models.Transaction) error {
	_, err := tx.Exec(ctx, insertTransactionSQL,
		m.TransactionID,
		m.UserID,
		m.CategoryID,
		m.Amount,
		m.Date,
		m.IsIncome,
		m.IsReserved,
		m.ReserveMonths,
		m.ReserveParentID,
		m.Comment,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: referenced category does not exist", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// SaveTransactionWithChildren persists the root and its reservation children
// atomically; any failure rolls the whole batch back.
func (r *PgxTransactionRepository) SaveTransactionWithChildren(ctx context.Context, txn domain.Transaction, children []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if err := execInsertTransaction(ctx, tx, mapping.ToModelTransaction(txn)); err != nil {
		return err
	}
	for _, child := range children {
		if err := execInsertTransaction(ctx, tx, mapping.ToModelTransaction(child)); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := selectTransactionSQL + ` WHERE t.user_id = $1 AND t.transaction_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, userID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// FindTransactionsInRange returns the user's transactions, newest date first.
// A nil range means all time; the range is half-open [Start, End).
func (r *PgxTransactionRepository) FindTransactionsInRange(ctx context.Context, userID string, rng *domain.PeriodRange) ([]domain.Transaction, error) {
	query := selectTransactionSQL + ` WHERE t.user_id = $1`
	args := []interface{}{userID}
	if rng != nil {
		query += ` AND t.date >= $2 AND t.date < $3`
		args = append(args, rng.Start, rng.End)
	}
	query += ` ORDER BY t.date DESC, t.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) FindChildren(ctx context.Context, rootID string) ([]domain.Transaction, error) {
	query := selectTransactionSQL + ` WHERE t.reserve_parent_id = $1 ORDER BY t.date ASC;`

	rows, err := r.Pool.Query(ctx, query, rootID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservation children: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan child row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating child rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) SaveChildren(ctx context.Context, children []domain.Transaction) error {
	if len(children) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, child := range children {
		if err := execInsertTransaction(ctx, tx, mapping.ToModelTransaction(child)); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes one owned row; children go with their root via the
// ON DELETE CASCADE on reserve_parent_id.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1 AND transaction_id = $2;`, userID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransactionsInRange(ctx context.Context, userID string, rng *domain.PeriodRange) (int64, error) {
	query := `DELETE FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}
	if rng != nil {
		query += ` AND date >= $2 AND date < $3`
		args = append(args, rng.Start, rng.End)
	}

	tag, err := r.Pool.Exec(ctx, query+`;`, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxTransactionRepository) CountForUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE user_id = $1;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func (r *PgxTransactionRepository) SumExpensesByCategoryInRange(ctx context.Context, userID, categoryID string, rng domain.PeriodRange) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND is_income = FALSE AND date >= $3 AND date < $4;
	`
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, userID, categoryID, rng.Start, rng.End).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for category %s: %w", categoryID, err)
	}
	return sum, nil
}
