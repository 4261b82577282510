package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/dafibh/karja/karja-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const debtColumns = `id, user_id, name, type, amount, interest_rate, minimum_payment, remaining_term, created_at, updated_at`

// DebtRepository implements domain.DebtRepository using PostgreSQL
type DebtRepository struct {
	pool *pgxpool.Pool
}

// NewDebtRepository creates a new DebtRepository
func NewDebtRepository(pool *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{pool: pool}
}

// Create inserts a new debt. A zero ID is replaced with a fresh UUID.
func (r *DebtRepository) Create(ctx context.Context, debt *domain.Debt) (*domain.Debt, error) {
	if debt.ID == uuid.Nil {
		debt.ID = uuid.New()
	}

	params, err := toDebtParams(debt)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO debts (id, user_id, name, type, amount, interest_rate, minimum_payment, remaining_term)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+debtColumns,
		params.id, debt.UserID, debt.Name, debt.Type,
		params.amount, params.interestRate, params.minimumPayment, params.remainingTerm,
	)
	return scanDebt(row)
}

// GetByID retrieves a debt owned by userID
func (r *DebtRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Debt, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+debtColumns+`
		FROM debts
		WHERE id = $1 AND user_id = $2
	`, pgUUID(id), userID)

	debt, err := scanDebt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDebtNotFound
		}
		return nil, err
	}
	return debt, nil
}

// GetAllByUser retrieves all debts owned by userID, newest first
func (r *DebtRepository) GetAllByUser(ctx context.Context, userID string) ([]*domain.Debt, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+debtColumns+`
		FROM debts
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := make([]*domain.Debt, 0)
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return debts, nil
}

// Update overwrites the editable fields of a debt
func (r *DebtRepository) Update(ctx context.Context, debt *domain.Debt) (*domain.Debt, error) {
	params, err := toDebtParams(debt)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE debts
		SET name = $3, type = $4, amount = $5, interest_rate = $6, minimum_payment = $7,
			remaining_term = $8, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+debtColumns,
		params.id, debt.UserID, debt.Name, debt.Type,
		params.amount, params.interestRate, params.minimumPayment, params.remainingTerm,
	)

	updated, err := scanDebt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDebtNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a debt owned by userID
func (r *DebtRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM debts WHERE id = $1 AND user_id = $2`, pgUUID(id), userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}
	return nil
}

type debtParams struct {
	id             pgtype.UUID
	amount         pgtype.Numeric
	interestRate   pgtype.Numeric
	minimumPayment pgtype.Numeric
	remainingTerm  pgtype.Int4
}

func toDebtParams(debt *domain.Debt) (debtParams, error) {
	amount, err := decimalToPgNumeric(debt.Amount)
	if err != nil {
		return debtParams{}, err
	}
	interestRate, err := decimalToPgNumeric(debt.InterestRate)
	if err != nil {
		return debtParams{}, err
	}
	minimumPayment, err := decimalToPgNumeric(debt.MinimumPayment)
	if err != nil {
		return debtParams{}, err
	}

	remainingTerm := pgtype.Int4{}
	if debt.RemainingTerm != nil {
		remainingTerm = pgtype.Int4{Int32: *debt.RemainingTerm, Valid: true}
	}

	return debtParams{
		id:             pgUUID(debt.ID),
		amount:         amount,
		interestRate:   interestRate,
		minimumPayment: minimumPayment,
		remainingTerm:  remainingTerm,
	}, nil
}

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var (
		id                                   pgtype.UUID
		amount, interestRate, minimumPayment pgtype.Numeric
		remainingTerm                        pgtype.Int4
		createdAt, updatedAt                 time.Time
		debt                                 domain.Debt
	)

	err := row.Scan(
		&id, &debt.UserID, &debt.Name, &debt.Type,
		&amount, &interestRate, &minimumPayment, &remainingTerm,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	debt.ID = uuid.UUID(id.Bytes)
	debt.Amount = pgNumericToDecimal(amount)
	debt.InterestRate = pgNumericToDecimal(interestRate)
	debt.MinimumPayment = pgNumericToDecimal(minimumPayment)
	if remainingTerm.Valid {
		term := remainingTerm.Int32
		debt.RemainingTerm = &term
	}
	debt.CreatedAt = createdAt
	debt.UpdatedAt = updatedAt
	return &debt, nil
}
