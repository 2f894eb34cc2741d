package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	portsrepo "github.com/Oost-hash/Budget-sub001/internal/core/ports/repositories"
	"github.com/Oost-hash/Budget-sub001/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		AccountType:    string(d.AccountType),
		IsSavings:      d.IsSavings,
		OverdraftLimit: d.OverdraftLimit.Amount(),
		CreditLimit:    d.CreditLimit.Amount(),
		CurrencyCode:   d.OverdraftLimit.Currency(),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.IBAN != nil {
		iban := d.IBAN.String()
		m.IBAN = &iban
	}
	if d.PaymentDueDate != nil {
		day := d.PaymentDueDate.DayOfMonth()
		shift := string(d.PaymentDueDate.ShiftDirection())
		m.DueDayOfMonth = &day
		m.DueShiftDirection = &shift
	}
	return m
}

func toDomainAccount(m models.Account) (domain.Account, error) {
	overdraft, err := domain.NewMoney(m.OverdraftLimit, m.CurrencyCode)
	if err != nil {
		return domain.Account{}, err
	}
	credit, err := domain.NewMoney(m.CreditLimit, m.CurrencyCode)
	if err != nil {
		return domain.Account{}, err
	}

	d := domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		IsSavings:      m.IsSavings,
		OverdraftLimit: overdraft,
		CreditLimit:    credit,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.IBAN != nil {
		iban, err := domain.NewIBAN(*m.IBAN)
		if err != nil {
			return domain.Account{}, err
		}
		d.IBAN = &iban
	}
	if m.DueDayOfMonth != nil && m.DueShiftDirection != nil {
		due, err := domain.NewExpectedPaymentDueDate(*m.DueDayOfMonth, domain.ShiftDirection(*m.DueShiftDirection))
		if err != nil {
			return domain.Account{}, err
		}
		d.PaymentDueDate = &due
	}
	return d, nil
}

const accountColumns = `account_id, name, account_type, iban, is_savings, overdraft_limit, credit_limit, currency_code, due_day_of_month, due_shift_direction, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.AccountType,
		&m.IBAN,
		&m.IsSavings,
		&m.OverdraftLimit,
		&m.CreditLimit,
		&m.CurrencyCode,
		&m.DueDayOfMonth,
		&m.DueShiftDirection,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.AccountType,
		m.IBAN,
		m.IsSavings,
		m.OverdraftLimit,
		m.CreditLimit,
		m.CurrencyCode,
		m.DueDayOfMonth,
		m.DueShiftDirection,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account %s violates a uniqueness constraint", apperrors.ErrConflict, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	account, err := toDomainAccount(m)
	if err != nil {
		return nil, fmt.Errorf("failed to map account %s: %w", accountID, err)
	}
	return &account, nil
}

// ListAccounts retrieves accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name LIMIT $1 OFFSET $2;`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		account, err := toDomainAccount(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map account %s: %w", m.AccountID, err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// ExistsByName reports whether another account carries the name.
func (r *PgxAccountRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE name = $1 AND account_id <> $2);`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account name: %w", err)
	}
	return exists, nil
}

// ExistsByIBAN reports whether another account carries the IBAN.
func (r *PgxAccountRepository) ExistsByIBAN(ctx context.Context, iban string, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE iban = $1 AND account_id <> $2);`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, iban, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account IBAN: %w", err)
	}
	return exists, nil
}

// UpdateAccount updates an existing account's details.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, account_type = $3, iban = $4, is_savings = $5,
		    overdraft_limit = $6, credit_limit = $7, currency_code = $8,
		    due_day_of_month = $9, due_shift_direction = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE account_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.AccountType,
		m.IBAN,
		m.IsSavings,
		m.OverdraftLimit,
		m.CreditLimit,
		m.CurrencyCode,
		m.DueDayOfMonth,
		m.DueShiftDirection,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account %s violates a uniqueness constraint", apperrors.ErrConflict, m.AccountID)
		}
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: account %s is still referenced", apperrors.ErrConflict, accountID)
		}
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
