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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		TransactionDate: d.Date,
		Description:     d.Description,
		TransactionType: string(d.Type),
		PayeeID:         d.PayeeID,
		CategoryID:      d.CategoryID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainTransaction(m models.Transaction, entries []models.Entry) (domain.Transaction, error) {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          m.TransactionDate,
		Description:   m.Description,
		Type:          domain.TransactionType(m.TransactionType),
		PayeeID:       m.PayeeID,
		CategoryID:    m.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	for _, e := range entries {
		amount, err := domain.NewMoney(e.Amount, e.CurrencyCode)
		if err != nil {
			return domain.Transaction{}, err
		}
		d.Entries = append(d.Entries, domain.Entry{
			EntryID:       e.EntryID,
			TransactionID: e.TransactionID,
			AccountID:     e.AccountID,
			Amount:        amount,
		})
	}
	return d, nil
}

const transactionColumns = `transaction_id, transaction_date, description, transaction_type, payee_id, category_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID, &m.TransactionDate, &m.Description, &m.TransactionType,
		&m.PayeeID, &m.CategoryID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction persists a transaction and all of its entries inside one
// database transaction, so a partially recorded event is never visible.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.TransactionID, m.TransactionDate, m.Description, m.TransactionType,
		m.PayeeID, m.CategoryID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrConflict, m.TransactionID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: transaction %s references a missing payee or category", apperrors.ErrValidation, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}

	entryQuery := `
		INSERT INTO entries (entry_id, transaction_id, account_id, amount, currency_code)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, e := range txn.Entries {
		batch.Queue(entryQuery, e.EntryID, e.TransactionID, e.AccountID, e.Amount.Amount(), e.Amount.Currency())
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: transaction %s posts against a missing account", apperrors.ErrValidation, m.TransactionID)
		}
		return fmt.Errorf("failed to save entries for transaction %s: %w", m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction together with its entries.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	entries, err := r.loadEntries(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}

	txn, err := toDomainTransaction(m, entries[transactionID])
	if err != nil {
		return nil, fmt.Errorf("failed to map transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactions retrieves transactions with entries, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	return r.queryTransactions(ctx, query, limit, offset)
}

// ListTransactionsByAccountID retrieves the transactions posting at least
// one entry against the account, newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id IN (SELECT transaction_id FROM entries WHERE account_id = $1)
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	return r.queryTransactions(ctx, query, accountID, limit, offset)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	headers := []models.Transaction{}
	ids := []string{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		headers = append(headers, m)
		ids = append(ids, m.TransactionID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entriesByTxn, err := r.loadEntries(ctx, ids)
	if err != nil {
		return nil, err
	}

	txns := []domain.Transaction{}
	for _, m := range headers {
		txn, err := toDomainTransaction(m, entriesByTxn[m.TransactionID])
		if err != nil {
			return nil, fmt.Errorf("failed to map transaction %s: %w", m.TransactionID, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// loadEntries fetches the entries of the given transactions in one query,
// keyed by transaction ID.
func (r *PgxTransactionRepository) loadEntries(ctx context.Context, transactionIDs []string) (map[string][]models.Entry, error) {
	result := map[string][]models.Entry{}
	if len(transactionIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT entry_id, transaction_id, account_id, amount, currency_code
		FROM entries
		WHERE transaction_id = ANY($1)
		ORDER BY entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.EntryID, &e.TransactionID, &e.AccountID, &e.Amount, &e.CurrencyCode); err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		result[e.TransactionID] = append(result[e.TransactionID], e)
	}
	return result, rows.Err()
}

// HasTransactionsForPayee reports whether any transaction references the payee.
func (r *PgxTransactionRepository) HasTransactionsForPayee(ctx context.Context, payeeID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE payee_id = $1);`, payeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transactions for payee %s: %w", payeeID, err)
	}
	return exists, nil
}

// HasTransactionsForCategory reports whether any transaction references the category.
func (r *PgxTransactionRepository) HasTransactionsForCategory(ctx context.Context, categoryID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE category_id = $1);`, categoryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transactions for category %s: %w", categoryID, err)
	}
	return exists, nil
}

// HasEntriesForAccount reports whether any entry posts against the account.
func (r *PgxTransactionRepository) HasEntriesForAccount(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM entries WHERE account_id = $1);`, accountID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check entries for account %s: %w", accountID, err)
	}
	return exists, nil
}

// UpdateTransaction updates the mutable header fields. Entries are immutable
// once recorded, so they are never touched here.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET transaction_date = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.TransactionID, m.TransactionDate, m.Description, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction; its entries go with it via
// ON DELETE CASCADE inside the same statement, so the delete is atomic.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
