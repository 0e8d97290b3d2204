package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// PostgresStore reads counterparty profiles from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgreSQL-backed profile store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const profileColumns = `
	id, name, handle, txn_type, typical_amount,
	old_sender_balance, new_sender_balance, old_dest_balance, new_dest_balance,
	fraud_label, account_age, common_txn_types, txn_count, flagged_count`

func (s *PostgresStore) Lookup(ctx context.Context, id string) (*Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM counterparty_profiles
		WHERE id = $1
	`, id)

	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) List(ctx context.Context, fraudOnly bool) ([]*Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM counterparty_profiles ORDER BY id`
	if fraudOnly {
		query = `SELECT ` + profileColumns + ` FROM counterparty_profiles WHERE fraud_label ORDER BY id`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			continue
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM counterparty_profiles`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return n, nil
}

// SeedReference upserts the reference dataset into the profiles table.
// Safe to run repeatedly; existing rows are overwritten (labels never
// change between dataset revisions, only metadata may).
func (s *PostgresStore) SeedReference(ctx context.Context, profiles []*Profile) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO counterparty_profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			handle = EXCLUDED.handle,
			account_age = EXCLUDED.account_age,
			common_txn_types = EXCLUDED.common_txn_types,
			txn_count = EXCLUDED.txn_count,
			flagged_count = EXCLUDED.flagged_count
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, p := range profiles {
		_, err := stmt.ExecContext(ctx,
			p.ID, p.Name, p.Handle, p.TxnType, p.TypicalAmount,
			p.OldSenderBalance, p.NewSenderBalance, p.OldDestBalance, p.NewDestBalance,
			p.FraudLabel, p.AccountAge, pq.Array(p.CommonTxnTypes), p.TxnCount, p.FlaggedCount,
		)
		if err != nil {
			return fmt.Errorf("failed to seed profile %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*Profile, error) {
	var p Profile
	var types pq.StringArray
	err := row.Scan(
		&p.ID, &p.Name, &p.Handle, &p.TxnType, &p.TypicalAmount,
		&p.OldSenderBalance, &p.NewSenderBalance, &p.OldDestBalance, &p.NewDestBalance,
		&p.FraudLabel, &p.AccountAge, &types, &p.TxnCount, &p.FlaggedCount,
	)
	if err != nil {
		return nil, err
	}
	p.CommonTxnTypes = []string(types)
	return &p, nil
}
