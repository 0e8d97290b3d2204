package risk

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// PostgresStore persists assessments in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgreSQL-backed assessment store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Record(ctx context.Context, assessment *Assessment) error {
	var sourceJSON []byte
	if assessment.Source != nil {
		var err error
		sourceJSON, err = json.Marshal(assessment.Source)
		if err != nil {
			return fmt.Errorf("failed to marshal assessment source: %w", err)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO risk_assessments (
			id, sender_id, recipient_id, amount, is_fraud, fraud_probability,
			risk_level, risk_factors, recommendation, should_block,
			requires_review, source, evaluated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		assessment.ID,
		assessment.SenderID,
		assessment.RecipientID,
		assessment.Amount,
		assessment.IsFraud,
		assessment.FraudProbability,
		string(assessment.RiskLevel),
		pq.Array(assessment.RiskFactors),
		assessment.Recommendation,
		assessment.ShouldBlock,
		assessment.RequiresReview,
		sourceJSON,
		assessment.EvaluatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record assessment: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByRecipient(ctx context.Context, recipientID string, before time.Time, limit int) ([]*Assessment, error) {
	var cursor sql.NullTime
	if !before.IsZero() {
		cursor = sql.NullTime{Time: before, Valid: true}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sender_id, recipient_id, amount, is_fraud, fraud_probability,
			risk_level, risk_factors, recommendation, should_block,
			requires_review, source, evaluated_at
		FROM risk_assessments
		WHERE recipient_id = $1
		  AND ($2::timestamptz IS NULL OR evaluated_at < $2)
		ORDER BY evaluated_at DESC
		LIMIT $3
	`, recipientID, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*Assessment
	for rows.Next() {
		var a Assessment
		var level string
		var factors pq.StringArray
		var sourceJSON []byte
		var evaluatedAt time.Time

		if err := rows.Scan(
			&a.ID, &a.SenderID, &a.RecipientID, &a.Amount, &a.IsFraud,
			&a.FraudProbability, &level, &factors, &a.Recommendation,
			&a.ShouldBlock, &a.RequiresReview, &sourceJSON, &evaluatedAt,
		); err != nil {
			continue
		}
		a.RiskLevel = Level(level)
		a.RiskFactors = []string(factors)
		a.EvaluatedAt = evaluatedAt
		if len(sourceJSON) > 0 {
			var src Source
			if json.Unmarshal(sourceJSON, &src) == nil {
				a.Source = &src
			}
		}
		result = append(result, &a)
	}
	return result, nil
}
