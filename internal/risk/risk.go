// Package risk scores proposed transactions against counterparty risk
// profiles seeded from a labeled reference dataset.
//
// Every analyze call resolves the recipient's profile, computes a fraud
// probability, discretizes it into a risk level, and attaches the ordered
// risk factors that contributed. Counterparties without a profile are
// scored by a degraded balance-ratio heuristic rather than rejected.
package risk

import (
	"context"
	"errors"
	"time"
)

// Level is the discrete risk bucket derived from the fraud probability.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Probability thresholds mapping a fraud probability to a Level.
const (
	CriticalThreshold = 0.85
	HighThreshold     = 0.60
	MediumThreshold   = 0.30
)

// MaxProbability caps every fraud probability below 1.0, matching the
// reference dataset's own ceiling.
const MaxProbability = 0.99

// Validation errors. These indicate caller bugs, never business outcomes.
var (
	ErrInvalidAmount    = errors.New("amount must be a non-negative number")
	ErrMissingRecipient = errors.New("recipientId is required")
)

// Intent is a proposed transaction submitted for scoring.
// Constructed fresh per user action, consumed once, never persisted.
type Intent struct {
	SenderID         string  `json:"senderId"`
	RecipientID      string  `json:"recipientId"`
	Amount           float64 `json:"amount"`
	SenderBalance    float64 `json:"senderBalance"`
	RecipientBalance float64 `json:"recipientBalance"`
	Type             string  `json:"type"`
}

// Source describes the profile data an assessment was computed from.
type Source struct {
	TxnType       string  `json:"txnType"`
	TypicalAmount float64 `json:"typicalAmount"`
	FraudLabel    bool    `json:"fraudLabel"`
}

// Assessment is the result of scoring a single transaction intent.
// Immutable once returned; recomputed on every call even for identical
// intents, since the caller may edit the amount between attempts.
type Assessment struct {
	ID               string    `json:"id"`
	SenderID         string    `json:"senderId"`
	RecipientID      string    `json:"recipientId"`
	Amount           float64   `json:"amount"`
	IsFraud          bool      `json:"isFraud"`
	FraudProbability float64   `json:"fraudProbability"`
	RiskLevel        Level     `json:"riskLevel"`
	RiskFactors      []string  `json:"riskFactors"`
	Recommendation   string    `json:"recommendation"`
	ShouldBlock      bool      `json:"shouldBlock"`
	RequiresReview   bool      `json:"requiresReview"`
	Source           *Source   `json:"source,omitempty"`
	EvaluatedAt      time.Time `json:"evaluatedAt"`
}

// Store persists assessments for audit trail. ListByRecipient returns
// the most recent assessments first; a non-zero before restricts results
// to assessments evaluated strictly earlier, which is how cursor
// pagination walks backwards through the trail.
type Store interface {
	Record(ctx context.Context, assessment *Assessment) error
	ListByRecipient(ctx context.Context, recipientID string, before time.Time, limit int) ([]*Assessment, error)
}

// classify maps a fraud probability to a discrete risk level.
// Pure function of the fixed thresholds.
func classify(probability float64) Level {
	switch {
	case probability >= CriticalThreshold:
		return LevelCritical
	case probability >= HighThreshold:
		return LevelHigh
	case probability >= MediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

// recommendations holds the fixed caller-facing guidance per level.
var recommendations = map[Level]string{
	LevelCritical: "BLOCK RECOMMENDED: transaction pattern matches confirmed fraud cases. Transaction will be blocked.",
	LevelHigh:     "REVIEW REQUIRED: similar patterns found in fraud reference data. Manual verification recommended.",
	LevelMedium:   "CAUTION: some risk indicators present. Proceed with verification.",
	LevelLow:      "SAFE: transaction pattern consistent with legitimate counterparties.",
}
