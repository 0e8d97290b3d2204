// Package profile holds counterparty risk profiles seeded from a labeled
// reference dataset of historical transactions.
//
// Profiles are loaded once at startup and never mutated by live scoring:
// the table is a read-only lookup for the lifetime of the process, so
// concurrent reads need no coordination beyond the store's own guards.
package profile

import (
	"context"
	"errors"
)

// Transaction type labels carried by the reference dataset.
const (
	TypePayment  = "PAYMENT"
	TypeTransfer = "TRANSFER"
	TypeCashOut  = "CASH_OUT"
	TypeDebit    = "DEBIT"
	TypeCashIn   = "CASH_IN"
)

// ErrNotFound signals that no profile exists for a counterparty.
// Callers treat this as a first-class outcome, not a failure: scoring
// degrades to a heuristic path for unknown counterparties.
var ErrNotFound = errors.New("profile not found")

// Profile describes a single counterparty's historical transaction
// statistics, derived from the labeled reference dataset.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`

	// Representative historical transaction from the dataset.
	TxnType          string  `json:"txnType"`
	TypicalAmount    float64 `json:"typicalAmount"`
	OldSenderBalance float64 `json:"oldSenderBalance"`
	NewSenderBalance float64 `json:"newSenderBalance"`
	OldDestBalance   float64 `json:"oldDestBalance"`
	NewDestBalance   float64 `json:"newDestBalance"`

	// FraudLabel is the ground-truth label from the dataset.
	// Immutable once seeded.
	FraudLabel bool `json:"fraudLabel"`

	// Descriptive metadata surfaced in explanations, not used in scoring.
	AccountAge     string   `json:"accountAge"`
	CommonTxnTypes []string `json:"commonTxnTypes"`
	TxnCount       int      `json:"txnCount"`
	FlaggedCount   int      `json:"flaggedCount"`
}

// Store resolves counterparty identifiers to profiles.
type Store interface {
	// Lookup returns the profile for a counterparty, or ErrNotFound.
	Lookup(ctx context.Context, id string) (*Profile, error)
	// List returns all profiles, optionally filtered by fraud label.
	List(ctx context.Context, fraudOnly bool) ([]*Profile, error)
	// Count returns the number of loaded profiles.
	Count(ctx context.Context) (int, error)
}

// DatasetStats summarizes the loaded reference dataset.
type DatasetStats struct {
	Total         int            `json:"total"`
	Fraudulent    int            `json:"fraudulent"`
	Legitimate    int            `json:"legitimate"`
	ByTxnType     map[string]int `json:"byTxnType"`
	MaxAmount     float64        `json:"maxAmount"`
	AvgAmount     float64        `json:"avgAmount"`
	FraudShare    float64        `json:"fraudShare"`
	HighValue     int            `json:"highValue"` // typical amount > 100k
	DrainPatterns int            `json:"drainPatterns"`
}

// Stats computes dataset statistics over all profiles in the store.
func Stats(ctx context.Context, store Store) (*DatasetStats, error) {
	profiles, err := store.List(ctx, false)
	if err != nil {
		return nil, err
	}

	stats := &DatasetStats{ByTxnType: make(map[string]int)}
	var totalAmount float64
	for _, p := range profiles {
		stats.Total++
		if p.FraudLabel {
			stats.Fraudulent++
		} else {
			stats.Legitimate++
		}
		stats.ByTxnType[p.TxnType]++
		totalAmount += p.TypicalAmount
		if p.TypicalAmount > stats.MaxAmount {
			stats.MaxAmount = p.TypicalAmount
		}
		if p.TypicalAmount > 100000 {
			stats.HighValue++
		}
		if p.NewSenderBalance == 0 && p.OldSenderBalance > 0 {
			stats.DrainPatterns++
		}
	}
	if stats.Total > 0 {
		stats.AvgAmount = totalAmount / float64(stats.Total)
		stats.FraudShare = float64(stats.Fraudulent) / float64(stats.Total)
	}
	return stats, nil
}
