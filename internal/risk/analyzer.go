package risk

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/securebank/fraudscore/internal/idgen"
	"github.com/securebank/fraudscore/internal/logging"
	"github.com/securebank/fraudscore/internal/metrics"
	"github.com/securebank/fraudscore/internal/profile"
	"github.com/securebank/fraudscore/internal/traces"
)

// Risk factor messages, appended in rule-evaluation order.
const (
	factorCashOut          = "CASH_OUT transaction type - highest fraud risk"
	factorTransfer         = "TRANSFER pattern matches fraud profiles"
	factorDrainage         = "Complete account drainage detected"
	factorEmptiesBalance   = "Transaction empties entire sender balance"
	factorDestAnomaly      = "Destination balance anomaly"
	factorHighValue        = "High value transaction flagged"
	factorConfirmedPattern = "Transaction pattern matches confirmed fraud cases in reference data"

	factorPaymentType    = "PAYMENT type - low fraud rate"
	factorDebitType      = "DEBIT - normal operation"
	factorHealthyBalance = "Healthy balance maintained"

	factorAmountEscalation = "Requested amount significantly higher than typical pattern"

	factorNoHistory       = "No transaction history for this counterparty"
	factorBalanceConsumed = "Transaction would consume most of sender balance"
	factorUnknownHighVal  = "High value transaction to unknown counterparty"
)

// Heuristic weights for counterparties without a profile.
const (
	unknownBase          = 0.05
	unknownNoHistory     = 0.10
	unknownBalanceWeight = 0.35
	unknownHighValue     = 0.20
	unknownBalanceRatio  = 0.8
	highValueCutoff      = 100000.0
)

// Analyzer computes risk assessments for transaction intents.
type Analyzer struct {
	profiles profile.Store
	audit    Store

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithAuditStore enables best-effort persistence of every assessment.
func WithAuditStore(store Store) Option {
	return func(a *Analyzer) { a.audit = store }
}

// WithSeed makes the probability draws deterministic, for tests.
func WithSeed(seed int64) Option {
	return func(a *Analyzer) { a.rng = rand.New(rand.NewSource(seed)) }
}

// NewAnalyzer creates an analyzer backed by the given profile store.
func NewAnalyzer(profiles profile.Store, opts ...Option) *Analyzer {
	a := &Analyzer{
		profiles: profiles,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// draw returns a uniform float in [0, 1). The generator is guarded
// because math/rand sources are not safe for concurrent use.
func (a *Analyzer) draw() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Float64()
}

// Analyze scores a transaction intent and returns a complete assessment.
//
// Unknown counterparties are scored by a degraded heuristic, never
// rejected. The only error paths are input-validation failures: a
// negative or non-finite amount, or a missing recipient identifier.
func (a *Analyzer) Analyze(ctx context.Context, intent *Intent) (*Assessment, error) {
	if strings.TrimSpace(intent.RecipientID) == "" {
		return nil, ErrMissingRecipient
	}
	if intent.Amount < 0 || math.IsNaN(intent.Amount) || math.IsInf(intent.Amount, 0) {
		return nil, ErrInvalidAmount
	}

	ctx, span := traces.StartSpan(ctx, "risk.Analyze",
		traces.RecipientID(intent.RecipientID),
		traces.Amount(intent.Amount),
	)
	defer span.End()

	timer := time.Now()
	defer func() {
		metrics.AnalyzeDuration.Observe(time.Since(timer).Seconds())
	}()

	var (
		probability float64
		factors     []string
		isFraud     bool
		source      *Source
	)

	p, err := a.profiles.Lookup(ctx, intent.RecipientID)
	switch {
	case err == nil:
		probability, factors = a.scoreKnown(p, intent)
		isFraud = p.FraudLabel
		source = &Source{
			TxnType:       p.TxnType,
			TypicalAmount: p.TypicalAmount,
			FraudLabel:    p.FraudLabel,
		}
	case errors.Is(err, profile.ErrNotFound):
		metrics.UnknownCounterpartyTotal.Inc()
		probability, factors = a.scoreUnknown(intent)
		isFraud = probability >= 0.5
	default:
		// Store outage: fail closed. Never approve blind; force review.
		logging.L(ctx).Error("profile store unavailable, failing closed",
			"recipient", intent.RecipientID, "error", err)
		probability = HighThreshold
		factors = []string{"Risk profile store unavailable - manual review required"}
		isFraud = false
	}

	level := classify(probability)
	span.SetAttributes(traces.RiskLevel(string(level)))

	assessment := &Assessment{
		ID:               idgen.WithPrefix("risk_"),
		SenderID:         intent.SenderID,
		RecipientID:      intent.RecipientID,
		Amount:           intent.Amount,
		IsFraud:          isFraud,
		FraudProbability: round3(probability),
		RiskLevel:        level,
		RiskFactors:      factors,
		Recommendation:   recommendations[level],
		ShouldBlock:      level == LevelCritical,
		RequiresReview:   level == LevelHigh || level == LevelCritical,
		Source:           source,
		EvaluatedAt:      time.Now(),
	}

	metrics.AssessmentsTotal.WithLabelValues(string(level)).Inc()
	if assessment.ShouldBlock {
		metrics.BlockedTransactionsTotal.Inc()
	} else if assessment.RequiresReview {
		metrics.ReviewFlaggedTotal.Inc()
	}

	// Persist asynchronously (best-effort audit trail)
	if a.audit != nil {
		go func() {
			_ = a.audit.Record(context.Background(), assessment)
		}()
	}

	return assessment, nil
}

// scoreKnown evaluates an intent against a seeded counterparty profile.
// Factor order is fixed: rule evaluation order, never sorted.
func (a *Analyzer) scoreKnown(p *profile.Profile, intent *Intent) (float64, []string) {
	var probability float64
	var factors []string

	if p.FraudLabel {
		// Confirmed-fraud exemplar: deliberately high floor
		probability = 0.85 + a.draw()*0.14

		if p.TxnType == profile.TypeCashOut {
			factors = append(factors, factorCashOut)
		}
		if p.TxnType == profile.TypeTransfer {
			factors = append(factors, factorTransfer)
		}
		if p.NewSenderBalance == 0 {
			factors = append(factors, factorDrainage)
		}
		if p.OldSenderBalance == p.TypicalAmount {
			factors = append(factors, factorEmptiesBalance)
		}
		if p.NewDestBalance == 0 && p.OldDestBalance > 0 {
			factors = append(factors, factorDestAnomaly)
		}
		if p.TypicalAmount > highValueCutoff {
			factors = append(factors, factorHighValue)
		}
		factors = append(factors, factorConfirmedPattern)
	} else {
		probability = a.draw() * 0.15

		if p.TxnType == profile.TypePayment {
			factors = append(factors, factorPaymentType)
		}
		if p.TxnType == profile.TypeDebit {
			factors = append(factors, factorDebitType)
		}
		if p.NewSenderBalance > 0 {
			factors = append(factors, factorHealthyBalance)
		}
	}

	// Amount escalation applies regardless of label. Zero amount is a
	// parseable-but-odd input and skips escalation rather than erroring.
	if intent.Amount > 0 && intent.Amount > 2*p.TypicalAmount {
		probability = math.Min(probability+0.2, MaxProbability)
		factors = append(factors, factorAmountEscalation)
	}

	return probability, factors
}

// scoreUnknown handles counterparties with no seeded profile. Lower
// confidence, but always yields a complete assessment with at least
// one named factor.
func (a *Analyzer) scoreUnknown(intent *Intent) (float64, []string) {
	probability := unknownBase + unknownNoHistory
	factors := []string{factorNoHistory}

	if intent.SenderBalance > 0 && intent.Amount/intent.SenderBalance > unknownBalanceRatio {
		probability += unknownBalanceWeight
		factors = append(factors, factorBalanceConsumed)
	}
	if intent.Amount > highValueCutoff {
		probability += unknownHighValue
		factors = append(factors, factorUnknownHighVal)
	}

	return math.Min(probability, MaxProbability), factors
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
