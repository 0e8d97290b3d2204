package risk

// Action is the caller-facing verdict derived from an assessment.
type Action string

const (
	// ActionProceed lets the transaction continue without extra steps.
	ActionProceed Action = "proceed"
	// ActionConfirm requires explicit user confirmation first. This is
	// the only valid way past a high classification.
	ActionConfirm Action = "confirm"
	// ActionRefuse rejects the transaction outright. No override path.
	ActionRefuse Action = "refuse"
)

// Decide projects an assessment onto a single action. Every payment
// entry point (direct send, voice, QR) must branch on this projection
// rather than re-deriving policy from the raw flags.
func Decide(a *Assessment) Action {
	if a.ShouldBlock {
		return ActionRefuse
	}
	if a.RequiresReview {
		return ActionConfirm
	}
	return ActionProceed
}
