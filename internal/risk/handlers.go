package risk

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/securebank/fraudscore/internal/logging"
	"github.com/securebank/fraudscore/internal/pagination"
	"github.com/securebank/fraudscore/internal/profile"
	"github.com/securebank/fraudscore/internal/validation"
)

const maxBatchSize = 50

// Handler provides HTTP endpoints for transaction risk scoring
type Handler struct {
	analyzer *Analyzer
	profiles profile.Store
	audit    Store
	timeout  time.Duration
}

// NewHandler creates a new risk scoring handler
func NewHandler(analyzer *Analyzer, profiles profile.Store, audit Store, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Handler{
		analyzer: analyzer,
		profiles: profiles,
		audit:    audit,
		timeout:  timeout,
	}
}

// RegisterRoutes sets up risk scoring endpoints
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/fraud/analyze", h.Analyze)
	r.POST("/fraud/analyze/batch", h.AnalyzeBatch)
	r.GET("/fraud/health", h.Health)
	r.GET("/fraud/assessments/:id", h.ListAssessments)
}

// analyzeResponse adds the gate's projected action to the assessment.
type analyzeResponse struct {
	*Assessment
	Action Action `json:"action"`
}

// Analyze scores a single transaction intent.
// POST /v1/fraud/analyze
func (h *Handler) Analyze(c *gin.Context) {
	var intent Intent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Request body must be a valid transaction intent",
		})
		return
	}

	if errs := validation.Validate(
		validation.Required("recipientId", intent.RecipientID),
		validation.ValidCounterpartyID("recipientId", intent.RecipientID),
	); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_failed",
			"message": errs.Error(),
			"details": errs,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	assessment, err := h.analyzer.Analyze(ctx, &intent)
	if err != nil {
		h.writeAnalyzeError(c, err)
		return
	}

	c.JSON(http.StatusOK, analyzeResponse{
		Assessment: assessment,
		Action:     Decide(assessment),
	})
}

// BatchRequest carries multiple intents for one-shot scoring.
type BatchRequest struct {
	Intents []Intent `json:"intents"`
}

// AnalyzeBatch scores up to maxBatchSize intents in a single call.
// Per-intent validation failures are reported inline, not as a request
// failure, so one bad row can't sink the batch.
// POST /v1/fraud/analyze/batch
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Request body must contain 'intents' array",
		})
		return
	}

	if len(req.Intents) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "At least one intent is required",
		})
		return
	}
	if len(req.Intents) > maxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "batch_too_large",
			"message": "Batch size exceeds limit of " + strconv.Itoa(maxBatchSize),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	type batchResult struct {
		Assessment *Assessment `json:"assessment,omitempty"`
		Action     Action      `json:"action,omitempty"`
		Error      string      `json:"error,omitempty"`
	}

	results := make([]batchResult, 0, len(req.Intents))
	for i := range req.Intents {
		assessment, err := h.analyzer.Analyze(ctx, &req.Intents[i])
		if err != nil {
			results = append(results, batchResult{Error: err.Error()})
			continue
		}
		results = append(results, batchResult{
			Assessment: assessment,
			Action:     Decide(assessment),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// Health reports scoring-service liveness and whether the profile
// table loaded successfully.
// GET /v1/fraud/health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	count, err := h.profiles.Count(ctx)
	if err != nil || count == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":         "degraded",
			"profilesLoaded": 0,
			"message":        "Profile table not loaded; scoring runs fail-closed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"profilesLoaded": count,
	})
}

// ListAssessments returns the recent audit trail for a counterparty,
// newest first, with cursor pagination.
// GET /v1/fraud/assessments/:id?limit=20&cursor=...
func (h *Handler) ListAssessments(c *gin.Context) {
	if h.audit == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "audit_disabled",
			"message": "Assessment audit trail is not enabled",
		})
		return
	}

	id := c.Param("id")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	cursor, err := pagination.Decode(c.Query("cursor"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_cursor",
			"message": "Cursor is malformed",
		})
		return
	}
	var before time.Time
	if cursor != nil {
		before = cursor.CreatedAt
	}

	// Fetch one extra row to know whether another page exists.
	assessments, err := h.audit.ListByRecipient(c.Request.Context(), id, before, limit+1)
	if err != nil {
		logging.L(c.Request.Context()).Error("assessment listing failed", "recipient", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "store_unavailable",
			"message": "Assessment store is unavailable",
		})
		return
	}

	assessments, nextCursor, hasMore := pagination.ComputePage(assessments, limit, func(a *Assessment) (time.Time, string) {
		return a.EvaluatedAt, a.ID
	})

	c.JSON(http.StatusOK, gin.H{
		"assessments": assessments,
		"count":       len(assessments),
		"next_cursor": nextCursor,
		"has_more":    hasMore,
	})
}

func (h *Handler) writeAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingRecipient):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_recipient",
			"message": "recipientId is required",
		})
	case errors.Is(err, ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_amount",
			"message": "amount must be a non-negative number",
		})
	default:
		logging.L(c.Request.Context()).Error("analyze failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "analyze_failed",
			"message": "Risk analysis could not be completed",
		})
	}
}
