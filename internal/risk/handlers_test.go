package risk

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securebank/fraudscore/internal/profile"
)

func setupRouter(seed int64) (*gin.Engine, *MemoryStore) {
	gin.SetMode(gin.TestMode)
	profiles := profile.NewMemoryStore(profile.ReferenceProfiles())
	audit := NewMemoryStore()
	analyzer := NewAnalyzer(profiles, WithSeed(seed), WithAuditStore(audit))

	r := gin.New()
	h := NewHandler(analyzer, profiles, audit, 2*time.Second)
	h.RegisterRoutes(r.Group("/v1"))
	return r, audit
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	r, _ := setupRouter(1)

	w := postJSON(r, "/v1/fraud/analyze", Intent{
		SenderID:    "user-1",
		RecipientID: "fraud-001",
		Amount:      9839.64,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assessment
		Action Action `json:"action"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsFraud)
	assert.Equal(t, LevelCritical, resp.RiskLevel)
	assert.True(t, resp.ShouldBlock)
	assert.Equal(t, ActionRefuse, resp.Action)
	assert.NotEmpty(t, resp.RiskFactors)
	assert.NotEmpty(t, resp.ID)
}

func TestAnalyzeEndpointLegitimate(t *testing.T) {
	r, _ := setupRouter(2)

	w := postJSON(r, "/v1/fraud/analyze", Intent{
		SenderID:    "user-1",
		RecipientID: "legit-001",
		Amount:      500,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assessment
		Action Action `json:"action"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsFraud)
	assert.Equal(t, LevelLow, resp.RiskLevel)
	assert.Equal(t, ActionProceed, resp.Action)
}

func TestAnalyzeEndpointValidation(t *testing.T) {
	r, _ := setupRouter(3)

	// Missing recipient
	w := postJSON(r, "/v1/fraud/analyze", Intent{Amount: 100})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative amount
	w = postJSON(r, "/v1/fraud/analyze", Intent{
		RecipientID: "legit-001",
		Amount:      -50,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_amount", resp["error"])

	// Malformed body
	w = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/fraud/analyze", bytes.NewReader([]byte("{not json")))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeEndpointUnknownRecipient(t *testing.T) {
	r, _ := setupRouter(4)

	w := postJSON(r, "/v1/fraud/analyze", Intent{
		RecipientID:   "stranger-42",
		Amount:        100,
		SenderBalance: 10000,
	})

	require.Equal(t, http.StatusOK, w.Code, "unknown counterparty must not error")

	var resp Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RiskFactors)
}

func TestAnalyzeBatchEndpoint(t *testing.T) {
	r, _ := setupRouter(5)

	w := postJSON(r, "/v1/fraud/analyze/batch", BatchRequest{
		Intents: []Intent{
			{RecipientID: "fraud-001", Amount: 9839.64},
			{RecipientID: "legit-001", Amount: 500},
			{RecipientID: "legit-002", Amount: -1}, // invalid: reported inline
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []struct {
			Assessment *Assessment `json:"assessment"`
			Action     Action      `json:"action"`
			Error      string      `json:"error"`
		} `json:"results"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)

	assert.NotNil(t, resp.Results[0].Assessment)
	assert.Equal(t, ActionRefuse, resp.Results[0].Action)
	assert.NotNil(t, resp.Results[1].Assessment)
	assert.Empty(t, resp.Results[1].Error)
	assert.Nil(t, resp.Results[2].Assessment)
	assert.NotEmpty(t, resp.Results[2].Error)
}

func TestAnalyzeBatchEmptyRejected(t *testing.T) {
	r, _ := setupRouter(6)

	w := postJSON(r, "/v1/fraud/analyze/batch", BatchRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeBatchTooLarge(t *testing.T) {
	r, _ := setupRouter(7)

	intents := make([]Intent, maxBatchSize+1)
	for i := range intents {
		intents[i] = Intent{RecipientID: "legit-001", Amount: 100}
	}

	w := postJSON(r, "/v1/fraud/analyze/batch", BatchRequest{Intents: intents})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "batch_too_large", resp["error"])
}

func TestFraudHealthEndpoint(t *testing.T) {
	r, _ := setupRouter(8)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/fraud/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status         string `json:"status"`
		ProfilesLoaded int    `json:"profilesLoaded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, 35, resp.ProfilesLoaded)
}

func TestFraudHealthDegradedWhenEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	empty := profile.NewMemoryStore(nil)
	analyzer := NewAnalyzer(empty, WithSeed(9))

	r := gin.New()
	h := NewHandler(analyzer, empty, nil, time.Second)
	h.RegisterRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/fraud/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestListAssessmentsEndpoint(t *testing.T) {
	r, _ := setupRouter(10)

	// Generate an assessment first
	w := postJSON(r, "/v1/fraud/analyze", Intent{
		RecipientID: "fraud-003",
		Amount:      1000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Audit recording is async
	require.Eventually(t, func() bool {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/v1/fraud/assessments/fraud-003", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			return false
		}
		var resp struct {
			Count int `json:"count"`
		}
		if json.Unmarshal(w.Body.Bytes(), &resp) != nil {
			return false
		}
		return resp.Count == 1
	}, time.Second, 5*time.Millisecond)
}

func TestListAssessmentsAuditDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	profiles := profile.NewMemoryStore(profile.ReferenceProfiles())
	analyzer := NewAnalyzer(profiles, WithSeed(11))

	r := gin.New()
	h := NewHandler(analyzer, profiles, nil, time.Second)
	h.RegisterRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/fraud/assessments/fraud-001", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAssessmentsPagination(t *testing.T) {
	r, audit := setupRouter(12)

	ctx := context.Background()
	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		require.NoError(t, audit.Record(ctx, &Assessment{
			ID:          "risk_page" + string(rune('a'+i)),
			RecipientID: "fraud-004",
			RiskLevel:   LevelCritical,
			RiskFactors: []string{factorConfirmedPattern},
			EvaluatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/fraud/assessments/fraud-004?limit=2", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Assessments []Assessment `json:"assessments"`
		Count       int          `json:"count"`
		NextCursor  string       `json:"next_cursor"`
		HasMore     bool         `json:"has_more"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Count)
	assert.True(t, page.HasMore)
	require.NotEmpty(t, page.NextCursor)
	assert.Equal(t, "risk_pagec", page.Assessments[0].ID)

	// Second page picks up where the cursor left off.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/v1/fraud/assessments/fraud-004?limit=2&cursor="+page.NextCursor, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Count)
	assert.False(t, page.HasMore)
	assert.Equal(t, "risk_pagea", page.Assessments[0].ID)
}

func TestListAssessmentsRejectsBadCursor(t *testing.T) {
	r, _ := setupRouter(13)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/fraud/assessments/fraud-001?cursor=%21%21not-base64", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_cursor")
}
