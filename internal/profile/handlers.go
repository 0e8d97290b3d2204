package profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/securebank/fraudscore/internal/logging"
)

// Handler provides HTTP endpoints for counterparty profiles
type Handler struct {
	store Store
}

// NewHandler creates a new profile handler
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes sets up profile endpoints
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/profiles", h.ListProfiles)
	r.GET("/profiles/:id", h.GetProfile)
	r.GET("/dataset/stats", h.GetDatasetStats)
}

// GetProfile returns a single counterparty profile
func (h *Handler) GetProfile(c *gin.Context) {
	id := c.Param("id")

	p, err := h.store.Lookup(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "profile_not_found",
			"message": "No risk profile exists for this counterparty",
		})
		return
	}
	if err != nil {
		logging.L(c.Request.Context()).Error("profile lookup failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "store_unavailable",
			"message": "Profile store is unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": p})
}

// ListProfiles returns all counterparty profiles.
// GET /v1/profiles?fraudOnly=true
func (h *Handler) ListProfiles(c *gin.Context) {
	fraudOnly, _ := strconv.ParseBool(c.DefaultQuery("fraudOnly", "false"))

	profiles, err := h.store.List(c.Request.Context(), fraudOnly)
	if err != nil {
		logging.L(c.Request.Context()).Error("profile list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "store_unavailable",
			"message": "Profile store is unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

// GetDatasetStats summarizes the loaded reference dataset
func (h *Handler) GetDatasetStats(c *gin.Context) {
	stats, err := Stats(c.Request.Context(), h.store)
	if err != nil {
		logging.L(c.Request.Context()).Error("dataset stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "store_unavailable",
			"message": "Profile store is unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
