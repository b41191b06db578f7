package stats

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine}
}

// RegisterAdminRoutes mounts the dashboard endpoints; the caller wraps the
// group with the admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.dashboard)
	rg.GET("/stats/recent", h.recent)
	rg.GET("/stats/words", h.words)
}

// dashboard returns the full admin-panel payload in one call.
func (h *Handler) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_products":  h.Engine.Catalog.TotalProducts(),
		"total_reviews":   h.Engine.Catalog.TotalReviews(),
		"by_branch":       h.Engine.ReviewsByBranch(),
		"by_role":         h.Engine.ReviewsByRole(),
		"average_ratings": h.Engine.GlobalRatings(),
		"recent_reviews":  h.Engine.RecentReviews(5),
		"top_words":       h.Engine.FilteredWords(),
	})
}

func (h *Handler) recent(c *gin.Context) {
	limit := parseInt(c.Query("limit"), 10)
	items := h.Engine.RecentReviews(limit)
	c.JSON(http.StatusOK, gin.H{
		"limit": limit,
		"items": items,
	})
}

func (h *Handler) words(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Engine.FilteredWords()})
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
