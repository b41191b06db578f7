package summary

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cuashub/internal/catalog"
	"cuashub/internal/reviews"
)

// generateTimeout bounds each model call; without it a stalled response
// would leave the client hanging indefinitely.
const generateTimeout = 30 * time.Second

type Handler struct {
	Store  *catalog.Store
	Client *Client
}

func NewHandler(store *catalog.Store, client *Client) *Handler {
	return &Handler{Store: store, Client: client}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/:id/summary", h.productSummary)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews/draft", h.draftReview)
}

func (h *Handler) productSummary(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	product, ok := h.Store.Product(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	text := h.Client.GenerateReviewSummary(ctx, product.Name, h.Store.ReviewsFor(id))
	c.JSON(http.StatusOK, gin.H{
		"product_id": product.ID,
		"summary":    text,
	})
}

type draftReq struct {
	ProductID int64 `json:"product_id"`
}

// draftReview asks the model for a structured review draft. A response that
// fails typed parsing is not trusted: the raw text is surfaced as the
// transportability comment of an otherwise empty draft for manual editing.
func (h *Handler) draftReview(c *gin.Context) {
	var req draftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	product, ok := h.Store.Product(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	raw := h.Client.GenerateDraftReview(ctx, product.Name)

	draft, err := reviews.ParseDraftReview(raw)
	if err != nil {
		fallback := reviews.DraftReview{}
		fallback.AdditionalComments.Transportability = raw
		c.JSON(http.StatusOK, gin.H{
			"product_id": product.ID,
			"draft":      fallback,
			"parsed":     false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id": product.ID,
		"draft":      draft,
		"parsed":     true,
	})
}
