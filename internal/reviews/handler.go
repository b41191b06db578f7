package reviews

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cuashub/internal/auth"
	"cuashub/internal/catalog"
	"cuashub/internal/live"
	"cuashub/internal/stats"
	"cuashub/pkg/models"
)

type Handler struct {
	Store  *catalog.Store
	Engine *stats.Engine
	Hub    *live.Hub
}

func NewHandler(store *catalog.Store, engine *stats.Engine, hub *live.Hub) *Handler {
	return &Handler{Store: store, Engine: engine, Hub: hub}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/:id/reviews", h.listByProduct)
	rg.GET("/products/:id/ratings", h.ratings)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.create)
}

type createReq struct {
	ProductID          int64                   `json:"product_id"`
	Author             string                  `json:"author"`
	MilService         string                  `json:"milService"`
	Role               string                  `json:"role"`
	OtherUASSystems    string                  `json:"otherUASSystems"`
	CategoryRatings    models.CategoryRatings  `json:"categoryRatings"`
	AdditionalComments models.CategoryComments `json:"additionalComments"`
}

func (h *Handler) create(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	product, ok := h.Store.Product(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author required"})
		return
	}

	// 0 means the category was skipped; submitted ratings are 1-5
	for _, v := range []int{
		req.CategoryRatings.Transportability,
		req.CategoryRatings.EaseOfUse,
		req.CategoryRatings.Interoperability,
		req.CategoryRatings.Detection,
		req.CategoryRatings.Reliability,
	} {
		if v < 0 || v > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ratings must be between 0 and 5"})
			return
		}
	}

	milService := strings.TrimSpace(req.MilService)
	if milService == "" {
		milService = "Unknown"
	}
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "Operator"
	}

	review := models.Review{
		ID:                 models.NewReviewID(),
		Author:             author,
		MilService:         milService,
		Role:               role,
		OtherUASSystems:    strings.TrimSpace(req.OtherUASSystems),
		CategoryRatings:    req.CategoryRatings,
		AdditionalComments: req.AdditionalComments,
		Date:               time.Now().Format(models.ReviewDateLayout),
	}

	h.Store.AddReview(product.ID, review)

	if h.Hub != nil {
		h.Hub.BroadcastJSON(live.ReviewEvent{
			Type:        "review.created",
			ProductID:   product.ID,
			ProductName: product.Name,
			Author:      ObfuscateName(author),
			At:          time.Now().UTC(),
		})
	}

	c.JSON(http.StatusCreated, review)
}

func (h *Handler) listByProduct(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if _, ok := h.Store.Product(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	items := h.Store.ReviewsFor(id)
	// public listing shows masked names only
	for i := range items {
		items[i].Author = ObfuscateName(items[i].Author)
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) ratings(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if _, ok := h.Store.Product(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusOK, h.Engine.ProductRatings(id))
}
