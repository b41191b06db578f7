package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cuashub/pkg/models"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.getByID)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/products", h.create)
}

func (h *Handler) list(c *gin.Context) {
	items := h.Store.Products()
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	p, ok := h.Store.Product(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type createReq struct {
	Name           string   `json:"name"`
	Manufacturer   string   `json:"manufacturer"`
	Category       string   `json:"category"`
	Price          string   `json:"price"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Specifications []string `json:"specifications"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Manufacturer = strings.TrimSpace(req.Manufacturer)
	req.Category = strings.TrimSpace(req.Category)
	req.Price = strings.TrimSpace(req.Price)
	req.Description = strings.TrimSpace(req.Description)

	// same required set as the authoring form
	if req.Name == "" || req.Manufacturer == "" || req.Category == "" ||
		req.Price == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, manufacturer, category, price and description are required"})
		return
	}

	created := h.Store.AddProduct(models.Product{
		Name:           req.Name,
		Manufacturer:   req.Manufacturer,
		Category:       req.Category,
		Price:          req.Price,
		Image:          strings.TrimSpace(req.Image),
		Description:    req.Description,
		Specifications: req.Specifications,
	})

	c.JSON(http.StatusCreated, created)
}
