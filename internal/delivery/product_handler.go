package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type ProductHandler struct {
	useCase domain.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc domain.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{useCase: uc, log: logger}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.PATCH("/:id", h.PatchProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

type createProductRequest struct {
	Name       string          `json:"name" binding:"required,max=120"`
	SKU        string          `json:"sku" binding:"required,max=40"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Stock      int             `json:"stock" binding:"min=0"`
	CategoryID int64           `json:"categoryId" binding:"required"`
}

type patchProductRequest struct {
	Name       *string          `json:"name" binding:"omitempty,max=120"`
	SKU        *string          `json:"sku" binding:"omitempty,max=40"`
	Price      *decimal.Decimal `json:"price"`
	Stock      *int             `json:"stock" binding:"omitempty,min=0"`
	CategoryID *int64           `json:"categoryId"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		writeBindingError(c, err)
		return
	}

	product, err := h.useCase.CreateProduct(&domain.Product{
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		h.log.Warnf("Failed to create product '%s': %v", req.Name, err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var categoryID int64
	if raw := c.Query("categoryId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeError(c, http.StatusBadRequest, "Invalid categoryId query parameter: "+raw, nil)
			return
		}
		categoryID = parsed
	}

	products, err := h.useCase.ListProducts(categoryID)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) PatchProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req patchProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for patch product %d: %v", id, err)
		writeBindingError(c, err)
		return
	}

	product, err := h.useCase.PatchProduct(id, domain.ProductPatch{
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		h.log.Warnf("Failed to patch product %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.useCase.DeleteProduct(id); err != nil {
		h.log.Warnf("Failed to delete product %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
