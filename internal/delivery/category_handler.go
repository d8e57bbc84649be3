package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type CategoryHandler struct {
	useCase domain.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc domain.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{useCase: uc, log: logger}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required,max=80"`
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create category: %v", err)
		writeBindingError(c, err)
		return
	}

	category, err := h.useCase.CreateCategory(req.Name)
	if err != nil {
		h.log.Warnf("Failed to create category '%s': %v", req.Name, err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories()
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	category, err := h.useCase.GetCategoryByID(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for update category %d: %v", id, err)
		writeBindingError(c, err)
		return
	}

	category, err := h.useCase.UpdateCategory(id, req.Name)
	if err != nil {
		h.log.Warnf("Failed to update category %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.useCase.DeleteCategory(id); err != nil {
		h.log.Warnf("Failed to delete category %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
