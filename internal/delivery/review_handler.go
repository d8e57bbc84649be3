package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type ReviewHandler struct {
	useCase domain.ReviewUseCase
	log     *logrus.Logger
}

func NewReviewHandler(uc domain.ReviewUseCase, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{useCase: uc, log: logger}
}

func (h *ReviewHandler) RegisterRoutes(router gin.IRouter) {
	reviews := router.Group("/reviews")
	{
		reviews.POST("", h.CreateReview)
		reviews.GET("", h.ListReviews)
		reviews.GET("/:id", h.GetReviewByID)
		reviews.PATCH("/:id", h.PatchReview)
		reviews.DELETE("/:id", h.DeleteReview)
	}
}

type createReviewRequest struct {
	UserID    int64  `json:"userId" binding:"required"`
	ProductID int64  `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"max=600"`
}

type patchReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=600"`
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create review: %v", err)
		writeBindingError(c, err)
		return
	}

	review, err := h.useCase.CreateReview(&domain.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.log.Warnf("Failed to create review for product %d: %v", req.ProductID, err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var productID int64
	if raw := c.Query("productId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeError(c, http.StatusBadRequest, "Invalid productId query parameter: "+raw, nil)
			return
		}
		productID = parsed
	}

	reviews, err := h.useCase.ListReviews(productID)
	if err != nil {
		h.log.Errorf("Failed to list reviews: %v", err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReviewByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	review, err := h.useCase.GetReviewByID(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) PatchReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req patchReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for patch review %d: %v", id, err)
		writeBindingError(c, err)
		return
	}

	review, err := h.useCase.PatchReview(id, domain.ReviewPatch{Rating: req.Rating, Comment: req.Comment})
	if err != nil {
		h.log.Warnf("Failed to patch review %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.useCase.DeleteReview(id); err != nil {
		h.log.Warnf("Failed to delete review %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
