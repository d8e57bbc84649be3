package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type OrderHandler struct {
	useCase domain.OrderUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc domain.OrderUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{useCase: uc, log: logger}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	orders := router.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrderByID)
		orders.PATCH("/:id", h.PatchOrderStatus)
		orders.DELETE("/:id", h.DeleteOrder)
	}
}

type createOrderItem struct {
	ProductID int64 `json:"productId" binding:"required"`
	// Quantity is validated by the order workflow so that a missing product
	// on the same line still surfaces as 404 first.
	Quantity int `json:"quantity"`
}

type createOrderRequest struct {
	UserID int64             `json:"userId" binding:"required"`
	Items  []createOrderItem `json:"items" binding:"required,min=1,dive"`
}

type patchOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create order: %v", err)
		writeBindingError(c, err)
		return
	}

	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, domain.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.useCase.CreateOrder(req.UserID, lines)
	if err != nil {
		h.log.Warnf("Failed to create order for user %d: %v", req.UserID, err)
		writeDomainError(c, err)
		return
	}
	h.log.Infof("Order %d created for user %d", order.ID, order.UserID)
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.useCase.ListOrders()
	if err != nil {
		h.log.Errorf("Failed to list orders: %v", err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.useCase.GetOrderByID(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) PatchOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req patchOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for patch order %d: %v", id, err)
		writeBindingError(c, err)
		return
	}

	order, err := h.useCase.PatchOrderStatus(id, req.Status)
	if err != nil {
		h.log.Warnf("Failed to patch status for order %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.useCase.DeleteOrder(id); err != nil {
		h.log.Warnf("Failed to delete order %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
