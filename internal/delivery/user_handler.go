package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type UserHandler struct {
	useCase domain.UserUseCase
	log     *logrus.Logger
}

func NewUserHandler(uc domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{useCase: uc, log: logger}
}

func (h *UserHandler) RegisterRoutes(router gin.IRouter) {
	users := router.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUserByID)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

type userRequest struct {
	Name  string `json:"name" binding:"required,max=80"`
	Email string `json:"email" binding:"required,email,max=200"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create user: %v", err)
		writeBindingError(c, err)
		return
	}

	user, err := h.useCase.CreateUser(req.Name, req.Email)
	if err != nil {
		h.log.Warnf("Failed to create user '%s': %v", req.Email, err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.useCase.ListUsers()
	if err != nil {
		h.log.Errorf("Failed to list users: %v", err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, err := h.useCase.GetUserByID(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for update user %d: %v", id, err)
		writeBindingError(c, err)
		return
	}

	user, err := h.useCase.UpdateUser(id, req.Name, req.Email)
	if err != nil {
		h.log.Warnf("Failed to update user %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.useCase.DeleteUser(id); err != nil {
		h.log.Warnf("Failed to delete user %d: %v", id, err)
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIDParam reads the :id path parameter; on a malformed or non-positive
// value it writes a 400 response and reports false.
func parseIDParam(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "Invalid ID format: "+idStr, nil)
		return 0, false
	}
	return id, true
}
