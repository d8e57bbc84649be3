package delivery

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type stubUserUseCase struct {
	createFn func(name, email string) (*domain.User, error)
	updateFn func(id int64, name, email string) (*domain.User, error)
}

func (s *stubUserUseCase) CreateUser(name, email string) (*domain.User, error) {
	return s.createFn(name, email)
}

func (s *stubUserUseCase) GetUserByID(id int64) (*domain.User, error) {
	return nil, domain.NotFoundf("user with id %d not found", id)
}

func (s *stubUserUseCase) ListUsers() ([]domain.User, error) {
	return []domain.User{}, nil
}

func (s *stubUserUseCase) UpdateUser(id int64, name, email string) (*domain.User, error) {
	return s.updateFn(id, name, email)
}

func (s *stubUserUseCase) DeleteUser(id int64) error {
	return domain.NotFoundf("user with id %d not found", id)
}

func newUserRouter(uc domain.UserUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewUserHandler(uc, testLogger()).RegisterRoutes(api)
	return router
}

func TestCreateUserHandlerReturns201(t *testing.T) {
	uc := &stubUserUseCase{
		createFn: func(name, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Name: name, Email: email}, nil
		},
	}
	recorder := performRequest(newUserRouter(uc), http.MethodPost, "/api/users",
		`{"name": "Ada", "email": "ada@example.com"}`)

	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
}

func TestCreateUserHandlerInvalidEmail(t *testing.T) {
	recorder := performRequest(newUserRouter(&stubUserUseCase{}), http.MethodPost, "/api/users",
		`{"name": "Ada", "email": "not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	apiErr := decodeAPIError(t, recorder)
	require.Len(t, apiErr.Violations, 1)
	assert.Equal(t, "email", apiErr.Violations[0].Field)
	assert.Equal(t, "must be a valid email address", apiErr.Violations[0].Message)
}

func TestCreateUserHandlerDuplicateEmail(t *testing.T) {
	uc := &stubUserUseCase{
		createFn: func(string, string) (*domain.User, error) {
			return nil, domain.Conflictf("email already exists")
		},
	}
	recorder := performRequest(newUserRouter(uc), http.MethodPost, "/api/users",
		`{"name": "Ada", "email": "ada@example.com"}`)

	require.Equal(t, http.StatusConflict, recorder.Code)
	apiErr := decodeAPIError(t, recorder)
	assert.Equal(t, "email already exists", apiErr.Message)
}

func TestGetUserHandlerMalformedID(t *testing.T) {
	recorder := performRequest(newUserRouter(&stubUserUseCase{}), http.MethodGet, "/api/users/-3", "")

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	apiErr := decodeAPIError(t, recorder)
	assert.Contains(t, apiErr.Message, "Invalid ID format")
}
