package usecase

import (
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type orderUseCase struct {
	orderRepo domain.OrderRepository
	userRepo  domain.UserRepository
	log       *logrus.Logger
}

func NewOrderUseCase(oRepo domain.OrderRepository, uRepo domain.UserRepository, logger *logrus.Logger) domain.OrderUseCase {
	return &orderUseCase{orderRepo: oRepo, userRepo: uRepo, log: logger}
}

// CreateOrder resolves the buyer, then hands the requested lines to the
// repository, which prices them, decrements stock and persists the order in
// a single all-or-nothing transaction.
func (uc *orderUseCase) CreateOrder(userID int64, lines []domain.OrderLine) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, domain.BadRequestf("order must contain at least one item")
	}

	if _, err := uc.userRepo.GetUserByID(userID); err != nil {
		uc.log.Warnf("Use Case: Buyer %d could not be resolved: %v", userID, err)
		return nil, err
	}

	order, err := uc.orderRepo.CreateOrder(userID, lines)
	if err != nil {
		uc.log.Warnf("Use Case: Order creation failed for user %d: %v", userID, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Order %d created for user %d, total %s", order.ID, userID, order.Total)
	return order, nil
}

func (uc *orderUseCase) GetOrderByID(id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid order ID")
	}
	return uc.orderRepo.GetOrderByID(id)
}

func (uc *orderUseCase) ListOrders() ([]domain.Order, error) {
	return uc.orderRepo.ListOrders()
}

// PatchOrderStatus enforces the status state machine: CREATED may move to
// PAID or CANCELLED exactly once, and both of those are terminal.
func (uc *orderUseCase) PatchOrderStatus(id int64, rawStatus string) (*domain.Order, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid order ID")
	}

	target, err := domain.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusCreated {
		uc.log.Warnf("Use Case: Rejected status change for order %d, current status %s is terminal", id, order.Status)
		return nil, domain.Conflictf("order status cannot be changed after it is %s", order.Status)
	}
	if target == domain.StatusCreated {
		return nil, domain.BadRequestf("order is already CREATED")
	}

	updated, err := uc.orderRepo.UpdateOrderStatus(id, target)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update status for order %d: %v", id, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Order %d status updated to %s", updated.ID, updated.Status)
	return updated, nil
}

func (uc *orderUseCase) DeleteOrder(id int64) error {
	if id <= 0 {
		return domain.BadRequestf("invalid order ID")
	}
	return uc.orderRepo.DeleteOrder(id)
}
