package usecase

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type userUseCase struct {
	userRepo domain.UserRepository
	log      *logrus.Logger
}

func NewUserUseCase(repo domain.UserRepository, logger *logrus.Logger) domain.UserUseCase {
	return &userUseCase{userRepo: repo, log: logger}
}

func (uc *userUseCase) CreateUser(name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = domain.NormalizeEmail(email)

	if name == "" {
		return nil, domain.BadRequestf("user name cannot be empty")
	}
	if email == "" {
		return nil, domain.BadRequestf("user email cannot be empty")
	}

	exists, err := uc.userRepo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		uc.log.Warnf("Use Case: Registration rejected, email already exists: %s", email)
		return nil, domain.Conflictf("email already exists")
	}

	created, err := uc.userRepo.CreateUser(&domain.User{Name: name, Email: email})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create user %s: %v", email, err)
		return nil, err
	}
	uc.log.Infof("Use Case: User created with ID %d, email %s", created.ID, created.Email)
	return created, nil
}

func (uc *userUseCase) GetUserByID(id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid user ID")
	}
	return uc.userRepo.GetUserByID(id)
}

func (uc *userUseCase) ListUsers() ([]domain.User, error) {
	return uc.userRepo.ListUsers()
}

func (uc *userUseCase) UpdateUser(id int64, name, email string) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid user ID")
	}
	name = strings.TrimSpace(name)
	email = domain.NormalizeEmail(email)
	if name == "" {
		return nil, domain.BadRequestf("user name cannot be empty")
	}
	if email == "" {
		return nil, domain.BadRequestf("user email cannot be empty")
	}

	current, err := uc.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if current.Email != email {
		exists, err := uc.userRepo.EmailExists(email)
		if err != nil {
			return nil, err
		}
		if exists {
			uc.log.Warnf("Use Case: Update rejected for user %d, email already exists: %s", id, email)
			return nil, domain.Conflictf("email already exists")
		}
	}

	current.Name = name
	current.Email = email
	return uc.userRepo.UpdateUser(current)
}

func (uc *userUseCase) DeleteUser(id int64) error {
	if id <= 0 {
		return domain.BadRequestf("invalid user ID")
	}
	return uc.userRepo.DeleteUser(id)
}
