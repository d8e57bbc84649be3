package repository

import (
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type postgresUserRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresUserRepository(db *sql.DB, logger *logrus.Logger) domain.UserRepository {
	return &postgresUserRepository{db: db, log: logger}
}

func (r *postgresUserRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (name, email)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, user.Name, user.Email).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pqErrorCode(err) == pqUniqueViolation {
			r.log.Warnf("Attempted to create user with duplicate email: %s", user.Email)
			return nil, domain.Conflictf("email already exists")
		}
		r.log.Errorf("Failed to create user '%s': %v", user.Email, err)
		return nil, domain.Internalf(err, "could not create user")
	}
	r.log.Infof("User created with ID %d", user.ID)
	return user, nil
}

func (r *postgresUserRepository) GetUserByID(id int64) (*domain.User, error) {
	query := `SELECT id, name, email, created_at, updated_at FROM users WHERE id = $1`
	user := &domain.User{}
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("user with id %d not found", id)
		}
		r.log.Errorf("Failed to get user by ID %d: %v", id, err)
		return nil, domain.Internalf(err, "could not get user by id")
	}
	return user, nil
}

func (r *postgresUserRepository) ListUsers() ([]domain.User, error) {
	query := `SELECT id, name, email, created_at, updated_at FROM users ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list users: %v", err)
		return nil, domain.Internalf(err, "could not list users")
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
			r.log.Errorf("Failed to scan user row: %v", err)
			return nil, domain.Internalf(err, "error scanning user data")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internalf(err, "error iterating users")
	}
	return users, nil
}

func (r *postgresUserRepository) UpdateUser(user *domain.User) (*domain.User, error) {
	query := `
        UPDATE users
        SET name = $1, email = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING id, name, email, created_at, updated_at`
	err := r.db.QueryRow(query, user.Name, user.Email, user.ID).Scan(
		&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("user with id %d not found", user.ID)
		}
		if pqErrorCode(err) == pqUniqueViolation {
			r.log.Warnf("Attempted to update user %d to duplicate email: %s", user.ID, user.Email)
			return nil, domain.Conflictf("email already exists")
		}
		r.log.Errorf("Failed to update user ID %d: %v", user.ID, err)
		return nil, domain.Internalf(err, "could not update user")
	}
	r.log.Infof("User updated with ID %d", user.ID)
	return user, nil
}

func (r *postgresUserRepository) DeleteUser(id int64) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete user ID %d: %v", id, err)
		return domain.Internalf(err, "could not delete user")
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internalf(err, "could not confirm user deletion")
	}
	if rowsAffected == 0 {
		return domain.NotFoundf("user with id %d not found", id)
	}
	r.log.Infof("User deleted with ID %d", id)
	return nil
}

func (r *postgresUserRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		r.log.Errorf("Failed to check email existence for '%s': %v", email, err)
		return false, domain.Internalf(err, "could not check email existence")
	}
	return exists, nil
}
