package repository

import (
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{db: db, log: logger}
}

func (r *postgresCategoryRepository) CreateCategory(category *domain.Category) (*domain.Category, error) {
	query := `INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(query, category.Name, category.Slug).Scan(&category.ID)
	if err != nil {
		if pqErrorCode(err) == pqUniqueViolation {
			r.log.Warnf("Attempted to create category with duplicate name or slug: %s", category.Name)
			return nil, domain.Conflictf("category with name '%s' already exists", category.Name)
		}
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return nil, domain.Internalf(err, "could not create category")
	}
	r.log.Infof("Category created with ID %d, Name %s", category.ID, category.Name)
	return category, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(id int64) (*domain.Category, error) {
	query := `SELECT id, name, slug FROM categories WHERE id = $1`
	category := &domain.Category{}
	err := r.db.QueryRow(query, id).Scan(&category.ID, &category.Name, &category.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("category with id %d not found", id)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, domain.Internalf(err, "could not get category by id")
	}
	return category, nil
}

func (r *postgresCategoryRepository) ListCategories() ([]domain.Category, error) {
	query := `SELECT id, name, slug FROM categories ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, domain.Internalf(err, "could not list categories")
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, domain.Internalf(err, "error scanning category data")
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internalf(err, "error iterating categories")
	}
	return categories, nil
}

func (r *postgresCategoryRepository) UpdateCategory(category *domain.Category) (*domain.Category, error) {
	query := `UPDATE categories SET name = $1, slug = $2 WHERE id = $3 RETURNING id, name, slug`
	err := r.db.QueryRow(query, category.Name, category.Slug, category.ID).Scan(
		&category.ID, &category.Name, &category.Slug,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("category with id %d not found", category.ID)
		}
		if pqErrorCode(err) == pqUniqueViolation {
			r.log.Warnf("Attempted to update category %d to duplicate name: %s", category.ID, category.Name)
			return nil, domain.Conflictf("category with name '%s' already exists", category.Name)
		}
		r.log.Errorf("Failed to update category ID %d: %v", category.ID, err)
		return nil, domain.Internalf(err, "could not update category")
	}
	r.log.Infof("Category updated with ID %d", category.ID)
	return category, nil
}

func (r *postgresCategoryRepository) DeleteCategory(id int64) error {
	result, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			r.log.Warnf("Attempted to delete category %d that still has products", id)
			return domain.Conflictf("category has products; delete or move products first")
		}
		r.log.Errorf("Failed to delete category ID %d: %v", id, err)
		return domain.Internalf(err, "could not delete category")
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internalf(err, "could not confirm category deletion")
	}
	if rowsAffected == 0 {
		return domain.NotFoundf("category with id %d not found", id)
	}
	r.log.Infof("Category deleted with ID %d", id)
	return nil
}
