package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type postgresReviewRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresReviewRepository(db *sql.DB, logger *logrus.Logger) domain.ReviewRepository {
	return &postgresReviewRepository{db: db, log: logger}
}

func (r *postgresReviewRepository) CreateReview(review *domain.Review) (*domain.Review, error) {
	query := `
        INSERT INTO reviews (user_id, product_id, rating, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	err := r.db.QueryRow(query, review.UserID, review.ProductID, review.Rating, review.Comment).Scan(&review.ID)
	if err != nil {
		switch pqErrorCode(err) {
		case pqForeignKeyViolation:
			return nil, domain.NotFoundf("user or product referenced by review not found")
		case pqCheckViolation:
			return nil, domain.BadRequestf("rating must be between 1 and 5")
		}
		r.log.Errorf("Failed to create review for product %d: %v", review.ProductID, err)
		return nil, domain.Internalf(err, "could not create review")
	}
	r.log.Infof("Review created with ID %d for product %d", review.ID, review.ProductID)
	return review, nil
}

func (r *postgresReviewRepository) GetReviewByID(id int64) (*domain.Review, error) {
	query := `SELECT id, user_id, product_id, rating, comment FROM reviews WHERE id = $1`
	review := &domain.Review{}
	var comment sql.NullString
	err := r.db.QueryRow(query, id).Scan(&review.ID, &review.UserID, &review.ProductID, &review.Rating, &comment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("review with id %d not found", id)
		}
		r.log.Errorf("Failed to get review by ID %d: %v", id, err)
		return nil, domain.Internalf(err, "could not get review by id")
	}
	review.Comment = comment.String
	return review, nil
}

func (r *postgresReviewRepository) ListReviews() ([]domain.Review, error) {
	return r.queryReviews(`SELECT id, user_id, product_id, rating, comment FROM reviews ORDER BY id ASC`)
}

func (r *postgresReviewRepository) ListReviewsByProduct(productID int64) ([]domain.Review, error) {
	return r.queryReviews(`SELECT id, user_id, product_id, rating, comment FROM reviews WHERE product_id = $1 ORDER BY id ASC`, productID)
}

func (r *postgresReviewRepository) queryReviews(query string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.log.Errorf("Failed to list reviews: %v", err)
		return nil, domain.Internalf(err, "could not list reviews")
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var review domain.Review
		var comment sql.NullString
		if err := rows.Scan(&review.ID, &review.UserID, &review.ProductID, &review.Rating, &comment); err != nil {
			return nil, domain.Internalf(err, "error scanning review data")
		}
		review.Comment = comment.String
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internalf(err, "error iterating reviews")
	}
	return reviews, nil
}

func (r *postgresReviewRepository) UpdateReview(id int64, patch domain.ReviewPatch) (*domain.Review, error) {
	if patch.Rating == nil && patch.Comment == nil {
		return r.GetReviewByID(id)
	}

	setClauses := []string{}
	args := []interface{}{}
	arg := func(value interface{}) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}
	if patch.Rating != nil {
		setClauses = append(setClauses, "rating = "+arg(*patch.Rating))
	}
	if patch.Comment != nil {
		setClauses = append(setClauses, "comment = "+arg(*patch.Comment))
	}

	query := "UPDATE reviews SET " + strings.Join(setClauses, ", ") + " WHERE id = " + arg(id)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		if pqErrorCode(err) == pqCheckViolation {
			return nil, domain.BadRequestf("rating must be between 1 and 5")
		}
		r.log.Errorf("Failed to update review ID %d: %v", id, err)
		return nil, domain.Internalf(err, "could not update review")
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, domain.Internalf(err, "could not confirm review update")
	}
	if rowsAffected == 0 {
		return nil, domain.NotFoundf("review with id %d not found", id)
	}
	r.log.Infof("Review updated with ID %d", id)
	return r.GetReviewByID(id)
}

func (r *postgresReviewRepository) DeleteReview(id int64) error {
	result, err := r.db.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete review ID %d: %v", id, err)
		return domain.Internalf(err, "could not delete review")
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internalf(err, "could not confirm review deletion")
	}
	if rowsAffected == 0 {
		return domain.NotFoundf("review with id %d not found", id)
	}
	r.log.Infof("Review deleted with ID %d", id)
	return nil
}
