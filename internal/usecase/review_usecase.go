package usecase

import (
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

const maxCommentLength = 600

type reviewUseCase struct {
	reviewRepo  domain.ReviewRepository
	userRepo    domain.UserRepository
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewReviewUseCase(rRepo domain.ReviewRepository, uRepo domain.UserRepository, pRepo domain.ProductRepository, logger *logrus.Logger) domain.ReviewUseCase {
	return &reviewUseCase{reviewRepo: rRepo, userRepo: uRepo, productRepo: pRepo, log: logger}
}

func (uc *reviewUseCase) CreateReview(review *domain.Review) (*domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, domain.BadRequestf("rating must be between 1 and 5")
	}
	if len(review.Comment) > maxCommentLength {
		return nil, domain.BadRequestf("comment must be at most %d characters", maxCommentLength)
	}

	if _, err := uc.userRepo.GetUserByID(review.UserID); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.GetProductByID(review.ProductID); err != nil {
		return nil, err
	}

	created, err := uc.reviewRepo.CreateReview(review)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create review for product %d: %v", review.ProductID, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Review %d created for product %d by user %d", created.ID, created.ProductID, created.UserID)
	return created, nil
}

func (uc *reviewUseCase) GetReviewByID(id int64) (*domain.Review, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid review ID")
	}
	return uc.reviewRepo.GetReviewByID(id)
}

// ListReviews returns every review, or only those for the given product
// when productID is positive.
func (uc *reviewUseCase) ListReviews(productID int64) ([]domain.Review, error) {
	if productID > 0 {
		return uc.reviewRepo.ListReviewsByProduct(productID)
	}
	return uc.reviewRepo.ListReviews()
}

func (uc *reviewUseCase) PatchReview(id int64, patch domain.ReviewPatch) (*domain.Review, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid review ID")
	}
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
		return nil, domain.BadRequestf("rating must be between 1 and 5")
	}
	if patch.Comment != nil && len(*patch.Comment) > maxCommentLength {
		return nil, domain.BadRequestf("comment must be at most %d characters", maxCommentLength)
	}
	return uc.reviewRepo.UpdateReview(id, patch)
}

func (uc *reviewUseCase) DeleteReview(id int64) error {
	if id <= 0 {
		return domain.BadRequestf("invalid review ID")
	}
	return uc.reviewRepo.DeleteReview(id)
}
