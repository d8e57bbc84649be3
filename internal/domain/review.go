package domain

type Review struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ReviewPatch carries a partial update; nil fields are left untouched.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

type ReviewRepository interface {
	CreateReview(review *Review) (*Review, error)
	GetReviewByID(id int64) (*Review, error)
	ListReviews() ([]Review, error)
	ListReviewsByProduct(productID int64) ([]Review, error)
	UpdateReview(id int64, patch ReviewPatch) (*Review, error)
	DeleteReview(id int64) error
}

type ReviewUseCase interface {
	CreateReview(review *Review) (*Review, error)
	GetReviewByID(id int64) (*Review, error)
	ListReviews(productID int64) ([]Review, error)
	PatchReview(id int64, patch ReviewPatch) (*Review, error)
	DeleteReview(id int64) error
}
