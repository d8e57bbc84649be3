package domain

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryRepository interface {
	CreateCategory(category *Category) (*Category, error)
	GetCategoryByID(id int64) (*Category, error)
	ListCategories() ([]Category, error)
	UpdateCategory(category *Category) (*Category, error)
	DeleteCategory(id int64) error
}

type CategoryUseCase interface {
	CreateCategory(name string) (*Category, error)
	GetCategoryByID(id int64) (*Category, error)
	ListCategories() ([]Category, error)
	UpdateCategory(id int64, name string) (*Category, error)
	DeleteCategory(id int64) error
}
