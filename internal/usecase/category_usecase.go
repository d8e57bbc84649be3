package usecase

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
	"github.com/batuhanmkrk/minicommerce/pkg/slug"
)

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	productRepo  domain.ProductRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(cRepo domain.CategoryRepository, pRepo domain.ProductRepository, logger *logrus.Logger) domain.CategoryUseCase {
	return &categoryUseCase{categoryRepo: cRepo, productRepo: pRepo, log: logger}
}

func (uc *categoryUseCase) CreateCategory(name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.BadRequestf("category name cannot be empty")
	}

	category := &domain.Category{Name: name, Slug: slug.Make(name)}
	created, err := uc.categoryRepo.CreateCategory(category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", name, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Category '%s' created with ID %d, slug '%s'", created.Name, created.ID, created.Slug)
	return created, nil
}

func (uc *categoryUseCase) GetCategoryByID(id int64) (*domain.Category, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid category ID")
	}
	return uc.categoryRepo.GetCategoryByID(id)
}

func (uc *categoryUseCase) ListCategories() ([]domain.Category, error) {
	return uc.categoryRepo.ListCategories()
}

func (uc *categoryUseCase) UpdateCategory(id int64, name string) (*domain.Category, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid category ID")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.BadRequestf("category name cannot be empty")
	}

	// The slug always tracks the current name.
	category := &domain.Category{ID: id, Name: name, Slug: slug.Make(name)}
	return uc.categoryRepo.UpdateCategory(category)
}

// DeleteCategory refuses to delete a category that still has products
// (restricted delete, surfaced as Conflict).
func (uc *categoryUseCase) DeleteCategory(id int64) error {
	if id <= 0 {
		return domain.BadRequestf("invalid category ID")
	}
	if _, err := uc.categoryRepo.GetCategoryByID(id); err != nil {
		return err
	}

	hasProducts, err := uc.productRepo.ExistsByCategory(id)
	if err != nil {
		return err
	}
	if hasProducts {
		uc.log.Warnf("Use Case: Refusing to delete category %d, products still reference it", id)
		return domain.Conflictf("category has products; delete or move products first")
	}
	return uc.categoryRepo.DeleteCategory(id)
}
