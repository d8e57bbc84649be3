package usecase

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) domain.ProductUseCase {
	return &productUseCase{productRepo: pRepo, categoryRepo: cRepo, log: logger}
}

func (uc *productUseCase) CreateProduct(product *domain.Product) (*domain.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	product.SKU = strings.TrimSpace(product.SKU)

	if product.Name == "" {
		return nil, domain.BadRequestf("product name cannot be empty")
	}
	if product.SKU == "" {
		return nil, domain.BadRequestf("product SKU cannot be empty")
	}
	if !product.Price.IsPositive() {
		return nil, domain.BadRequestf("product price must be positive")
	}
	if product.Stock < 0 {
		return nil, domain.BadRequestf("product stock cannot be negative")
	}

	if _, err := uc.categoryRepo.GetCategoryByID(product.CategoryID); err != nil {
		uc.log.Warnf("Use Case: Category %d not found during product creation", product.CategoryID)
		return nil, err
	}

	taken, err := uc.productRepo.SKUExists(product.SKU)
	if err != nil {
		return nil, err
	}
	if taken {
		uc.log.Warnf("Use Case: Product creation rejected, SKU already exists: %s", product.SKU)
		return nil, domain.Conflictf("SKU already exists")
	}

	created, err := uc.productRepo.CreateProduct(product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Product '%s' created with ID %d", created.Name, created.ID)
	return created, nil
}

func (uc *productUseCase) GetProductByID(id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid product ID")
	}
	return uc.productRepo.GetProductByID(id)
}

// ListProducts returns every product, or only those in the given category
// when categoryID is positive.
func (uc *productUseCase) ListProducts(categoryID int64) ([]domain.Product, error) {
	if categoryID > 0 {
		return uc.productRepo.ListProductsByCategory(categoryID)
	}
	return uc.productRepo.ListProducts()
}

func (uc *productUseCase) PatchProduct(id int64, patch domain.ProductPatch) (*domain.Product, error) {
	if id <= 0 {
		return nil, domain.BadRequestf("invalid product ID")
	}

	current, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		if trimmed == "" {
			return nil, domain.BadRequestf("product name cannot be empty")
		}
		patch.Name = &trimmed
	}
	if patch.SKU != nil {
		trimmed := strings.TrimSpace(*patch.SKU)
		if trimmed == "" {
			return nil, domain.BadRequestf("product SKU cannot be empty")
		}
		if trimmed != current.SKU {
			taken, err := uc.productRepo.SKUExists(trimmed)
			if err != nil {
				return nil, err
			}
			if taken {
				uc.log.Warnf("Use Case: Product patch rejected for ID %d, SKU already exists: %s", id, trimmed)
				return nil, domain.Conflictf("SKU already exists")
			}
		}
		patch.SKU = &trimmed
	}
	if patch.Price != nil && !patch.Price.IsPositive() {
		return nil, domain.BadRequestf("product price must be positive")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, domain.BadRequestf("product stock cannot be negative")
	}
	if patch.CategoryID != nil {
		if _, err := uc.categoryRepo.GetCategoryByID(*patch.CategoryID); err != nil {
			return nil, err
		}
	}

	return uc.productRepo.UpdateProduct(id, patch)
}

func (uc *productUseCase) DeleteProduct(id int64) error {
	if id <= 0 {
		return domain.BadRequestf("invalid product ID")
	}
	return uc.productRepo.DeleteProduct(id)
}
