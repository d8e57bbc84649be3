package usecase

import (
	"io"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// In-memory repository fakes. They honor the same contracts as the postgres
// implementations, including the all-or-nothing order creation sequence, so
// the use case tests exercise the real workflow semantics.

type fakeUserRepo struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]domain.User{}}
}

func (f *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return nil, domain.Conflictf("email already exists")
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = *user
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.NotFoundf("user with id %d not found", id)
	}
	return &user, nil
}

func (f *fakeUserRepo) ListUsers() ([]domain.User, error) {
	users := []domain.User{}
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateUser(user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.ID]; !ok {
		return nil, domain.NotFoundf("user with id %d not found", user.ID)
	}
	f.users[user.ID] = *user
	return user, nil
}

func (f *fakeUserRepo) DeleteUser(id int64) error {
	if _, ok := f.users[id]; !ok {
		return domain.NotFoundf("user with id %d not found", id)
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) EmailExists(email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryRepo struct {
	categories map[int64]domain.Category
	nextID     int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int64]domain.Category{}}
}

func (f *fakeCategoryRepo) CreateCategory(category *domain.Category) (*domain.Category, error) {
	for _, existing := range f.categories {
		if existing.Name == category.Name || existing.Slug == category.Slug {
			return nil, domain.Conflictf("category with name '%s' already exists", category.Name)
		}
	}
	f.nextID++
	category.ID = f.nextID
	f.categories[category.ID] = *category
	return category, nil
}

func (f *fakeCategoryRepo) GetCategoryByID(id int64) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, domain.NotFoundf("category with id %d not found", id)
	}
	return &category, nil
}

func (f *fakeCategoryRepo) ListCategories() ([]domain.Category, error) {
	categories := []domain.Category{}
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) UpdateCategory(category *domain.Category) (*domain.Category, error) {
	if _, ok := f.categories[category.ID]; !ok {
		return nil, domain.NotFoundf("category with id %d not found", category.ID)
	}
	for id, existing := range f.categories {
		if id != category.ID && (existing.Name == category.Name || existing.Slug == category.Slug) {
			return nil, domain.Conflictf("category with name '%s' already exists", category.Name)
		}
	}
	f.categories[category.ID] = *category
	return category, nil
}

func (f *fakeCategoryRepo) DeleteCategory(id int64) error {
	if _, ok := f.categories[id]; !ok {
		return domain.NotFoundf("category with id %d not found", id)
	}
	delete(f.categories, id)
	return nil
}

type fakeProductRepo struct {
	products map[int64]domain.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]domain.Product{}}
}

func (f *fakeProductRepo) CreateProduct(product *domain.Product) (*domain.Product, error) {
	for _, existing := range f.products {
		if existing.SKU == product.SKU {
			return nil, domain.Conflictf("SKU already exists")
		}
	}
	f.nextID++
	product.ID = f.nextID
	f.products[product.ID] = *product
	return product, nil
}

func (f *fakeProductRepo) GetProductByID(id int64) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, domain.NotFoundf("product with id %d not found", id)
	}
	return &product, nil
}

func (f *fakeProductRepo) ListProducts() ([]domain.Product, error) {
	products := []domain.Product{}
	for _, product := range f.products {
		products = append(products, product)
	}
	return products, nil
}

func (f *fakeProductRepo) ListProductsByCategory(categoryID int64) ([]domain.Product, error) {
	products := []domain.Product{}
	for _, product := range f.products {
		if product.CategoryID == categoryID {
			products = append(products, product)
		}
	}
	return products, nil
}

func (f *fakeProductRepo) UpdateProduct(id int64, patch domain.ProductPatch) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, domain.NotFoundf("product with id %d not found", id)
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.SKU != nil {
		product.SKU = *patch.SKU
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.CategoryID != nil {
		product.CategoryID = *patch.CategoryID
	}
	f.products[id] = product
	return &product, nil
}

func (f *fakeProductRepo) DeleteProduct(id int64) error {
	if _, ok := f.products[id]; !ok {
		return domain.NotFoundf("product with id %d not found", id)
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) SKUExists(sku string) (bool, error) {
	for _, product := range f.products {
		if product.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) ExistsByCategory(categoryID int64) (bool, error) {
	for _, product := range f.products {
		if product.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

// fakeOrderRepo shares product state with a fakeProductRepo so tests can
// observe stock decrements and rollbacks.
type fakeOrderRepo struct {
	products *fakeProductRepo
	orders   map[int64]domain.Order
	nextID   int64
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{products: products, orders: map[int64]domain.Order{}}
}

func (f *fakeOrderRepo) CreateOrder(userID int64, lines []domain.OrderLine) (*domain.Order, error) {
	order := domain.Order{UserID: userID, Status: domain.StatusCreated, Total: decimal.Zero}

	// Staged stock view; applied only if every line passes.
	stockView := map[int64]int{}
	for _, line := range lines {
		product, ok := f.products.products[line.ProductID]
		if !ok {
			return nil, domain.NotFoundf("product with id %d not found", line.ProductID)
		}
		if line.Quantity <= 0 {
			return nil, domain.BadRequestf("quantity must be >= 1 for product %d", line.ProductID)
		}
		remaining, seen := stockView[line.ProductID]
		if !seen {
			remaining = product.Stock
		}
		if remaining < line.Quantity {
			return nil, domain.BadRequestf("insufficient stock for product %d", line.ProductID)
		}
		stockView[line.ProductID] = remaining - line.Quantity

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   line.ProductID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			LineTotal:   lineTotal,
		})
		order.Total = order.Total.Add(lineTotal)
	}

	for id, remaining := range stockView {
		product := f.products.products[id]
		product.Stock = remaining
		f.products.products[id] = product
	}

	f.nextID++
	order.ID = f.nextID
	f.orders[order.ID] = order
	return &order, nil
}

func (f *fakeOrderRepo) GetOrderByID(id int64) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.NotFoundf("order with id %d not found", id)
	}
	return &order, nil
}

func (f *fakeOrderRepo) ListOrders() ([]domain.Order, error) {
	orders := []domain.Order{}
	for _, order := range f.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(id int64, status domain.OrderStatus) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.NotFoundf("order with id %d not found", id)
	}
	order.Status = status
	f.orders[id] = order
	return &order, nil
}

func (f *fakeOrderRepo) DeleteOrder(id int64) error {
	if _, ok := f.orders[id]; !ok {
		return domain.NotFoundf("order with id %d not found", id)
	}
	delete(f.orders, id)
	return nil
}

type fakeReviewRepo struct {
	reviews map[int64]domain.Review
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[int64]domain.Review{}}
}

func (f *fakeReviewRepo) CreateReview(review *domain.Review) (*domain.Review, error) {
	f.nextID++
	review.ID = f.nextID
	f.reviews[review.ID] = *review
	return review, nil
}

func (f *fakeReviewRepo) GetReviewByID(id int64) (*domain.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, domain.NotFoundf("review with id %d not found", id)
	}
	return &review, nil
}

func (f *fakeReviewRepo) ListReviews() ([]domain.Review, error) {
	reviews := []domain.Review{}
	for _, review := range f.reviews {
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (f *fakeReviewRepo) ListReviewsByProduct(productID int64) ([]domain.Review, error) {
	reviews := []domain.Review{}
	for _, review := range f.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (f *fakeReviewRepo) UpdateReview(id int64, patch domain.ReviewPatch) (*domain.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, domain.NotFoundf("review with id %d not found", id)
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.Comment != nil {
		review.Comment = *patch.Comment
	}
	f.reviews[id] = review
	return &review, nil
}

func (f *fakeReviewRepo) DeleteReview(id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return domain.NotFoundf("review with id %d not found", id)
	}
	delete(f.reviews, id)
	return nil
}
