package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/batuhanmkrk/minicommerce/internal/domain"
)

type postgresOrderRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresOrderRepository(db *sql.DB, logger *logrus.Logger) domain.OrderRepository {
	return &postgresOrderRepository{db: db, log: logger}
}

// CreateOrder runs the whole creation sequence inside one transaction:
// resolve each product in request order, validate quantity against current
// stock, decrement the stock, snapshot the unit price, then insert the order
// and its items. A failure on any line rolls everything back, so stock
// decremented for earlier lines never becomes visible.
func (r *postgresOrderRepository) CreateOrder(userID int64, lines []domain.OrderLine) (order *domain.Order, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		r.log.Errorf("Failed to begin transaction: %v", err)
		return nil, domain.Internalf(err, "could not start transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Errorf("Failed to rollback transaction: %v (original error: %v)", rbErr, err)
			}
		} else if cErr := tx.Commit(); cErr != nil {
			r.log.Errorf("Failed to commit transaction: %v", cErr)
			order = nil
			err = domain.Internalf(cErr, "failed to commit order transaction")
		}
	}()

	order = &domain.Order{
		UserID: userID,
		Status: domain.StatusCreated,
		Total:  decimal.Zero,
	}

	for _, line := range lines {
		var (
			productName string
			unitPrice   decimal.Decimal
			stock       int
		)
		// TODO: two concurrent orders can both pass this check and oversell
		// the product; needs SELECT ... FOR UPDATE or a conditional decrement.
		err = tx.QueryRow(`SELECT name, price, stock FROM products WHERE id = $1`, line.ProductID).
			Scan(&productName, &unitPrice, &stock)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				err = domain.NotFoundf("product with id %d not found", line.ProductID)
				return nil, err
			}
			r.log.Errorf("Failed to resolve product %d for order: %v", line.ProductID, err)
			err = domain.Internalf(err, "could not resolve product")
			return nil, err
		}

		if line.Quantity <= 0 {
			err = domain.BadRequestf("quantity must be >= 1 for product %d", line.ProductID)
			return nil, err
		}
		if stock < line.Quantity {
			r.log.Warnf("Insufficient stock for product %d (requested: %d, available: %d)", line.ProductID, line.Quantity, stock)
			err = domain.BadRequestf("insufficient stock for product %d", line.ProductID)
			return nil, err
		}

		_, err = tx.Exec(`UPDATE products SET stock = stock - $1 WHERE id = $2`, line.Quantity, line.ProductID)
		if err != nil {
			r.log.Errorf("Failed to decrement stock for product %d: %v", line.ProductID, err)
			err = domain.Internalf(err, "could not decrement stock")
			return nil, err
		}

		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   line.ProductID,
			ProductName: productName,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		})
		order.Total = order.Total.Add(lineTotal)
	}

	err = tx.QueryRow(
		`INSERT INTO orders (user_id, status, total) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		order.UserID, order.Status, order.Total,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		r.log.Errorf("Failed to insert order for user %d: %v", userID, err)
		err = domain.Internalf(err, "could not create order entry")
		return nil, err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO order_items (order_id, product_id, quantity, unit_price, line_total) VALUES ($1, $2, $3, $4, $5)`,
	)
	if err != nil {
		r.log.Errorf("Failed to prepare order item statement: %v", err)
		err = domain.Internalf(err, "could not prepare item statement")
		return nil, err
	}
	defer stmt.Close()

	for _, item := range order.Items {
		if _, err = stmt.Exec(order.ID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal); err != nil {
			r.log.Errorf("Failed to insert order item (product %d) for order %d: %v", item.ProductID, order.ID, err)
			err = domain.Internalf(err, "could not create order item")
			return nil, err
		}
	}

	r.log.Infof("Order %d created for user %d with %d items, total %s", order.ID, userID, len(order.Items), order.Total)
	return order, nil
}

func (r *postgresOrderRepository) GetOrderByID(id int64) (*domain.Order, error) {
	order := &domain.Order{}
	query := `SELECT id, user_id, status, total, created_at, updated_at FROM orders WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&order.ID, &order.UserID, &order.Status, &order.Total, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("order with id %d not found", id)
		}
		r.log.Errorf("Failed to get order by ID %d: %v", id, err)
		return nil, domain.Internalf(err, "could not retrieve order")
	}

	items, err := r.getOrderItems(id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *postgresOrderRepository) getOrderItems(orderID int64) ([]domain.OrderItem, error) {
	query := `
        SELECT oi.product_id, p.name, oi.quantity, oi.unit_price, oi.line_total
        FROM order_items oi
        JOIN products p ON p.id = oi.product_id
        WHERE oi.order_id = $1
        ORDER BY oi.id ASC`
	rows, err := r.db.Query(query, orderID)
	if err != nil {
		r.log.Errorf("Failed to query order items for order %d: %v", orderID, err)
		return nil, domain.Internalf(err, "could not retrieve order items")
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, domain.Internalf(err, "error scanning order item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internalf(err, "error iterating order items")
	}
	return items, nil
}

func (r *postgresOrderRepository) ListOrders() ([]domain.Order, error) {
	query := `SELECT id, user_id, status, total, created_at, updated_at FROM orders ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list orders: %v", err)
		return nil, domain.Internalf(err, "could not retrieve orders")
	}
	defer rows.Close()

	orders := []domain.Order{}
	orderIDs := []int64{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Status, &order.Total, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, domain.Internalf(err, "error scanning order data")
		}
		orders = append(orders, order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internalf(err, "error iterating orders")
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemsQuery := `
        SELECT oi.order_id, oi.product_id, p.name, oi.quantity, oi.unit_price, oi.line_total
        FROM order_items oi
        JOIN products p ON p.id = oi.product_id
        WHERE oi.order_id = ANY($1::bigint[])
        ORDER BY oi.order_id, oi.id`
	itemRows, err := r.db.Query(itemsQuery, pq.Array(orderIDs))
	if err != nil {
		r.log.Errorf("Failed to query items for orders %v: %v", orderIDs, err)
		return nil, domain.Internalf(err, "could not retrieve order items for list")
	}
	defer itemRows.Close()

	itemsMap := make(map[int64][]domain.OrderItem)
	for itemRows.Next() {
		var (
			orderID int64
			item    domain.OrderItem
		)
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, domain.Internalf(err, "error scanning order item data for list")
		}
		itemsMap[orderID] = append(itemsMap[orderID], item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, domain.Internalf(err, "error iterating order items for list")
	}

	for i := range orders {
		if items, ok := itemsMap[orders[i].ID]; ok {
			orders[i].Items = items
		} else {
			orders[i].Items = []domain.OrderItem{}
		}
	}
	return orders, nil
}

func (r *postgresOrderRepository) UpdateOrderStatus(id int64, status domain.OrderStatus) (*domain.Order, error) {
	order := &domain.Order{}
	query := `
        UPDATE orders
        SET status = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING id, user_id, status, total, created_at, updated_at`
	err := r.db.QueryRow(query, status, id).Scan(
		&order.ID, &order.UserID, &order.Status, &order.Total, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("order with id %d not found", id)
		}
		r.log.Errorf("Failed to update status for order %d: %v", id, err)
		return nil, domain.Internalf(err, "could not update order status")
	}

	items, err := r.getOrderItems(id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	r.log.Infof("Order %d status updated to %s", order.ID, order.Status)
	return order, nil
}

func (r *postgresOrderRepository) DeleteOrder(id int64) error {
	result, err := r.db.Exec(`DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete order ID %d: %v", id, err)
		return domain.Internalf(err, "could not delete order")
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internalf(err, "could not confirm order deletion")
	}
	if rowsAffected == 0 {
		return domain.NotFoundf("order with id %d not found", id)
	}
	r.log.Infof("Order deleted with ID %d", id)
	return nil
}
