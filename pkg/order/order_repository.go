package order

import (
	"context"
	"time"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"gorm.io/gorm"
)

type (
	OrderLineRow struct {
		Quantity  int
		UnitPrice float64
		ItemName  string
	}

	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order, items []entities.OrderItem) error
		GetByID(ctx context.Context, id string) (*entities.Order, error)
		GetByBillNumber(ctx context.Context, billNumber string) (*entities.Order, error)
		LinesForTable(ctx context.Context, tableID string) ([]OrderLineRow, error)
		MarkSettled(ctx context.Context, id string, at time.Time) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder writes the order row, its derived bill number, and every
// line item inside one transaction; a failure anywhere rolls the whole
// order back so the kitchen never sees a partial one.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order, items []entities.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		order.BillNumber = domain.BillPrefix + order.ID.String()
		if err := tx.Model(&entities.Order{}).
			Where("id = ?", order.ID).
			Update("bill_number", order.BillNumber).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByBillNumber(ctx context.Context, billNumber string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Where("bill_number = ?", billNumber).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) LinesForTable(ctx context.Context, tableID string) ([]OrderLineRow, error) {
	var rows []OrderLineRow
	err := r.db.WithContext(ctx).
		Model(&entities.OrderItem{}).
		Select("order_items.quantity, order_items.unit_price, menu_items.name AS item_name").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.table_id = ?", tableID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *orderRepository) MarkSettled(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ? AND settled_at IS NULL", id).
		Update("settled_at", at).Error
}
