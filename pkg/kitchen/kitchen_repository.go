package kitchen

import (
	"context"

	"github.com/Krithish69/Restaurant/entities"
	"gorm.io/gorm"
)

type (
	KitchenRepository interface {
		ListByStatus(ctx context.Context, status string) ([]*entities.Order, error)
		GetByID(ctx context.Context, orderID string) (*entities.Order, error)
		UpdateStatus(ctx context.Context, orderID string, from string, to string) (int64, error)
	}

	kitchenRepository struct {
		db *gorm.DB
	}
)

func NewKitchenRepository(db *gorm.DB) KitchenRepository {
	return &kitchenRepository{db: db}
}

func (r *kitchenRepository) ListByStatus(ctx context.Context, status string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Where("status = ?", status).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *kitchenRepository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Where("id = ?", orderID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus is a conditional write keyed on the expected prior status.
// Zero rows affected means the precondition did not hold.
func (r *kitchenRepository) UpdateStatus(ctx context.Context, orderID string, from string, to string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
