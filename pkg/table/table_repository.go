package table

import (
	"context"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"gorm.io/gorm"
)

type (
	TableWithCount struct {
		ID                string
		TableNumber       int
		Status            string
		TotalItemsOrdered int64
	}

	TableRepository interface {
		List(ctx context.Context) ([]TableWithCount, error)
		GetByID(ctx context.Context, id string) (*entities.Table, error)
		GetByNumber(ctx context.Context, tableNumber int) (*entities.Table, error)
		OccupyVacant(ctx context.Context, id string) (int64, error)
		SetVacant(ctx context.Context, id string) error
	}

	tableRepository struct {
		db *gorm.DB
	}
)

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

// List derives, per table, the number of line items ordered against it by
// joining through orders and order_items.
func (r *tableRepository) List(ctx context.Context) ([]TableWithCount, error) {
	var rows []TableWithCount
	err := r.db.WithContext(ctx).
		Model(&entities.Table{}).
		Select("tables.id, tables.table_number, tables.status, COUNT(order_items.id) AS total_items_ordered").
		Joins("LEFT JOIN orders ON orders.table_id = tables.id").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Group("tables.id, tables.table_number, tables.status").
		Order("tables.table_number asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tableRepository) GetByID(ctx context.Context, id string) (*entities.Table, error) {
	var table entities.Table
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetByNumber(ctx context.Context, tableNumber int) (*entities.Table, error) {
	var table entities.Table
	if err := r.db.WithContext(ctx).Where("table_number = ?", tableNumber).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// OccupyVacant is a compare-and-swap on the expected Vacant status; the
// affected-row count tells the caller whether the transition happened.
func (r *tableRepository) OccupyVacant(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Table{}).
		Where("id = ? AND status = ?", id, domain.TableVacant).
		Update("status", domain.TableOccupied)
	return res.RowsAffected, res.Error
}

// SetVacant is unconditional: settlement and staff cleanup paths may
// retry it, and vacating a Vacant table must stay a no-op.
func (r *tableRepository) SetVacant(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Table{}).
		Where("id = ?", id).
		Update("status", domain.TableVacant).Error
}
