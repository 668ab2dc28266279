package menu

import (
	"context"

	"github.com/Krithish69/Restaurant/entities"
	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		List(ctx context.Context) ([]*entities.MenuItem, error)
		GetByID(ctx context.Context, id string) (*entities.MenuItem, error)
		GetByName(ctx context.Context, name string) (*entities.MenuItem, error)
		Create(ctx context.Context, item *entities.MenuItem) error
		Update(ctx context.Context, item *entities.MenuItem) error
		Delete(ctx context.Context, id string) error
		AppendLog(ctx context.Context, log *entities.MenuItemLog) error
		GetLogs(ctx context.Context, menuItemID string) ([]*entities.MenuItemLog, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) List(ctx context.Context) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).Order("category asc, name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetByName(ctx context.Context, name string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) Create(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) Update(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes the item; audit log rows follow via the cascade on
// menu_item_logs. The test store does not enforce foreign keys, so the
// logs are swept explicitly in the same unit.
func (r *menuRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&entities.MenuItemLog{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.MenuItem{}).Error
	})
}

func (r *menuRepository) AppendLog(ctx context.Context, log *entities.MenuItemLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *menuRepository) GetLogs(ctx context.Context, menuItemID string) ([]*entities.MenuItemLog, error) {
	var logs []*entities.MenuItemLog
	if err := r.db.WithContext(ctx).Where("menu_item_id = ?", menuItemID).Order("created_at asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
