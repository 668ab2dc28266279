package staff

import (
	"context"

	"github.com/Krithish69/Restaurant/entities"
	"gorm.io/gorm"
)

type (
	StaffRepository interface {
		GetByEmail(ctx context.Context, email string) (*entities.Staff, error)
		Create(ctx context.Context, staff *entities.Staff) error
	}

	staffRepository struct {
		db *gorm.DB
	}
)

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*entities.Staff, error) {
	var staff entities.Staff
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Create(ctx context.Context, staff *entities.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}
