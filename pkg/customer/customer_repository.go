package customer

import (
	"context"
	"errors"

	"github.com/Krithish69/Restaurant/entities"
	"gorm.io/gorm"
)

type (
	CustomerRepository interface {
		GetByEmail(ctx context.Context, email string) (*entities.Customer, error)
		GetByID(ctx context.Context, id string) (*entities.Customer, error)
		Create(ctx context.Context, customer *entities.Customer) error
		Update(ctx context.Context, customer *entities.Customer) error
		ConsumePasscode(ctx context.Context, email string, passcode string) (*entities.Customer, error)
	}

	customerRepository struct {
		db *gorm.DB
	}
)

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) Update(ctx context.Context, customer *entities.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// ConsumePasscode atomically matches and clears the passcode so each code
// verifies at most once. Zero rows affected means mismatch or reuse.
func (r *customerRepository) ConsumePasscode(ctx context.Context, email string, passcode string) (*entities.Customer, error) {
	if passcode == "" {
		return nil, gorm.ErrRecordNotFound
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Customer{}).
		Where("email = ? AND passcode = ?", email, passcode).
		Update("passcode", "")
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &customer, nil
}
