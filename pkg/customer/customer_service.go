package customer

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/Krithish69/Restaurant/internal/utils/mailing"
	"github.com/Krithish69/Restaurant/pkg/jwt"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CustomerService interface {
		RequestPasscode(ctx context.Context, req domain.RequestPasscodeRequest) error
		VerifyPasscode(ctx context.Context, req domain.VerifyPasscodeRequest) (domain.VerifyPasscodeResponse, error)
		Me(ctx context.Context, customerID string) (domain.CustomerResponse, error)
	}

	customerService struct {
		customerRepository CustomerRepository
		jwtService         jwt.JWTService
		mailer             mailing.Mailer
	}
)

func NewCustomerService(customerRepository CustomerRepository, jwtService jwt.JWTService, mailer mailing.Mailer) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		jwtService:         jwtService,
		mailer:             mailer,
	}
}

func generatePasscode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// RequestPasscode upserts the customer on their unique email, refreshing
// the passcode and assigned table on repeat logins.
func (s *customerService) RequestPasscode(ctx context.Context, req domain.RequestPasscodeRequest) error {
	passcode, err := generatePasscode()
	if err != nil {
		return err
	}

	existing, err := s.customerRepository.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		existing.Name = req.Name
		existing.Phone = req.Phone
		existing.Passcode = passcode
		existing.TableNumber = req.TableNumber
		if err := s.customerRepository.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		customer := &entities.Customer{
			ID:          uuid.New(),
			Name:        req.Name,
			Phone:       req.Phone,
			Email:       req.Email,
			Passcode:    passcode,
			TableNumber: req.TableNumber,
		}
		if err := s.customerRepository.Create(ctx, customer); err != nil {
			return err
		}
	default:
		return err
	}

	if err := s.mailer.Send(req.Email, "Your One-Time Passcode", mailing.PasscodeBody(passcode)); err != nil {
		return domain.ErrPasscodeDispatch
	}
	return nil
}

func (s *customerService) VerifyPasscode(ctx context.Context, req domain.VerifyPasscodeRequest) (domain.VerifyPasscodeResponse, error) {
	customer, err := s.customerRepository.ConsumePasscode(ctx, req.Email, req.Passcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.VerifyPasscodeResponse{}, domain.ErrInvalidPasscode
		}
		return domain.VerifyPasscodeResponse{}, err
	}

	token := s.jwtService.GenerateTokenCustomer(customer.ID.String(), customer.TableNumber)
	return domain.VerifyPasscodeResponse{
		Token:       token,
		TableNumber: customer.TableNumber,
	}, nil
}

func (s *customerService) Me(ctx context.Context, customerID string) (domain.CustomerResponse, error) {
	customer, err := s.customerRepository.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerResponse{}, domain.ErrCustomerNotFound
		}
		return domain.CustomerResponse{}, err
	}

	return domain.CustomerResponse{
		ID:          customer.ID.String(),
		Name:        customer.Name,
		Phone:       customer.Phone,
		Email:       customer.Email,
		TableNumber: customer.TableNumber,
		CreatedAt:   customer.CreatedAt,
	}, nil
}
