package staff

import (
	"context"
	"errors"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/Krithish69/Restaurant/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	StaffService interface {
		Register(ctx context.Context, req domain.RegisterStaffRequest) error
		Login(ctx context.Context, req domain.LoginStaffRequest) (domain.LoginStaffResponse, error)
	}

	staffService struct {
		staffRepository StaffRepository
		jwtService      jwt.JWTService
	}
)

func NewStaffService(staffRepository StaffRepository, jwtService jwt.JWTService) StaffService {
	return &staffService{
		staffRepository: staffRepository,
		jwtService:      jwtService,
	}
}

func (s *staffService) Register(ctx context.Context, req domain.RegisterStaffRequest) error {
	if _, err := s.staffRepository.GetByEmail(ctx, req.Email); err == nil {
		return domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.staffRepository.Create(ctx, &entities.Staff{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	})
}

func (s *staffService) Login(ctx context.Context, req domain.LoginStaffRequest) (domain.LoginStaffResponse, error) {
	staff, err := s.staffRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginStaffResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginStaffResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		return domain.LoginStaffResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginStaffResponse{
		Token: s.jwtService.GenerateTokenStaff(staff.ID.String(), staff.Role),
		Role:  staff.Role,
	}, nil
}
