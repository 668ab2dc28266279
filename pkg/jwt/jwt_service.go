package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/internal/utils"
	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenCustomer(customerID string, tableNumber int) string
		GenerateTokenStaff(staffID string, role string) string
		ValidateTokenCustomer(token string) (*jwt.Token, error)
		ValidateTokenStaff(token string) (*jwt.Token, error)
		GetCustomerByToken(token string) (string, int, error)
		GetStaffByToken(token string) (string, string, error)
	}

	jwtCustomerClaim struct {
		CustomerID  string `json:"customer_id"`
		TableNumber int    `json:"table_number"`
		jwt.RegisteredClaims
	}

	jwtStaffClaim struct {
		StaffID string `json:"staff_id"`
		Role    string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

// sessionValidity is the lifetime of both the customer cookie and the
// staff bearer token.
const sessionValidity = 24 * time.Hour

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: utils.GetConfig("JWT_SECRET"),
		issuer:    "RESTAURANT",
	}
}

func (j *jwtService) GenerateTokenCustomer(customerID string, tableNumber int) string {
	claims := jwtCustomerClaim{
		customerID,
		tableNumber,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionValidity)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) GenerateTokenStaff(staffID string, role string) string {
	claims := jwtStaffClaim{
		staffID,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionValidity)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenCustomer(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtCustomerClaim{}, j.parseToken)
}

func (j *jwtService) ValidateTokenStaff(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtStaffClaim{}, j.parseToken)
}

func (j *jwtService) GetCustomerByToken(token string) (string, int, error) {
	t_Token, err := j.ValidateTokenCustomer(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", 0, domain.ErrTokenExpired
		}
		return "", 0, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", 0, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtCustomerClaim)
	return claims.CustomerID, claims.TableNumber, nil
}

func (j *jwtService) GetStaffByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateTokenStaff(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtStaffClaim)
	return claims.StaffID, claims.Role, nil
}
