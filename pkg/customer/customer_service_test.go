package customer

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/Krithish69/Restaurant/pkg/jwt"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMailer struct {
	to      string
	subject string
	body    string
	sent    int
	err     error
}

func (m *fakeMailer) Send(toEmail string, subject string, body string) error {
	if m.err != nil {
		return m.err
	}
	m.to = toEmail
	m.subject = subject
	m.body = body
	m.sent++
	return nil
}

var passcodePattern = regexp.MustCompile(`\d{6}`)

func setupCustomerTest(t *testing.T) (CustomerService, CustomerRepository, *fakeMailer) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.Customer{}))

	repo := NewCustomerRepository(db)
	mailer := &fakeMailer{}
	service := NewCustomerService(repo, jwt.NewJWTService(), mailer)
	return service, repo, mailer
}

func TestRequestPasscodeCreatesCustomer(t *testing.T) {
	service, repo, mailer := setupCustomerTest(t)
	ctx := context.Background()

	err := service.RequestPasscode(ctx, domain.RequestPasscodeRequest{
		Name:        "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		TableNumber: 4,
	})
	require.NoError(t, err)

	customer, err := repo.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha", customer.Name)
	assert.Equal(t, 4, customer.TableNumber)
	assert.Regexp(t, `^\d{6}$`, customer.Passcode)

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "asha@example.com", mailer.to)
	assert.Contains(t, mailer.body, customer.Passcode)
}

func TestRequestPasscodeUpsertsOnEmail(t *testing.T) {
	service, repo, _ := setupCustomerTest(t)
	ctx := context.Background()

	req := domain.RequestPasscodeRequest{
		Name:        "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		TableNumber: 4,
	}
	require.NoError(t, service.RequestPasscode(ctx, req))
	first, err := repo.GetByEmail(ctx, req.Email)
	require.NoError(t, err)

	req.TableNumber = 7
	require.NoError(t, service.RequestPasscode(ctx, req))
	second, err := repo.GetByEmail(ctx, req.Email)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 7, second.TableNumber)

	// re-login must not create a second row for the same email
	var count int64
	repoImpl := repo.(*customerRepository)
	require.NoError(t, repoImpl.db.Model(&entities.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRequestPasscodeMailFailure(t *testing.T) {
	service, _, mailer := setupCustomerTest(t)
	mailer.err = errors.New("smtp down")

	err := service.RequestPasscode(context.Background(), domain.RequestPasscodeRequest{
		Name:        "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		TableNumber: 4,
	})
	assert.ErrorIs(t, err, domain.ErrPasscodeDispatch)
}

func TestVerifyPasscodeSingleUse(t *testing.T) {
	service, _, mailer := setupCustomerTest(t)
	ctx := context.Background()

	require.NoError(t, service.RequestPasscode(ctx, domain.RequestPasscodeRequest{
		Name:        "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		TableNumber: 4,
	}))
	passcode := passcodePattern.FindString(mailer.body)
	require.NotEmpty(t, passcode)

	res, err := service.VerifyPasscode(ctx, domain.VerifyPasscodeRequest{
		Email:    "asha@example.com",
		Passcode: passcode,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, 4, res.TableNumber)

	// replaying the same passcode must fail
	_, err = service.VerifyPasscode(ctx, domain.VerifyPasscodeRequest{
		Email:    "asha@example.com",
		Passcode: passcode,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPasscode)
}

func TestVerifyPasscodeWrongCode(t *testing.T) {
	service, _, _ := setupCustomerTest(t)
	ctx := context.Background()

	require.NoError(t, service.RequestPasscode(ctx, domain.RequestPasscodeRequest{
		Name:        "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		TableNumber: 4,
	}))

	_, err := service.VerifyPasscode(ctx, domain.VerifyPasscodeRequest{
		Email:    "asha@example.com",
		Passcode: "000000",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPasscode)
}

func TestVerifyPasscodeEmptyNeverMatches(t *testing.T) {
	service, _, mailer := setupCustomerTest(t)
	ctx := context.Background()

	require.NoError(t, service.RequestPasscode(ctx, domain.RequestPasscodeRequest{
		Name:        "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		TableNumber: 4,
	}))
	passcode := passcodePattern.FindString(mailer.body)
	_, err := service.VerifyPasscode(ctx, domain.VerifyPasscodeRequest{
		Email:    "asha@example.com",
		Passcode: passcode,
	})
	require.NoError(t, err)

	// consumed passcode is blanked in storage; a blank submission must
	// not match the blank column
	_, err = service.VerifyPasscode(ctx, domain.VerifyPasscodeRequest{
		Email:    "asha@example.com",
		Passcode: "",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPasscode)
}

func TestMe(t *testing.T) {
	service, repo, _ := setupCustomerTest(t)
	ctx := context.Background()

	require.NoError(t, service.RequestPasscode(ctx, domain.RequestPasscodeRequest{
		Name:        "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		TableNumber: 4,
	}))
	customer, err := repo.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)

	res, err := service.Me(ctx, customer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", res.Email)
	assert.Equal(t, 4, res.TableNumber)

	_, err = service.Me(ctx, "3f0b8a1e-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
