package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanpm/bisnisku-api/internal/application/auth"
	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // by ID
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByEmailAndBusiness(email, businessID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.BusinessID == businessID {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) ListByBusiness(string, int, int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

type fakeBusinessRepo struct {
	businesses map[string]*entity.Business
}

func (r *fakeBusinessRepo) Create(b *entity.Business) error {
	r.businesses[b.ID] = b
	return nil
}
func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.businesses[id], nil
}
func (r *fakeBusinessRepo) Update(b *entity.Business) error { return nil }
func (r *fakeBusinessRepo) List(int, int) ([]*entity.Business, error) {
	return nil, nil
}

const testSecret = "test-secret-key"

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo, *fakeBusinessRepo) {
	users := &fakeUserRepo{users: map[string]*entity.User{}}
	businesses := &fakeBusinessRepo{businesses: map[string]*entity.Business{}}
	uc := auth.NewAuthUseCase(users, businesses, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "bisnisku-test",
	})
	return uc, users, businesses
}

func TestRegisterBusiness_CreatesTenantOwnerAndToken(t *testing.T) {
	uc, users, businesses := newAuthFixture()

	out, err := uc.RegisterBusiness(dto.RegisterBusinessRequest{
		BusinessName: "Rajut Ibu",
		OwnerName:    "Siti",
		Email:        "siti@example.com",
		Password:     "rahasia123",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Rajut Ibu", out.Business.Name)
	assert.Equal(t, entity.RoleOwner, out.User.Role)
	assert.Equal(t, out.Business.ID, out.User.BusinessID)
	require.Len(t, businesses.businesses, 1)
	require.Len(t, users.users, 1)

	// The first token is usable immediately and carries the owner role.
	userID, businessID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, out.Business.ID, businessID)
	assert.Equal(t, entity.RoleOwner, role)
}

func TestRegisterBusiness_DuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	req := dto.RegisterBusinessRequest{
		BusinessName: "Toko A",
		OwnerName:    "Ani",
		Email:        "ani@example.com",
		Password:     "rahasia123",
	}
	_, err := uc.RegisterBusiness(req)
	require.NoError(t, err)

	req.BusinessName = "Toko B"
	_, err = uc.RegisterBusiness(req)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_DefaultsToStaff(t *testing.T) {
	uc, _, _ := newAuthFixture()

	owner, err := uc.RegisterBusiness(dto.RegisterBusinessRequest{
		BusinessName: "Toko", OwnerName: "Ani",
		Email: "ani@example.com", Password: "rahasia123",
	})
	require.NoError(t, err)

	staff, err := uc.RegisterUser(owner.Business.ID, dto.RegisterRequest{
		Email:    "karyawan@example.com",
		Password: "rahasia123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, staff.Role)
	assert.Equal(t, owner.Business.ID, staff.BusinessID)
	assert.Equal(t, "karyawan@example.com", staff.Name, "name falls back to the email")
}

func TestRegisterUser_UnknownBusiness(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.RegisterUser("no-such-business", dto.RegisterRequest{
		Email: "x@example.com", Password: "rahasia123",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin(t *testing.T) {
	uc, users, _ := newAuthFixture()

	reg, err := uc.RegisterBusiness(dto.RegisterBusinessRequest{
		BusinessName: "Toko", OwnerName: "Ani",
		Email: "ani@example.com", Password: "rahasia123",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ani@example.com", Password: "rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Login(dto.LoginRequest{Email: "ani@example.com", Password: "salah"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "wrong password")

	_, err = uc.Login(dto.LoginRequest{Email: "tidak-ada@example.com", Password: "rahasia123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "unknown email")

	// A disabled account cannot log in even with valid credentials.
	users.users[reg.User.ID].Status = "disabled"
	_, err = uc.Login(dto.LoginRequest{Email: "ani@example.com", Password: "rahasia123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
