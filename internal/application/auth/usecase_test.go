package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/electrostock-api/internal/application/auth"
	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/electrostock-api/pkg/jwt"
)

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrUsernameAlreadyExists
	}
	cu := *u
	r.byUsername[u.Username] = &cu
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cu := *u
	return &cu, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byUsername {
		cu := *u
		out = append(out, &cu)
	}
	return out, nil
}

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "electrostock-test",
}

func TestRegisterUser_HasheaYAsignaRolPorDefecto(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	out, err := uc.RegisterUser(dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, entity.RoleVendedor, out.Role, "el rol por defecto es vendedor")
	assert.NotEmpty(t, out.ID)
}

func TestRegisterUser_UsernameDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "maria", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestLogin_CredencialesCorrectas_EmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	registered, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "carlos",
		Password: "secreta123",
		Role:     entity.RoleBodeguero,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "carlos", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, entity.RoleBodeguero, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "carlos", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "carlos", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
