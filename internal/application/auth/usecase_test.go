package auth

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/logger"
)

// fakeUserRepo repositorio en memoria para los tests del caso de uso.
type fakeUserRepo struct {
	users map[string]*entity.AuthUser // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.AuthUser{}}
}

func (r *fakeUserRepo) Create(user *entity.AuthUser) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.AuthUser, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.AuthUser, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.AuthUser) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.AuthUser, error) {
	out := make([]*entity.AuthUser, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.users), nil }

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func newTestUseCase(repo *fakeUserRepo) *AuthUseCase {
	return NewAuthUseCase(repo, JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "compugestion-test",
	}, logger.Nop())
}

func addUser(t *testing.T, repo *fakeUserRepo, username, password, role string, active bool) *entity.AuthUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.AuthUser{
		ID:           "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, repo.Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "caja1", "secreto", entity.RoleCashier, true)
	uc := newTestUseCase(repo)

	out, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "caja1", out.User.Username)
	assert.Equal(t, entity.RoleCashier, out.User.Role)
}

func TestLogin_RecortaEspacios(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "admin", "secreto", entity.RoleAdmin, true)
	uc := newTestUseCase(repo)

	out, err := uc.Login(dto.LoginRequest{Username: "  admin  ", Password: "  secreto  "})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Username)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "baja", "secreto", entity.RoleCashier, false)
	uc := newTestUseCase(repo)

	// La cuenta inactiva se rechaza antes de verificar la contraseña.
	_, err := uc.Login(dto.LoginRequest{Username: "baja", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUserDisabled)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "admin", "secreto", entity.RoleAdmin, true)
	uc := newTestUseCase(repo)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestLogin_FallidoQuedaEnElLog(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "caja1", "secreto", entity.RoleCashier, true)
	addUser(t, repo, "baja", "secreto", entity.RoleCashier, false)

	var buf bytes.Buffer
	uc := NewAuthUseCase(repo, JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "compugestion-test"}, logger.NewWriter(&buf, "error"))

	// El cliente recibe siempre el mismo mensaje genérico, así que la causa
	// exacta de cada fallo debe quedar en el log del servidor.
	cases := []struct {
		req   dto.LoginRequest
		want  error
		cause string
	}{
		{dto.LoginRequest{Username: "nadie", Password: "x"}, domain.ErrUserNotFound, "usuario no encontrado"},
		{dto.LoginRequest{Username: "baja", Password: "secreto"}, domain.ErrUserDisabled, "usuario deshabilitado"},
		{dto.LoginRequest{Username: "caja1", Password: "otra"}, domain.ErrInvalidPassword, "contraseña incorrecta"},
	}
	for _, tc := range cases {
		buf.Reset()
		_, err := uc.Login(tc.req)
		require.ErrorIs(t, err, tc.want)

		line := buf.String()
		assert.Contains(t, line, `"level":"error"`)
		assert.Contains(t, line, strings.TrimSpace(tc.req.Username))
		assert.Contains(t, line, tc.cause)
	}

	// El login correcto no deja rastro a nivel error.
	buf.Reset()
	_, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto"})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), `"level":"error"`)
}

// ──────────────────────────────────────────────────────────────────────────────
// SeedInitialAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedInitialAdmin_CreaAdminEnTablaVacia(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	require.NoError(t, uc.SeedInitialAdmin())

	admin, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)

	// La contraseña por defecto permite iniciar sesión.
	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "admin"})
	assert.NoError(t, err)
}

func TestSeedInitialAdmin_Idempotente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	require.NoError(t, uc.SeedInitialAdmin())
	require.NoError(t, uc.SeedInitialAdmin())

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n, "el seed repetido no debe crear otro usuario")
}

func TestSeedInitialAdmin_NoActuaSiHayUsuarios(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "caja1", "secreto", entity.RoleCashier, true)
	uc := newTestUseCase(repo)

	require.NoError(t, uc.SeedInitialAdmin())

	admin, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.Nil(t, admin, "no debe crear admin si ya existe cualquier usuario")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateUser / SetActive / ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_RolInvalido(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "x", Password: "y", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(t, repo, "caja1", "secreto", entity.RoleCashier, true)
	uc := newTestUseCase(repo)

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "caja1", Password: "otra", Role: entity.RoleCashier})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestCreateUser_HasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	out, err := uc.CreateUser(dto.CreateUserRequest{Username: "caja2", Password: "secreto", Role: entity.RoleCashier})
	require.NoError(t, err)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreto", stored.PasswordHash, "la contraseña no debe guardarse en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto")))
}

func TestCreateUser_RecortaEspaciosEnPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestUseCase(repo)

	// El hash debe hacerse sobre la contraseña ya recortada, igual que el
	// recorte que aplica Login; de otro modo el usuario quedaría bloqueado.
	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "caja3", Password: "  secreto  ", Role: entity.RoleCashier})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "caja3", Password: "secreto"})
	assert.NoError(t, err)
}

func TestChangePassword_RecortaEspacios(t *testing.T) {
	repo := newFakeUserRepo()
	u := addUser(t, repo, "caja1", "vieja", entity.RoleCashier, true)
	uc := newTestUseCase(repo)

	require.NoError(t, uc.ChangePassword(u.ID, dto.ChangePasswordRequest{NewPassword: "  nueva  "}))

	_, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "nueva"})
	assert.NoError(t, err)
}

func TestSetActive_DesactivaYBloqueaLogin(t *testing.T) {
	repo := newFakeUserRepo()
	u := addUser(t, repo, "caja1", "secreto", entity.RoleCashier, true)
	uc := newTestUseCase(repo)

	require.NoError(t, uc.SetActive(u.ID, false))

	_, err := uc.Login(dto.LoginRequest{Username: "caja1", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrUserDisabled)
}

func TestChangePassword_UsuarioInexistente(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	err := uc.ChangePassword("no-existe", dto.ChangePasswordRequest{NewPassword: "nueva"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
