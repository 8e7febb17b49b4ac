package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/seguridad-api/internal/application/auth"
	"github.com/jhoicas/seguridad-api/internal/application/dto"
	"github.com/jhoicas/seguridad-api/internal/domain"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	apphttp "github.com/jhoicas/seguridad-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/seguridad-api/pkg/jwt"
	"github.com/jhoicas/seguridad-api/pkg/logger"
)

// fakeUserStore almacén de usuarios en memoria para las pruebas de login.
type fakeUserStore struct {
	byEmail map[string]*entity.User
	nextID  int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*entity.User{}, nextID: 1}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (f *fakeUserStore) Add(_ context.Context, u *entity.User) (*entity.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, domain.ErrDuplicate
	}
	u.ID = f.nextID
	f.nextID++
	copia := *u
	f.byEmail[u.Email] = &copia
	return u, nil
}

func (f *fakeUserStore) GetAll(context.Context) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserStore) GetByID(context.Context, int) (*entity.User, error) { return nil, nil }
func (f *fakeUserStore) Update(context.Context, *entity.User) (bool, error) { return false, nil }
func (f *fakeUserStore) DeletePermanent(context.Context, int) (bool, error) { return false, nil }
func (f *fakeUserStore) DeleteLogical(context.Context, int) (bool, error) { return false, nil }
func (f *fakeUserStore) ToggleDeleted(context.Context, int) (bool, error) { return false, nil }

// staticRoles resolver de roles fijo para las pruebas.
type staticRoles struct{ roles []string }

func (s *staticRoles) RolesByUserID(context.Context, int) ([]string, error) {
	return s.roles, nil
}

func buildAuthApp(t *testing.T, store *fakeUserStore) (*fiber.App, *pkgjwt.Issuer) {
	t.Helper()
	issuer := testTokenIssuer(t)
	uc := auth.NewAuthUseCase(store, &staticRoles{roles: []string{"Admin"}}, issuer, logger.Nop())
	h := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/register", h.Register)
	return app, issuer
}

func seedLoginUser(t *testing.T, store *fakeUserStore, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = store.Add(context.Background(), &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
	})
	require.NoError(t, err)
}

func TestLoginHTTP_CredencialesCorrectas_DevuelveToken(t *testing.T) {
	store := newFakeUserStore()
	seedLoginUser(t, store, "admin@empresa.com", "secreta123")
	app, issuer := buildAuthApp(t, store)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "admin@empresa.com", Password: "secreta123"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)

	claims, err := issuer.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@empresa.com", claims.Email)
	assert.Equal(t, []string{"Admin"}, claims.Roles)
}

// El cuerpo del 401 debe ser idéntico para email desconocido y contraseña
// incorrecta: la respuesta no puede revelar qué credencial falló.
func TestLoginHTTP_EmailDesconocidoYPasswordMala_MismaRespuesta(t *testing.T) {
	store := newFakeUserStore()
	seedLoginUser(t, store, "admin@empresa.com", "secreta123")
	app, _ := buildAuthApp(t, store)

	respEmail := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "nouser@empresa.com", Password: "secreta123"})
	defer respEmail.Body.Close()
	respPass := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "admin@empresa.com", Password: "incorrecta"})
	defer respPass.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respEmail.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respPass.StatusCode)

	bodyEmail, _ := io.ReadAll(respEmail.Body)
	bodyPass, _ := io.ReadAll(respPass.Body)
	assert.JSONEq(t, string(bodyEmail), string(bodyPass),
		"ambos fallos deben producir exactamente el mismo cuerpo")
	assert.NotContains(t, string(bodyEmail), "email")
	assert.NotContains(t, string(bodyEmail), "password")
}

func TestLoginHTTP_EmailMalFormado_Retorna400(t *testing.T) {
	app, _ := buildAuthApp(t, newFakeUserStore())

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "no-es-un-email", Password: "secreta123"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginHTTP_CuerpoNoJSON_Retorna400(t *testing.T) {
	app, _ := buildAuthApp(t, newFakeUserStore())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterHTTP_Retorna201SinCredencial(t *testing.T) {
	app, _ := buildAuthApp(t, newFakeUserStore())

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Email: "nuevo@empresa.com", Password: "secreta123"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "secreta123",
		"la respuesta nunca incluye la contraseña ni su hash")
	assert.NotContains(t, string(body), "password")

	var out dto.UserResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Positive(t, out.ID)
	assert.True(t, out.Active)
}

func TestRegisterHTTP_EmailDuplicado_Retorna409(t *testing.T) {
	store := newFakeUserStore()
	seedLoginUser(t, store, "admin@empresa.com", "secreta123")
	app, _ := buildAuthApp(t, store)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Email: "admin@empresa.com", Password: "otra-clave-1"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterHTTP_PasswordCorta_Retorna400(t *testing.T) {
	app, _ := buildAuthApp(t, newFakeUserStore())

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Email: "nuevo@empresa.com", Password: "corta"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
