package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seguridad-api/internal/application/dto"
	"github.com/jhoicas/seguridad-api/internal/application/service"
	"github.com/jhoicas/seguridad-api/internal/domain/entity"
	"github.com/jhoicas/seguridad-api/internal/domain/repository"
	apphttp "github.com/jhoicas/seguridad-api/internal/interfaces/http"
	"github.com/jhoicas/seguridad-api/pkg/logger"
)

// fakeRolUserRepo implementación en memoria del puerto RolUserRepository.
type fakeRolUserRepo struct {
	items  map[int]*entity.RolUser
	nextID int
}

var _ repository.RolUserRepository = (*fakeRolUserRepo)(nil)

func newFakeRolUserRepo() *fakeRolUserRepo {
	return &fakeRolUserRepo{items: map[int]*entity.RolUser{}, nextID: 1}
}

func (f *fakeRolUserRepo) GetAll(context.Context) ([]*entity.RolUser, error) {
	list := make([]*entity.RolUser, 0, len(f.items))
	for i := 1; i < f.nextID; i++ {
		if ru, ok := f.items[i]; ok {
			copia := *ru
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (f *fakeRolUserRepo) GetByID(_ context.Context, id int) (*entity.RolUser, error) {
	ru, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copia := *ru
	return &copia, nil
}

func (f *fakeRolUserRepo) Add(_ context.Context, ru *entity.RolUser) (*entity.RolUser, error) {
	ru.ID = f.nextID
	f.nextID++
	copia := *ru
	f.items[ru.ID] = &copia
	return ru, nil
}

func (f *fakeRolUserRepo) Update(_ context.Context, ru *entity.RolUser) (bool, error) {
	if _, ok := f.items[ru.ID]; !ok {
		return false, nil
	}
	copia := *ru
	f.items[ru.ID] = &copia
	return true, nil
}

func (f *fakeRolUserRepo) DeletePermanent(_ context.Context, id int) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeRolUserRepo) DeleteLogical(_ context.Context, id int) (bool, error) {
	ru, ok := f.items[id]
	if !ok {
		return false, nil
	}
	ru.IsDeleted = true
	return true, nil
}

func (f *fakeRolUserRepo) ToggleDeleted(_ context.Context, id int) (bool, error) {
	ru, ok := f.items[id]
	if !ok {
		return false, nil
	}
	ru.IsDeleted = !ru.IsDeleted
	return true, nil
}

func (f *fakeRolUserRepo) RolesByUserID(_ context.Context, userID int) ([]string, error) {
	var roles []string
	for i := 1; i < f.nextID; i++ {
		ru, ok := f.items[i]
		if ok && ru.UserID == userID && !ru.IsDeleted {
			roles = append(roles, "Rol-"+strconv.Itoa(ru.RolID))
		}
	}
	return roles, nil
}

func (f *fakeRolUserRepo) ListWithDetail(ctx context.Context) ([]*repository.RolUserDetail, error) {
	all, _ := f.GetAll(ctx)
	list := make([]*repository.RolUserDetail, 0, len(all))
	for _, ru := range all {
		list = append(list, &repository.RolUserDetail{
			RolUser: *ru,
			RolName: "Rol-" + strconv.Itoa(ru.RolID),
			Email:   "user-" + strconv.Itoa(ru.UserID) + "@empresa.com",
		})
	}
	return list, nil
}

// buildRolUserApp monta las rutas del recurso roluser igual que el router real,
// pero sin middleware de auth, para probar el handler de forma aislada.
func buildRolUserApp(repo *fakeRolUserRepo) *fiber.App {
	svc := service.NewRolUserService(repo, logger.Nop())
	h := apphttp.NewSoftCrudHandler[dto.RolUserDTO]("RolUser", svc)

	app := fiber.New()
	g := app.Group("/api/roluser")
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Put("/logico/:id", h.DeleteLogical)
	g.Put("/", h.Update)
	g.Delete("/permanent/:id", h.DeletePermanent)
	g.Patch("/:id", h.ToggleDeleted)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeRolUser(t *testing.T, resp *http.Response) dto.RolUserDTO {
	t.Helper()
	var out dto.RolUserDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRolUser_Create_Retorna201ConID(t *testing.T) {
	app := buildRolUserApp(newFakeRolUserRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/roluser", dto.RolUserDTO{RolID: 2, UserID: 5})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decodeRolUser(t, resp)
	assert.Positive(t, out.ID)
	assert.Equal(t, 2, out.RolID)
	assert.Equal(t, 5, out.UserID)
	assert.False(t, out.IsDeleted)
}

func TestRolUser_Create_SinRolID_Retorna400(t *testing.T) {
	app := buildRolUserApp(newFakeRolUserRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/roluser", map[string]any{"userId": 5})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"roleId es obligatorio y mayor que cero")
}

func TestRolUser_GetByID_DevuelveLoCreado(t *testing.T) {
	app := buildRolUserApp(newFakeRolUserRepo())

	created := decodeRolUser(t, doJSON(t, app, http.MethodPost, "/api/roluser", dto.RolUserDTO{RolID: 1, UserID: 3}))

	resp := doJSON(t, app, http.MethodGet, "/api/roluser/1", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeRolUser(t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 1, got.RolID)
	assert.Equal(t, 3, got.UserID)
}

func TestRolUser_GetByID_Inexistente_Retorna404(t *testing.T) {
	app := buildRolUserApp(newFakeRolUserRepo())

	resp := doJSON(t, app, http.MethodGet, "/api/roluser/99", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRolUser_GetByID_IDNoEntero_Retorna400(t *testing.T) {
	app := buildRolUserApp(newFakeRolUserRepo())

	resp := doJSON(t, app, http.MethodGet, "/api/roluser/abc", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRolUser_List_IncluyeRolYEmailDenormalizados(t *testing.T) {
	app := buildRolUserApp(newFakeRolUserRepo())
	doJSON(t, app, http.MethodPost, "/api/roluser", dto.RolUserDTO{RolID: 2, UserID: 5})

	resp := doJSON(t, app, http.MethodGet, "/api/roluser", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.RolUserDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Rol-2", list[0].RolName)
	assert.Equal(t, "user-5@empresa.com", list[0].Email)
}

func TestRolUser_DeleteLogico_MarcaIsDeleted(t *testing.T) {
	repo := newFakeRolUserRepo()
	app := buildRolUserApp(repo)
	doJSON(t, app, http.MethodPost, "/api/roluser", dto.RolUserDTO{RolID: 1, UserID: 1})

	resp := doJSON(t, app, http.MethodPut, "/api/roluser/logico/1", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, repo.items[1].IsDeleted, "el registro debe quedar marcado, no eliminado")

	// El registro sigue recuperable por id.
	get := doJSON(t, app, http.MethodGet, "/api/roluser/1", nil)
	defer get.Body.Close()
	require.Equal(t, http.StatusOK, get.StatusCode)
	assert.True(t, decodeRolUser(t, get).IsDeleted)
}

func TestRolUser_Patch_InvierteElFlag(t *testing.T) {
	repo := newFakeRolUserRepo()
	app := buildRolUserApp(repo)
	doJSON(t, app, http.MethodPost, "/api/roluser", dto.RolUserDTO{RolID: 1, UserID: 1})
	doJSON(t, app, http.MethodPut, "/api/roluser/logico/1", nil)
	require.True(t, repo.items[1].IsDeleted)

	resp := doJSON(t, app, http.MethodPatch, "/api/roluser/1", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, repo.items[1].IsDeleted, "el PATCH debe restaurar el registro")
}

func TestRolUser_DeletePermanent_DosVeces_200Luego404(t *testing.T) {
	app := buildRolUserApp(newFakeRolUserRepo())
	doJSON(t, app, http.MethodPost, "/api/roluser", dto.RolUserDTO{RolID: 1, UserID: 1})

	first := doJSON(t, app, http.MethodDelete, "/api/roluser/permanent/1", nil)
	defer first.Body.Close()
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second := doJSON(t, app, http.MethodDelete, "/api/roluser/permanent/1", nil)
	defer second.Body.Close()
	assert.Equal(t, http.StatusNotFound, second.StatusCode)
}

func TestRolUser_Update_ReemplazaElRegistro(t *testing.T) {
	app := buildRolUserApp(newFakeRolUserRepo())
	doJSON(t, app, http.MethodPost, "/api/roluser", dto.RolUserDTO{RolID: 1, UserID: 1})

	resp := doJSON(t, app, http.MethodPut, "/api/roluser", dto.RolUserDTO{ID: 1, RolID: 4, UserID: 1})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	get := doJSON(t, app, http.MethodGet, "/api/roluser/1", nil)
	defer get.Body.Close()
	assert.Equal(t, 4, decodeRolUser(t, get).RolID)
}
