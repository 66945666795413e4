package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souhailwaf/wareho/internal/application/auth"
	"github.com/souhailwaf/wareho/internal/domain/entity"
	apphttp "github.com/souhailwaf/wareho/internal/interfaces/http"
)

// fakeUserRepo repositorio de usuarios en memoria para tests de handlers.
type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

// buildAuthApp monta el registro público y la creación de usuarios solo-admin,
// igual que el router real.
func buildAuthApp() (*fiber.App, *fakeUserRepo) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	handler := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)
	app.Post("/api/users",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleAdmin),
		handler.CreateUser,
	)
	return app, repo
}

func postJSON(t *testing.T, app *fiber.App, path, body, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRegister_PublicoCreaOperario(t *testing.T) {
	app, repo := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/register",
		`{"email":"op@wareho.test","password":"secreto123"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.RoleOperario, body["role"], "el registro público asigna operario")
	require.NotNil(t, repo.users["op@wareho.test"])
}

func TestRegister_PublicoRechazaRolPrivilegiado(t *testing.T) {
	app, repo := buildAuthApp()

	for _, role := range []string{entity.RoleAdmin, entity.RoleSupervisor} {
		resp := postJSON(t, app, "/api/auth/register",
			`{"email":"intruso@wareho.test","password":"secreto123","role":"`+role+`"}`, "")
		resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"el registro público no debe poder autoasignar el rol %s", role)
	}
	assert.Empty(t, repo.users, "no debe crearse ningún usuario")
}

func TestCreateUser_AdminAsignaSupervisor(t *testing.T) {
	app, repo := buildAuthApp()

	resp := postJSON(t, app, "/api/users",
		`{"email":"sup@wareho.test","password":"secreto123","role":"supervisor"}`,
		tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := repo.users["sup@wareho.test"]
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleSupervisor, created.Role)
}

func TestCreateUser_OperarioBloqueado(t *testing.T) {
	app, repo := buildAuthApp()

	resp := postJSON(t, app, "/api/users",
		`{"email":"x@wareho.test","password":"secreto123","role":"admin"}`,
		tokenForRole(t, entity.RoleOperario))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, repo.users)
}
