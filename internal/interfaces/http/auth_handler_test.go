package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doPublicJSON lanza una petición sin token (rutas de auth).
func doPublicJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Register_Retorna201(t *testing.T) {
	be := buildTestBackend()

	resp := doPublicJSON(t, be.app, http.MethodPost, "/register", fiber.Map{
		"username": "gerente", "password": "secreta123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "User registered successfully", body["message"])
}

func TestAuthHandler_Register_UsernameTomado_Retorna400(t *testing.T) {
	be := buildTestBackend()

	resp := doPublicJSON(t, be.app, http.MethodPost, "/register", fiber.Map{"username": "gerente", "password": "secreta123"})
	resp.Body.Close()

	resp = doPublicJSON(t, be.app, http.MethodPost, "/register", fiber.Map{"username": "gerente", "password": "otra456"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "Username already exists", body["error"])
}

func TestAuthHandler_Register_SinPassword_Retorna400(t *testing.T) {
	be := buildTestBackend()

	resp := doPublicJSON(t, be.app, http.MethodPost, "/register", fiber.Map{"username": "gerente"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthHandler_Login_EntregaToken(t *testing.T) {
	be := buildTestBackend()

	resp := doPublicJSON(t, be.app, http.MethodPost, "/register", fiber.Map{"username": "gerente", "password": "secreta123"})
	resp.Body.Close()

	resp = doPublicJSON(t, be.app, http.MethodPost, "/login", fiber.Map{"username": "gerente", "password": "secreta123"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestAuthHandler_Login_PasswordIncorrecto_Retorna401(t *testing.T) {
	be := buildTestBackend()

	resp := doPublicJSON(t, be.app, http.MethodPost, "/register", fiber.Map{"username": "gerente", "password": "secreta123"})
	resp.Body.Close()

	resp = doPublicJSON(t, be.app, http.MethodPost, "/login", fiber.Map{"username": "gerente", "password": "equivocada"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "Invalid username or password", body["error"])
}

func TestAuthHandler_Login_UsuarioInexistente_Retorna401(t *testing.T) {
	be := buildTestBackend()

	resp := doPublicJSON(t, be.app, http.MethodPost, "/login", fiber.Map{"username": "fantasma", "password": "x"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_ChangePassword_FlujoCompleto(t *testing.T) {
	be := buildTestBackend()

	resp := doPublicJSON(t, be.app, http.MethodPost, "/register", fiber.Map{"username": "gerente", "password": "vieja1234"})
	resp.Body.Close()
	resp = doPublicJSON(t, be.app, http.MethodPost, "/login", fiber.Map{"username": "gerente", "password": "vieja1234"})
	login := decodeBody[map[string]string](t, resp)

	raw, err := json.Marshal(fiber.Map{"old_password": "vieja1234", "new_password": "nueva5678"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/change-password", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+login["token"])
	resp, err = be.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "Password updated successfully", body["message"])

	// El password viejo deja de servir; el nuevo sí entra.
	resp = doPublicJSON(t, be.app, http.MethodPost, "/login", fiber.Map{"username": "gerente", "password": "vieja1234"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doPublicJSON(t, be.app, http.MethodPost, "/login", fiber.Map{"username": "gerente", "password": "nueva5678"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthHandler_ChangePassword_OldIncorrecto_Retorna401(t *testing.T) {
	be := buildTestBackend()

	resp := doPublicJSON(t, be.app, http.MethodPost, "/register", fiber.Map{"username": "gerente", "password": "vieja1234"})
	resp.Body.Close()
	resp = doPublicJSON(t, be.app, http.MethodPost, "/login", fiber.Map{"username": "gerente", "password": "vieja1234"})
	login := decodeBody[map[string]string](t, resp)

	raw, _ := json.Marshal(fiber.Map{"old_password": "equivocada", "new_password": "nueva5678"})
	req := httptest.NewRequest(http.MethodPost, "/change-password", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+login["token"])
	resp, err := be.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "Invalid old password", body["error"])
}
