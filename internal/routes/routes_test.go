package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-orders/internal/audit"
	"github.com/BruksfildServices01/service-orders/internal/config"
	domainUser "github.com/BruksfildServices01/service-orders/internal/domain/user"
	"github.com/BruksfildServices01/service-orders/internal/infra/repository"
	"github.com/BruksfildServices01/service-orders/internal/middleware"
	"github.com/BruksfildServices01/service-orders/internal/routes"
	ucAuth "github.com/BruksfildServices01/service-orders/internal/usecase/auth"
)

const secret = "test-secret"

type captureSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *captureSink) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

type server struct {
	t      *testing.T
	engine *gin.Engine
	token  string
	sink   *captureSink
	audit  *audit.Dispatcher
	users  *repository.UserMemoryRepository
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sink := &captureSink{}
	d := audit.NewDispatcher(sink, 100)

	users := repository.NewUserMemoryRepository()

	engine := gin.New()
	routes.RegisterRoutes(engine, routes.Deps{
		Config:  &config.Config{JWTSecret: secret, JWTTTL: time.Hour},
		Clients: repository.NewClientMemoryRepository(),
		Users:   users,
		Audit:   d,
	})

	return &server{
		t:      t,
		engine: engine,
		token:  signToken(t, jwt.MapClaims{"sub": 7, "role": "owner"}),
		sink:   sink,
		audit:  d,
		users:  users,
	}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func (s *server) do(method, path, body string) *httptest.ResponseRecorder {
	s.t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

type clientBody struct {
	ID    *uint  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type errorBody struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Violations []struct {
		Field string `json:"field"`
		Kind  string `json:"kind"`
	} `json:"violations"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	s.token = ""

	w := s.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestClientsAPI_Create(t *testing.T) {
	t.Run("valid client gets an id", func(t *testing.T) {
		s := newServer(t)

		w := s.do(http.MethodPost, "/api/clients",
			`{"id": 99, "name":"Ann","email":"Ann@Example.com","phone":"555-0100"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		got := decode[clientBody](t, w)
		require.NotNil(t, got.ID)
		assert.Equal(t, uint(1), *got.ID)
		assert.Equal(t, "ann@example.com", got.Email)

		s.audit.Close()
		require.Len(t, s.sink.events, 1)
		ev := s.sink.events[0]
		assert.Equal(t, audit.ActionClientCreated, ev.Action)
		require.NotNil(t, ev.UserID)
		assert.Equal(t, uint(7), *ev.UserID)
		assert.Equal(t, "owner", ev.UserRole)
		assert.Equal(t, w.Header().Get(middleware.HeaderRequestID), ev.RequestID)
	})

	t.Run("invalid client lists every violation", func(t *testing.T) {
		s := newServer(t)

		w := s.do(http.MethodPost, "/api/clients",
			`{"name":"","email":"not-an-email","phone":"`+strings.Repeat("9", 21)+`"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decode[errorBody](t, w)
		assert.Equal(t, "validation_failed", body.Code)
		require.Len(t, body.Violations, 3)
		assert.Equal(t, "name", body.Violations[0].Field)
		assert.Equal(t, "blank_field", body.Violations[0].Kind)
		assert.Equal(t, "email", body.Violations[1].Field)
		assert.Equal(t, "invalid_format", body.Violations[1].Kind)
		assert.Equal(t, "phone", body.Violations[2].Field)
		assert.Equal(t, "field_too_long", body.Violations[2].Kind)
	})

	t.Run("absent fields are blank", func(t *testing.T) {
		s := newServer(t)

		w := s.do(http.MethodPost, "/api/clients", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, decode[errorBody](t, w).Violations, 3)
	})

	t.Run("malformed json", func(t *testing.T) {
		s := newServer(t)

		w := s.do(http.MethodPost, "/api/clients", `{"name":`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", decode[errorBody](t, w).Code)
	})
}

func TestClientsAPI_Lifecycle(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/clients", `{"name":"Ann","email":"ann@example.com","phone":"555-0100"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = s.do(http.MethodPost, "/api/clients", `{"name":"Bob","email":"bob@example.com","phone":"555-0101"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/clients/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ann", decode[clientBody](t, w).Name)

	w = s.do(http.MethodGet, "/api/clients?query=bob", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Data  []clientBody `json:"data"`
		Total int64        `json:"total"`
		Page  int          `json:"page"`
		Limit int          `json:"limit"`
	}](t, w)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Bob", list.Data[0].Name)
	assert.Equal(t, 1, list.Page)

	w = s.do(http.MethodPut, "/api/clients/1", `{"name":"Ann Lee","email":"ann@example.com","phone":"555-0199"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[clientBody](t, w)
	assert.Equal(t, uint(1), *updated.ID)
	assert.Equal(t, "Ann Lee", updated.Name)

	w = s.do(http.MethodPut, "/api/clients/1", `{"name":"Ann","email":"ann@","phone":"555-0199"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_format", decode[errorBody](t, w).Violations[0].Kind)

	w = s.do(http.MethodDelete, "/api/clients/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/clients/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "client_not_found", decode[errorBody](t, w).Code)

	w = s.do(http.MethodDelete, "/api/clients/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPut, "/api/clients/1", `{"name":"Ann","email":"ann@example.com","phone":"1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientsAPI_InvalidID(t *testing.T) {
	s := newServer(t)

	for _, path := range []string{"/api/clients/abc", "/api/clients/0", "/api/clients/-1"} {
		w := s.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "invalid_id", decode[errorBody](t, w).Code, path)
	}
}

func TestClientsAPI_Auth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "missing_authorization_header"},
		{"wrong scheme", "Basic abc", "invalid_authorization_header"},
		{"garbage token", "Bearer abc", "invalid_token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)

			req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			s.engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.code, decode[errorBody](t, w).Code)
		})
	}

	t.Run("expired token", func(t *testing.T) {
		s := newServer(t)
		s.token = signToken(t, jwt.MapClaims{"sub": 7, "exp": time.Now().Add(-time.Hour).Unix()})

		w := s.do(http.MethodGet, "/api/clients", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without subject", func(t *testing.T) {
		s := newServer(t)
		s.token = signToken(t, jwt.MapClaims{"role": "owner"})

		w := s.do(http.MethodGet, "/api/clients", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_token_payload", decode[errorBody](t, w).Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		s := newServer(t)
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 7}).
			SignedString([]byte("other"))
		require.NoError(t, err)
		s.token = tok

		w := s.do(http.MethodGet, "/api/clients", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuditLogsRouteRequiresDatabase(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/api/audit-logs", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginThenCreateClient(t *testing.T) {
	s := newServer(t)
	s.token = ""

	op, _, err := ucAuth.NewEnsureOperator(s.users).Execute(
		context.Background(), "Ops", "ops@example.com", "hunter22",
	)
	require.NoError(t, err)

	w := s.do(http.MethodPost, "/api/clients", `{"name":"Ann","email":"ann@example.com","phone":"1"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", `{"email":"ops@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decode[errorBody](t, w).Code)

	w = s.do(http.MethodPost, "/api/auth/login", `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", `{"email":"ops@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decode[struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}](t, w)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, op.ID, login.User.ID)

	s.token = login.Token
	w = s.do(http.MethodPost, "/api/clients", `{"name":"Ann","email":"ann@example.com","phone":"555-0100"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Ann", decode[clientBody](t, w).Name)

	s.audit.Close()
	require.Len(t, s.sink.events, 1)
	require.NotNil(t, s.sink.events[0].UserID)
	assert.Equal(t, op.ID, *s.sink.events[0].UserID)
	assert.Equal(t, domainUser.RoleOperator, s.sink.events[0].UserRole)
}
