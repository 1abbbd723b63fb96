package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wheeloop/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubSessionRepo struct {
	sessions map[string]*entity.Session
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error { return nil }

func (s *stubSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return s.sessions[token], nil
}

func (s *stubSessionRepo) Revoke(ctx context.Context, token string) error { return nil }

func (s *stubSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (s *stubSessionRepo) CleanExpiredSessions(ctx context.Context) error { return nil }

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) { return nil, nil }

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func seedSession(role entity.UserRole) (*stubSessionRepo, *stubUserRepo, string) {
	userID := uuid.New()
	token := uuid.New()

	sessions := &stubSessionRepo{sessions: map[string]*entity.Session{
		token.String(): {
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			UserID:     userID,
			Token:      token,
			ExpiresAt:  time.Now().Add(time.Hour),
		},
	}}
	users := &stubUserRepo{users: map[uuid.UUID]*entity.User{
		userID: {
			Base: entity.Base{ID: userID},
			Name: "test",
			Role: role,
		},
	}}

	return sessions, users, token.String()
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthSessionMissingHeader(t *testing.T) {
	sessions, users, _ := seedSession(entity.RoleCustomer)
	var called bool
	handler := AuthSession(sessions, users, zap.NewNop())(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler ran without a token")
	}
}

func TestAuthSessionBadFormat(t *testing.T) {
	sessions, users, token := seedSession(entity.RoleCustomer)
	var called bool
	handler := AuthSession(sessions, users, zap.NewNop())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", token) // missing Bearer prefix
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthSessionUnknownToken(t *testing.T) {
	sessions, users, _ := seedSession(entity.RoleCustomer)
	var called bool
	handler := AuthSession(sessions, users, zap.NewNop())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+uuid.NewString())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler ran with an unknown token")
	}
}

func TestAuthSessionValidToken(t *testing.T) {
	sessions, users, token := seedSession(entity.RoleCustomer)
	var called bool
	handler := AuthSession(sessions, users, zap.NewNop())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Error("handler did not run for a valid session")
	}
}

func TestAdminRejectsCustomer(t *testing.T) {
	sessions, users, token := seedSession(entity.RoleCustomer)
	var called bool
	handler := AuthSession(sessions, users, zap.NewNop())(
		Admin(users, zap.NewNop())(okHandler(&called)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if called {
		t.Error("admin handler ran for a customer")
	}
}

func TestAdminAllowsAdmin(t *testing.T) {
	sessions, users, token := seedSession(entity.RoleAdmin)
	var called bool
	handler := AuthSession(sessions, users, zap.NewNop())(
		Admin(users, zap.NewNop())(okHandler(&called)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Error("admin handler did not run for an admin")
	}
}

func TestCORSPreflight(t *testing.T) {
	var called bool
	handler := CORS()(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/api/car/findAll", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if called {
		t.Error("preflight reached the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow-origin = %q", got)
	}
}
