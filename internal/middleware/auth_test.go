package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Tekerra/acadlens-backend/internal/apierr"
	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/requestdata"
	"github.com/Tekerra/acadlens-backend/internal/services"
	"github.com/Tekerra/acadlens-backend/internal/types"
)

type stubAuthService struct {
	claims *services.JWTClaims
	err    error
}

func (s *stubAuthService) Login(_ context.Context, _ *services.LoginInput) (*services.LoginResult, error) {
	panic("not used")
}

func (s *stubAuthService) RegisterStudent(_ context.Context, _ *services.RegisterStudentInput) (*types.Student, error) {
	panic("not used")
}

func (s *stubAuthService) Profile(_ context.Context, _ *requestdata.RequestData) (*services.Profile, error) {
	panic("not used")
}

func (s *stubAuthService) ParseToken(_ string) (*services.JWTClaims, error) {
	return s.claims, s.err
}

func testRouter(t *testing.T, auth services.AuthService, requiredRole string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	am := NewAuthMiddleware(log, auth)
	r := gin.New()
	group := r.Group("/protected", am.RequireAuth(), am.RequireRoles(requiredRole))
	group.GET("", func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": rd.UserID})
	})
	return r
}

func staffClaims(role string) *services.JWTClaims {
	return &services.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role:         role,
		UserType:     "staff",
		UniversityID: uuid.New(),
	}
}

func TestRequireAuthMissingToken(t *testing.T) {
	r := testRouter(t, &stubAuthService{}, "ADMIN")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	stub := &stubAuthService{err: apierr.Unauthorized("invalid_token", nil)}
	r := testRouter(t, stub, "ADMIN")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireRolesRejectsWrongRole(t *testing.T) {
	stub := &stubAuthService{claims: staffClaims("LECTURER")}
	r := testRouter(t, stub, "ADMIN")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	stub := &stubAuthService{claims: staffClaims("ADMIN")}
	r := testRouter(t, stub, "ADMIN")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExtractTokenFromQuery(t *testing.T) {
	stub := &stubAuthService{claims: staffClaims("ADMIN")}
	r := testRouter(t, stub, "ADMIN")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token=whatever", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 via query token, got %d", w.Code)
	}
}
