package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/infrastructure/memory"
	"github.com/oksasatya/library-management-api/pkg/helpers"
)

type authFixture struct {
	engine *gin.Engine
	users  *memory.UserRepository
	jwt    *helpers.JWTManager
	svc    *application.AuthService
}

func newAuthTestServer(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := memory.NewUserRepository()
	jwt := helpers.NewJWTManager("middleware-test-secret", time.Hour)
	svc := application.NewAuthService(users, jwt, nil)

	r := gin.New()
	auth := r.Group("/", Auth(svc, jwt))
	auth.GET("/me", func(c *gin.Context) {
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": u.ID, "role": u.Role})
	})
	auth.GET("/staff", RequireRoles(entity.RoleAdmin, entity.RoleLibrarian), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return &authFixture{engine: r, users: users, jwt: jwt, svc: svc}
}

func (f *authFixture) addUser(t *testing.T, email string, role entity.Role) (*entity.User, string) {
	t.Helper()
	u := &entity.User{Name: "Test", Email: email, Password: "x", Role: role}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, _, err := f.jwt.Generate(u.ID, u.Email, string(u.Role), u.Name)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return u, token
}

func (f *authFixture) request(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingAndMalformedTokens(t *testing.T) {
	f := newAuthTestServer(t)

	if w := f.request(t, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", w.Code)
	}
	if w := f.request(t, "/me", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("non-bearer scheme: status = %d, want 401", w.Code)
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	f := newAuthTestServer(t)
	_, token := f.addUser(t, "m@example.com", entity.RoleMember)

	if w := f.request(t, "/me", token); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
}

func TestAuthRejectsTokenOfDeletedUser(t *testing.T) {
	f := newAuthTestServer(t)
	u, token := f.addUser(t, "gone@example.com", entity.RoleMember)

	if _, err := f.users.SoftDelete(context.Background(), u.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if w := f.request(t, "/me", token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for a deleted user's token", w.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	f := newAuthTestServer(t)
	_, memberToken := f.addUser(t, "member@example.com", entity.RoleMember)
	_, librarianToken := f.addUser(t, "lib@example.com", entity.RoleLibrarian)
	_, adminToken := f.addUser(t, "admin@example.com", entity.RoleAdmin)

	if w := f.request(t, "/staff", memberToken); w.Code != http.StatusForbidden {
		t.Fatalf("member: status = %d, want 403", w.Code)
	}
	if w := f.request(t, "/staff", librarianToken); w.Code != http.StatusNoContent {
		t.Fatalf("librarian: status = %d, want 204", w.Code)
	}
	if w := f.request(t, "/staff", adminToken); w.Code != http.StatusNoContent {
		t.Fatalf("admin: status = %d, want 204", w.Code)
	}
}
