package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/digimenu/digimenu/internal/domain"
)

// fakeAuthService implements Service for handler tests.
type fakeAuthService struct {
	user       *domain.User
	tokenResp  *TokenResponse
	err        error
	registered *RegisterInput
	updated    *UpdateProfileInput
}

func (f *fakeAuthService) Register(_ context.Context, in RegisterInput) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.registered = &in
	return f.user, nil
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (*TokenResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tokenResp, nil
}

func (f *fakeAuthService) GetProfile(_ context.Context, _ uint) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeAuthService) UpdateProfile(_ context.Context, _ uint, in UpdateProfileInput) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = &in
	return f.user, nil
}

func newAuthTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc, time.Hour, false)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	authed := func(c *gin.Context) {
		c.Set(claimsContextKey, &Claims{UserID: 7})
	}
	r.GET("/auth/me", authed, h.Me)
	r.PUT("/auth/me", authed, h.UpdateMe)
	return r
}

func testUser() *domain.User {
	return &domain.User{
		BaseModel:    domain.BaseModel{ID: 7},
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		Role:         domain.RoleCustomer,
		PasswordHash: "$2a$10$examplehash",
	}
}

func TestHandlerRegister_Success(t *testing.T) {
	svc := &fakeAuthService{user: testUser()}
	r := newAuthTestRouter(svc)

	body := `{"first_name":"Alice","last_name":"Smith","email":"alice@example.com","password":"password123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if svc.registered == nil {
		t.Fatal("expected service Register to be called")
	}
	if svc.registered.Email != "alice@example.com" {
		t.Errorf("registered email = %q, want %q", svc.registered.Email, "alice@example.com")
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("response must not echo password material, got: %s", w.Body.String())
	}

	var resp struct {
		Data UserResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.ID != 7 || resp.Data.FirstName != "Alice" {
		t.Errorf("data = %+v, want id 7 and first name Alice", resp.Data)
	}
}

func TestHandlerRegister_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"first_name":"Alice","last_name":"Smith","password":"password123"}`},
		{"bad email", `{"first_name":"Alice","last_name":"Smith","email":"nope","password":"password123"}`},
		{"short password", `{"first_name":"Alice","last_name":"Smith","email":"alice@example.com","password":"short"}`},
		{"malformed json", `{"first_name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{user: testUser()}
			r := newAuthTestRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusBadRequest, w.Body.String())
			}
			if svc.registered != nil {
				t.Error("service must not be called for an invalid payload")
			}
		})
	}
}

func TestHandlerRegister_DuplicateEmail(t *testing.T) {
	svc := &fakeAuthService{err: domain.NewAppError(domain.CodeAlreadyExists, "email already registered", nil)}
	r := newAuthTestRouter(svc)

	body := `{"first_name":"Alice","last_name":"Smith","email":"alice@example.com","password":"password123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestHandlerLogin_SetsCookie(t *testing.T) {
	svc := &fakeAuthService{tokenResp: &TokenResponse{Token: "signed-token", ExpiresAt: time.Now().Add(time.Hour).Unix()}}
	r := newAuthTestRouter(svc)

	body := `{"email":"alice@example.com","password":"password123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected auth-token cookie to be set")
	}
	if cookie.Value != "signed-token" {
		t.Errorf("cookie value = %q, want %q", cookie.Value, "signed-token")
	}
	if !cookie.HttpOnly {
		t.Error("auth cookie must be HTTP-only")
	}
	if cookie.MaxAge != int(time.Hour.Seconds()) {
		t.Errorf("cookie MaxAge = %d, want %d", cookie.MaxAge, int(time.Hour.Seconds()))
	}

	if !strings.Contains(w.Body.String(), "signed-token") {
		t.Errorf("response body should carry the token, got: %s", w.Body.String())
	}
}

func TestHandlerLogin_Unauthorized(t *testing.T) {
	svc := &fakeAuthService{err: domain.NewAppError(domain.CodeUnauthorized, "invalid email or password", nil)}
	r := newAuthTestRouter(svc)

	body := `{"email":"alice@example.com","password":"password123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			t.Fatal("no auth cookie should be set on failed login")
		}
	}
}

func TestHandlerLogout_ExpiresCookie(t *testing.T) {
	r := newAuthTestRouter(&fakeAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected expired auth-token cookie")
	}
	if cookie.Value != "" {
		t.Errorf("cookie value = %q, want empty", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("cookie MaxAge = %d, want negative to expire it", cookie.MaxAge)
	}
}

func TestHandlerMe(t *testing.T) {
	svc := &fakeAuthService{user: testUser()}
	r := newAuthTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Data UserResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.Email != "alice@example.com" {
		t.Errorf("email = %q, want %q", resp.Data.Email, "alice@example.com")
	}
	if strings.Contains(w.Body.String(), "examplehash") {
		t.Error("response must not leak the password hash")
	}
}

func TestHandlerUpdateMe(t *testing.T) {
	svc := &fakeAuthService{user: testUser()}
	r := newAuthTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/auth/me", strings.NewReader(`{"phone":"555-0101"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if svc.updated == nil {
		t.Fatal("expected service UpdateProfile to be called")
	}
	if svc.updated.Phone == nil || *svc.updated.Phone != "555-0101" {
		t.Errorf("updated phone = %v, want 555-0101", svc.updated.Phone)
	}
	if svc.updated.FirstName != nil {
		t.Error("absent first_name should map to nil")
	}
}
