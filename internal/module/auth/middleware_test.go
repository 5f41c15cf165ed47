package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/digimenu/digimenu/internal/domain"
)

func issueTestToken(t *testing.T, svc *TokenService, userID uint) string {
	t.Helper()
	token, _, err := svc.Generate(&domain.User{
		BaseModel: domain.BaseModel{ID: userID},
		Email:     "alice@example.com",
		Role:      domain.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := testTokenService()
	valid := issueTestToken(t, tokens, 42)

	tests := []struct {
		name       string
		setRequest func(*http.Request)
		wantStatus int
		wantUserID uint
	}{
		{
			name:       "missing token",
			setRequest: func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			setRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer garbage")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid bearer token",
			setRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+valid)
			},
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name: "valid cookie token",
			setRequest: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: valid})
			},
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name: "cookie takes precedence over bad header",
			setRequest: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: valid})
				req.Header.Set("Authorization", "Bearer garbage")
			},
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID uint
			r := gin.New()
			r.GET("/secure", RequireAuth(tokens), func(c *gin.Context) {
				gotUserID = CurrentUserID(c)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			tt.setRequest(req)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotUserID != tt.wantUserID {
				t.Errorf("CurrentUserID = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := testTokenService()
	valid := issueTestToken(t, tokens, 42)

	tests := []struct {
		name       string
		setRequest func(*http.Request)
		wantUserID uint
	}{
		{
			name:       "anonymous request passes through",
			setRequest: func(*http.Request) {},
			wantUserID: 0,
		},
		{
			name: "invalid token treated as anonymous",
			setRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer garbage")
			},
			wantUserID: 0,
		},
		{
			name: "valid token identifies the caller",
			setRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+valid)
			},
			wantUserID: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID uint
			r := gin.New()
			r.GET("/public", OptionalAuth(tokens), func(c *gin.Context) {
				gotUserID = CurrentUserID(c)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/public", nil)
			tt.setRequest(req)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("CurrentUserID = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}

func TestCurrentClaims_Anonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if claims := CurrentClaims(c); claims != nil {
		t.Fatalf("CurrentClaims() = %+v, want nil", claims)
	}
	if id := CurrentUserID(c); id != 0 {
		t.Fatalf("CurrentUserID() = %d, want 0", id)
	}
}
