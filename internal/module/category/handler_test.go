package category

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/module/auth"
)

// fakeCategoryService records inputs and serves canned results.
type fakeCategoryService struct {
	category *domain.Category
	page     *domain.PageResult[domain.Category]
	err      error

	created *CreateInput
	updated *UpdateInput
	deleted []uint
}

func (f *fakeCategoryService) Create(_ context.Context, _ uint, in CreateInput) (*domain.Category, error) {
	f.created = &in
	if f.err != nil {
		return nil, f.err
	}
	return f.category, nil
}

func (f *fakeCategoryService) Get(_ context.Context, _ uint, _ uint) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.category, nil
}

func (f *fakeCategoryService) List(_ context.Context, _ uint, _ domain.PageRequest) (*domain.PageResult[domain.Category], error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeCategoryService) Update(_ context.Context, _ uint, _ uint, in UpdateInput) (*domain.Category, error) {
	f.updated = &in
	if f.err != nil {
		return nil, f.err
	}
	return f.category, nil
}

func (f *fakeCategoryService) Delete(_ context.Context, _ uint, id uint) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func newCategoryTestRouter(t *testing.T, svc Service) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService("test-secret-key-must-be-at-least-32-chars-long!", time.Hour)
	r := gin.New()
	public := r.Group("/api/v1")
	protected := r.Group("/api/v1")
	protected.Use(auth.RequireAuth(tokens))

	NewModule(NewHandler(svc)).RegisterRoutes(public, protected)

	token, _, err := tokens.Generate(&domain.User{BaseModel: domain.BaseModel{ID: 7}, Email: "owner@example.com"})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return r, "Bearer " + token
}

func testCategory() *domain.Category {
	return &domain.Category{
		BaseModel:  domain.BaseModel{ID: 4},
		ProviderID: 3,
		Slug:       "mains",
		Name:       "Mains",
		Order:      1,
		IsActive:   true,
		Subcategories: []domain.Subcategory{
			{BaseModel: domain.BaseModel{ID: 1}, CategoryID: 4, Name: "Grilled", Order: 1},
		},
	}
}

func TestCategoryHandlerCreate(t *testing.T) {
	svc := &fakeCategoryService{category: testCategory()}
	r, bearer := newCategoryTestRouter(t, svc)

	body := `{"name":"Mains","available_from":"11:00","available_to":"22:30","subcategories":[{"name":"Grilled","order":1}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if svc.created == nil {
		t.Fatal("service not called")
	}
	if svc.created.AvailableFrom != "11:00" || len(svc.created.Subcategories) != 1 {
		t.Errorf("create input = %+v, want availability and subcategories forwarded", svc.created)
	}
	if !strings.Contains(w.Body.String(), `"slug":"mains"`) {
		t.Errorf("body missing category payload: %s", w.Body.String())
	}
}

func TestCategoryHandlerCreate_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{}`},
		{"bad time format", `{"name":"Mains","available_from":"25:99"}`},
		{"subcategory without name", `{"name":"Mains","subcategories":[{"order":1}]}`},
		{"malformed json", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeCategoryService{category: testCategory()}
			r, bearer := newCategoryTestRouter(t, svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", bearer)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d, body: %s", w.Code, http.StatusBadRequest, w.Body.String())
			}
			if svc.created != nil {
				t.Error("service called despite invalid payload")
			}
		})
	}
}

func TestCategoryHandler_RequiresAuth(t *testing.T) {
	svc := &fakeCategoryService{category: testCategory()}
	r, _ := newCategoryTestRouter(t, svc)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/categories"},
		{http.MethodGet, "/api/v1/categories"},
		{http.MethodGet, "/api/v1/categories/4"},
		{http.MethodPut, "/api/v1/categories/4"},
		{http.MethodDelete, "/api/v1/categories/4"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want %d", route.method, route.path, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestCategoryHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "no provider profile yet",
			err:        domain.NewAppError(domain.CodePreconditionFailed, "create a provider profile first", nil),
			wantStatus: http.StatusPreconditionFailed,
		},
		{
			name:       "not the owner",
			err:        domain.NewAppError(domain.CodeForbidden, "you do not own this category", nil),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing category",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeCategoryService{err: tt.err}
			r, bearer := newCategoryTestRouter(t, svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/4", nil)
			req.Header.Set("Authorization", bearer)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestCategoryHandlerUpdate_ForwardsPartialFields(t *testing.T) {
	svc := &fakeCategoryService{category: testCategory()}
	r, bearer := newCategoryTestRouter(t, svc)

	body := `{"is_active":false,"subcategories":[]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/categories/4", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if svc.updated == nil {
		t.Fatal("service not called")
	}
	if svc.updated.Name != nil {
		t.Error("absent name should stay nil")
	}
	if svc.updated.IsActive == nil || *svc.updated.IsActive {
		t.Error("is_active false not forwarded")
	}
	if svc.updated.Subcategories == nil || len(*svc.updated.Subcategories) != 0 {
		t.Error("present empty subcategories array should forward an empty replacement set")
	}
}

func TestCategoryHandlerDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCategoryService{category: testCategory()}
		r, bearer := newCategoryTestRouter(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/4", nil)
		req.Header.Set("Authorization", bearer)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if len(svc.deleted) != 1 || svc.deleted[0] != 4 {
			t.Errorf("deleted = %v, want [4]", svc.deleted)
		}
	})

	t.Run("category still holding items", func(t *testing.T) {
		svc := &fakeCategoryService{err: domain.NewAppError(domain.CodeDependencyConflict, "category still contains menu items", nil)}
		r, bearer := newCategoryTestRouter(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/4", nil)
		req.Header.Set("Authorization", bearer)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusConflict, w.Body.String())
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := &fakeCategoryService{category: testCategory()}
		r, bearer := newCategoryTestRouter(t, svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/abc", nil)
		req.Header.Set("Authorization", bearer)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if len(svc.deleted) != 0 {
			t.Error("service called despite invalid id")
		}
	})
}

func TestCategoryNewModule_PanicsOnNilHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewModule(nil) should panic")
		}
	}()
	NewModule(nil)
}
