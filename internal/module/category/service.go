package category

import (
	"context"
	"strings"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/pkg"
)

// Service defines the business logic for menu categories.
type Service interface {
	Create(ctx context.Context, userID uint, in CreateInput) (*domain.Category, error)
	Get(ctx context.Context, userID uint, id uint) (*domain.Category, error)
	List(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Category], error)
	Update(ctx context.Context, userID uint, id uint, in UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, userID uint, id uint) error
}

// SubcategoryInput is one subcategory in a create or replace request.
type SubcategoryInput struct {
	Name   string
	NameEn string
	Order  int
}

// CreateInput carries validated creation fields into the service.
type CreateInput struct {
	Name          string
	NameEn        string
	Slug          string
	AvailableFrom string
	AvailableTo   string
	AvailableDays string
	Subcategories []SubcategoryInput
}

// UpdateInput carries a partial update. Nil fields are left untouched; a
// non-nil Subcategories replaces the whole set.
type UpdateInput struct {
	Name          *string
	NameEn        *string
	Slug          *string
	Order         *int
	IsActive      *bool
	AvailableFrom *string
	AvailableTo   *string
	AvailableDays *string
	Subcategories *[]SubcategoryInput
}

// categoryService implements Service.
type categoryService struct {
	repo      domain.CategoryRepository
	providers domain.ProviderRepository
	items     domain.MenuItemRepository
}

// NewService creates a new category Service.
func NewService(repo domain.CategoryRepository, providers domain.ProviderRepository, items domain.MenuItemRepository) Service {
	return &categoryService{repo: repo, providers: providers, items: items}
}

// Create adds a category to the acting user's storefront. The storefront must
// have finished onboarding first. The slug is unique within the provider;
// explicit slugs collide, derived slugs get a numeric suffix. New categories
// are appended at the end of the display order.
func (s *categoryService) Create(ctx context.Context, userID uint, in CreateInput) (*domain.Category, error) {
	p, err := s.ownedProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !p.IsCompleted {
		return nil, domain.NewAppError(domain.CodePreconditionFailed, "complete your provider profile before adding categories", nil)
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	slug, err := pkg.UniqueSlug(ctx, in.Name, strings.TrimSpace(in.Slug), func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, p.ID, candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	maxOrder, err := s.repo.MaxOrder(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	c := &domain.Category{
		ProviderID:    p.ID,
		Slug:          slug,
		Name:          in.Name,
		NameEn:        strings.TrimSpace(in.NameEn),
		Order:         maxOrder + 1,
		IsActive:      true,
		AvailableFrom: in.AvailableFrom,
		AvailableTo:   in.AvailableTo,
		AvailableDays: strings.TrimSpace(in.AvailableDays),
		Subcategories: toSubcategories(in.Subcategories),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get loads one of the acting user's categories.
func (s *categoryService) Get(ctx context.Context, userID uint, id uint) (*domain.Category, error) {
	_, c, err := s.ownedCategory(ctx, userID, id)
	return c, err
}

// List returns the acting user's categories, paginated.
func (s *categoryService) List(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Category], error) {
	p, err := s.ownedProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByProvider(ctx, p.ID, req)
}

// Update applies the fields present in the input to the category, owner only.
// A changed explicit slug is re-checked within the provider and never
// auto-disambiguated. A present Subcategories field replaces the whole set.
func (s *categoryService) Update(ctx context.Context, userID uint, id uint, in UpdateInput) (*domain.Category, error) {
	p, c, err := s.ownedCategory(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name cannot be empty", nil)
		}
		c.Name = v
	}
	if in.Slug != nil && strings.TrimSpace(*in.Slug) != c.Slug {
		slug, err := pkg.UniqueSlug(ctx, c.Name, strings.TrimSpace(*in.Slug), func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, p.ID, candidate, c.ID)
		})
		if err != nil {
			return nil, err
		}
		c.Slug = slug
	}
	if in.NameEn != nil {
		c.NameEn = strings.TrimSpace(*in.NameEn)
	}
	if in.Order != nil {
		c.Order = *in.Order
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.AvailableFrom != nil {
		c.AvailableFrom = *in.AvailableFrom
	}
	if in.AvailableTo != nil {
		c.AvailableTo = *in.AvailableTo
	}
	if in.AvailableDays != nil {
		c.AvailableDays = strings.TrimSpace(*in.AvailableDays)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if in.Subcategories != nil {
		if err := s.repo.ReplaceSubcategories(ctx, c.ID, toSubcategories(*in.Subcategories)); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, c.ID)
}

// Delete removes the category, owner only. Categories that still hold menu
// items cannot be deleted; the items must be moved or removed first.
func (s *categoryService) Delete(ctx context.Context, userID uint, id uint) error {
	_, c, err := s.ownedCategory(ctx, userID, id)
	if err != nil {
		return err
	}

	count, err := s.items.CountByCategory(ctx, c.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewAppError(domain.CodeDependencyConflict, "category still contains menu items", nil)
	}

	return s.repo.Delete(ctx, c.ID)
}

// ownedProvider loads the acting user's storefront.
func (s *categoryService) ownedProvider(ctx context.Context, userID uint) (*domain.Provider, error) {
	p, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodePreconditionFailed, "create a provider profile first", nil)
		}
		return nil, err
	}
	return p, nil
}

// ownedCategory loads a category and verifies it belongs to the acting user's
// storefront. Categories of other providers are reported as forbidden.
func (s *categoryService) ownedCategory(ctx context.Context, userID uint, id uint) (*domain.Provider, *domain.Category, error) {
	p, err := s.ownedProvider(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if c.ProviderID != p.ID {
		return nil, nil, domain.NewAppError(domain.CodeForbidden, "you do not own this category", nil)
	}
	return p, c, nil
}

func toSubcategories(in []SubcategoryInput) []domain.Subcategory {
	subs := make([]domain.Subcategory, 0, len(in))
	for i, sub := range in {
		order := sub.Order
		if order == 0 {
			order = i + 1
		}
		subs = append(subs, domain.Subcategory{
			Name:   strings.TrimSpace(sub.Name),
			NameEn: strings.TrimSpace(sub.NameEn),
			Order:  order,
		})
	}
	return subs
}
