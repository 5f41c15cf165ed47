package menuitem

import (
	"context"
	"strings"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/pkg"
)

// Service defines the business logic for menu items.
type Service interface {
	Create(ctx context.Context, userID uint, in CreateInput) (*domain.MenuItem, error)
	Get(ctx context.Context, userID uint, id uint) (*domain.MenuItem, error)
	List(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.MenuItem], error)
	Update(ctx context.Context, userID uint, id uint, in UpdateInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, userID uint, id uint) error
}

// VariantInput is one price variant in a create or replace request.
type VariantInput struct {
	Name  string
	Price int64
}

// AddonInput is one addon in a create or replace request.
type AddonInput struct {
	Name         string
	Price        int64
	Required     bool
	MaxSelection int
}

// CreateInput carries validated creation fields into the service.
type CreateInput struct {
	CategoryID    uint
	SubcategoryID *uint
	Name          string
	NameEn        string
	Slug          string
	Description   string
	Price         int64
	IsVegetarian  bool
	IsVegan       bool
	IsGlutenFree  bool
	IsSpicy       bool
	CalorieCount  int
	AvailableFrom string
	AvailableTo   string
	AvailableDays string
	Variants      []VariantInput
	Addons        []AddonInput
}

// UpdateInput carries a partial update. Nil fields are left untouched.
// SubcategoryID uses Patch so an explicit null clears the assignment while an
// absent key leaves it alone. Non-nil Variants or Addons replace the whole set.
type UpdateInput struct {
	CategoryID    *uint
	SubcategoryID pkg.Patch[uint]
	Name          *string
	NameEn        *string
	Slug          *string
	Description   *string
	Price         *int64
	Order         *int
	IsActive      *bool
	IsAvailable   *bool
	IsVegetarian  *bool
	IsVegan       *bool
	IsGlutenFree  *bool
	IsSpicy       *bool
	CalorieCount  *int
	AvailableFrom *string
	AvailableTo   *string
	AvailableDays *string
	Variants      *[]VariantInput
	Addons        *[]AddonInput
}

// menuItemService implements Service.
type menuItemService struct {
	repo       domain.MenuItemRepository
	categories domain.CategoryRepository
	providers  domain.ProviderRepository
}

// NewService creates a new menu item Service.
func NewService(repo domain.MenuItemRepository, categories domain.CategoryRepository, providers domain.ProviderRepository) Service {
	return &menuItemService{repo: repo, categories: categories, providers: providers}
}

// Create adds an item to one of the acting user's categories. The storefront
// must have finished onboarding, the target category must belong to it, and
// any subcategory must belong to that category. The slug is unique within the
// provider; new items are appended at the end of the category's display order.
func (s *menuItemService) Create(ctx context.Context, userID uint, in CreateInput) (*domain.MenuItem, error) {
	p, err := s.ownedProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !p.IsCompleted {
		return nil, domain.NewAppError(domain.CodePreconditionFailed, "complete your provider profile before adding menu items", nil)
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if in.Price < 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "price cannot be negative", nil)
	}

	cat, err := s.ownedCategory(ctx, p, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if in.SubcategoryID != nil {
		if !subcategoryInCategory(cat, *in.SubcategoryID) {
			return nil, domain.NewAppError(domain.CodeValidation, "subcategory does not belong to the category", nil)
		}
	}

	slug, err := pkg.UniqueSlug(ctx, in.Name, strings.TrimSpace(in.Slug), func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, p.ID, candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	maxOrder, err := s.repo.MaxOrder(ctx, cat.ID)
	if err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		ProviderID:    p.ID,
		CategoryID:    cat.ID,
		SubcategoryID: in.SubcategoryID,
		Slug:          slug,
		Name:          in.Name,
		NameEn:        strings.TrimSpace(in.NameEn),
		Description:   strings.TrimSpace(in.Description),
		Price:         in.Price,
		Order:         maxOrder + 1,
		IsActive:      true,
		IsAvailable:   true,
		IsVegetarian:  in.IsVegetarian,
		IsVegan:       in.IsVegan,
		IsGlutenFree:  in.IsGlutenFree,
		IsSpicy:       in.IsSpicy,
		CalorieCount:  in.CalorieCount,
		AvailableFrom: in.AvailableFrom,
		AvailableTo:   in.AvailableTo,
		AvailableDays: strings.TrimSpace(in.AvailableDays),
		Variants:      toVariants(in.Variants),
		Addons:        toAddons(in.Addons),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get loads one of the acting user's menu items.
func (s *menuItemService) Get(ctx context.Context, userID uint, id uint) (*domain.MenuItem, error) {
	_, item, err := s.ownedItem(ctx, userID, id)
	return item, err
}

// List returns the acting user's items, paginated.
func (s *menuItemService) List(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.MenuItem], error) {
	p, err := s.ownedProvider(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByProvider(ctx, p.ID, req)
}

// Update applies the fields present in the input, owner only. Moving an item
// re-validates the target category's ownership; if the target category changes
// and the subcategory is not re-specified, the assignment is cleared since it
// belonged to the old category. An explicit subcategory_id null clears it.
func (s *menuItemService) Update(ctx context.Context, userID uint, id uint, in UpdateInput) (*domain.MenuItem, error) {
	p, item, err := s.ownedItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	categoryChanged := in.CategoryID != nil && *in.CategoryID != item.CategoryID
	if categoryChanged {
		cat, err := s.ownedCategory(ctx, p, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		item.CategoryID = cat.ID
		item.SubcategoryID = nil
	}

	if in.SubcategoryID.IsSet() {
		if in.SubcategoryID.IsNull() {
			item.SubcategoryID = nil
		} else {
			cat, err := s.categories.GetByID(ctx, item.CategoryID)
			if err != nil {
				return nil, err
			}
			subID := in.SubcategoryID.Value()
			if !subcategoryInCategory(cat, subID) {
				return nil, domain.NewAppError(domain.CodeValidation, "subcategory does not belong to the category", nil)
			}
			item.SubcategoryID = &subID
		}
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name cannot be empty", nil)
		}
		item.Name = v
	}
	if in.Slug != nil && strings.TrimSpace(*in.Slug) != item.Slug {
		slug, err := pkg.UniqueSlug(ctx, item.Name, strings.TrimSpace(*in.Slug), func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, p.ID, candidate, item.ID)
		})
		if err != nil {
			return nil, err
		}
		item.Slug = slug
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, domain.NewAppError(domain.CodeValidation, "price cannot be negative", nil)
		}
		item.Price = *in.Price
	}
	if in.NameEn != nil {
		item.NameEn = strings.TrimSpace(*in.NameEn)
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Order != nil {
		item.Order = *in.Order
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.IsVegetarian != nil {
		item.IsVegetarian = *in.IsVegetarian
	}
	if in.IsVegan != nil {
		item.IsVegan = *in.IsVegan
	}
	if in.IsGlutenFree != nil {
		item.IsGlutenFree = *in.IsGlutenFree
	}
	if in.IsSpicy != nil {
		item.IsSpicy = *in.IsSpicy
	}
	if in.CalorieCount != nil {
		item.CalorieCount = *in.CalorieCount
	}
	if in.AvailableFrom != nil {
		item.AvailableFrom = *in.AvailableFrom
	}
	if in.AvailableTo != nil {
		item.AvailableTo = *in.AvailableTo
	}
	if in.AvailableDays != nil {
		item.AvailableDays = strings.TrimSpace(*in.AvailableDays)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if in.Variants != nil {
		if err := s.repo.ReplaceVariants(ctx, item.ID, toVariants(*in.Variants)); err != nil {
			return nil, err
		}
	}
	if in.Addons != nil {
		if err := s.repo.ReplaceAddons(ctx, item.ID, toAddons(*in.Addons)); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, item.ID)
}

// Delete removes the item, owner only.
func (s *menuItemService) Delete(ctx context.Context, userID uint, id uint) error {
	_, item, err := s.ownedItem(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, item.ID)
}

// ownedProvider loads the acting user's storefront.
func (s *menuItemService) ownedProvider(ctx context.Context, userID uint) (*domain.Provider, error) {
	p, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodePreconditionFailed, "create a provider profile first", nil)
		}
		return nil, err
	}
	return p, nil
}

// ownedCategory loads a category and verifies it belongs to the provider.
func (s *menuItemService) ownedCategory(ctx context.Context, p *domain.Provider, categoryID uint) (*domain.Category, error) {
	cat, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if cat.ProviderID != p.ID {
		return nil, domain.NewAppError(domain.CodeForbidden, "you do not own this category", nil)
	}
	return cat, nil
}

// ownedItem loads an item and verifies it belongs to the acting user's
// storefront. Items of other providers are reported as forbidden.
func (s *menuItemService) ownedItem(ctx context.Context, userID uint, id uint) (*domain.Provider, *domain.MenuItem, error) {
	p, err := s.ownedProvider(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if item.ProviderID != p.ID {
		return nil, nil, domain.NewAppError(domain.CodeForbidden, "you do not own this menu item", nil)
	}
	return p, item, nil
}

func subcategoryInCategory(cat *domain.Category, subID uint) bool {
	for i := range cat.Subcategories {
		if cat.Subcategories[i].ID == subID {
			return true
		}
	}
	return false
}

func toVariants(in []VariantInput) []domain.ItemVariant {
	variants := make([]domain.ItemVariant, 0, len(in))
	for _, v := range in {
		variants = append(variants, domain.ItemVariant{
			Name:  strings.TrimSpace(v.Name),
			Price: v.Price,
		})
	}
	return variants
}

func toAddons(in []AddonInput) []domain.ItemAddon {
	addons := make([]domain.ItemAddon, 0, len(in))
	for _, a := range in {
		addons = append(addons, domain.ItemAddon{
			Name:         strings.TrimSpace(a.Name),
			Price:        a.Price,
			Required:     a.Required,
			MaxSelection: a.MaxSelection,
		})
	}
	return addons
}
