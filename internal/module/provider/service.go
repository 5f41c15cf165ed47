package provider

import (
	"context"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/pkg"
)

// Service defines the business logic for providers (storefronts).
type Service interface {
	Create(ctx context.Context, userID uint, in CreateInput) (*domain.Provider, error)
	Get(ctx context.Context, id uint, viewerUserID uint) (*domain.Provider, bool, error)
	GetMine(ctx context.Context, userID uint) (*domain.Provider, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Provider], error)
	Update(ctx context.Context, userID uint, id uint, in UpdateInput) (*domain.Provider, error)
	Delete(ctx context.Context, userID uint, id uint) error
	MenuQRCode(ctx context.Context, userID uint, size int) ([]byte, error)
}

// CreateInput carries validated creation fields into the service.
type CreateInput struct {
	Name        string
	NameEn      string
	Slug        string
	Type        string
	Description string
	Address     string
	City        string
	Phone       string
	Instagram   string
	PriceRange  string
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	NameEn      *string
	Slug        *string
	Type        *string
	Description *string
	Address     *string
	City        *string
	Phone       *string
	Instagram   *string
	PriceRange  *string
	IsActive    *bool
}

const (
	minQRSize     = 128
	maxQRSize     = 1024
	defaultQRSize = 256
)

// providerService implements Service.
type providerService struct {
	repo          domain.ProviderRepository
	publicBaseURL string
}

// NewService creates a new provider Service. publicBaseURL is the externally
// visible origin used to build menu links and QR codes.
func NewService(repo domain.ProviderRepository, publicBaseURL string) Service {
	return &providerService{
		repo:          repo,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Create registers the acting user's storefront. A user owns at most one
// provider; a second create is a conflict. The slug is globally unique:
// explicit slugs collide, derived slugs are disambiguated with a numeric
// suffix.
func (s *providerService) Create(ctx context.Context, userID uint, in CreateInput) (*domain.Provider, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if in.Type == "" {
		in.Type = domain.ProviderTypeRestaurant
	}
	if !domain.ValidProviderType(in.Type) {
		return nil, domain.NewAppError(domain.CodeValidation, "unknown provider type", nil)
	}

	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return nil, domain.NewAppError(domain.CodeAlreadyExists, "provider already exists for this account", nil)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	slug, err := pkg.UniqueSlug(ctx, in.Name, strings.TrimSpace(in.Slug), func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	p := &domain.Provider{
		UserID:      userID,
		Slug:        slug,
		Name:        in.Name,
		NameEn:      strings.TrimSpace(in.NameEn),
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		Phone:       strings.TrimSpace(in.Phone),
		Instagram:   strings.TrimSpace(in.Instagram),
		PriceRange:  strings.TrimSpace(in.PriceRange),
		IsActive:    true,
	}
	p.IsCompleted = isCompleted(p)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get loads a provider by id. Non-owners only see active storefronts; an
// inactive provider is reported as not found rather than forbidden so its
// existence is not leaked. The second return value reports whether the viewer
// is the owner, which drives response projection.
func (s *providerService) Get(ctx context.Context, id uint, viewerUserID uint) (*domain.Provider, bool, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	owner := viewerUserID != 0 && p.UserID == viewerUserID
	if !owner && !p.IsActive {
		return nil, false, domain.ErrNotFound
	}
	return p, owner, nil
}

// GetMine loads the acting user's own provider regardless of its active flag.
func (s *providerService) GetMine(ctx context.Context, userID uint) (*domain.Provider, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// List returns the public catalog: active providers only.
func (s *providerService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Provider], error) {
	return s.repo.List(ctx, req, true)
}

// Update applies the fields present in the input to the provider, owner only.
// A changed explicit slug is re-checked for uniqueness excluding the provider
// itself and never auto-disambiguated.
func (s *providerService) Update(ctx context.Context, userID uint, id uint, in UpdateInput) (*domain.Provider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, domain.NewAppError(domain.CodeForbidden, "you do not own this provider", nil)
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name cannot be empty", nil)
		}
		p.Name = v
	}
	if in.Type != nil {
		if !domain.ValidProviderType(*in.Type) {
			return nil, domain.NewAppError(domain.CodeValidation, "unknown provider type", nil)
		}
		p.Type = *in.Type
	}
	if in.Slug != nil && strings.TrimSpace(*in.Slug) != p.Slug {
		slug, err := pkg.UniqueSlug(ctx, p.Name, strings.TrimSpace(*in.Slug), func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, candidate, p.ID)
		})
		if err != nil {
			return nil, err
		}
		p.Slug = slug
	}
	if in.NameEn != nil {
		p.NameEn = strings.TrimSpace(*in.NameEn)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.City != nil {
		p.City = strings.TrimSpace(*in.City)
	}
	if in.Phone != nil {
		p.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Instagram != nil {
		p.Instagram = strings.TrimSpace(*in.Instagram)
	}
	if in.PriceRange != nil {
		p.PriceRange = strings.TrimSpace(*in.PriceRange)
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.IsCompleted = isCompleted(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the provider, owner only. Child categories and items are not
// cascaded; see the deletion notes in DESIGN.md.
func (s *providerService) Delete(ctx context.Context, userID uint, id uint) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return domain.NewAppError(domain.CodeForbidden, "you do not own this provider", nil)
	}
	return s.repo.Delete(ctx, id)
}

// MenuQRCode renders a PNG QR code pointing at the owner's public menu page.
func (s *providerService) MenuQRCode(ctx context.Context, userID uint, size int) ([]byte, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		size = defaultQRSize
	}
	if size < minQRSize {
		size = minQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	png, err := qrcode.Encode(s.publicBaseURL+"/menus/"+p.Slug, qrcode.Medium, size)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to encode qr code", err)
	}
	return png, nil
}

// isCompleted reports whether the onboarding-required fields are all present.
// Category and menu item creation are gated on this.
func isCompleted(p *domain.Provider) bool {
	return p.Name != "" && p.Address != "" && p.Phone != "" && domain.ValidProviderType(p.Type)
}
