package auth

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/digimenu/digimenu/internal/domain"
)

// Service defines the authentication and profile operations.
type Service interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	GetProfile(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*domain.User, error)
}

// RegisterInput carries validated registration fields into the service.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// UpdateProfileInput carries a partial profile update. Nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// authService implements Service.
type authService struct {
	tokens   *TokenService
	userRepo domain.UserRepository
}

// NewService creates a new auth Service.
func NewService(tokens *TokenService, userRepo domain.UserRepository) Service {
	return &authService{tokens: tokens, userRepo: userRepo}
}

// Register creates a new customer account with the given credentials.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	user := domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         domain.RoleCustomer,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeAlreadyExists, "email already registered", err)
		}
		return nil, err
	}

	return &user, nil
}

// Login authenticates a user by email and password and returns a session token.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Don't reveal whether the user exists — always return unauthorized.
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid email or password", nil)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.NewAppError(domain.CodeUnauthorized, "invalid email or password", nil)
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// GetProfile retrieves the acting user's account.
func (s *authService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the fields present in the input and leaves the rest untouched.
func (s *authService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		if v == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "first_name cannot be empty", nil)
		}
		user.FirstName = v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		if v == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "last_name cannot be empty", nil)
		}
		user.LastName = v
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// validateRegisterInput validates registration input. Fields are expected to
// be pre-trimmed by the caller.
func validateRegisterInput(in RegisterInput) error {
	if in.FirstName == "" {
		return domain.NewAppError(domain.CodeValidation, "first_name is required", nil)
	}
	if utf8.RuneCountInString(in.FirstName) > 100 {
		return domain.NewAppError(domain.CodeValidation, "first_name must not exceed 100 characters", nil)
	}
	if in.LastName == "" {
		return domain.NewAppError(domain.CodeValidation, "last_name is required", nil)
	}
	if utf8.RuneCountInString(in.LastName) > 100 {
		return domain.NewAppError(domain.CodeValidation, "last_name must not exceed 100 characters", nil)
	}
	if in.Email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	addr, err := mail.ParseAddress(in.Email)
	if err != nil || addr.Name != "" || addr.Address != in.Email {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	if len(in.Password) < 8 {
		return domain.NewAppError(domain.CodeValidation, "password must be at least 8 characters", nil)
	}
	if len(in.Password) > 72 {
		return domain.NewAppError(domain.CodeValidation, "password must not exceed 72 characters", nil)
	}
	return nil
}
