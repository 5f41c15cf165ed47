package pkg

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/digimenu/digimenu/internal/domain"
)

// slugPattern is the only shape an explicit slug may take.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// maxSlugAttempts bounds the suffix scan so a pathological scope cannot spin
// forever; the storage unique index remains the authoritative guard.
const maxSlugAttempts = 1000

// IsValidSlug reports whether s is a well-formed slug
// (lowercase letters, digits, and hyphens only).
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Slugify derives a URL-safe slug base from a human-readable name: lowercase,
// strip everything outside [a-z0-9 space hyphen], collapse whitespace runs and
// hyphen runs to single hyphens, trim leading/trailing hyphens.
//
// A name with no ASCII alphanumeric characters (e.g. a fully non-Latin name)
// yields no usable base; Slugify returns a validation error instead of an
// empty slug so callers can ask the client for an explicit one.
func Slugify(name string) (string, error) {
	lower := strings.ToLower(name)

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	s := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")

	if s == "" {
		return "", domain.NewAppError(domain.CodeValidation,
			"slug cannot be derived from name, provide an explicit slug", nil)
	}
	return s, nil
}

// SlugExistsFunc reports whether a slug is already taken within the caller's
// scope. The scope (global for providers, per provider for categories and
// items) and the excluded resource id are bound by the caller.
type SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

// UniqueSlug resolves the slug for a resource named name.
//
// When explicit is non-empty it is validated and checked for collision once;
// explicit slugs are never auto-disambiguated, a collision is a conflict.
// Otherwise the base is derived from name and the first free candidate of
// base, base-1, base-2, … is returned (lowest unused suffix).
//
// The scan is advisory only: two concurrent creates may both see a candidate
// as free. The unique index at the storage layer is the real enforcement
// point, and repositories map its violation to a conflict error.
func UniqueSlug(ctx context.Context, name, explicit string, exists SlugExistsFunc) (string, error) {
	if explicit != "" {
		if !IsValidSlug(explicit) {
			return "", domain.NewAppError(domain.CodeValidation,
				"slug may only contain lowercase letters, digits, and hyphens", nil)
		}
		taken, err := exists(ctx, explicit)
		if err != nil {
			return "", err
		}
		if taken {
			return "", domain.NewAppError(domain.CodeAlreadyExists, "slug already in use", nil)
		}
		return explicit, nil
	}

	base, err := Slugify(name)
	if err != nil {
		return "", err
	}

	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", domain.NewAppError(domain.CodeInternal, "could not find a free slug", nil)
}
