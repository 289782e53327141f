package instructors

import (
	"context"
	"fmt"
	"strings"
)

const (
	defaultSlug     = "instructor"
	maxSlugAttempts = 1000
)

// generateSlug строит slug из имени: нижний регистр, только [a-z0-9 -],
// пробелы заменяются на дефис, повторяющиеся дефисы схлопываются
func generateSlug(name string) string {
	var b strings.Builder
	lastDash := false

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '\t' || r == '-':
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return defaultSlug
	}
	return slug
}

// uniqueSlug подбирает свободный slug: base, base-1, base-2, ...
func (s *Service) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := generateSlug(name)
	candidate := base

	for counter := 1; counter <= maxSlugAttempts; counter++ {
		exists, err := s.instructorRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("%w: uniqueSlug - repository error: %v", ErrInternal, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}

	return "", fmt.Errorf("%w: uniqueSlug - no free slug for %q", ErrInternal, base)
}
