package newsdesk

import "strings"

// NoiseClassifier decides whether a line of extracted text is platform
// chrome (login prompts, legal links, "see more" controls) rather than
// article content.
type NoiseClassifier interface {
	IsNoise(line string) bool
}

// defaultNoisePatterns lists LinkedIn boilerplate observed in reader-proxy
// output. The platform changes its wording often; extend as needed.
var defaultNoisePatterns = []string{
	"iniciar sesión",
	"sign in",
	"únete ahora",
	"join now",
	"aceptar y unirse",
	"agree & join",
	"nuevo en linkedin",
	"new to linkedin",
	"¿olvidaste tu contraseña?",
	"forgot password?",
	"política de privacidad",
	"privacy policy",
	"condiciones de uso",
	"user agreement",
	"política de cookies",
	"cookie policy",
	"directrices de la comunidad",
	"community guidelines",
	"saltar al contenido principal",
	"skip to main content",
	"ver más",
	"see more",
	"ver perfil",
	"view profile",
	"denunciar esta publicación",
	"report this post",
	"denunciar este artículo",
	"report this article",
	"recomendar comentar",
	"like comment",
	"copiar enlace",
	"copy link",
	"linkedin corporation",
}

// NoisePatterns is an immutable set of lower-cased substrings that mark a
// line as noise. The zero value matches only blank lines.
type NoisePatterns struct {
	patterns []string
}

// Ensure NoisePatterns implements NoiseClassifier at compile time.
var _ NoiseClassifier = NoisePatterns{}

// NewNoisePatterns returns a pattern set holding the given substrings.
// Empty entries are ignored; matching is case-insensitive.
func NewNoisePatterns(patterns ...string) NoisePatterns {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return NoisePatterns{patterns: out}
}

// DefaultNoisePatterns returns the built-in LinkedIn pattern set.
func DefaultNoisePatterns() NoisePatterns {
	return NewNoisePatterns(defaultNoisePatterns...)
}

// With returns a new set extended with extra patterns.
func (p NoisePatterns) With(extra ...string) NoisePatterns {
	all := make([]string, 0, len(p.patterns)+len(extra))
	all = append(all, p.patterns...)
	all = append(all, extra...)
	return NewNoisePatterns(all...)
}

// Patterns returns a copy of the patterns in order.
func (p NoisePatterns) Patterns() []string {
	out := make([]string, len(p.patterns))
	copy(out, p.patterns)
	return out
}

// IsNoise reports whether line is blank or contains any pattern.
func (p NoisePatterns) IsNoise(line string) bool {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return true
	}
	for _, pattern := range p.patterns {
		if strings.Contains(line, pattern) {
			return true
		}
	}
	return false
}
