package slugutil

import (
	"regexp"
	"strings"
)

var (
	spaces    = regexp.MustCompile(`\s+`)
	forbidden = regexp.MustCompile(`[^a-z0-9-]`)
	dashes    = regexp.MustCompile(`-{2,}`)
)

// Normalize deriva o slug da página pública a partir do nome do salão:
// minúsculas, espaços viram hífen, resto descartado.
func Normalize(salonName string) string {
	s := strings.ToLower(strings.TrimSpace(salonName))
	s = spaces.ReplaceAllString(s, "-")
	s = forbidden.ReplaceAllString(s, "")
	s = dashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithSuffix desambigua colisões: dois salões com o mesmo nome
// normalizado recebem um sufixo curto no cadastro.
func WithSuffix(slug, suffix string) string {
	return slug + "-" + suffix
}
