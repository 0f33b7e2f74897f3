package validators

import (
	"net"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmailPlausible faz somente a checagem sintática, usada no fluxo
// público de agendamento (sem tocar na rede).
func IsEmailPlausible(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsEmailDomainValid consulta DNS do domínio; usada apenas no cadastro
// do profissional.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
