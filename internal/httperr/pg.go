package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation detecta a violação do índice único parcial que
// protege a tupla (funcionário, data, hora) de agendamentos confirmados.
// A checagem de aplicação sozinha não segura a corrida check-then-act;
// o banco é quem decide o vencedor.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
