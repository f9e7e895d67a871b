package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alam-gir/agency/internal/domain/repository"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, repository.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), repository.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, repository.ErrDuplicate},
		{"fk violation", &pgconn.PgError{Code: "23503"}, repository.ErrInvalidRef},
		{"bad uuid text", &pgconn.PgError{Code: "22P02"}, repository.ErrInvalidID},
	}
	for _, tc := range cases {
		if got := translate(tc.in); !errors.Is(got, tc.want) {
			t.Errorf("%s: translate(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestTranslatePassesUnknownThrough(t *testing.T) {
	boom := errors.New("connection reset")
	if got := translate(boom); got != boom {
		t.Errorf("translate(%v) = %v", boom, got)
	}
	other := &pgconn.PgError{Code: "40001"}
	if got := translate(other); got != error(other) {
		t.Errorf("unhandled pg code was translated: %v", got)
	}
}
