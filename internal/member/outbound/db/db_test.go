package db

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shandysiswandi/roster/internal/pkg/goerror"
)

func TestMapError(t *testing.T) {
	s := &DB{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: goerror.ErrNotFound},
		{name: "unique violation", in: &pgconn.PgError{Code: "23505"}, want: goerror.ErrConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.mapError(tc.in)
			if !errors.Is(got, tc.want) {
				t.Fatalf("mapError(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMapErrorPassesThroughOtherErrors(t *testing.T) {
	s := &DB{}
	cause := errors.New("connection reset")

	if got := s.mapError(cause); !errors.Is(got, cause) {
		t.Fatalf("expected unrelated error passed through, got %v", got)
	}

	otherPg := &pgconn.PgError{Code: "23503"}
	if got := s.mapError(otherPg); !errors.Is(got, otherPg) {
		t.Fatalf("expected non-unique pg error passed through, got %v", got)
	}
}
