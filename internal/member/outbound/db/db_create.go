package db

import (
	"context"

	"github.com/shandysiswandi/roster/internal/member/entity"
)

func (s *DB) CreateMember(ctx context.Context, in entity.NewMember) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "CreateMember")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO members (name, email, phone, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err = s.conn.QueryRow(ctx, query, in.Name, in.Email, in.Phone, in.CreatedAt).Scan(&id)
	if err != nil {
		return 0, s.mapError(err)
	}

	return id, nil
}
