package db

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/roster/internal/member/entity"
)

// memberColumns holds the columns a uniqueness lookup may filter on. The
// filter column is interpolated into the statement, so it must come from
// this fixed set, never from request data.
var memberColumns = map[string]struct{}{
	"name":  {},
	"email": {},
}

func (s *DB) GetMemberByField(ctx context.Context, field, value string) (_ *entity.Member, err error) {
	ctx, span := s.startSpan(ctx, "GetMemberByField")
	defer func() { s.endSpan(span, err) }()

	if _, ok := memberColumns[field]; !ok {
		return nil, fmt.Errorf("members has no filterable column %q", field)
	}

	query := fmt.Sprintf(`
		SELECT id, name, email, phone, created_at
		FROM members
		WHERE %s = $1
	`, field)

	var m entity.Member
	err = s.conn.QueryRow(ctx, query, value).
		Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &m, nil
}

func (s *DB) GetMemberByID(ctx context.Context, id int64) (_ *entity.Member, err error) {
	ctx, span := s.startSpan(ctx, "GetMemberByID")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, name, email, phone, created_at
		FROM members
		WHERE id = $1
	`

	var m entity.Member
	err = s.conn.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &m, nil
}

func (s *DB) GetMemberList(ctx context.Context) (_ []entity.Member, err error) {
	ctx, span := s.startSpan(ctx, "GetMemberList")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, name, email, phone, created_at
		FROM members
		ORDER BY name ASC
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	members := make([]entity.Member, 0)
	for rows.Next() {
		var m entity.Member
		if err = rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return members, nil
}
