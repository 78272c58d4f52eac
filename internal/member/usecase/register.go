package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/roster/internal/member/entity"
	"github.com/shandysiswandi/roster/internal/pkg/goerror"
)

type RegisterInput struct {
	Name  string `validate:"required,max=25,alphaspace"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,number,min=10,max=12"`
}

// uniqueFields lists the member fields guarded by a uniqueness rule.
// Every field is checked on each registration so one response can report
// all collisions at once.
var uniqueFields = []struct {
	label  string // field name as reported in the conflict payload
	column string
	value  func(RegisterInput) string
}{
	{label: "Name", column: "name", value: func(in RegisterInput) string { return in.Name }},
	{label: "Email", column: "email", value: func(in RegisterInput) string { return in.Email }},
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.checkUniqueFields(ctx, in); err != nil {
		return err
	}

	newMember := entity.NewMember{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: s.clock.Now(),
	}

	memberID, err := s.repoDB.CreateMember(ctx, newMember)
	if errors.Is(err, goerror.ErrConflict) {
		// Lost the race between the lookup and the insert. Re-run the
		// lookups so the response still names the colliding fields.
		slog.WarnContext(ctx, "member insert hit unique index", "email", in.Email)
		if err := s.checkUniqueFields(ctx, in); err != nil {
			return err
		}
		return goerror.NewUnexpected(err)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create member", "email", in.Email, "error", err)
		return goerror.NewUnexpected(err)
	}

	if err := s.repoMessaging.PublishMemberRegistered(ctx, MemberRegisteredEvent{
		MemberID: memberID,
		Name:     newMember.Name,
		Email:    newMember.Email,
		Phone:    newMember.Phone,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish member registered", "member_id", memberID, "error", err)
	}

	return nil
}

// checkUniqueFields queries storage for each unique-constrained field and
// accumulates every collision. A not-found result is the success case for a
// field; any other lookup failure aborts the attempt.
func (s *Usecase) checkUniqueFields(ctx context.Context, in RegisterInput) error {
	conflicts := make(map[string]string)
	for _, uf := range uniqueFields {
		_, err := s.repoDB.GetMemberByField(ctx, uf.column, uf.value(in))
		if errors.Is(err, goerror.ErrNotFound) {
			continue
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo get member by field", "field", uf.column, "error", err)
			return goerror.NewUnexpected(err)
		}
		conflicts[strings.ToLower(uf.label)] = uf.label + " taken"
	}

	if len(conflicts) > 0 {
		return goerror.NewConflict(conflicts)
	}
	return nil
}
