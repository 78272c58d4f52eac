package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/roster/internal/member/entity"
	"github.com/shandysiswandi/roster/internal/pkg/goerror"
)

type (
	MemberDetailInput struct {
		ID int64 `validate:"required,gt=0"`
	}

	MemberDetailOutput struct {
		Member entity.Member
	}
)

func (s *Usecase) MemberDetail(ctx context.Context, in MemberDetailInput) (*MemberDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "MemberDetail")
	defer span.End()

	member, err := s.repoDB.GetMemberByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "member not found", "member_id", in.ID)
		return nil, goerror.NewBusiness("member not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get member by id", "member_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &MemberDetailOutput{Member: *member}, nil
}
