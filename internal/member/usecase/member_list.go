package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/roster/internal/member/entity"
	"github.com/shandysiswandi/roster/internal/pkg/goerror"
)

type MemberListOutput struct {
	Members []entity.Member
}

func (s *Usecase) MemberList(ctx context.Context) (*MemberListOutput, error) {
	ctx, span := s.startSpan(ctx, "MemberList")
	defer span.End()

	members, err := s.repoDB.GetMemberList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list members", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &MemberListOutput{Members: members}, nil
}
