package inbound

import (
	"context"

	"github.com/shandysiswandi/roster/internal/member/usecase"
	"github.com/shandysiswandi/roster/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) error
	MemberList(ctx context.Context) (*usecase.MemberListOutput, error)
	MemberDetail(ctx context.Context, in usecase.MemberDetailInput) (*usecase.MemberDetailOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/members", end.MemberList)
	r.GET("/api/v1/members/:id", end.MemberDetail)
	r.POST("/api/v1/members", end.Register)
}
