package usecase

import (
	"context"

	"github.com/shandysiswandi/roster/internal/member/entity"
	"github.com/shandysiswandi/roster/internal/pkg/clock"
	"github.com/shandysiswandi/roster/internal/pkg/config"
	"github.com/shandysiswandi/roster/internal/pkg/instrument"
	"github.com/shandysiswandi/roster/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type MemberRegisteredEvent struct {
	MemberID int64
	Name     string
	Email    string
	Phone    string
}

type repoMessaging interface {
	PublishMemberRegistered(ctx context.Context, msg MemberRegisteredEvent) error
}

type repoDB interface {
	GetMemberByField(ctx context.Context, field, value string) (*entity.Member, error)
	GetMemberByID(ctx context.Context, id int64) (*entity.Member, error)
	GetMemberList(ctx context.Context) ([]entity.Member, error)

	CreateMember(ctx context.Context, in entity.NewMember) (int64, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("member.usecase").Start(ctx, name)
}
