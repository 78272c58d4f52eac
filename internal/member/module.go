package member

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/roster/internal/member/inbound"
	"github.com/shandysiswandi/roster/internal/member/outbound/db"
	"github.com/shandysiswandi/roster/internal/member/outbound/mq"
	"github.com/shandysiswandi/roster/internal/member/usecase"
	"github.com/shandysiswandi/roster/internal/pkg/clock"
	"github.com/shandysiswandi/roster/internal/pkg/config"
	"github.com/shandysiswandi/roster/internal/pkg/instrument"
	"github.com/shandysiswandi/roster/internal/pkg/messaging"
	"github.com/shandysiswandi/roster/internal/pkg/router"
	"github.com/shandysiswandi/roster/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Publisher        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbMember := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbMember,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
