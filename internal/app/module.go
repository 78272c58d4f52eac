package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/roster/internal/member"
	"github.com/shandysiswandi/roster/internal/pkg/router"
)

func (a *App) initModules() {
	a.router.GET("/health", func(*router.Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	if err := member.New(member.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Messaging:  a.messaging,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module member", "error", err)
		os.Exit(1)
	}
}
