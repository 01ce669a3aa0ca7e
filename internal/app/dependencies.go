package app

import (
	"github.com/kalendu/kalendu/internal/config"
	"github.com/kalendu/kalendu/pkg/calendar"
	"github.com/kalendu/kalendu/pkg/command"
	"github.com/kalendu/kalendu/pkg/export"
)

// Dependencies holds the session and handlers shared by the console and
// HTTP surfaces.
type Dependencies struct {
	Directory      *calendar.Directory
	Session        *command.Session
	CommandHandler *command.Handler
}

// BuildDependencies wires the directory, exporters, and session, and makes
// the configured default calendar active.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	directory := calendar.NewDirectory()
	if err := directory.Create(cfg.Calendar.Name, cfg.Calendar.Timezone); err != nil {
		return nil, err
	}

	session := command.NewSession(
		directory,
		export.NewCSVExporter(cfg.Export.Dir),
		export.NewICSExporter(cfg.Export.Dir),
	)
	if err := session.Use(cfg.Calendar.Name); err != nil {
		return nil, err
	}

	return &Dependencies{
		Directory:      directory,
		Session:        session,
		CommandHandler: command.NewHandler(session),
	}, nil
}
