package app

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/kalendu/kalendu/internal/config"
	"github.com/kalendu/kalendu/internal/repl"
	"github.com/kalendu/kalendu/internal/utils"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, the calendar session, and the two ways
// of driving it: the console loop and the HTTP server.
type Application struct {
	cfg  config.Application
	deps *Dependencies
}

// NewApplication constructs the full application, ready to run in any mode.
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	deps, err := BuildDependencies(cfg)
	if err != nil {
		return nil, err
	}

	return &Application{cfg: cfg, deps: deps}, nil
}

// RunConsole starts the interactive command loop on stdin/stdout and blocks
// until the operator exits.
func (a *Application) RunConsole() error {
	log.Infof("Interactive mode, active calendar: %s", a.deps.Session.ActiveName())
	return repl.RunInteractive(a.deps.Session, os.Stdin, os.Stdout)
}

// RunScript executes a command file and exits.
func (a *Application) RunScript(path string) error {
	return repl.RunScript(a.deps.Session, path, os.Stdout)
}

// Serve starts the HTTP server and blocks.
func (a *Application) Serve() error {
	r := mux.NewRouter()
	SetupMiddleware(r, utils.SystemClock{})
	RegisterRoutes(r, a.deps)

	srv := &http.Server{
		Handler:      r,
		Addr:         a.cfg.Server.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Infof("Starting server on %s", srv.Addr)
	return srv.ListenAndServe()
}
