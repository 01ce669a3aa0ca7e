package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/kalendu/kalendu/internal/app"
	log "github.com/sirupsen/logrus"
)

func init() {
	_ = godotenv.Load()

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	commandsFile := flag.String("commands", "", "run the commands in the given file and exit")
	serve := flag.Bool("serve", false, "serve the HTTP API instead of the interactive console")
	flag.Parse()

	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	switch {
	case *serve:
		err = application.Serve()
	case *commandsFile != "":
		err = application.RunScript(*commandsFile)
	default:
		err = application.RunConsole()
	}
	if err != nil {
		log.Fatal(err)
	}
}
