package main

import (
	"flag"
	"log"
	"os"

	"github.com/avstrong/hotel/internal/app"
	"github.com/avstrong/hotel/internal/config"
	"github.com/avstrong/hotel/internal/logger"
)

func main() {
	envFile := flag.String("env", ".env", "path to an optional dotenv file")
	flag.Parse()

	l := logger.New(log.Default())

	var exitCode int

	defer func() {
		os.Exit(exitCode)
	}()

	conf, err := config.Load(*envFile)
	if err != nil {
		l.LogErrorf("Failed to load config: %v", err.Error())

		exitCode = 1

		return
	}

	if conf.LogFile != "" {
		f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gomnd
		if err != nil {
			l.LogErrorf("Failed to open log file %v: %v", conf.LogFile, err.Error())

			exitCode = 1

			return
		}
		defer f.Close()

		l = logger.New(log.New(f, "", log.LstdFlags))
	}

	if err := app.Run(l, conf); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}
}
