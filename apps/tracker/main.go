package main

import (
	"context"
	"log"
	"os"

	"github.com/jakmauu/tutam9-frontend/core"
	"github.com/jakmauu/tutam9-frontend/core/assignment"
	"github.com/jakmauu/tutam9-frontend/core/session"
	"github.com/jakmauu/tutam9-frontend/services/gateway"
	logsvc "github.com/jakmauu/tutam9-frontend/services/logger"
	"github.com/jakmauu/tutam9-frontend/storage/tokenfile"
)

var logger core.Logger

func main() {
	defer os.Exit(0)

	std := log.New(os.Stderr, "TRACKER : ", log.LstdFlags)
	if core.Conf.Debug {
		logger = logsvc.NewConsoleLogger(std, core.Conf)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
		logger.Enable(true)
	}

	// set up the token store
	store, err := tokenfile.NewStore(core.Conf)
	errAndDie(err)

	// set up the gateway & session; the token func closes over the session
	// so every request after login carries the header
	var sess *session.Session
	client := gateway.NewClient(core.Conf, func() string { return sess.Token() }, logger)
	sess = session.New(store, client, logger)

	ctx := context.Background()
	if err := sess.Init(ctx); err != nil {
		logger.Warn("restoring session", err)
	}

	// start CLI
	cli := &commandLine{
		sess:  sess,
		board: assignment.NewBoard(client, logger),
		log:   logger,
		in:    os.Stdin,
		out:   os.Stdout,
	}
	if err := cli.run(ctx, os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
