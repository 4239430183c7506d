// Command mazepath solves a maze with depth-first and breadth-first search
// and prints each discovered path.
//
// Configuration comes from the environment or a .env file:
//
//	MAZE_FILE=mazes/office.yaml   # default: built-in 5×5 sample
//	MAZE_ALGORITHMS=dfs,bfs       # which solvers to run, in order
//	LOG_LEVEL=info                # logrus level, logs go to stderr
//	MAZE_COLOR=auto               # auto, always or never
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/config"
)

func main() {
	logger := log.New()
	logger.SetOutput(os.Stderr)

	cfg, err := config.Load(".env")
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Fatal("parse log level")
	}
	logger.SetLevel(level)

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.WithError(err).Fatal("mazepath failed")
	}
}
