// Command rockwash prints the north-support load of a rock grid after a
// given number of wash cycles.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"rockwash/internal/sims/rocks"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)

	fs := flag.NewFlagSet("rockwash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	rc, err := cfg.Resolve(fs)
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		return 1
	}
	if level, err := logrus.ParseLevel(rc.LogLevel); err == nil {
		log.SetLevel(level)
	}

	grid, err := readGrid(rc.Input, stdin)
	if err != nil {
		log.WithError(err).WithField("input", rc.Input).Error("cannot read grid")
		return 1
	}
	log.WithFields(logrus.Fields{
		"width":  grid.Width(),
		"height": grid.Height(),
	}).Debug("grid loaded")

	if cfg.Part == 1 {
		fmt.Fprintln(stdout, rocks.NorthLoad(grid))
		return 0
	}

	res, err := rocks.Simulate(grid, rc.Options(log))
	if err != nil {
		log.WithError(err).Error("simulation failed")
		return 1
	}
	log.WithFields(logrus.Fields{
		"target":    res.Target,
		"simulated": res.Cycles,
		"detected":  res.Detected,
	}).Info("simulation finished")
	fmt.Fprintln(stdout, res.Load)
	return 0
}

func readGrid(path string, stdin io.Reader) (*rocks.Grid, error) {
	if path == "" || path == "-" {
		return rocks.Parse(stdin)
	}
	return rocks.ReadFile(path)
}
