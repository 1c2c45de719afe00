package rocks

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultTarget is the number of wash cycles the load is reported for.
const DefaultTarget = 1_000_000_000

// Options controls Simulate.
type Options struct {
	// Target is the number of completed wash cycles to report the load for.
	Target int
	// MaxCycles bounds how many cycles are simulated looking for a repeat.
	// Zero means no bound.
	MaxCycles int
	Logger    logrus.FieldLogger
}

// Result describes a finished simulation.
type Result struct {
	Target int
	Load   int
	// Cycles is how many wash cycles were actually applied to the grid.
	Cycles   int
	Detected bool
	Start    int
	Period   int
}

// Simulate washes g until its states repeat or the target is reached and
// returns the load g would have after opts.Target cycles. g is left in the
// last simulated state, which is not necessarily the target state.
func Simulate(g *Grid, opts Options) (Result, error) {
	res := Result{Target: opts.Target}
	if opts.Target < 0 {
		return res, fmt.Errorf("%w: target %d", ErrCycleIndex, opts.Target)
	}
	if opts.Target == 0 {
		res.Load = g.Load()
		return res, nil
	}
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	h := NewHistory()
	for h.Len() < opts.Target {
		if opts.MaxCycles > 0 && res.Cycles >= opts.MaxCycles {
			return res, fmt.Errorf("%w within %d cycles", ErrNoCycle, opts.MaxCycles)
		}
		g.Cycle()
		res.Cycles++
		if h.Record(g.Fingerprint(), g.Load()) {
			res.Start, res.Period, res.Detected = h.Cycle()
			log.WithFields(logrus.Fields{
				"cycles": res.Cycles,
				"start":  res.Start,
				"period": res.Period,
			}).Debug("found cycle")
			break
		}
	}

	load, err := h.LoadAt(opts.Target)
	if err != nil {
		return res, err
	}
	res.Load = load
	return res, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
