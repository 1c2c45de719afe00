package rocks

import (
	"strconv"

	"rockwash/internal/core"
)

// Parameters reports the grid settings and the live cycle statistics.
func (s *Sim) Parameters() core.ParameterSnapshot {
	cycle := []core.Parameter{
		intParam("cycles", "Cycles run", s.cycles),
		intParam("load", "Load", s.grid.Load()),
		stringParam("fingerprint", "Fingerprint", s.fp.Short(12)),
	}
	if start, period, ok := s.history.Cycle(); ok {
		cycle = append(cycle,
			intParam("start", "Loop start", start),
			intParam("period", "Loop period", period),
		)
	}
	if load, ok := s.Projected(); ok {
		cycle = append(cycle, intParam("projected", "Load @ "+strconv.Itoa(s.cfg.Cycles), load))
	}

	counts := s.grid.Counts()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", s.grid.Width()),
				intParam("h", "Height", s.grid.Height()),
				int64Param("seed", "Seed", s.seed),
				intParam("rolling", "Rolling rocks", counts[RollingRock]),
				intParam("fixed", "Fixed rocks", counts[FixedRock]),
			},
		},
		{Name: "Wash", Params: cycle},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
