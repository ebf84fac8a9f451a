package discovery

import (
	"fmt"
	"sort"
	"strings"

	"algotest/pkg/logging"
	"algotest/pkg/market"
	"algotest/pkg/registry"
)

const subsystem = "Discovery"

// Filter narrows the registry down before gating is applied. Zero values
// match everything.
type Filter struct {
	// Namespace keeps suites whose namespace starts with this prefix.
	Namespace string
	// Name keeps suites whose name contains this substring,
	// case-insensitive.
	Name string
}

// SuitePlan is one suite scheduled for execution: its ordered runnable
// units, or a gate reason when the host does not satisfy the suite's
// requirements yet.
type SuitePlan struct {
	Suite *registry.Suite
	Units []registry.Unit

	// GateReason, when non-empty, tells the engine to report every unit
	// as skipped instead of instantiating the suite.
	GateReason string
}

// Plan is the ordered work list a run executes, exposed to callers before
// execution begins so progress can be reported up front.
type Plan struct {
	Suites     []SuitePlan
	TotalUnits int
}

// Empty reports whether nothing was discovered.
func (p Plan) Empty() bool { return p.TotalUnits == 0 }

// Discover walks the registry and builds the run plan: filtering, run-at
// checks, unit materialization, gating and ordering. A fault while
// materializing one suite's units skips that suite and keeps going, so a
// broken registration never takes the whole run down.
func Discover(reg *registry.Registry, env market.Environment, filter Filter) Plan {
	var plan Plan

	for _, s := range reg.Suites() {
		if s.Disabled {
			logging.Debug(subsystem, "suite %s is disabled", s.Name)
			continue
		}
		if filter.Namespace != "" && !strings.HasPrefix(s.Namespace, filter.Namespace) {
			continue
		}
		if filter.Name != "" && !containsFold(s.Name, filter.Name) {
			continue
		}
		if s.RunAtBar != nil && *s.RunAtBar != env.BarIndex() {
			logging.Debug(subsystem, "suite %s pinned to bar %d, host at %d", s.Name, *s.RunAtBar, env.BarIndex())
			continue
		}

		units, err := materialize(s)
		if err != nil {
			logging.Warn(subsystem, "skipping suite %s: %v", s.Name, err)
			continue
		}
		if len(units) == 0 {
			logging.Debug(subsystem, "suite %s has no runnable units", s.Name)
			continue
		}

		plan.Suites = append(plan.Suites, SuitePlan{
			Suite:      s,
			Units:      units,
			GateReason: gateReason(s, env),
		})
		plan.TotalUnits += len(units)
	}

	sort.SliceStable(plan.Suites, func(i, j int) bool {
		return plan.Suites[i].Suite.Priority < plan.Suites[j].Suite.Priority
	})

	logging.Info(subsystem, "planned %d units across %d suites", plan.TotalUnits, len(plan.Suites))
	return plan
}

// materialize collects a suite's units, running UnitsFunc inside a fault
// boundary. Static units were validated at registration; dynamic ones are
// checked here so a bad enumerator only costs its own suite.
func materialize(s *registry.Suite) (units []registry.Unit, err error) {
	defer func() {
		if r := recover(); r != nil {
			units = nil
			err = fmt.Errorf("introspection fault: %v", r)
		}
	}()

	all := make([]registry.Unit, 0, len(s.Units))
	all = append(all, s.Units...)
	if s.UnitsFunc != nil {
		dynamic := s.UnitsFunc()
		for i, u := range dynamic {
			if u.Name == "" {
				panic(fmt.Sprintf("dynamic unit #%d has no name", i))
			}
		}
		all = append(all, dynamic...)
	}

	units = all[:0]
	for _, u := range all {
		if u.Disabled {
			continue
		}
		units = append(units, u)
	}

	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Priority < units[j].Priority
	})
	return units, nil
}

// gateReason checks the host against the suite's requirements. An empty
// reason means the suite may run.
func gateReason(s *registry.Suite, env market.Environment) string {
	if s.MinBars > 0 && env.Bars() < s.MinBars {
		return fmt.Sprintf("requires %d bars, have %d", s.MinBars, env.Bars())
	}
	if s.RequiredPeriod != "" && s.RequiredPeriod != env.Period() {
		return fmt.Sprintf("requires period %s, host is %s", s.RequiredPeriod, env.Period())
	}
	return ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
