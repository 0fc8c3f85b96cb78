// Package planner implements the scheduling engine behind a learning planner.
//
// planner provides pure, UI-independent logic for placing study sessions on
// a timeline: searching free capacity for new sessions, grouping sessions
// into relative-time agenda buckets, and scoring hours of the day by
// learning effectiveness. The planner/layout subpackage projects sessions
// onto a 1-D grid axis for day/week views.
//
// Basic usage:
//
//	p, err := planner.NewPlanner(planner.PlannerConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	slots, err := p.FindSlots(day, 30, sessions, 6, 22)
//	groups := p.Agenda(sessions)
package planner
