// Package layout projects sessions onto a 1-D grid axis for day and week
// views.
//
// A [Config] fixes the visible day window and scale; [Config.Project] turns
// a session's time interval into an offset/length pair in pixel units,
// clamped to the window. Projection is purely geometric: sessions outside
// the window project to zero, sessions spilling over an edge are clipped
// visually, and the underlying session data is never touched. Overlapping
// sessions each receive their own projection; stacking them is the caller's
// concern.
//
// # Usage
//
//	grid, err := layout.New(layout.Config{DayStartHour: 6, DayEndHour: 22, PixelsPerHour: 60})
//	proj := grid.Project(session)
package layout
