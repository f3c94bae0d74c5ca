// Package domain models the simulated earthquake-detection events shown on the
// SeismoWatch dashboard.
//
// # Data Source
//
// There is none. Every record is illustrative seed data, perturbed on a timer
// by [Advance] so the dashboard looks alive. Nothing here is derived from a
// feed, a classifier or a seismic network.
//
// # Event Conventions
//
// Coordinates:
//
//	[longitude, latitude], e.g. [139.7, 35.7] for Tokyo.
//
// Timestamp:
//
//	A relative display label ("2 min ago"). It is never recomputed.
//
// Confidence:
//
//	Percentage in [0, MaxConfidence]. Each simulated step adds a uniform real
//	in [0, 2) and clamps at MaxConfidence, so the value never decreases.
//
// Tweet count:
//
//	Non-negative integer. Each simulated step adds a uniform integer in [0, 9].
//
// Status:
//
//	One of detecting, confirmed or false_alarm, fixed at creation. No
//	transition logic exists. Unrecognized values render with the neutral
//	indicator (see [IndicatorFor]).
//
// Confidence bands (visual meter only):
//
//	>= 80 high | >= 60 medium | < 60 low
package domain
