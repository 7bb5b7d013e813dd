package config

import "math"

// IntervalMs returns the fall interval in milliseconds for the given level.
// The model is a power function between level 0 and TopLevel, constant
// outside that range:
//
//	interval(l) = max - (max-min) * (l/top)^exponent
func (g GravityConfig) IntervalMs(level int) int {
	if g.Fixed || level <= 0 {
		return g.MaxIntervalMs
	}
	if level >= g.TopLevel || g.TopLevel <= 0 {
		return g.MinIntervalMs
	}

	progress := math.Pow(float64(level)/float64(g.TopLevel), g.Exponent)
	ms := float64(g.MaxIntervalMs) - float64(g.MaxIntervalMs-g.MinIntervalMs)*progress
	return int(ms)
}

// IntervalTicks converts the fall interval for a level into simulation
// ticks at the given tick rate. Never returns less than 1.
func (g GravityConfig) IntervalTicks(level, tickRate int) int {
	ticks := g.IntervalMs(level) * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// MsToTicks converts a millisecond duration to simulation ticks,
// rounding down but never below 1 for positive durations.
func MsToTicks(ms, tickRate int) int {
	if ms <= 0 {
		return 0
	}
	ticks := ms * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
