package care

import "math/rand"

// SyntheticMetrics supplies the dashboard numbers that have no real
// instrumentation behind them yet (uptime, response time, battery, signal).
// The default source is randomized placeholder data; swap in a real
// instrumentation-backed implementation once one exists, and a fixed stub
// in tests.
type SyntheticMetrics interface {
	AvgUptime() float64
	AvgResponseTime() float64
	DeviceUptimeHours() float64
	BatteryLevel() int
	SignalStrength() int
	ActiveUserJitter() int
}

type randomizedMetrics struct{}

// NewRandomizedMetrics returns the placeholder source used by the demo
// deployment. Values match the ranges the original dashboard displayed.
func NewRandomizedMetrics() SyntheticMetrics {
	return randomizedMetrics{}
}

func (randomizedMetrics) AvgUptime() float64 {
	return 98.5 + rand.Float64()*1.5
}

func (randomizedMetrics) AvgResponseTime() float64 {
	return 1.3 + rand.Float64()*0.7
}

func (randomizedMetrics) DeviceUptimeHours() float64 {
	return rand.Float64() * 200
}

func (randomizedMetrics) BatteryLevel() int {
	return rand.Intn(100)
}

func (randomizedMetrics) SignalStrength() int {
	return rand.Intn(100)
}

func (randomizedMetrics) ActiveUserJitter() int {
	return rand.Intn(10)
}
