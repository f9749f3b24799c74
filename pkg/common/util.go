package common

import (
	"fmt"
	"os"
	"testing"
	"time"
)

func IsTestEnv() bool {
	return testing.Testing()
}
func IsDevelopment() bool {
	return os.Getenv(EnvKeyGoEnv) == "development"
}

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := 0; i < len(items); i++ {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := 0; i < len(items); i++ {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}

// RelativeTime renders a past timestamp the way the dashboard shows it:
// "Just now", then minute/hour/day buckets with singular/plural wording.
func RelativeTime(t time.Time, now time.Time) string {
	minutes := int(now.Sub(t).Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	}

	hours := int(now.Sub(t).Hours())
	if hours < 24 {
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	}

	days := hours / 24
	return fmt.Sprintf("%d day%s ago", days, plural(days))
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// IsFresh reports whether a heartbeat is recent enough to count as live.
// The stored online flag is set on every ingest and never cleared, so
// callers needing real liveness compare the heartbeat age against a window.
func IsFresh(lastHeartbeat *time.Time, now time.Time, window time.Duration) bool {
	if lastHeartbeat == nil {
		return false
	}
	return now.Sub(*lastHeartbeat) <= window
}
