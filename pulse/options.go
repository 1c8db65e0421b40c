package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// PowerPreference selects between integrated and discrete adapters,
// usually relevant on laptops that have both.
type PowerPreference uint8

const (
	NoPreference PowerPreference = iota
	LowPower
	HighPerformance
)

func (p PowerPreference) String() string {
	switch p {
	case LowPower:
		return "LowPower"
	case HighPerformance:
		return "HighPerformance"
	default:
		return "NoPreference"
	}
}

func (p PowerPreference) wgpu() wgpu.PowerPreference {
	switch p {
	case LowPower:
		return wgpu.PowerPreferenceLowPower
	case HighPerformance:
		return wgpu.PowerPreferenceHighPerformance
	default:
		return wgpu.PowerPreferenceUndefined
	}
}

// ParsePowerPreference accepts "low", "high" and "none", ignoring case.
// The empty string parses as NoPreference.
func ParsePowerPreference(value string) (PowerPreference, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return NoPreference, nil
	case "low":
		return LowPower, nil
	case "high":
		return HighPerformance, nil
	default:
		return NoPreference, fmt.Errorf("unknown power preference %q", value)
	}
}

type Options struct {
	PowerPreference      PowerPreference
	ForceFallbackAdapter bool
}

// OptionsFromEnv reads WGPU_POWER_PREFERENCE and WGPU_FORCE_FALLBACK_ADAPTER.
// An invalid power preference is logged and ignored.
func OptionsFromEnv() Options {
	powerPreference, err := ParsePowerPreference(os.Getenv("WGPU_POWER_PREFERENCE"))
	if err != nil {
		slog.Warn("Ignoring WGPU_POWER_PREFERENCE", slog.Any("err", err))
	}

	return Options{
		PowerPreference:      powerPreference,
		ForceFallbackAdapter: os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1",
	}
}

func logLevelOf(value string) (wgpu.LogLevel, bool) {
	switch strings.ToUpper(value) {
	case "OFF":
		return wgpu.LogLevelOff, true
	case "ERROR":
		return wgpu.LogLevelError, true
	case "WARN":
		return wgpu.LogLevelWarn, true
	case "INFO":
		return wgpu.LogLevelInfo, true
	case "DEBUG":
		return wgpu.LogLevelDebug, true
	case "TRACE":
		return wgpu.LogLevelTrace, true
	default:
		return 0, false
	}
}
