package schedule

import (
	"strconv"
	"strings"
)

// DefaultDurationMinutes is substituted for durations that cannot be parsed.
// The substitution is flagged to the caller so it can be surfaced as a
// data-quality warning instead of silently accepted.
const DefaultDurationMinutes = 30

// NormalizeDuration converts a raw duration value from the external API into
// whole minutes. Accepted forms: a non-negative integer minute count (JSON
// numbers arrive as float64), or an "HH:MM" clock string. Normalization is
// idempotent: feeding a normalized value back in yields the same minutes.
// The second return value reports whether the safe default was applied.
func NormalizeDuration(raw interface{}) (minutes int, defaulted bool) {
	switch v := raw.(type) {
	case nil:
		return DefaultDurationMinutes, true
	case int:
		if v < 0 {
			return DefaultDurationMinutes, true
		}
		return v, false
	case int64:
		if v < 0 {
			return DefaultDurationMinutes, true
		}
		return int(v), false
	case float64:
		if v < 0 || v != float64(int(v)) {
			return DefaultDurationMinutes, true
		}
		return int(v), false
	case string:
		return parseDurationString(v)
	default:
		return DefaultDurationMinutes, true
	}
}

func parseDurationString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDurationMinutes, true
	}

	// Plain integer minutes, e.g. "90".
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return DefaultDurationMinutes, true
		}
		return n, false
	}

	// "HH:MM" clock form, e.g. "01:30" -> 90.
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return DefaultDurationMinutes, true
	}
	hours, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	mins, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || hours < 0 || mins < 0 || mins > 59 {
		return DefaultDurationMinutes, true
	}
	return hours*60 + mins, false
}
