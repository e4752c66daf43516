package tier

import "fmt"

// ConfigError reports a tier configuration that cannot be rendered.
type ConfigError struct {
	Tier   string
	Role   Role
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := "tier " + e.Tier + ": " + e.Reason
	if e.Role != "" {
		msg = fmt.Sprintf("tier %s: %s %q", e.Tier, e.Reason, e.Role)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }
