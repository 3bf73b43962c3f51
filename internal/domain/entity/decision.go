package entity

import "time"

// Decision is the outcome of a navigation policy check.
type Decision int

const (
	// DecisionAllow lets the hosting surface perform the navigation itself.
	DecisionAllow Decision = iota
	// DecisionCancel stops the in-flight navigation.
	DecisionCancel
)

func (d Decision) String() string {
	if d == DecisionAllow {
		return "allow"
	}
	return "cancel"
}

// ParseDecision converts a stored decision name back to a Decision.
// Unknown names map to DecisionCancel.
func ParseDecision(s string) Decision {
	if s == "allow" {
		return DecisionAllow
	}
	return DecisionCancel
}

// MarshalText encodes the decision by name.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a decision name.
func (d *Decision) UnmarshalText(text []byte) error {
	*d = ParseDecision(string(text))
	return nil
}

// TargetClass is the scheme class of a navigation target.
type TargetClass int

const (
	// ClassOther covers unrecognized schemes and malformed targets.
	ClassOther TargetClass = iota
	// ClassInternal covers application-specific schemes (deep links).
	ClassInternal
	// ClassWeb covers http and https.
	ClassWeb
)

func (c TargetClass) String() string {
	switch c {
	case ClassInternal:
		return "internal"
	case ClassWeb:
		return "web"
	default:
		return "other"
	}
}

// ParseTargetClass converts a stored class name back to a TargetClass.
func ParseTargetClass(s string) TargetClass {
	switch s {
	case "internal":
		return ClassInternal
	case "web":
		return ClassWeb
	default:
		return ClassOther
	}
}

// MarshalText encodes the class by name.
func (c TargetClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a class name.
func (c *TargetClass) UnmarshalText(text []byte) error {
	*c = ParseTargetClass(string(text))
	return nil
}

// DecisionRecord is one journaled navigation decision.
type DecisionRecord struct {
	ID        int64       `json:"id"`
	Target    string      `json:"target"`
	Canonical string      `json:"canonical"`
	Class     TargetClass `json:"class"`
	Decision  Decision    `json:"decision"`
	Route     string      `json:"route,omitempty"`
	HandedOff bool        `json:"handed_off"`
	Bootstrap bool        `json:"bootstrap"`
	DecidedAt time.Time   `json:"decided_at"`
}
