package domain

// Status is the detection state of an event. Only the three constants below
// are known; anything else is treated as unknown by the mappings.
type Status string

const (
	StatusDetecting  Status = "detecting"
	StatusConfirmed  Status = "confirmed"
	StatusFalseAlarm Status = "false_alarm"
)

// Known reports whether s is one of the recognized statuses.
func (s Status) Known() bool {
	switch s {
	case StatusDetecting, StatusConfirmed, StatusFalseAlarm:
		return true
	default:
		return false
	}
}

// Tone is the visual family of a status indicator.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneActive   Tone = "active"
	ToneMuted    Tone = "muted"
	ToneNeutral  Tone = "neutral"
)

// Indicator describes how a status is drawn: the CSS class for its badge,
// the icon name, and whether it pulses.
type Indicator struct {
	Tone  Tone
	Class string
	Icon  string
	Pulse bool
}

// IndicatorFor maps a status to its indicator. Unknown statuses get the
// neutral indicator, so the result is never zero-valued.
func IndicatorFor(s Status) Indicator {
	switch s {
	case StatusConfirmed:
		return Indicator{Tone: TonePositive, Class: "status-confirmed", Icon: "check-circle"}
	case StatusDetecting:
		return Indicator{Tone: ToneActive, Class: "status-detecting", Icon: "activity", Pulse: true}
	case StatusFalseAlarm:
		return Indicator{Tone: ToneMuted, Class: "status-false-alarm", Icon: "alert-triangle"}
	default:
		return Indicator{Tone: ToneNeutral, Class: "status-unknown", Icon: "clock"}
	}
}

// ActionLabel is the primary per-event action offered for a status.
func ActionLabel(s Status) string {
	if s == StatusConfirmed {
		return "Send Alert"
	}
	return "Monitor"
}
