package comp

import "github.com/emberwm/ember/internal/input"

// AxisFrame is one atomically-delivered scroll frame covering both axes.
type AxisFrame struct {
	Time   uint32
	Source input.AxisSource

	Horizontal AxisEntry
	Vertical   AxisEntry
}

// AxisEntry is the outcome for a single axis within a frame: a value (with
// an optional discrete step count), an explicit stop, or nothing at all.
type AxisEntry struct {
	Value       float64
	Discrete    int32
	HasValue    bool
	HasDiscrete bool
	Stop        bool
}

// Steps a discrete scroll click is worth when the device reports no
// continuous amount.
const discreteStepAmount = 3.0

// axisEntry computes one axis' outcome. The continuous amount is preferred;
// discrete steps are scaled as a fallback. A zero amount produces a stop
// signal for finger sources (resetting client-side inertia) and nothing for
// any other source.
func axisEntry(v input.AxisValue, source input.AxisSource) AxisEntry {
	amount := 0.0
	if v.Amount != nil {
		amount = *v.Amount
	} else if v.Discrete != nil {
		amount = *v.Discrete * discreteStepAmount
	}

	var e AxisEntry
	if amount != 0 {
		e.Value = amount
		e.HasValue = true
		if v.Discrete != nil {
			e.Discrete = int32(*v.Discrete)
			e.HasDiscrete = true
		}
	} else if source == input.SourceFinger {
		e.Stop = true
	}
	return e
}
