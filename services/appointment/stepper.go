package appointment

import "bookflow/models"

// NoActiveStep is returned when the session carries no steps. Callers must
// handle it; the step routes render no stepper in that case.
const NoActiveStep = -1

// ActiveStepIndex returns the index of the first incomplete step, or the
// last index when every step is complete. Steps arrive ordered by Order
// from the booking API; the derivation is pure and recomputed on every
// load.
func ActiveStepIndex(steps []models.Step) int {
	if len(steps) == 0 {
		return NoActiveStep
	}
	for i, s := range steps {
		if !s.IsComplete {
			return i
		}
	}
	return len(steps) - 1
}
