package day

// Phase is the inferred state of the current day. It is never stored;
// callers derive it from the task count and the last-completed marker.
type Phase string

const (
	Empty     Phase = "empty"
	Capturing Phase = "capturing"
	Ready     Phase = "ready"
	Finalized Phase = "finalized"
)

// Phase reports where today sits in the capture flow.
func (j *Journal) Phase() Phase {
	if last, ok := j.Persistence.LastCompleted(); ok && last == j.todayKey() {
		return Finalized
	}
	switch n := len(j.Today()); {
	case n == 0:
		return Empty
	case n < MinTasks:
		return Capturing
	default:
		return Ready
	}
}
