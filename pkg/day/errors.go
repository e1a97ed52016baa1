package day

// ValidationError rejects bad task input. It is always surfaced to
// the caller; nothing is written when it fires.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "invalid task: " + e.Reason
}

// PreconditionError rejects an operation called in the wrong day
// state, for example finalizing with fewer than three tasks.
type PreconditionError struct {
	Reason string
}

func (e PreconditionError) Error() string {
	return e.Reason
}
