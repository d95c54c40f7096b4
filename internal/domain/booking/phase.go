package booking

// Phase names a step of a single booking attempt.
type Phase string

const (
	PhaseValidating Phase = "validating"
	PhaseReserving  Phase = "reserving"
	PhaseCharging   Phase = "charging"
	PhasePersisting Phase = "persisting"
	PhaseNotifying  Phase = "notifying"
	PhaseDone       Phase = "done"
)

func (p Phase) String() string {
	return string(p)
}
