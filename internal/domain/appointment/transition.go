package appointment

// Action is an operator-initiated lifecycle transition.
type Action string

const (
	ActionAttachProtocol Action = "attach_protocol"
	ActionFlagDivergence Action = "flag_divergence"
	ActionConclude       Action = "conclude"
	ActionCancel         Action = "cancel"
)

// transitionTable is the single source of truth for legal edges. The entity
// guards enforce it on the status observed at read time; the store then
// commits only while the row still holds that observed status.
var transitionTable = map[Action]struct {
	from []Status
	to   Status
}{
	ActionAttachProtocol: {from: []Status{StatusPendente}, to: StatusConfirmado},
	ActionFlagDivergence: {from: []Status{StatusPendente, StatusConfirmado}, to: StatusDivergencia},
	ActionConclude:       {from: []Status{StatusConfirmado}, to: StatusConcluido},
	ActionCancel:         {from: []Status{StatusPendente, StatusConfirmado}, to: StatusCancelado},
}

// EligibleFrom returns the source statuses from which the action is legal.
func EligibleFrom(action Action) []Status {
	edge, ok := transitionTable[action]
	if !ok {
		return nil
	}
	out := make([]Status, len(edge.from))
	copy(out, edge.from)
	return out
}

// Target returns the destination status of the action.
func Target(action Action) Status {
	return transitionTable[action].to
}

// SweepEligible are the statuses the staleness sweeper may reclassify to
// fora_prazo once the scheduled time has passed.
func SweepEligible() []Status {
	return []Status{StatusPendente, StatusConfirmado}
}
