package types

// Enum values for the staking flow state
type FlowState string

const (
	StateIdle               FlowState = "IDLE"
	StateApproving          FlowState = "APPROVING"
	StateStaking            FlowState = "STAKING"
	StateStaked             FlowState = "STAKED"
	StateUnbondingRequested FlowState = "UNBONDING_REQUESTED"
	StateReadyToClaim       FlowState = "READY_TO_CLAIM"
	StateClaiming           FlowState = "CLAIMING"
	StateCancelling         FlowState = "CANCELLING"
)

func (s FlowState) String() string {
	return string(s)
}

// QualifiedStatesForRequestUnstake returns the states a flow must be in
// before an unbonding request may be opened. A flow that already carries a
// request is excluded: requests are never merged or queued.
func QualifiedStatesForRequestUnstake() []FlowState {
	return []FlowState{StateIdle, StateStaked}
}

// QualifiedStatesForCompleteUnstake returns the states a claim may start from.
func QualifiedStatesForCompleteUnstake() []FlowState {
	return []FlowState{StateReadyToClaim}
}

// QualifiedStatesForCancelUnbonding returns the states a cancellation may
// start from. Cancelling is allowed both before and after the release time.
func QualifiedStatesForCancelUnbonding() []FlowState {
	return []FlowState{StateUnbondingRequested, StateReadyToClaim}
}
