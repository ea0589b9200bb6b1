package services

import (
	"net/http"
	"sync"
	"time"

	"github.com/evermarks/emark-staking-service/internal/clients/chainclient"
	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/internal/utils"
)

// opKind identifies one of the independent in-flight markers on a flow.
type opKind string

const (
	opStake   opKind = "stake"
	opUnstake opKind = "unstake"
	opClaim   opKind = "claim"
	opCancel  opKind = "cancel"
)

// Flow is the per-account staking state machine. Balances and the unbonding
// record are populated from chain reads only, there are no optimistic writes:
// after a transaction confirms the flow re-reads everything.
type Flow struct {
	mu      sync.Mutex
	account string
	state   types.FlowState

	balances  chainclient.TokenBalances
	unbonding *chainclient.UnbondingInfo

	// One pending marker per operation kind. Markers are independent: a
	// second submission of the same kind is rejected while the first is
	// still confirming, different kinds proceed concurrently.
	pending map[opKind]bool
}

func newFlow(account string) *Flow {
	return &Flow{
		account: account,
		state:   types.StateIdle,
		pending: make(map[opKind]bool),
	}
}

// flowFor returns the flow tracking the given account, creating it on first
// use. Flows are never shared between accounts.
func (s *Service) flowFor(account string) *Flow {
	s.flowsMu.Lock()
	defer s.flowsMu.Unlock()

	flow, ok := s.flows[account]
	if !ok {
		flow = newFlow(account)
		s.flows[account] = flow
	}
	return flow
}

// beginOp marks the operation as in flight. It fails only when an operation
// of the same kind is already running on this flow.
func (f *Flow) beginOp(op opKind) *types.Error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending[op] {
		return types.NewErrorWithMsg(
			http.StatusConflict,
			types.ValidationFailed,
			"a "+string(op)+" operation is already in progress for this account",
		)
	}

	f.pending[op] = true
	return nil
}

func (f *Flow) endOp(op opKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending[op] = false
}

// IsBusy reports whether the given operation kind is currently in flight.
func (f *Flow) IsBusy(op opKind) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending[op]
}

func (f *Flow) setState(state types.FlowState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
}

func (f *Flow) State() types.FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// snapshotReads returns a copy of the cached chain reads.
func (f *Flow) snapshotReads() (chainclient.TokenBalances, *chainclient.UnbondingInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()

	balances := f.balances
	var unbonding *chainclient.UnbondingInfo
	if f.unbonding != nil {
		u := *f.unbonding
		unbonding = &u
	}
	return balances, unbonding
}

// applyReads replaces the cached chain reads and derives the resting state
// from them.
func (f *Flow) applyReads(balances chainclient.TokenBalances, unbonding *chainclient.UnbondingInfo, now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.balances = balances
	f.unbonding = unbonding
	f.state = deriveState(balances, unbonding, now)
}

// deriveState maps chain reads to the resting flow state. Transitional states
// (approving, staking, claiming, cancelling) are set explicitly by the
// operation driving them and never derived.
func deriveState(balances chainclient.TokenBalances, unbonding *chainclient.UnbondingInfo, now time.Time) types.FlowState {
	if unbonding != nil && unbonding.HasRequest() {
		if unbonding.CanClaim || utils.TimeUntilRelease(unbonding.ReleaseTime, now) == 0 {
			return types.StateReadyToClaim
		}
		return types.StateUnbondingRequested
	}
	if !balances.Staked.IsNil() && balances.Staked.IsPositive() {
		return types.StateStaked
	}
	return types.StateIdle
}
