package types

import (
	"errors"
	"strings"
)

// Classify assigns a taxonomy code to a raw collaborator or transport error
// by case-insensitive substring matching. It is total: any non-nil error maps
// to some code, with CONTRACT_ERROR as the fallback and the original message
// preserved in Details. A *Error passes through unchanged.
func Classify(rawErr error) *Error {
	if rawErr == nil {
		return nil
	}

	var typed *Error
	if errors.As(rawErr, &typed) {
		return typed
	}

	raw := rawErr.Error()
	lower := strings.ToLower(raw)

	code := ContractError
	msg := "staking contract call failed"
	switch {
	case strings.Contains(lower, "insufficient balance"), strings.Contains(lower, "exceeds balance"):
		code = InsufficientBalance
		msg = "insufficient EMARK balance"
	case strings.Contains(lower, "allowance"), strings.Contains(lower, "approve"):
		code = InsufficientAllowance
		msg = "allowance is below the requested stake amount, approval required"
	case strings.Contains(lower, "user rejected"), strings.Contains(lower, "user denied"):
		code = TransactionFailed
		msg = "transaction rejected in wallet"
	case strings.Contains(lower, "network"), strings.Contains(lower, "timeout"),
		strings.Contains(lower, "connection refused"):
		code = NetworkError
		msg = "network error while reaching the staking contract"
	case strings.Contains(lower, "unbonding"):
		code = UnbondingNotReady
		msg = "unbonding request is not ready"
	}

	return &Error{
		StatusCode: code.HTTPStatus(),
		Code:       code,
		Message:    msg,
		Details:    raw,
	}
}
