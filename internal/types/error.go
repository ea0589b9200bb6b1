package types

import (
	"fmt"
	"net/http"
)

// Enum values for the closed staking error taxonomy
type ErrorCode string

const (
	InsufficientBalance   ErrorCode = "INSUFFICIENT_BALANCE"
	InsufficientAllowance ErrorCode = "INSUFFICIENT_ALLOWANCE"
	TransactionFailed     ErrorCode = "TRANSACTION_FAILED"
	NetworkError          ErrorCode = "NETWORK_ERROR"
	UnbondingNotReady     ErrorCode = "UNBONDING_NOT_READY"
	NoUnbondingRequest    ErrorCode = "NO_UNBONDING_REQUEST"
	WalletNotConnected    ErrorCode = "WALLET_NOT_CONNECTED"
	ContractError         ErrorCode = "CONTRACT_ERROR"
	ValidationFailed      ErrorCode = "VALIDATION_FAILED"
	InternalServiceError  ErrorCode = "INTERNAL_SERVICE_ERROR"
)

func (c ErrorCode) String() string {
	return string(c)
}

// Recoverable reports whether the caller may retry or correct the input
// without manual intervention. TRANSACTION_FAILED requires the user to
// resubmit deliberately and WALLET_NOT_CONNECTED requires a connection first.
func (c ErrorCode) Recoverable() bool {
	switch c {
	case TransactionFailed, WalletNotConnected:
		return false
	default:
		return true
	}
}

// HTTPStatus maps an error code to the status the API layer renders it with.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case InsufficientBalance, InsufficientAllowance, UnbondingNotReady,
		NoUnbondingRequest, ValidationFailed:
		return http.StatusBadRequest
	case WalletNotConnected:
		return http.StatusUnauthorized
	case NetworkError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is the only error type public staking operations reject with.
// Details preserves the original collaborator message when the code was
// assigned by classification rather than by a local guard.
type Error struct {
	StatusCode int
	Code       ErrorCode
	Message    string
	Details    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

func NewError(statusCode int, code ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       code,
		Message:    err.Error(),
	}
}

func NewErrorWithMsg(statusCode int, code ErrorCode, msg string) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       code,
		Message:    msg,
	}
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}

func NewValidationFailedError(err error) *Error {
	return NewError(http.StatusBadRequest, ValidationFailed, err)
}

// NewUnbondingNotReadyError carries the formatted remaining duration so the
// caller can render it without recomputing.
func NewUnbondingNotReadyError(remaining string) *Error {
	return NewErrorWithMsg(
		http.StatusBadRequest,
		UnbondingNotReady,
		fmt.Sprintf("unbonding period has not elapsed yet, %s remaining", remaining),
	)
}

func NewNoUnbondingRequestError() *Error {
	return NewErrorWithMsg(
		http.StatusBadRequest,
		NoUnbondingRequest,
		"no active unbonding request",
	)
}

func NewInsufficientAllowanceError() *Error {
	return NewErrorWithMsg(
		http.StatusBadRequest,
		InsufficientAllowance,
		"allowance is below the requested stake amount, approval required",
	)
}

func NewWalletNotConnectedError() *Error {
	return NewErrorWithMsg(
		http.StatusUnauthorized,
		WalletNotConnected,
		"no wallet account connected",
	)
}
