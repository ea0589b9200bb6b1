package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/evermarks/emark-staking-service/internal/types"
	"github.com/evermarks/emark-staking-service/pkg"
)

type amountRequest struct {
	Amount string `json:"amount"`
}

type validateRequest struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
	Op      string `json:"op"`
}

type errorResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Details     string `json:"details,omitempty"`
	Recoverable bool   `json:"recoverable"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Ping(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (s *Server) handleStake(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.service.Stake(r.Context(), req.Amount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "staked"})
}

func (s *Server) handleRequestUnstake(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.service.RequestUnstake(r.Context(), req.Amount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "unbonding requested"})
}

func (s *Server) handleCompleteUnstake(w http.ResponseWriter, r *http.Request) {
	if err := s.service.CompleteUnstake(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "withdrawn"})
}

func (s *Server) handleCancelUnbonding(w http.ResponseWriter, r *http.Request) {
	if err := s.service.CancelUnbonding(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "cancelled"})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := pkg.ValidateAccountAddress(req.Account); err != nil {
		writeError(w, types.NewValidationFailedError(err))
		return
	}

	result, err := s.service.ValidateAmount(r.Context(), req.Account, req.Amount, req.Op)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if err := pkg.ValidateAccountAddress(account); err != nil {
		writeError(w, types.NewValidationFailedError(err))
		return
	}

	summary, err := s.service.AccountSummary(r.Context(), account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if err := pkg.ValidateAccountAddress(account); err != nil {
		writeError(w, types.NewValidationFailedError(err))
		return
	}

	view, err := s.service.StoredSnapshot(r.Context(), account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if err := pkg.ValidateAccountAddress(account); err != nil {
		writeError(w, types.NewValidationFailedError(err))
		return
	}

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			writeError(w, types.NewErrorWithMsg(
				http.StatusBadRequest, types.ValidationFailed, "limit must be an integer"))
			return
		}
		limit = parsed
	}

	events, err := s.service.StakeHistory(r.Context(), account, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationFailed, "request body is not valid JSON"))
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err *types.Error) {
	writeJSON(w, err.Code.HTTPStatus(), errorResponse{
		Code:        err.Code.String(),
		Message:     err.Message,
		Details:     err.Details,
		Recoverable: err.Code.Recoverable(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode API response")
	}
}
