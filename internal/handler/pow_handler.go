package handler

import (
	"errors"
	"net/http"

	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/logx"
	"ufresher/internal/pkg/pow"
	"ufresher/internal/pkg/req"
	"ufresher/internal/pkg/resp"
)

// ChallengeResponse describes the work a client must do before a guarded request.
type ChallengeResponse struct {
	Nonce      string `json:"nonce"`
	Difficulty int    `json:"difficulty"`
	Enabled    bool   `json:"enabled"`
}

// HandlePowChallenge issues a fresh nonce.
func HandlePowChallenge(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ChallengeResponse{
			Difficulty: deps.Pow.Difficulty(),
			Enabled:    deps.Pow.Enabled(),
		}
		if data.Enabled {
			data.Nonce = deps.Pow.GenerateNonce()
		}
		resp.RespondSuccess(w, r, data)
	}
}

type VerifyInput struct {
	Nonce   string `json:"nonce"`
	Counter string `json:"counter"`
}

// HandlePowVerify trades a solved challenge for a single-use proof token,
// sent back in the X-PoW-Token header of the guarded request.
func HandlePowVerify(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input VerifyInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Nonce == "" || input.Counter == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		token, err := deps.Pow.ValidateProof(input.Nonce, input.Counter)
		if err != nil {
			if !errors.Is(err, pow.ErrProofTooWeak) {
				logx.Info("PoW proof rejected", "error", err.Error())
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrPowChallengeInvalid))
			return
		}

		resp.RespondSuccess(w, r, map[string]string{"token": token})
	}
}
