package handlers

import (
	"net/http"

	"gotbtcgateway/custodian"

	"github.com/ethereum/go-ethereum/log"
)

// Prerequisites reports whether the upstream mints are in place for initialization.
func (a *API) Prerequisites(w http.ResponseWriter, r *http.Request) {
	verifier := &custodian.Verifier{Network: a.Network, Upstream: a.Upstream}
	err := verifier.Prerequisites(r.Context())
	if err == nil {
		responseJSON(w, &APIPrerequisitesResponse{Status: "ok", Ready: true}, http.StatusOK)
		return
	}

	class := custodian.Class(err)
	if class == "Internal" {
		log.Error("Error reading upstream accounts", "err", err)
		responseJSON(w, &APIPrerequisitesResponse{
			Status:  "error",
			Class:   class,
			Message: "Cannot read upstream accounts",
		}, http.StatusBadGateway)
		return
	}

	responseJSON(w, &APIPrerequisitesResponse{
		Status:  "ok",
		Ready:   false,
		Class:   class,
		Message: err.Error(),
	}, http.StatusOK)
}
