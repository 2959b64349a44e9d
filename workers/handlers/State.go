package handlers

import (
	"net/http"

	"gotbtcgateway/custodian"

	"github.com/ethereum/go-ethereum/log"
)

func (a *API) State(w http.ResponseWriter, r *http.Request) {
	state, err := custodian.State(r.Context(), a.Network, a.Reader)
	if err != nil {
		log.Error("Error reading custodian state", "err", err)
		responseError(w, "Cannot read custodian state", http.StatusInternalServerError)
		return
	}

	responseJSON(w, &APIStateResponse{
		Status: "ok",
		State:  state.String(),
	}, http.StatusOK)
}
