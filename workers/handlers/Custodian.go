package handlers

import (
	"errors"
	"net/http"

	"gotbtcgateway/custodian"
	"gotbtcgateway/derive"

	"github.com/ethereum/go-ethereum/log"
)

func (a *API) Custodian(w http.ResponseWriter, r *http.Request) {
	record, err := custodian.Load(r.Context(), a.Network, a.Reader)
	if errors.Is(err, custodian.ErrNotInitialized) {
		responseError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error("Error loading custodian", "err", err)
		responseError(w, "Cannot load custodian", http.StatusInternalServerError)
		return
	}

	responseJSON(w, &APICustodianResponse{
		Status:  "ok",
		Address: derive.Custodian(a.Network).Address.String(),
		Record:  record,
	}, http.StatusOK)
}

func (a *API) Addresses(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, &APIAddressesResponse{
		Status:              "ok",
		Network:             a.Network.Name,
		ForeignTokenChain:   a.Network.ForeignTokenChain,
		ForeignTokenAddress: a.Network.ForeignTokenEthAddress,
		Addresses:           derive.All(a.Network),
	}, http.StatusOK)
}
