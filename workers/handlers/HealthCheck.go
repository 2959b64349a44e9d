package handlers

import (
	"net/http"
)

// HealthCheck reports the network and gateway program this instance serves.
func (a *API) HealthCheck(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, &APIHealthResponse{
		Status:  "ok",
		Network: a.Network.Name,
		Gateway: a.Network.GatewayProgramID.String(),
	}, http.StatusOK)
}
