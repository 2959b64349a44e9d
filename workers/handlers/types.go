package handlers

import (
	"gotbtcgateway/config"
	"gotbtcgateway/custodian"
	"gotbtcgateway/derive"
	"gotbtcgateway/types"
)

// API serves read-only views of one deployment.
type API struct {
	Network config.Network
	// local store holding the custodian record
	Reader custodian.AccountReader
	// cluster the tBTC and wrapped tBTC mints are read from
	Upstream custodian.AccountReader
}

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type APIHealthResponse struct {
	Status  string `json:"status"`
	Network string `json:"network"`
	Gateway string `json:"gateway"`
}

type APIStateResponse struct {
	Status string `json:"status"`
	State  string `json:"state"`
}

type APICustodianResponse struct {
	Status  string           `json:"status"`
	Address string           `json:"address"`
	Record  *types.Custodian `json:"record"`
}

type APIAddressesResponse struct {
	Status              string           `json:"status"`
	Network             string           `json:"network"`
	ForeignTokenChain   uint16           `json:"foreignTokenChain"`
	ForeignTokenAddress string           `json:"foreignTokenAddress"`
	Addresses           derive.Addresses `json:"addresses"`
}

type APIPrerequisitesResponse struct {
	Status  string `json:"status"`
	Ready   bool   `json:"ready"`
	Class   string `json:"class,omitempty"`
	Message string `json:"message,omitempty"`
}
