package handlers

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/veilpay/veilpay-signing/address"
)

type ChainInfo struct {
	ChainId uint64 `json:"chainId"`
	Name    string `json:"name"`
	Family  string `json:"family"`
}

type ChainsHandler struct {
	registry *address.Registry
	chains   map[uint64]struct{}
}

func NewChainsHandler(registry *address.Registry, chains map[uint64]struct{}) *ChainsHandler {
	return &ChainsHandler{
		registry: registry,
		chains:   chains,
	}
}

// HandleRequest lists the chains this instance signs for
func (h *ChainsHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	ids := make([]uint64, 0, len(h.chains))
	for id := range h.chains {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	infos := make([]ChainInfo, len(ids))
	for i, id := range ids {
		family, _ := h.registry.Family(uint32(id))
		infos[i] = ChainInfo{
			ChainId: id,
			Name:    h.registry.Name(uint32(id)),
			Family:  string(family),
		}
	}

	data, _ := json.Marshal(infos)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
