package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/gorilla/mux"

	chainsMessage "github.com/veilpay/veilpay-signing/chains/message"
)

type SignatureCacher interface {
	Result(id string) (*chainsMessage.SigningResult, error)
	Subscribe(ctx context.Context, id string, resultChn chan *chainsMessage.SigningResult)
}

type StatusHandler struct {
	cache  SignatureCacher
	chains map[uint64]struct{}
}

func NewStatusHandler(cache SignatureCacher, chains map[uint64]struct{}) *StatusHandler {
	return &StatusHandler{
		cache:  cache,
		chains: chains,
	}
}

// HandleRequest returns the cached signing result for the requested ID.
// Clients accepting text/event-stream are kept open until the result is
// ready and receive it as a server-sent event.
func (h *StatusHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 0)
	if !ok {
		JSONError(w, fmt.Errorf("chain id invalid"), http.StatusBadRequest)
		return
	}
	_, ok = h.chains[chainId.Uint64()]
	if !ok {
		JSONError(w, fmt.Errorf("chain %d not supported", chainId.Int64()), http.StatusNotFound)
		return
	}
	id, ok := vars["id"]
	if !ok {
		JSONError(w, fmt.Errorf("missing 'id'"), http.StatusBadRequest)
		return
	}

	if r.Header.Get("Accept") == "text/event-stream" {
		h.stream(w, r, id)
		return
	}

	result, err := h.cache.Result(id)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	data, _ := json.Marshal(result)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// stream is an sse handler that waits until the signing result is ready
// and returns it
func (h *StatusHandler) stream(w http.ResponseWriter, r *http.Request, id string) {
	h.setheaders(w)

	ctx := r.Context()
	resultChn := make(chan *chainsMessage.SigningResult, 1)
	h.cache.Subscribe(ctx, id, resultChn)
	for {
		select {
		case <-r.Context().Done():
			return
		case result := <-resultChn:
			{
				data, _ := json.Marshal(result)
				fmt.Fprintf(w, "data: %s\n\n", data)
				w.(http.Flusher).Flush()
				return
			}
		}
	}
}

func (h *StatusHandler) setheaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}
