package checkbook

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/veilpay/veilpay-signing/signdata"
)

const (
	RECONNECT_DELAY = 5 * time.Second

	TypeAllocationUpdate = "allocation_update"
	TypeCheckbookUpdate  = "checkbook_update"

	actionSubscribe = "subscribe"
	topicCheckbooks = "checkbooks"
)

// PushMessage is the envelope of every backend push.
type PushMessage struct {
	Type        string          `json:"type"`
	Timestamp   string          `json:"timestamp"`
	MessageID   string          `json:"message_id"`
	UserAddress string          `json:"user_address"`
	Data        json.RawMessage `json:"data"`
}

type SubscriptionMessage struct {
	Action    string `json:"action"`
	Type      string `json:"type"`
	Address   string `json:"address,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type AllocationUpdate struct {
	Action     string `json:"action"`
	Allocation Check  `json:"allocation"`
}

type CheckbookUpdate struct {
	Action    string    `json:"action"`
	Checkbook Checkbook `json:"checkbook"`
}

type CheckbookFetcher interface {
	Checkbook(ctx context.Context, id string) (*Checkbook, []Check, error)
}

// AllocationSubscription streams allocation state changes from the
// backend push socket.
type AllocationSubscription struct {
	log     zerolog.Logger
	url     string
	fetcher CheckbookFetcher
}

func NewAllocationSubscription(logC zerolog.Context, url string, fetcher CheckbookFetcher) *AllocationSubscription {
	return &AllocationSubscription{
		log:     logC.Logger(),
		url:     url,
		fetcher: fetcher,
	}
}

// Subscribe delivers allocation updates to updateChn until the context
// is cancelled. The connection is re-dialed after a delay when reads
// fail so subscribers only ever observe a gap, never a dead stream.
func (s *AllocationSubscription) Subscribe(ctx context.Context, updateChn chan *signdata.Allocation) {
	for {
		err := s.listen(ctx, updateChn)
		if err != nil {
			s.log.Warn().Err(err).Msgf("Backend subscription failed, reconnecting in %s", RECONNECT_DELAY)
		}

		select {
		case <-time.After(RECONNECT_DELAY):
		case <-ctx.Done():
			return
		}
	}
}

func (s *AllocationSubscription) listen(ctx context.Context, updateChn chan *signdata.Allocation) error {
	conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	err = conn.WriteJSON(&SubscriptionMessage{
		Action:    actionSubscribe,
		Type:      topicCheckbooks,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		if err := s.handleMessage(ctx, msg, updateChn); err != nil {
			s.log.Warn().Err(err).Msg("Failed to handle backend push message")
		}
	}
}

// handleMessage dispatches one push. Checkbook updates are expanded into
// one update per allocation because commitment binding happens on the
// checkbook and changes every allocation under it.
func (s *AllocationSubscription) handleMessage(ctx context.Context, msg []byte, updateChn chan *signdata.Allocation) error {
	var push PushMessage
	if err := json.Unmarshal(msg, &push); err != nil {
		return err
	}

	switch push.Type {
	case TypeAllocationUpdate:
		var update AllocationUpdate
		if err := json.Unmarshal(push.Data, &update); err != nil {
			return err
		}

		updateChn <- update.Allocation.Allocation()
	case TypeCheckbookUpdate:
		var update CheckbookUpdate
		if err := json.Unmarshal(push.Data, &update); err != nil {
			return err
		}

		_, checks, err := s.fetcher.Checkbook(ctx, update.Checkbook.ID)
		if err != nil {
			return err
		}

		for _, c := range checks {
			updateChn <- c.Allocation()
		}
	}

	return nil
}
