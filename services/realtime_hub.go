package services

import (
	"encoding/json"
	"sync"

	"backend/ledger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WSClient struct {
	ID     string
	UserID uint
	Conn   *websocket.Conn
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{ID: uuid.NewString(), UserID: userID, Conn: conn}
}

// RealtimeHub fans ledger updates and alerts out to every socket a user
// has open. Keyed registry guarded by a RWMutex; writes to a dead socket
// are dropped, the read loop in the controller unregisters it.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// BroadcastLedgerUpdate pushes the freshly recomputed day record so open
// clients can re-render without polling.
func (h *RealtimeHub) BroadcastLedgerUpdate(userID uint, l *ledger.DailyLedger) {
	h.broadcast(userID, map[string]any{
		"kind":   "ledger.updated",
		"date":   l.Date.Format("2006-01-02"),
		"ledger": l,
	})
}

func (h *RealtimeHub) BroadcastAlert(userID uint, payload any) {
	h.broadcast(userID, payload)
}
