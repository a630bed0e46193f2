package services

import (
	"encoding/json"
	"sync"

	"calorietrack/models"

	"github.com/gorilla/websocket"
)

// DailySummary is the push payload recomputed after every write: today's
// nutrient totals plus the full per-day calorie history.
type DailySummary struct {
	Today  models.NutrientSet     `json:"today"`
	ByDate []models.DayCalorieSum `json:"by_date"`
}

// Subscription is one in-process consumer of summary updates.
type Subscription struct {
	ch   chan DailySummary
	hub  *SummaryHub
	once sync.Once
}

// Updates delivers recomputed summaries in write order for as long as the
// subscription is active.
func (s *Subscription) Updates() <-chan DailySummary { return s.ch }

// Cancel detaches the subscription immediately; no further deliveries occur
// and no resources remain held.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		s.hub.mu.Unlock()
		close(s.ch)
	})
}

// WSClient wraps one websocket connection. Gorilla connections allow only a
// single concurrent writer, so every outbound frame goes through Write.
type WSClient struct {
	Conn *websocket.Conn

	mu sync.Mutex
}

// Write sends one frame, serializing against other writers on the same
// connection.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// SummaryHub fans recomputed aggregates out to in-process subscribers and
// connected websocket clients.
type SummaryHub struct {
	mu      sync.RWMutex
	subs    map[*Subscription]struct{}
	clients map[*WSClient]struct{}
}

func NewSummaryHub() *SummaryHub {
	return &SummaryHub{
		subs:    make(map[*Subscription]struct{}),
		clients: make(map[*WSClient]struct{}),
	}
}

func (h *SummaryHub) Subscribe() *Subscription {
	s := &Subscription{ch: make(chan DailySummary, 16), hub: h}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

func (h *SummaryHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *SummaryHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Publish delivers a summary to every subscriber. A consumer whose buffer is
// full (16 undrained updates) has newer summaries dropped until it catches
// up; whatever it does receive still follows write order.
func (h *SummaryHub) Publish(sum DailySummary) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.subs {
		select {
		case s.ch <- sum:
		default:
		}
	}

	if len(h.clients) > 0 {
		msg, _ := json.Marshal(map[string]any{"kind": "summary.updated", "summary": sum})
		for c := range h.clients {
			_ = c.Write(websocket.TextMessage, msg)
		}
	}
}
