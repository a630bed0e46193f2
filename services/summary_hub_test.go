package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"calorietrack/models"

	"github.com/gorilla/websocket"
)

func TestSubscribeReceivesInWriteOrder(t *testing.T) {
	hub := NewSummaryHub()
	sub := hub.Subscribe()
	defer sub.Cancel()

	for i := 1; i <= 3; i++ {
		hub.Publish(DailySummary{Today: models.NutrientSet{Calorie: i * 100}})
	}

	for i := 1; i <= 3; i++ {
		got := <-sub.Updates()
		if got.Today.Calorie != i*100 {
			t.Fatalf("delivery %d: calorie = %d, want %d", i, got.Today.Calorie, i*100)
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	hub := NewSummaryHub()
	sub := hub.Subscribe()

	sub.Cancel()
	hub.Publish(DailySummary{Today: models.NutrientSet{Calorie: 100}})

	if _, open := <-sub.Updates(); open {
		t.Fatal("channel still open after cancel")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	hub := NewSummaryHub()
	sub := hub.Subscribe()
	sub.Cancel()
	sub.Cancel() // must not panic
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := NewSummaryHub()
	sub := hub.Subscribe()
	defer sub.Cancel()

	// more publishes than the buffer holds; Publish must not block
	for i := 0; i < 100; i++ {
		hub.Publish(DailySummary{})
	}
}

func TestFullBufferDropsNewestUpdates(t *testing.T) {
	hub := NewSummaryHub()
	sub := hub.Subscribe()
	defer sub.Cancel()

	// fill the buffer and keep going without draining
	for i := 1; i <= 40; i++ {
		hub.Publish(DailySummary{Today: models.NutrientSet{Calorie: i}})
	}

	// the oldest 16 survive, in write order; later ones were dropped
	for i := 1; i <= 16; i++ {
		got := <-sub.Updates()
		if got.Today.Calorie != i {
			t.Fatalf("delivery %d: calorie = %d, want %d", i, got.Today.Calorie, i)
		}
	}
	select {
	case got := <-sub.Updates():
		t.Fatalf("unexpected extra delivery: calorie = %d", got.Today.Calorie)
	default:
	}
}

func TestClientWriteIsSafeForConcurrentUse(t *testing.T) {
	upgrader := websocket.Upgrader{}
	ready := make(chan *WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		ready <- &WSClient{Conn: conn}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	peer, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer peer.Close()
	cl := <-ready
	defer cl.Conn.Close()

	// drain so writes do not stall on flow control
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := peer.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// pings and summary frames from separate goroutines, as the hub and the
	// keepalive loop do on a live connection
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				var err error
				if g%2 == 0 {
					err = cl.Write(websocket.PingMessage, nil)
				} else {
					err = cl.Write(websocket.TextMessage, []byte(`{"kind":"summary.updated"}`))
				}
				if err != nil {
					t.Errorf("write: %v", err)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	cl.Conn.Close()
	<-done
}
