package testutil

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dom/league-improvement-tracker/internal/events"
	gorillaWS "github.com/gorilla/websocket"
)

// WSClient is a test client for the change feed
type WSClient struct {
	t      *testing.T
	conn   *gorillaWS.Conn
	Events chan *events.Event
	errors chan error
	done   chan struct{}
	mu     sync.Mutex
}

// NewWSClient connects to the change feed websocket
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:      t,
		conn:   conn,
		Events: make(chan *events.Event, 100),
		errors: make(chan error, 10),
		done:   make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func (c *WSClient) readPump() {
	defer close(c.Events)
	for {
		select {
		case <-c.done:
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				select {
				case <-c.done:
					return
				case c.errors <- err:
				}
				return
			}

			var event events.Event
			if err := json.Unmarshal(data, &event); err != nil {
				c.errors <- err
				continue
			}

			select {
			case c.Events <- &event:
			case <-c.done:
				return
			}
		}
	}
}

// WaitForEvent blocks until an event arrives or the timeout elapses
func (c *WSClient) WaitForEvent(timeout time.Duration) *events.Event {
	c.t.Helper()

	select {
	case event, ok := <-c.Events:
		if !ok {
			c.t.Fatal("websocket closed while waiting for event")
		}
		return event
	case err := <-c.errors:
		c.t.Fatalf("websocket error while waiting for event: %v", err)
	case <-time.After(timeout):
		c.t.Fatal("timed out waiting for event")
	}
	return nil
}

// ExpectNoEvent fails if an event arrives within the window
func (c *WSClient) ExpectNoEvent(window time.Duration) {
	c.t.Helper()

	select {
	case event, ok := <-c.Events:
		if ok {
			c.t.Fatalf("expected no event, got %s/%s", event.Resource, event.Action)
		}
	case <-time.After(window):
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}
