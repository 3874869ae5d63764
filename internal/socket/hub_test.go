package socket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T, hub *Hub, channel string) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(channel, conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestPublishReachesSubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	client := dial(t, newHubServer(t, hub, "iot"))

	require.Eventually(t, func() bool { return hub.Subscribers("iot") == 1 }, time.Second, 5*time.Millisecond)

	hub.Publish("blockchain", map[string]int{"height": 1})
	hub.Publish("iot", map[string]int{"online": 4})

	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	_, raw, err := client.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Channel string         `json:"channel"`
		Data    map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "iot", msg.Channel)
	assert.Equal(t, 4, msg.Data["online"])
}

func TestPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	assert.Equal(t, 0, hub.Subscribers("iot"))
	hub.Publish("iot", "nobody listening")
}

func TestSlowSubscriberDoesNotBlockRegistration(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	url := newHubServer(t, hub, "iot")
	dial(t, url)
	require.Eventually(t, func() bool { return hub.Subscribers("iot") == 1 }, time.Second, 5*time.Millisecond)

	stalled := hub.snapshot("iot")[0]
	stalled.mu.Lock()

	done := make(chan struct{})
	go func() {
		hub.Publish("iot", map[string]int{"online": 1})
		close(done)
	}()

	dial(t, url)
	assert.Eventually(t, func() bool { return hub.Subscribers("iot") == 2 }, time.Second, 5*time.Millisecond)

	stalled.mu.Unlock()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish did not finish")
	}
}

func TestPublishDropsClosedSubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	dial(t, newHubServer(t, hub, "blockchain"))
	require.Eventually(t, func() bool { return hub.Subscribers("blockchain") == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.snapshot("blockchain")[0].conn.Close())
	hub.Publish("blockchain", map[string]int{"height": 2})

	assert.Equal(t, 0, hub.Subscribers("blockchain"))
}
