package simulation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visuddha-service/internal/model"
)

type recordingPublisher struct {
	mu       sync.Mutex
	channels []string
}

func (p *recordingPublisher) Publish(channel string, _ interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channels = append(p.channels, channel)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.channels)
}

func TestTickKeepsSensorsInBounds(t *testing.T) {
	s := New(time.Second, 7, nil, zerolog.Nop())
	for i := 0; i < 500; i++ {
		s.Tick()
	}

	network := s.Sensors()
	require.Len(t, network.Sensors, 5)
	for _, sensor := range network.Sensors {
		b := sensorBounds[sensor.Kind]
		assert.GreaterOrEqual(t, sensor.Value, b.min, sensor.ID)
		assert.LessOrEqual(t, sensor.Value, b.max, sensor.ID)
		assert.GreaterOrEqual(t, sensor.Battery, 5.0, sensor.ID)
		assert.LessOrEqual(t, sensor.Battery, 100.0, sensor.ID)
	}
	assert.LessOrEqual(t, network.Alerts, network.Online)
}

func TestTickChainsBlocks(t *testing.T) {
	s := New(2*time.Second, 11, nil, zerolog.Nop())
	for i := 0; i < 25; i++ {
		s.Tick()
	}

	ledger := s.Ledger()
	assert.Equal(t, int64(26), ledger.Height)
	require.Len(t, ledger.Blocks, recentBlocks)
	for i := 1; i < len(ledger.Blocks); i++ {
		assert.Equal(t, ledger.Blocks[i-1].Hash, ledger.Blocks[i].PreviousHash)
		assert.Equal(t, ledger.Blocks[i-1].Height+1, ledger.Blocks[i].Height)
	}
	assert.Greater(t, ledger.TotalTransactions, int64(25))
	assert.Greater(t, ledger.TPS, 0.0)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := New(time.Second, 3, nil, zerolog.Nop())
	ledger := s.Ledger()
	ledger.Blocks[0].Hash = "tampered"
	ledger.Peers[0].Name = "tampered"

	again := s.Ledger()
	assert.NotEqual(t, "tampered", again.Blocks[0].Hash)
	assert.NotEqual(t, "tampered", again.Peers[0].Name)
}

func TestRunPublishesUntilCancelled(t *testing.T) {
	pub := &recordingPublisher{}
	s := New(5*time.Millisecond, 1, pub, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return pub.count() >= 4 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop")
	}
}

func TestChannelView(t *testing.T) {
	v, ok := ChannelView(ChannelIoT)
	assert.True(t, ok)
	assert.Equal(t, model.ViewIoT, v)

	v, ok = ChannelView(ChannelBlockchain)
	assert.True(t, ok)
	assert.Equal(t, model.ViewBlockchain, v)

	_, ok = ChannelView("weather")
	assert.False(t, ok)
}
