package simulation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"visuddha-service/internal/model"
)

const (
	ChannelIoT        = "iot"
	ChannelBlockchain = "blockchain"

	recentBlocks = 10
)

// ChannelView maps a live channel to the view whose permissions guard it.
func ChannelView(channel string) (model.View, bool) {
	switch channel {
	case ChannelIoT:
		return model.ViewIoT, true
	case ChannelBlockchain:
		return model.ViewBlockchain, true
	default:
		return model.ViewHome, false
	}
}

type Publisher interface {
	Publish(channel string, payload interface{})
}

type bounds struct {
	min, max, step float64
}

var sensorBounds = map[model.SensorKind]bounds{
	model.SensorTemperature: {min: 15, max: 40, step: 0.8},
	model.SensorHumidity:    {min: 30, max: 90, step: 2.5},
	model.SensorSoil:        {min: 10, max: 60, step: 1.5},
	model.SensorGPS:         {min: 1, max: 15, step: 1},
}

// Simulator fakes a field sensor network and a permissioned ledger so that
// the IoT and blockchain screens show movement.
type Simulator struct {
	mu      sync.RWMutex
	rng     *rand.Rand
	sensors []model.Sensor
	ledger  model.LedgerNetwork

	interval time.Duration
	pub      Publisher
	log      zerolog.Logger
	now      func() time.Time
}

func New(interval time.Duration, seed int64, pub Publisher, log zerolog.Logger) *Simulator {
	s := &Simulator{
		rng:      rand.New(rand.NewSource(seed)),
		interval: interval,
		pub:      pub,
		log:      log,
		now:      time.Now,
	}
	s.sensors = initialSensors(s.now())
	s.ledger = initialLedger(s.now())
	return s
}

// Run ticks until ctx is done.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("simulation started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("simulation stopped")
			return
		case <-ticker.C:
			s.Tick()
			if s.pub != nil {
				s.pub.Publish(ChannelIoT, s.Sensors())
				s.pub.Publish(ChannelBlockchain, s.Ledger())
			}
		}
	}
}

// Tick advances both networks by one step.
func (s *Simulator) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := range s.sensors {
		s.stepSensor(&s.sensors[i], now)
	}
	s.appendBlock(now)
	for i := range s.ledger.Peers {
		p := &s.ledger.Peers[i]
		p.Latency = 20 + s.rng.Intn(180)
		p.Online = s.rng.Float64() > 0.05
	}
	s.ledger.UpdatedAt = now
}

func (s *Simulator) stepSensor(sensor *model.Sensor, now time.Time) {
	b := sensorBounds[sensor.Kind]
	sensor.Value = clamp(sensor.Value+(s.rng.Float64()*2-1)*b.step, b.min, b.max)
	sensor.Value = float64(int(sensor.Value*10)) / 10

	sensor.Battery -= s.rng.Float64() * 0.5
	if sensor.Battery < 5 {
		sensor.Battery = 100
	}

	switch {
	case s.rng.Float64() < 0.02:
		sensor.Status = model.SensorOffline
	case sensor.Battery < 20 || sensor.Value > b.max-(b.max-b.min)*0.1:
		sensor.Status = model.SensorWarning
	default:
		sensor.Status = model.SensorOnline
	}
	sensor.UpdatedAt = now
}

func (s *Simulator) appendBlock(now time.Time) {
	prev := s.ledger.Blocks[len(s.ledger.Blocks)-1]
	txs := 1 + s.rng.Intn(20)
	height := prev.Height + 1
	block := model.Block{
		Height:       height,
		Hash:         blockHash(prev.Hash, height, now),
		PreviousHash: prev.Hash,
		Transactions: txs,
		Validator:    s.ledger.Peers[int(height)%len(s.ledger.Peers)].Name,
		CreatedAt:    now,
	}

	s.ledger.Blocks = append(s.ledger.Blocks, block)
	if len(s.ledger.Blocks) > recentBlocks {
		s.ledger.Blocks = s.ledger.Blocks[len(s.ledger.Blocks)-recentBlocks:]
	}
	s.ledger.Height = height
	s.ledger.TotalTransactions += int64(txs)
	if secs := s.interval.Seconds(); secs > 0 {
		s.ledger.TPS = float64(txs) / secs
	}
}

func (s *Simulator) Sensors() model.SensorNetwork {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := model.SensorNetwork{
		Sensors: make([]model.Sensor, len(s.sensors)),
	}
	copy(out.Sensors, s.sensors)
	for _, sensor := range s.sensors {
		switch sensor.Status {
		case model.SensorOnline:
			out.Online++
		case model.SensorWarning:
			out.Online++
			out.Alerts++
		}
		if sensor.UpdatedAt.After(out.UpdatedAt) {
			out.UpdatedAt = sensor.UpdatedAt
		}
	}
	return out
}

func (s *Simulator) Ledger() model.LedgerNetwork {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.ledger
	out.Blocks = make([]model.Block, len(s.ledger.Blocks))
	copy(out.Blocks, s.ledger.Blocks)
	out.Peers = make([]model.Peer, len(s.ledger.Peers))
	copy(out.Peers, s.ledger.Peers)
	return out
}

func initialSensors(now time.Time) []model.Sensor {
	return []model.Sensor{
		{ID: "IOT-T-01", Name: "Drying shed temperature", Kind: model.SensorTemperature, Location: "Haridwar processing unit", Value: 27.5, Unit: "°C", Battery: 92, Status: model.SensorOnline, UpdatedAt: now},
		{ID: "IOT-H-01", Name: "Drying shed humidity", Kind: model.SensorHumidity, Location: "Haridwar processing unit", Value: 54, Unit: "%", Battery: 88, Status: model.SensorOnline, UpdatedAt: now},
		{ID: "IOT-S-01", Name: "Field soil moisture", Kind: model.SensorSoil, Location: "Chamoli fields", Value: 31, Unit: "%", Battery: 64, Status: model.SensorOnline, UpdatedAt: now},
		{ID: "IOT-T-02", Name: "Warehouse cold room", Kind: model.SensorTemperature, Location: "Gurugram warehouse", Value: 18.2, Unit: "°C", Battery: 75, Status: model.SensorOnline, UpdatedAt: now},
		{ID: "IOT-G-01", Name: "Transit tracker", Kind: model.SensorGPS, Location: "NH-58 in transit", Value: 4, Unit: "m", Battery: 41, Status: model.SensorOnline, UpdatedAt: now},
	}
}

func initialLedger(now time.Time) model.LedgerNetwork {
	genesis := model.Block{
		Height:       1,
		Hash:         blockHash("", 1, now),
		Transactions: 1,
		Validator:    "peer0.farmers",
		CreatedAt:    now,
	}
	return model.LedgerNetwork{
		Height:            genesis.Height,
		TotalTransactions: int64(genesis.Transactions),
		Blocks:            []model.Block{genesis},
		Peers: []model.Peer{
			{Name: "peer0.farmers", Org: "FarmersMSP", Online: true, Latency: 40},
			{Name: "peer0.processors", Org: "ProcessorsMSP", Online: true, Latency: 55},
			{Name: "peer0.labs", Org: "LabsMSP", Online: true, Latency: 62},
			{Name: "peer0.regulator", Org: "RegulatorMSP", Online: true, Latency: 80},
		},
		UpdatedAt: now,
	}
}

func blockHash(prev string, height int64, at time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d", prev, height, at.UnixNano())))
	return hex.EncodeToString(sum[:])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
