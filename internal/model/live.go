package model

import "time"

type SensorKind string

const (
	SensorTemperature SensorKind = "TEMPERATURE"
	SensorHumidity    SensorKind = "HUMIDITY"
	SensorSoil        SensorKind = "SOIL_MOISTURE"
	SensorGPS         SensorKind = "GPS"
)

type SensorStatus string

const (
	SensorOnline  SensorStatus = "ONLINE"
	SensorWarning SensorStatus = "WARNING"
	SensorOffline SensorStatus = "OFFLINE"
)

type Sensor struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      SensorKind   `json:"kind"`
	Location  string       `json:"location"`
	Value     float64      `json:"value"`
	Unit      string       `json:"unit"`
	Battery   float64      `json:"battery"`
	Status    SensorStatus `json:"status"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type SensorNetwork struct {
	Sensors   []Sensor  `json:"sensors"`
	Online    int       `json:"online"`
	Alerts    int       `json:"alerts"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Block struct {
	Height       int64     `json:"height"`
	Hash         string    `json:"hash"`
	PreviousHash string    `json:"previous_hash"`
	Transactions int       `json:"transactions"`
	Validator    string    `json:"validator"`
	CreatedAt    time.Time `json:"created_at"`
}

type Peer struct {
	Name    string `json:"name"`
	Org     string `json:"org"`
	Online  bool   `json:"online"`
	Latency int    `json:"latency_ms"`
}

type LedgerNetwork struct {
	Height            int64     `json:"height"`
	TotalTransactions int64     `json:"total_transactions"`
	TPS               float64   `json:"tps"`
	Blocks            []Block   `json:"recent_blocks"`
	Peers             []Peer    `json:"peers"`
	UpdatedAt         time.Time `json:"updated_at"`
}
