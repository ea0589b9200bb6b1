package model

import "time"

// AccountSnapshotDocument is the latest per-account balance and voting power
// read, refreshed by the snapshot poller.
type AccountSnapshotDocument struct {
	Account        string    `bson:"account"` // Unique Index
	LiquidBalance  string    `bson:"liquid_balance"`
	StakedBalance  string    `bson:"staked_balance"`
	Allowance      string    `bson:"allowance"`
	ReservedPower  string    `bson:"reserved_power"`
	AvailablePower string    `bson:"available_power"`
	PowerDegraded  bool      `bson:"power_degraded"`
	RefreshedAt    time.Time `bson:"refreshed_at"`
}
