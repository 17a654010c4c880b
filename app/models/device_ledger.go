package models

import "time"

const (
	LedgerAdded   = "added"
	LedgerRemoved = "removed"
)

// DeviceLedger is the append-only audit trail of inventory transitions.
// Rows are written once and never updated or deleted.
type DeviceLedger struct {
	ID        uint   `gorm:"primaryKey"`
	UDID      string `gorm:"column:udid;index;size:191"`
	Status    string `gorm:"size:32"`
	Timestamp time.Time
	Details   string `gorm:"size:1024"`
}

func (DeviceLedger) TableName() string { return "device_ledger" }
