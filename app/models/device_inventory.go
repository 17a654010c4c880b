package models

import "time"

// DeviceInventory is one row per unique device reported by the API.
// UDID is the natural key: the device identifier for physical devices,
// the device address for browser endpoints.
type DeviceInventory struct {
	ID          uint   `gorm:"primaryKey"`
	DeviceType  string `gorm:"size:128"`
	Model       string `gorm:"size:255"`
	DeviceSKUs  string `gorm:"size:512"`
	UDID        string `gorm:"column:udid;uniqueIndex;size:191;not null"`
	HostName    string `gorm:"size:255"`
	OSVersion   string `gorm:"size:128"`
	Location    string `gorm:"size:255"`
	DeviceNotes string `gorm:"size:512"`
	Teams       string `gorm:"size:512"`
	IsAVBox     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DeviceInventory) TableName() string { return "device_inventory" }
