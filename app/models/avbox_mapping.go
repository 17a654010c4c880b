package models

// AVBoxMapping groups a device-under-test with the camera and control
// devices sharing its test enclosure. DUT is the natural key.
type AVBoxMapping struct {
	ID           uint   `gorm:"primaryKey"`
	DeviceType   string `gorm:"size:128"`
	DeviceNotes  string `gorm:"size:512"`
	DUT          string `gorm:"column:dut;uniqueIndex;size:191;not null"`
	CameraDevice string `gorm:"size:191"`
	Control      string `gorm:"size:191"`
}

func (AVBoxMapping) TableName() string { return "avbox_mapping" }
