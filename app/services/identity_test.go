package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devsync/app/headspin"
)

func TestEffectiveDeviceType(t *testing.T) {
	tests := []struct {
		name   string
		device headspin.RawDevice
		want   string
	}{
		{"subtype wins", headspin.RawDevice{DeviceType: "chrome", DeviceSubtype: "tablet"}, "tablet"},
		{"chrome is browser", headspin.RawDevice{DeviceType: "chrome"}, "browser"},
		{"firefox is browser", headspin.RawDevice{DeviceType: "firefox"}, "browser"},
		{"safari is browser", headspin.RawDevice{DeviceType: "safari"}, "browser"},
		{"case insensitive", headspin.RawDevice{DeviceType: "Chrome"}, "browser"},
		{"uppercase", headspin.RawDevice{DeviceType: "SAFARI"}, "browser"},
		{"plain type passes through", headspin.RawDevice{DeviceType: "android"}, "android"},
		{"empty type", headspin.RawDevice{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveDeviceType(&tt.device))
		})
	}
}

func TestUniqueDeviceID(t *testing.T) {
	browser := headspin.RawDevice{DeviceType: "chrome", DeviceAddress: "web-01:100", DeviceID: "shared-host"}
	assert.Equal(t, "web-01:100", UniqueDeviceID(&browser))

	phone := headspin.RawDevice{DeviceType: "ios", DeviceAddress: "proxy-02:7", DeviceID: "UDID-123"}
	assert.Equal(t, "UDID-123", UniqueDeviceID(&phone))

	// A browser-typed device with a subtype is keyed like the subtype
	// category, i.e. by device id.
	subtyped := headspin.RawDevice{DeviceType: "chrome", DeviceSubtype: "desktop", DeviceAddress: "web-02:4", DeviceID: "UDID-456"}
	assert.Equal(t, "UDID-456", UniqueDeviceID(&subtyped))
}
