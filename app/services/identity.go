package services

import (
	"strings"

	"devsync/app/headspin"
)

const browserType = "browser"

// EffectiveDeviceType prefers the subtype when the API reports one.
// Desktop browser endpoints come in as chrome/firefox/safari and are
// collapsed into a single "browser" category.
func EffectiveDeviceType(d *headspin.RawDevice) string {
	if d.DeviceSubtype != "" {
		return d.DeviceSubtype
	}
	switch strings.ToLower(d.DeviceType) {
	case "chrome", "firefox", "safari":
		return browserType
	}
	return d.DeviceType
}

// UniqueDeviceID keys a device for inventory purposes. Browser
// endpoints share one physical device id, so their address is the only
// unique key; everything else keys on the device id.
func UniqueDeviceID(d *headspin.RawDevice) string {
	if EffectiveDeviceType(d) == browserType {
		return d.DeviceAddress
	}
	return d.DeviceID
}
