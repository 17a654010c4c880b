package services

import (
	"strings"

	"devsync/app/headspin"
	"devsync/app/models"
)

const (
	usageDUT     = "device_under_test"
	usageCamera  = "camera_device"
	usageControl = "control"
)

// GroupAVBoxes reconstructs box bundles from flat usage-tagged records.
// Bundles key on the DUT's address: a DUT contributes its own address,
// companions contribute the first address in their devices list.
func GroupAVBoxes(devices []headspin.RawDevice) map[string]*models.AVBoxMapping {
	boxes := make(map[string]*models.AVBoxMapping)
	for i := range devices {
		addAVBoxEntry(&devices[i], boxes)
	}
	return boxes
}

func addAVBoxEntry(d *headspin.RawDevice, boxes map[string]*models.AVBoxMapping) {
	info := d.AVBoxInfo
	if info == nil || info.Usage == "" || len(info.Devices) == 0 {
		return
	}

	var dut string
	if strings.Contains(info.Usage, usageDUT) {
		dut = d.DeviceAddress
	} else {
		dut = info.Devices[0]
	}
	if dut == "" {
		return
	}

	box, ok := boxes[dut]
	if !ok {
		box = &models.AVBoxMapping{DUT: dut}
		boxes[dut] = box
	}

	switch {
	case strings.Contains(info.Usage, usageDUT):
		deviceType := d.DeviceSubtype
		if deviceType == "" {
			deviceType = d.DeviceType
		}
		box.DeviceType = deviceType
		box.DeviceNotes = d.DeviceNote
	case strings.Contains(info.Usage, usageCamera):
		box.CameraDevice = d.DeviceAddress
	case strings.Contains(info.Usage, usageControl):
		box.Control = d.DeviceAddress
	}
}
