package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devsync/app/headspin"
)

func avboxFixture() []headspin.RawDevice {
	return []headspin.RawDevice{
		{
			DeviceType:    "ios",
			DeviceAddress: "dut-addr",
			DeviceNote:    "enclosure 7",
			AVBoxInfo:     &headspin.AVBoxInfo{Usage: "device_under_test", Devices: []string{"cam-addr", "ctl-addr"}},
		},
		{
			DeviceType:    "camera",
			DeviceAddress: "cam-addr",
			AVBoxInfo:     &headspin.AVBoxInfo{Usage: "camera_device", Devices: []string{"dut-addr"}},
		},
		{
			DeviceType:    "android",
			DeviceAddress: "ctl-addr",
			AVBoxInfo:     &headspin.AVBoxInfo{Usage: "control", Devices: []string{"dut-addr"}},
		},
	}
}

func TestGroupAVBoxes(t *testing.T) {
	boxes := GroupAVBoxes(avboxFixture())
	require.Len(t, boxes, 1)

	box := boxes["dut-addr"]
	require.NotNil(t, box)
	assert.Equal(t, "dut-addr", box.DUT)
	assert.Equal(t, "ios", box.DeviceType)
	assert.Equal(t, "enclosure 7", box.DeviceNotes)
	assert.Equal(t, "cam-addr", box.CameraDevice)
	assert.Equal(t, "ctl-addr", box.Control)
}

func TestGroupAVBoxesOrderIndependent(t *testing.T) {
	devices := avboxFixture()
	permutations := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}}
	for _, p := range permutations {
		shuffled := []headspin.RawDevice{devices[p[0]], devices[p[1]], devices[p[2]]}
		boxes := GroupAVBoxes(shuffled)
		require.Len(t, boxes, 1)
		box := boxes["dut-addr"]
		require.NotNil(t, box)
		assert.Equal(t, "ios", box.DeviceType)
		assert.Equal(t, "cam-addr", box.CameraDevice)
		assert.Equal(t, "ctl-addr", box.Control)
	}
}

func TestGroupAVBoxesSubtypePreferred(t *testing.T) {
	devices := avboxFixture()
	devices[0].DeviceSubtype = "settop"
	boxes := GroupAVBoxes(devices)
	assert.Equal(t, "settop", boxes["dut-addr"].DeviceType)
}

func TestGroupAVBoxesSkipsMalformed(t *testing.T) {
	devices := []headspin.RawDevice{
		{DeviceAddress: "a", AVBoxInfo: &headspin.AVBoxInfo{Usage: "camera_device"}},           // no devices list
		{DeviceAddress: "b", AVBoxInfo: &headspin.AVBoxInfo{Devices: []string{"x"}}},           // no usage
		{DeviceAddress: "c", AVBoxInfo: &headspin.AVBoxInfo{}},                                 // neither
		{DeviceAddress: "d"},                                                                   // no avbox info at all
		{DeviceAddress: "", AVBoxInfo: &headspin.AVBoxInfo{Usage: "device_under_test", Devices: []string{"x"}}}, // empty key
	}
	assert.Empty(t, GroupAVBoxes(devices))
}

func TestGroupAVBoxesPartialBundle(t *testing.T) {
	// Companions reporting before (or without) their DUT still create
	// the bundle keyed on the first listed address.
	devices := []headspin.RawDevice{
		{DeviceAddress: "cam-addr", AVBoxInfo: &headspin.AVBoxInfo{Usage: "camera_device", Devices: []string{"dut-addr", "ctl-addr"}}},
	}
	boxes := GroupAVBoxes(devices)
	require.Len(t, boxes, 1)
	box := boxes["dut-addr"]
	require.NotNil(t, box)
	assert.Equal(t, "cam-addr", box.CameraDevice)
	assert.Empty(t, box.DeviceType)
	assert.Empty(t, box.Control)
}
