package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devsync/app/headspin"
)

func TestDeviceTeams(t *testing.T) {
	snapshot := &headspin.TeamList{Devices: []headspin.TeamDevice{
		{DeviceAddress: "dev-1", Teams: []headspin.TeamRef{{TeamName: "A"}, {TeamName: "B"}}},
		{DeviceAddress: "dev-2", Teams: []headspin.TeamRef{{TeamName: "X"}}},
		{DeviceAddress: "dev-1", Teams: []headspin.TeamRef{{TeamName: "B"}, {TeamName: "C"}}},
	}}

	assert.Equal(t, []string{"A", "B", "C"}, DeviceTeams("dev-1", snapshot))
	assert.Equal(t, []string{"X"}, DeviceTeams("dev-2", snapshot))
	assert.Empty(t, DeviceTeams("dev-3", snapshot))
}

func TestDeviceTeamsNoSnapshot(t *testing.T) {
	assert.Empty(t, DeviceTeams("dev-1", nil))
	assert.Empty(t, DeviceTeams("dev-1", &headspin.TeamList{}))
}
