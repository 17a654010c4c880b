package services

import "devsync/app/headspin"

// DeviceTeams collects every team name attached to the given address in
// the team snapshot, deduplicated in order of first appearance. A nil
// snapshot means no team data and yields an empty result.
func DeviceTeams(address string, teams *headspin.TeamList) []string {
	if teams == nil {
		return nil
	}
	var names []string
	seen := make(map[string]struct{})
	for _, td := range teams.Devices {
		if td.DeviceAddress != address {
			continue
		}
		for _, t := range td.Teams {
			if _, ok := seen[t.TeamName]; ok {
				continue
			}
			seen[t.TeamName] = struct{}{}
			names = append(names, t.TeamName)
		}
	}
	return names
}
