package headspin

import (
	"encoding/json"
	"strings"
)

// SKUList tolerates the API returning either a single SKU string or a
// list of them.
type SKUList []string

func (s *SKUList) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*s = nil
		return nil
	}
	if b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = SKUList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

func (s SKUList) Join() string { return strings.Join(s, ", ") }

// AVBoxInfo tags a device with its role inside a test enclosure and the
// addresses of the other members.
type AVBoxInfo struct {
	Usage   string   `json:"usage"`
	Devices []string `json:"devices"`
}

type RawDevice struct {
	DeviceType    string     `json:"device_type"`
	DeviceSubtype string     `json:"device_subtype"`
	DeviceAddress string     `json:"device_address"`
	DeviceID      string     `json:"device_id"`
	Model         string     `json:"model"`
	DeviceSKUs    SKUList    `json:"device_skus"`
	Hostname      string     `json:"hostname"`
	OSVersion     string     `json:"os_version"`
	HostCity      string     `json:"host_city"`
	HostCountry   string     `json:"host_country"`
	DeviceNote    string     `json:"device_note"`
	AVBoxInfo     *AVBoxInfo `json:"avbox_info"`
}

type DeviceList struct {
	Devices []RawDevice `json:"devices"`
}

type TeamRef struct {
	TeamName string `json:"team_name"`
}

type TeamDevice struct {
	DeviceAddress string    `json:"device_address"`
	Teams         []TeamRef `json:"teams"`
}

type TeamList struct {
	Devices []TeamDevice `json:"devices"`
}
