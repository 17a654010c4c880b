package headspin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"devsync/config"
)

const (
	devicesPath     = "/v0/devices"
	teamDevicesPath = "/v0/teams/devices"
)

// Client talks to the device-management API with bearer auth.
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.API) *Client {
	c := resty.New().
		SetBaseURL("https://" + cfg.Base).
		SetTimeout(60 * time.Second).
		SetAuthToken(cfg.Key).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// NewClientWithBase is used by tests to point at an httptest server.
func NewClientWithBase(baseURL, key string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(60 * time.Second).
		SetAuthToken(key).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

func (c *Client) FetchDevices(ctx context.Context) (*DeviceList, error) {
	var out DeviceList
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get(devicesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch devices: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch devices: %s: %s", resp.Status(), resp.String())
	}
	return &out, nil
}

func (c *Client) FetchTeamDevices(ctx context.Context) (*TeamList, error) {
	var out TeamList
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get(teamDevicesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch team devices: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch team devices: %s: %s", resp.Status(), resp.String())
	}
	return &out, nil
}
