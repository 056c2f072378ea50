package client

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/mlindgren/cpolar/pkg/types"
)

// Format asks the daemon for the polar notation of a value.
func (c *Client) Format(req types.FormatRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	ret, err := c.Post("/format", string(payload))
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to format value")
	}

	var s string
	if err := json.Unmarshal([]byte(ret), &s); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal formatted value")
	}
	return s, nil
}

// Construct asks the daemon to resolve a value to Cartesian and polar
// coordinates.
func (c *Client) Construct(req types.ValueInput) (*types.ConstructResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	ret, err := c.Post("/construct", string(payload))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to construct value")
	}

	var resp types.ConstructResponse
	if err := json.Unmarshal([]byte(ret), &resp); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal constructed value")
	}
	return &resp, nil
}

// GetVersion returns the daemon version.
func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}

	var v string
	if err := json.Unmarshal([]byte(ret), &v); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal version")
	}
	return v, nil
}
