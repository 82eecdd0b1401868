package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aetherium/battle-api/internal/errors"
)

const defaultTimeout = 10 * time.Second

// HTTPConfig contains configuration for the HTTP gateway client.
type HTTPConfig struct {
	// BaseURL is the gateway's root endpoint, e.g. http://chain-gateway:9000.
	BaseURL string

	// Timeout bounds each gateway call. Defaults to 10s.
	Timeout time.Duration

	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

// Validate validates the HTTPConfig.
func (cfg *HTTPConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		return errors.InvalidArgument("base URL cannot be empty")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL: %v", err)
	}
	return nil
}

type httpClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient creates a Client backed by the gateway's REST endpoints.
func NewHTTPClient(cfg *HTTPConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &httpClient{
		baseURL: cfg.BaseURL,
		hc:      hc,
	}, nil
}

// Ensure httpClient implements Client
var _ Client = (*httpClient)(nil)

func (c *httpClient) CanBattle(ctx context.Context, walletAddress string) (bool, error) {
	if walletAddress == "" {
		return false, errors.InvalidArgument("wallet address cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/players/%s/can-battle", c.baseURL, url.PathEscape(walletAddress))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, errors.Wrapf(err, "failed to build cooldown request")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return false, errors.WrapWithCodef(err, errors.CodeUnavailable, "chain gateway unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, errors.Unavailablef("chain gateway returned status %d for cooldown check", resp.StatusCode)
	}

	var body struct {
		CanBattle bool `json:"canBattle"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, errors.Wrapf(err, "failed to decode cooldown response")
	}

	return body.CanBattle, nil
}

func (c *httpClient) CompleteBattle(ctx context.Context, input *CompleteBattleInput) (*CompleteBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.WalletAddress == "" {
		return nil, errors.InvalidArgument("wallet address cannot be empty")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID cannot be empty")
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal settlement request")
	}

	endpoint := c.baseURL + "/battles/complete"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build settlement request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "chain gateway unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.Unavailablef("chain gateway returned status %d for settlement", resp.StatusCode)
	}

	var out CompleteBattleOutput
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrapf(err, "failed to decode settlement response")
	}

	return &out, nil
}
