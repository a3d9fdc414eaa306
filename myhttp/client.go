package myhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slackernews/paygate/prototype"
)

// Client calls a remote gateway's http api.
type Client struct {
	base string
	hc   *http.Client
}

func NewClient(base string) *Client {
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *Client) Build(ctx context.Context, t prototype.InteractionType, user, author string) (*TransactionResponse, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	var resp TransactionResponse
	err := c.do(ctx, http.MethodPost, "/v1/transactions/"+t.String(), BuildRequest{UserAddress: user, AuthorAddress: author}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Submit returns the settled result even when the gateway answers with an
// error status, as long as a result was produced.
func (c *Client) Submit(ctx context.Context, encoded string) (*ResultResponse, error) {
	var resp ResultResponse
	err := c.do(ctx, http.MethodPost, "/v1/transactions/submit", SubmitRequest{Transaction: encoded}, &resp)
	if resp.Signature != "" {
		return &resp, nil
	}
	return nil, err
}

func (c *Client) Status(ctx context.Context, sig string) (*ResultResponse, error) {
	var resp ResultResponse
	if err := c.do(ctx, http.MethodGet, "/v1/transactions/"+sig, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Balance(ctx context.Context, owner string) (*BalanceResponse, error) {
	var resp BalanceResponse
	if err := c.do(ctx, http.MethodGet, "/v1/balance/"+owner, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.hc.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return json.NewDecoder(res.Body).Decode(out)
	}
	var raw json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return errors.Errorf("%s %s: http %d", method, path, res.StatusCode)
	}
	_ = json.Unmarshal(raw, out)
	var e ErrorResponse
	_ = json.Unmarshal(raw, &e)
	if e.Error == "" {
		return errors.Errorf("%s %s: http %d", method, path, res.StatusCode)
	}
	return errors.Errorf("%s (http %d)", e.Error, res.StatusCode)
}
