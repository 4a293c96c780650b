package pubchem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the PUG REST root of the public PubChem service.
	DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "chemfetch/1.0"
)

// Compound property names accepted by the TXT property endpoint.
const (
	PropertyIUPACName      = "IUPACName"
	PropertyIsomericSMILES = "IsomericSMILES"
)

// Client talks to the PUG REST API. Every call issues a single blocking GET
// bounded by the client timeout; there is no retry and no connection pooling
// contract beyond what net/http provides.
type Client struct {
	BaseURL   string
	UserAgent string

	httpClient *http.Client
}

func New(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type identifierList struct {
	IdentifierList struct {
		CID []int64 `json:"CID"`
	} `json:"IdentifierList"`
}

type informationList struct {
	InformationList struct {
		Information []struct {
			CID     int64    `json:"CID"`
			Synonym []string `json:"Synonym"`
		} `json:"Information"`
	} `json:"InformationList"`
}

// CIDByName resolves a compound name to its first listed compound ID.
// The name is embedded in the request path as-is; names that make the URL
// unparseable fail request construction and surface as a *RequestError.
func (c *Client) CIDByName(ctx context.Context, name string) (int64, error) {
	url := fmt.Sprintf("%s/compound/name/%s/cids/JSON", c.BaseURL, name)
	body, err := c.get(ctx, url)
	if err != nil {
		return 0, err
	}
	var payload identifierList
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, &DecodeError{URL: url, Err: err}
	}
	cids := payload.IdentifierList.CID
	if len(cids) == 0 {
		return 0, &DecodeError{URL: url, Err: errors.New("identifier list is empty")}
	}
	return cids[0], nil
}

// Synonyms returns the synonym list of the first information record for cid.
func (c *Client) Synonyms(ctx context.Context, cid int64) ([]string, error) {
	url := fmt.Sprintf("%s/compound/cid/%d/synonyms/JSON", c.BaseURL, cid)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	var payload informationList
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}
	records := payload.InformationList.Information
	if len(records) == 0 {
		return nil, &DecodeError{URL: url, Err: errors.New("information list is empty")}
	}
	return records[0].Synonym, nil
}

// Property fetches a single compound property from the plain-text endpoint
// and returns the trimmed response body.
func (c *Client) Property(ctx context.Context, cid int64, property string) (string, error) {
	url := fmt.Sprintf("%s/compound/cid/%d/property/%s/TXT", c.BaseURL, cid, property)
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("request timed out after %s", c.httpClient.Timeout)
		}
		return nil, &RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("http status %d", resp.StatusCode)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	return body, nil
}
