package trendhunter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxResponseBytes = 4 << 20

// RequestError is the single failure contract of the gateway. Message holds
// the server-supplied error text when present, otherwise a transport-level
// description; StatusCode is zero for network failures.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a gateway over baseURL. The default transport carries no
// timeout of its own: every call is bounded by its context deadline, and a
// transport cap would cut off long operations like scan triggers early.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) Status(ctx context.Context) (DashboardStatus, error) {
	var status DashboardStatus
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, nil, &status); err != nil {
		return DashboardStatus{}, err
	}
	return status, nil
}

func (c *Client) Keywords(ctx context.Context) ([]Keyword, error) {
	var payload struct {
		Keywords []Keyword `json:"keywords"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/keywords", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Keywords, nil
}

func (c *Client) AddKeyword(ctx context.Context, keyword string) error {
	body := map[string]string{"keyword": keyword}
	return c.do(ctx, http.MethodPost, "/api/keywords", nil, body, nil)
}

func (c *Client) DeleteKeyword(ctx context.Context, keyword string) error {
	return c.do(ctx, http.MethodDelete, "/api/keywords/"+url.PathEscape(keyword), nil, nil, nil)
}

// News fetches articles for the given status facet and optional keyword
// filter. The returned int is the total match count before the limit cut.
func (c *Client) News(ctx context.Context, filter, keyword string, limit int) ([]NewsItem, int, error) {
	if limit < 1 {
		limit = 120
	}
	q := make(url.Values)
	q.Set("filter", filter)
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	q.Set("limit", strconv.Itoa(limit))

	var payload struct {
		Total int        `json:"total"`
		News  []NewsItem `json:"news"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/news", q, nil, &payload); err != nil {
		return nil, 0, err
	}
	return payload.News, payload.Total, nil
}

// ToggleSave flips the saved flag of one article. The returned bool is the
// state the server settled on, which drives the local overlay edit.
func (c *Client) ToggleSave(ctx context.Context, id int64) (bool, error) {
	var payload struct {
		Saved bool `json:"saved"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/save/"+strconv.FormatInt(id, 10), nil, nil, &payload); err != nil {
		return false, err
	}
	return payload.Saved, nil
}

func (c *Client) Scans(ctx context.Context) ([]ScanRecord, error) {
	var payload struct {
		Scans []ScanRecord `json:"scans"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/scans", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Scans, nil
}

func (c *Client) TriggerScan(ctx context.Context) (ScanResult, error) {
	var result ScanResult
	if err := c.do(ctx, http.MethodPost, "/api/scan", nil, nil, &result); err != nil {
		return ScanResult{}, err
	}
	return result, nil
}

func (c *Client) Discover(ctx context.Context, params DiscoverParams) (DiscoverResult, error) {
	q := make(url.Values)
	q.Set("timeframe", params.Timeframe)
	q.Set("per_page", strconv.Itoa(params.PerPage))
	q.Set("page", strconv.Itoa(params.Page))
	if params.Keyword != "" {
		q.Set("keyword", params.Keyword)
	}
	if params.Force {
		q.Set("force", "1")
	}

	var result DiscoverResult
	if err := c.do(ctx, http.MethodGet, "/api/discover", q, nil, &result); err != nil {
		return DiscoverResult{}, err
	}
	return result, nil
}

func (c *Client) UpdateSettings(ctx context.Context, update SettingsUpdate) error {
	return c.do(ctx, http.MethodPost, "/api/settings", nil, update, nil)
}

func (c *Client) MarkSeen(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/mark-seen", nil, nil, nil)
}

// do performs one request and normalizes every outcome into the gateway
// contract: 2xx decodes into out (empty or unparsable bodies count as an
// empty payload), non-2xx and network failures become a *RequestError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: fmt.Sprintf("%s %s: %v", method, path, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &RequestError{Message: fmt.Sprintf("read %s response: %v", path, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// An unparsable success body counts as an empty payload.
		return nil
	}
	return nil
}

// serverMessage extracts the error text from a failure body, preferring
// "error" over "message". Empty when the body has neither.
func serverMessage(data []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
