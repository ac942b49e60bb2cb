package dashboardinfra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Abraxas-365/talentpool/pkg/errx"
	"github.com/Abraxas-365/talentpool/pkg/kernel"
	"github.com/Abraxas-365/talentpool/talentpool/candidate"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
	"github.com/Abraxas-365/talentpool/talentpool/shortlist"
)

// APIClient talks to the talent pool JSON API. It implements the dashboard's
// CandidateClient, ShortlistClient and IntroRequestClient ports.
//
// Error bodies are decoded back into *errx.Error, so domain codes registered
// on the server side (e.g. INTRO_REQUEST.ALREADY_REQUESTED) survive the wire
// and errx.IsCode works on this side too.
type APIClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewAPIClient creates a client for the API at baseURL, authenticating every
// request with the given bearer token.
func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewAPIClientWithHTTP is NewAPIClient with a caller-supplied *http.Client,
// for tests and custom transports.
func NewAPIClientWithHTTP(baseURL, token string, httpClient *http.Client) *APIClient {
	return &APIClient{baseURL: baseURL, token: token, http: httpClient}
}

// ListCandidates fetches the published pool and normalizes each record.
func (c *APIClient) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	var body struct {
		Candidates []candidate.Payload `json:"candidates"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/candidates", nil, &body); err != nil {
		return nil, err
	}

	out := make([]candidate.Candidate, 0, len(body.Candidates))
	for _, p := range body.Candidates {
		out = append(out, candidate.Normalize(p))
	}
	return out, nil
}

// ListShortlist returns the ids of the company's starred candidates.
func (c *APIClient) ListShortlist(ctx context.Context) ([]kernel.CandidateID, error) {
	var entries []shortlist.Entry
	if err := c.do(ctx, http.MethodGet, "/api/shortlists", nil, &entries); err != nil {
		return nil, err
	}

	ids := make([]kernel.CandidateID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.CandidateID)
	}
	return ids, nil
}

// AddToShortlist stars a candidate. Adding twice is a server-side no-op.
func (c *APIClient) AddToShortlist(ctx context.Context, id kernel.CandidateID) error {
	return c.do(ctx, http.MethodPost, "/api/shortlists", shortlist.ToggleRequest{CandidateID: id}, nil)
}

// RemoveFromShortlist unstars a candidate.
func (c *APIClient) RemoveFromShortlist(ctx context.Context, id kernel.CandidateID) error {
	return c.do(ctx, http.MethodDelete, "/api/shortlists/"+url.PathEscape(id.String()), nil, nil)
}

// ListActiveIntros returns the company's active intro requests keyed by
// candidate. Cancelled requests are dropped here; the dashboard never shows
// them.
func (c *APIClient) ListActiveIntros(ctx context.Context) (map[kernel.CandidateID]introrequest.Status, error) {
	var responses []introrequest.Response
	if err := c.do(ctx, http.MethodGet, "/api/intro-requests", nil, &responses); err != nil {
		return nil, err
	}

	active := make(map[kernel.CandidateID]introrequest.Status, len(responses))
	for _, r := range responses {
		if r.Status != introrequest.StatusCancelled {
			active[r.CandidateID] = r.Status
		}
	}
	return active, nil
}

// SubmitIntro creates an intro request and returns its server-side status.
func (c *APIClient) SubmitIntro(ctx context.Context, id kernel.CandidateID, message string) (introrequest.Status, error) {
	var created introrequest.Response
	req := introrequest.SubmitRequest{CandidateID: id, Message: message}
	if err := c.do(ctx, http.MethodPost, "/api/intro-requests", req, &created); err != nil {
		return "", err
	}
	return created.Status, nil
}

// CancelIntro withdraws the pending request for a candidate.
func (c *APIClient) CancelIntro(ctx context.Context, id kernel.CandidateID) error {
	return c.do(ctx, http.MethodDelete, "/api/intro-requests/"+url.PathEscape(id.String()), nil, nil)
}

// do performs one JSON round trip. A non-2xx response is decoded into the
// *errx.Error the server emitted; out may be nil for bodyless responses.
func (c *APIClient) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return errx.Wrap(err, "encoding request body", errx.TypeInternal)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errx.Wrap(err, "building request", errx.TypeInternal)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errx.Wrap(err, "talent pool API unreachable", errx.TypeUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errx.Wrap(err, "decoding response body", errx.TypeInternal)
	}
	return nil
}

// decodeError rebuilds the server's structured error. A body that is not in
// the expected shape degrades to a generic error carrying the status code.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var body struct {
		Code    errx.Code      `json:"code"`
		Type    errx.Type      `json:"type"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Code != "" {
		return &errx.Error{
			Code:       body.Code,
			Type:       body.Type,
			HTTPStatus: resp.StatusCode,
			Message:    body.Message,
			Details:    body.Details,
		}
	}

	return errx.Wrap(
		fmt.Errorf("unexpected status %d", resp.StatusCode),
		"talent pool API request failed",
		errx.TypeInternal,
	)
}
