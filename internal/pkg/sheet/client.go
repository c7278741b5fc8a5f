package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Response is the envelope every sheet action answers with.
type Response struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// Read and write action names understood by the sheet endpoint.
const (
	ActionGetAbsensiToday = "getAbsensiToday"
	ActionGetAllLaporan   = "getAllLaporan"
	ActionGetSchedule     = "getSchedule"
	ActionGetStatistics   = "getStatistics"
	ActionGetPelanggaran  = "getPelanggaran"

	ActionAbsensi        = "absensi"
	ActionCreateLaporan  = "createLaporan"
	ActionUpdateJadwal   = "updateJadwal"
	ActionAdminLogin     = "adminLogin"
	ActionAddPelanggaran = "addPelanggaran"
)

// ErrRemoteRejected is returned when the endpoint answered but reported
// success=false.
var ErrRemoteRejected = errors.New("remote endpoint rejected the request")

// API is the surface the sync engine and services talk to. Fetch is a
// real read; Post is a blind write: a nil error means the request left
// this process without a transport error, and nothing more.
type API interface {
	Fetch(ctx context.Context, action string, params map[string]string) (json.RawMessage, error)
	Post(ctx context.Context, action string, fields map[string]string) error
	Verify(ctx context.Context, action string)
}

// Client talks to a script-runner spreadsheet endpoint. Reads use the
// endpoint's callback-padding convention (the response body is a script
// invoking the named callback with the JSON envelope); writes are
// fire-and-forget POSTs whose response body carries no usable signal.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch issues a read. A per-call callback identifier is generated, sent
// as the callback query parameter, and the padding it produces is
// stripped from the response body before decoding. Timeout and transport
// failure are indistinguishable to callers.
func (c *Client) Fetch(ctx context.Context, action string, params map[string]string) (json.RawMessage, error) {
	callback := fmt.Sprintf("jsonp_callback_%s", strings.ReplaceAll(uuid.NewString(), "-", ""))

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet URL: %w", err)
	}
	q := u.Query()
	q.Set("action", action)
	q.Set("callback", callback)
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet fetch %s failed: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("sheet fetch %s read failed: %w", action, err)
	}

	envelope, err := unwrapPadding(string(body), callback)
	if err != nil {
		return nil, fmt.Errorf("sheet fetch %s: %w", action, err)
	}

	var r Response
	if err := json.Unmarshal([]byte(envelope), &r); err != nil {
		return nil, fmt.Errorf("sheet fetch %s: malformed envelope: %w", action, err)
	}
	if !r.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemoteRejected, r.Message)
	}
	return r.Data, nil
}

// unwrapPadding strips `callback(...)` (with optional trailing
// semicolon) and returns the inner JSON.
func unwrapPadding(body, callback string) (string, error) {
	s := strings.TrimSpace(body)
	s = strings.TrimSuffix(s, ";")
	prefix := callback + "("
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ")") {
		return "", fmt.Errorf("response is not %s padding", callback)
	}
	return s[len(prefix) : len(s)-1], nil
}

// Post issues a blind write. The response body is unreadable by design
// on the original transport, so it is drained and discarded here too:
// a nil return means "submitted", never "confirmed". Callers that need
// durability must follow up with Verify or a reconciling read.
func (c *Client) Post(ctx context.Context, action string, fields map[string]string) error {
	form := url.Values{}
	form.Set("action", action)
	form.Set("timestamp", time.Now().Format(time.RFC3339))
	for k, v := range fields {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sheet post %s failed: %w", action, err)
	}
	defer resp.Body.Close()

	// The body carries no readable signal on the original transport;
	// drain it so the connection can be reused and move on.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
	return nil
}

// Verify runs a best-effort read to raise confidence that a prior blind
// POST took effect. Failures are logged, never escalated.
func (c *Client) Verify(ctx context.Context, action string) {
	readAction := ""
	switch action {
	case ActionAbsensi:
		readAction = ActionGetAbsensiToday
	case ActionCreateLaporan:
		readAction = ActionGetAllLaporan
	case ActionUpdateJadwal:
		readAction = ActionGetSchedule
	case ActionAddPelanggaran:
		readAction = ActionGetPelanggaran
	default:
		slog.Debug("No verification read for action, assuming success", "action", action)
		return
	}

	if _, err := c.Fetch(ctx, readAction, nil); err != nil {
		slog.Warn("Could not verify blind write", "action", action, "error", err)
	}
}
