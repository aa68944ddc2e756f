package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"adfleet/internal/core/port"
)

const maxResponseSize = 1 << 20

// flexID accepts identifiers encoded either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type createdEntity struct {
	ID   flexID `json:"id"`
	Data *struct {
		ID flexID `json:"id"`
	} `json:"data"`
}

type adAccount struct {
	ID            flexID `json:"id"`
	Name          string `json:"name"`
	AccountStatus *int   `json:"account_status"`
	Status        string `json:"status"`
}

type accountsEnvelope struct {
	Data          []adAccount `json:"data"`
	Elements      []adAccount `json:"elements"`
	ResourceNames []string    `json:"resourceNames"`
}

func (e accountsEnvelope) accounts() []adAccount {
	out := make([]adAccount, 0, len(e.Data)+len(e.Elements)+len(e.ResourceNames))
	out = append(out, e.Data...)
	out = append(out, e.Elements...)
	for _, rn := range e.ResourceNames {
		id := rn[strings.LastIndex(rn, "/")+1:]
		out = append(out, adAccount{ID: flexID(id), Name: rn})
	}
	return out
}

// do sends a JSON request authorised with token. Transport failures and 5xx
// responses are reported as ErrPlatformUnavailable, other 4xx responses as
// ErrRemoteRejected.
func (a *RESTAdapter) do(ctx context.Context, method, rawURL, token string, payload any) ([]byte, http.Header, error) {
	target, err := a.authorize(rawURL, token)
	if err != nil {
		return nil, nil, err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.profile.TokenParam == "" && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return nil, nil, fmt.Errorf("%w: %v", port.ErrPlatformTimeout, err)
		case ctx.Err() != nil:
			return nil, nil, ctx.Err()
		}
		return nil, nil, fmt.Errorf("%w: %v", port.ErrPlatformUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read response: %v", port.ErrPlatformUnavailable, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, nil, fmt.Errorf("%w: HTTP %d", port.ErrPlatformUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, nil, fmt.Errorf("%w: HTTP %d: %s", port.ErrRemoteRejected, resp.StatusCode, snippet(respBody))
	}
	return respBody, resp.Header, nil
}

func (a *RESTAdapter) authorize(rawURL, token string) (string, error) {
	if a.profile.TokenParam == "" || token == "" {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set(a.profile.TokenParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// create posts payload and returns the id of the created entity.
func (a *RESTAdapter) create(ctx context.Context, rawURL, token string, payload any) (string, error) {
	body, header, err := a.do(ctx, http.MethodPost, rawURL, token, payload)
	if err != nil {
		return "", err
	}

	var created createdEntity
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &created); err != nil {
			return "", fmt.Errorf("%w: decode response: %v", port.ErrRemoteRejected, err)
		}
	}
	id := string(created.ID)
	if id == "" && created.Data != nil {
		id = string(created.Data.ID)
	}
	if id == "" {
		id = header.Get("X-Restli-Id")
	}
	if id == "" {
		return "", fmt.Errorf("%w: response carries no id", port.ErrRemoteRejected)
	}
	return id, nil
}

func snippet(b []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(b))
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
