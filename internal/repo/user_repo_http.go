package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-gin-user-table/internal/domain"
)

// HTTPSource reads the list from a remote POST /api/v1/users/list endpoint
// that answers with the {code, msg, data} envelope.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{URL: url, Client: &http.Client{Timeout: timeout}}
}

type listEnvelope struct {
	Code int           `json:"code"`
	Msg  string        `json:"msg"`
	Data []domain.User `json:"data"`
}

func (s *HTTPSource) ListUsers(ctx context.Context) ([]domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, http.NoBody)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, res.StatusCode)
	}
	var env listEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrFetchFailed, err)
	}
	if env.Code != 0 {
		return nil, fmt.Errorf("%w: code %d: %s", ErrFetchFailed, env.Code, env.Msg)
	}
	return env.Data, nil
}
