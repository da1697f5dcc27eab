package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/jobfeed/internal/network"
)

const maxFeedBytes = 32 << 20

var ErrNotArray = errors.New("feed is not a JSON array")

// StatusError is returned for non-2xx feed responses.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("feed %s: http %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("feed %s: http %d: %s", e.URL, e.StatusCode, e.Body)
}

// HTTPSource fetches the whole feed with a single GET.
type HTTPSource struct {
	client network.Doer
	url    string
}

func NewHTTPSource(client network.Doer, url string) *HTTPSource {
	return &HTTPSource{client: client, url: url}
}

func (s *HTTPSource) URL() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]Row, error) {
	if strings.TrimSpace(s.url) == "" {
		return nil, errors.New("feed url is required")
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxFeedBytes)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(body, 512))
		return nil, &StatusError{
			URL:        s.url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	return DecodeRows(body)
}

// DecodeRows reads a JSON array of row objects. Elements that are not
// objects become empty rows so row positions stay stable.
func DecodeRows(r io.Reader) ([]Row, error) {
	var decoded any
	if err := json.NewDecoder(r).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	items, ok := decoded.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			rows = append(rows, Row{})
			continue
		}
		rows = append(rows, Row(object))
	}
	return rows, nil
}
