package feed

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	fhttp "github.com/bogdanfinn/fhttp"
)

type doerFunc func(req *fhttp.Request) (*fhttp.Response, error)

func (f doerFunc) Do(req *fhttp.Request) (*fhttp.Response, error) {
	return f(req)
}

func respond(status int, body string) doerFunc {
	return func(req *fhttp.Request) (*fhttp.Response, error) {
		return &fhttp.Response{
			StatusCode: status,
			Header:     fhttp.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    req,
		}, nil
	}
}

func TestHTTPSourceFetch(t *testing.T) {
	var gotURL string
	client := doerFunc(func(req *fhttp.Request) (*fhttp.Response, error) {
		gotURL = req.URL.String()
		return respond(200, `[{"Title":"Dev","PostedOn":"01/01/2025 10:00"}, 7, {"Company":"Acme"}]`)(req)
	})

	src := NewHTTPSource(client, "https://opensheet.example/sheet/Sheet1")
	rows, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotURL != "https://opensheet.example/sheet/Sheet1" {
		t.Fatalf("requested %q", gotURL)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0].Field("Title").Value != "Dev" {
		t.Fatalf("unexpected first row: %#v", rows[0])
	}
	if len(rows[1]) != 0 {
		t.Fatalf("non-object element should decode to an empty row, got %#v", rows[1])
	}
}

func TestHTTPSourceStatusError(t *testing.T) {
	src := NewHTTPSource(respond(503, "upstream down"), "https://opensheet.example/x")
	_, err := src.Fetch(context.Background())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Fetch() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != 503 || statusErr.Body != "upstream down" {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
}

func TestHTTPSourceTransportError(t *testing.T) {
	boom := errors.New("dial tcp: refused")
	src := NewHTTPSource(doerFunc(func(*fhttp.Request) (*fhttp.Response, error) {
		return nil, boom
	}), "https://opensheet.example/x")

	if _, err := src.Fetch(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Fetch() error = %v, want %v", err, boom)
	}
}

func TestHTTPSourceRequiresURL(t *testing.T) {
	src := NewHTTPSource(respond(200, "[]"), " ")
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatalf("Fetch() error = nil, want error")
	}
}

func TestDecodeRows(t *testing.T) {
	rows, err := DecodeRows(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("DecodeRows() error = %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("len(rows) = %d, want 0", len(rows))
	}

	if _, err := DecodeRows(strings.NewReader(`{"Title":"x"}`)); !errors.Is(err, ErrNotArray) {
		t.Fatalf("DecodeRows(object) error = %v, want ErrNotArray", err)
	}
	if _, err := DecodeRows(strings.NewReader(`null`)); !errors.Is(err, ErrNotArray) {
		t.Fatalf("DecodeRows(null) error = %v, want ErrNotArray", err)
	}
	if _, err := DecodeRows(strings.NewReader(`[{`)); err == nil {
		t.Fatalf("DecodeRows(truncated) error = nil, want error")
	}
}
