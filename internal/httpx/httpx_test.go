package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func decodeReq(t *testing.T, body, contentType string) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	var out payload
	return DecodeJSONRequest(req, &out)
}

func TestDecodeJSONRequest(t *testing.T) {
	if err := decodeReq(t, `{"name":"Ana"}`, "application/json"); err != nil {
		t.Fatalf("valid request: %v", err)
	}
	if err := decodeReq(t, `{"name":"Ana"}`, "application/json; charset=utf-8"); err != nil {
		t.Fatalf("charset parameter should be accepted: %v", err)
	}
	if err := decodeReq(t, `{"name":"Ana"}`, "text/plain"); !errors.Is(err, ErrNotJSON) {
		t.Fatalf("wrong content type: got %v, want ErrNotJSON", err)
	}
	if err := decodeReq(t, `{"name":"Ana"}`, ""); !errors.Is(err, ErrNotJSON) {
		t.Fatalf("missing content type: got %v, want ErrNotJSON", err)
	}
	if err := decodeReq(t, "", "application/json"); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("empty body: got %v, want ErrEmptyBody", err)
	}
	if err := decodeReq(t, "  \n ", "application/json"); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("whitespace body: got %v, want ErrEmptyBody", err)
	}
	if err := decodeReq(t, `{"name":"Ana","extra":1}`, "application/json"); err == nil {
		t.Fatal("unknown field should be rejected")
	}
	if err := decodeReq(t, `{"name":"Ana"}{"name":"B"}`, "application/json"); err == nil {
		t.Fatal("trailing object should be rejected")
	}
}

func TestParseLimitOffset(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{}, 20, 100)
	if err != nil || limit != 20 || offset != 0 {
		t.Fatalf("defaults: limit=%d offset=%d err=%v", limit, offset, err)
	}

	limit, offset, err = ParseLimitOffset(url.Values{"limit": {"500"}, "offset": {"40"}}, 20, 100)
	if err != nil || limit != 100 || offset != 40 {
		t.Fatalf("clamped: limit=%d offset=%d err=%v", limit, offset, err)
	}

	if _, _, err := ParseLimitOffset(url.Values{"limit": {"0"}}, 20, 100); err == nil {
		t.Fatal("zero limit should be rejected")
	}
	if _, _, err := ParseLimitOffset(url.Values{"offset": {"-1"}}, 20, 100); err == nil {
		t.Fatal("negative offset should be rejected")
	}
}
