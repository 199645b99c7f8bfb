package notionimpl

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/s2hstudio/insta-widget-backend/pkg/config"
	apperrors "github.com/s2hstudio/insta-widget-backend/pkg/errors"
	"github.com/s2hstudio/insta-widget-backend/pkg/logger"
)

func newTestClient(baseURL string) *NotionImpl {
	cfg := &config.Config{}
	cfg.Notion.Secret = "secret-token"
	cfg.Notion.Version = "2022-06-28"
	cfg.Notion.BaseURL = baseURL

	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
}

func TestQueryDatabase_RequestShape(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &gotBody); err != nil {
			t.Errorf("query body is not JSON: %v", err)
		}
		w.Write([]byte(`{"results": []}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)

	pages, err := client.QueryDatabase(context.Background(), "db-id")
	if err != nil {
		t.Fatalf("QueryDatabase returned error: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected no pages, got %d", len(pages))
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if size, ok := gotBody["page_size"].(float64); !ok || int(size) != pageSize {
		t.Errorf("page_size = %v, want %d", gotBody["page_size"], pageSize)
	}

	sorts, ok := gotBody["sorts"].([]any)
	if !ok || len(sorts) != 1 {
		t.Fatalf("sorts = %v, want one entry", gotBody["sorts"])
	}
	sort, _ := sorts[0].(map[string]any)
	if sort["timestamp"] != "created_time" || sort["direction"] != "descending" {
		t.Errorf("sort = %v, want created_time descending", sort)
	}
}

func TestQueryDatabase_NonSuccessStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"object":"error","status":401,"message":"API token is invalid"}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)

	_, err := client.QueryDatabase(context.Background(), "db-id")
	if !apperrors.IsUpstreamQuery(err) {
		t.Fatalf("expected ErrUpstreamQuery, got %v", err)
	}
	if detail := apperrors.GetDetail(err); !strings.Contains(detail, "401") {
		t.Errorf("detail should carry the upstream status, got %q", detail)
	}
}

func TestQueryDatabase_OversizedResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": ["`))
		w.Write(bytes.Repeat([]byte("a"), maxResponseBytes))
		w.Write([]byte(`"]}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream.URL)

	_, err := client.QueryDatabase(context.Background(), "db-id")
	if !apperrors.IsUpstreamQuery(err) {
		t.Fatalf("expected ErrUpstreamQuery, got %v", err)
	}
	if detail := apperrors.GetDetail(err); !strings.Contains(detail, "exceeds") {
		t.Errorf("detail should name the size cap, got %q", detail)
	}
}

func TestQueryDatabase_TransportError(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")

	_, err := client.QueryDatabase(context.Background(), "db-id")
	if !apperrors.IsUpstreamQuery(err) {
		t.Fatalf("expected ErrUpstreamQuery, got %v", err)
	}
}
