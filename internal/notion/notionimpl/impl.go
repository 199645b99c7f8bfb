package notionimpl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/s2hstudio/insta-widget-backend/internal/notion"
	"github.com/s2hstudio/insta-widget-backend/pkg/config"
	apperrors "github.com/s2hstudio/insta-widget-backend/pkg/errors"
	"github.com/s2hstudio/insta-widget-backend/pkg/logger"
	"go.uber.org/fx"
)

// pageSize is the maximum single-page size of the query API. Databases larger
// than this are out of scope for the widget, so no pagination loop exists.
const pageSize = 100

// maxResponseBytes caps how much of an upstream body is read. One full result
// page of metadata stays far below this.
const maxResponseBytes = 4 << 20

type NotionImpl struct {
	httpClient *http.Client
	baseURL    string
	secret     string
	version    string
	logger     logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *NotionImpl {
	return &NotionImpl{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    opts.Config.Notion.BaseURL,
		secret:     opts.Config.Notion.Secret,
		version:    opts.Config.Notion.Version,
		logger:     opts.Logger.WithComponent("NotionClient"),
	}
}

var _ notion.Client = (*NotionImpl)(nil)

type querySort struct {
	Timestamp string `json:"timestamp"`
	Direction string `json:"direction"`
}

type queryRequest struct {
	Sorts    []querySort `json:"sorts"`
	PageSize int         `json:"page_size"`
}

type queryResponse struct {
	Results []notion.Page `json:"results"`
}

// QueryDatabase fetches every page of the database in one call, newest first.
// Visibility filtering happens locally in the widget service, so the query
// itself carries no filter.
func (n *NotionImpl) QueryDatabase(ctx context.Context, databaseID string) ([]notion.Page, error) {
	body, err := json.Marshal(queryRequest{
		Sorts: []querySort{
			{Timestamp: "created_time", Direction: "descending"},
		},
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode Notion query")
	}

	url := fmt.Sprintf("%s/v1/databases/%s/query", n.baseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build Notion request")
	}
	req.Header.Set("Authorization", "Bearer "+n.secret)
	req.Header.Set("Notion-Version", n.version)
	req.Header.Set("Content-Type", "application/json")

	res, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Error("Notion request failed", "database", databaseID, "error", err)
		return nil, apperrors.WrapWithDetail(apperrors.ErrUpstreamQuery, "Notion request failed", err.Error())
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes+1))
	if err != nil {
		return nil, apperrors.WrapWithDetail(apperrors.ErrUpstreamQuery, "failed to read Notion response", err.Error())
	}
	if len(raw) > maxResponseBytes {
		n.logger.Error("Notion response exceeds size cap", "database", databaseID, "cap_bytes", maxResponseBytes)
		return nil, apperrors.WrapWithDetail(
			apperrors.ErrUpstreamQuery,
			"Notion response too large",
			fmt.Sprintf("response body exceeds %d bytes", maxResponseBytes),
		)
	}

	if res.StatusCode != http.StatusOK {
		n.logger.Error("Notion returned non-success status",
			"database", databaseID,
			"status", res.StatusCode,
			"body", string(raw),
		)
		return nil, apperrors.WrapWithDetail(
			apperrors.ErrUpstreamQuery,
			"Notion returned non-success status",
			fmt.Sprintf("status %d: %s", res.StatusCode, string(raw)),
		)
	}

	var decoded queryResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, apperrors.WrapWithDetail(apperrors.ErrUpstreamQuery, "failed to decode Notion response", err.Error())
	}

	n.logger.Debug("Notion query completed", "database", databaseID, "pages", len(decoded.Results))
	return decoded.Results, nil
}
