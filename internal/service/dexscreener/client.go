package dexscreener

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"MemePulse/internal/domain/models"
	domrepo "MemePulse/internal/domain/repository"
	xhttp "MemePulse/pkg/http"
	xlogger "MemePulse/pkg/logger"
)

// Client implements MarketDataSource backed by the DexScreener REST API.
type Client struct {
	baseURL string
	client  *xhttp.Client
	logger  *xlogger.Logger
}

// New creates a DexScreener client.
func New(baseURL string, timeout time.Duration, logger *xlogger.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		logger:  logger,
	}
}

type pairsResponse struct {
	Pairs []models.PairRecord `json:"pairs"`
}

type chartResponse struct {
	Points []chartPoint `json:"points"`
}

// chartPoint uses pointers so points missing either field can be dropped
// instead of defaulting to zero.
type chartPoint struct {
	T *int64   `json:"t"`
	C *float64 `json:"c"`
}

// SearchPairs returns raw pair records for a symbol/address query.
func (c *Client) SearchPairs(ctx context.Context, query string) ([]models.PairRecord, error) {
	var res pairsResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + "/latest/dex/search",
		QueryParams: map[string][]string{"q": {query}},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("dexscreener search %q: %w", query, err)
	}
	return res.Pairs, nil
}

// ChainPairs returns the latest pair records for an entire chain.
func (c *Client) ChainPairs(ctx context.Context, chainID string) ([]models.PairRecord, error) {
	var res pairsResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/latest/dex/tokens/" + url.PathEscape(chainID),
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("dexscreener tokens %q: %w", chainID, err)
	}
	return res.Pairs, nil
}

// ChartPoints returns the historical price series for a symbol, dropping
// points missing either field.
func (c *Client) ChartPoints(ctx context.Context, symbol, chainID, interval string) ([]models.PricePoint, error) {
	var res chartResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/latest/dex/chart/" + url.PathEscape(symbol),
		QueryParams: map[string][]string{
			"network":  {chainID},
			"interval": {interval},
		},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("dexscreener chart %q: %w", symbol, err)
	}

	points := make([]models.PricePoint, 0, len(res.Points))
	for _, p := range res.Points {
		if p.T == nil || p.C == nil {
			continue
		}
		points = append(points, models.PricePoint{Time: *p.T, Price: *p.C})
	}
	if dropped := len(res.Points) - len(points); dropped > 0 && c.logger != nil {
		c.logger.Debug("dexscreener chart points dropped",
			xlogger.String("symbol", symbol),
			xlogger.Int("dropped", dropped),
		)
	}
	return points, nil
}

var _ domrepo.MarketDataSource = (*Client)(nil)
