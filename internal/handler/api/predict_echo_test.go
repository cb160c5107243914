package api

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"MemePulse/internal/domain/models"
	domsvc "MemePulse/internal/domain/service"
	"MemePulse/internal/services/trend"
	"MemePulse/internal/usecase"
	"MemePulse/pkg/cache"
	xlogger "MemePulse/pkg/logger"
)

type fakeSource struct {
	pairs     []models.PairRecord
	pairsErr  error
	chain     []models.PairRecord
	chainErr  error
	points    []models.PricePoint
	pointsErr error
}

func (f *fakeSource) SearchPairs(_ context.Context, _ string) ([]models.PairRecord, error) {
	return f.pairs, f.pairsErr
}

func (f *fakeSource) ChainPairs(_ context.Context, _ string) ([]models.PairRecord, error) {
	return f.chain, f.chainErr
}

func (f *fakeSource) ChartPoints(_ context.Context, _, _, _ string) ([]models.PricePoint, error) {
	return f.points, f.pointsErr
}

type stubModel struct {
	idx   int
	probs []float64
}

func (s stubModel) Predict(_ []float64) int            { return s.idx }
func (s stubModel) PredictProba(_ []float64) []float64 { return s.probs }

type noopMetrics struct{}

func (noopMetrics) RecordPrediction(string)         {}
func (noopMetrics) RecordError(string)              {}
func (noopMetrics) RecordLastPrice(string, float64) {}
func (noopMetrics) RecordLatency(string, float64)   {}

func f64(v float64) *float64 { return &v }

func bonkPair() models.PairRecord {
	var p models.PairRecord
	p.ChainID = "solana"
	p.BaseToken.Symbol = "BONK"
	p.BaseToken.Name = "Bonk"
	p.PriceUsd = "0.000002"
	p.Volume.H24 = f64(50000)
	p.Liquidity.Usd = f64(10000)
	return p
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, src *fakeSource, m domsvc.TrendModel) *echo.Echo {
	t.Helper()

	logger, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	mc := cache.NewMemoryCache(cache.WithMaxSize(16), cache.WithCleanupInterval(time.Hour))
	t.Cleanup(func() { _ = mc.Close() })

	pred := usecase.NewPredictor(
		src,
		trend.NewClassifier(m),
		trend.NewExtrapolator(rand.NewSource(1)),
		mc,
		noopMetrics{},
		logger,
		"solana",
		"5m",
		time.Minute,
	)

	e := echo.New()
	NewPredictEchoHandler(logger, pred, "solana", "").RegisterRoutes(e)
	return e
}

func doGet(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return rec, env
}

func TestHome(t *testing.T) {
	e := newTestServer(t, &fakeSource{}, nil)

	_, env := doGet(t, e, "/api")
	if env.Status != http.StatusOK {
		t.Fatalf("expected status 200 in envelope, got %d", env.Status)
	}

	var data map[string]string
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data["message"] != "Welcome to MemePulse, live memecoin trend predictions!" {
		t.Fatalf("unexpected welcome message %q", data["message"])
	}
}

func TestPredictEndpoint(t *testing.T) {
	src := &fakeSource{pairs: []models.PairRecord{bonkPair()}}
	e := newTestServer(t, src, stubModel{idx: 2, probs: []float64{0.1, 0.09, 0.81}})

	_, env := doGet(t, e, "/api/predict?symbol=BONK")
	if env.Status != http.StatusOK {
		t.Fatalf("expected status 200 in envelope, got %d", env.Status)
	}

	var pred models.Prediction
	if err := json.Unmarshal(env.Data, &pred); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if pred.Symbol != "BONK" || pred.Prediction != models.TrendUp || pred.Confidence != 0.81 {
		t.Fatalf("unexpected prediction %+v", pred)
	}
}

func TestPredictEndpointMissingSymbol(t *testing.T) {
	e := newTestServer(t, &fakeSource{}, nil)

	_, env := doGet(t, e, "/api/predict")
	if env.Status != http.StatusBadRequest {
		t.Fatalf("expected status 400 in envelope, got %d", env.Status)
	}
}

func TestPredictEndpointUnknownToken(t *testing.T) {
	e := newTestServer(t, &fakeSource{pairsErr: errors.New("upstream down")}, nil)

	_, env := doGet(t, e, "/api/predict?symbol=NOPE")
	if env.Status != http.StatusNotFound {
		t.Fatalf("expected status 404 in envelope, got %d", env.Status)
	}
}

func TestTokenInfoEndpoint(t *testing.T) {
	src := &fakeSource{pairs: []models.PairRecord{bonkPair()}}
	e := newTestServer(t, src, nil)

	_, env := doGet(t, e, "/api/token-info?symbol=BONK")
	if env.Status != http.StatusOK {
		t.Fatalf("expected status 200 in envelope, got %d", env.Status)
	}

	var snap models.MarketSnapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if snap.Symbol != "BONK" || snap.Volume24h != 50000 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestHistoryEndpointAlwaysSucceeds(t *testing.T) {
	e := newTestServer(t, &fakeSource{pointsErr: errors.New("upstream down")}, nil)

	_, env := doGet(t, e, "/api/history?symbol=BONK")
	if env.Status != http.StatusOK {
		t.Fatalf("history must degrade to empty series, got status %d", env.Status)
	}

	var h models.PriceHistory
	if err := json.Unmarshal(env.Data, &h); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(h.History) != 0 || len(h.Future) != 0 {
		t.Fatalf("expected empty series, got %+v", h)
	}
}

func TestHistoryEndpointRejectsBadInterval(t *testing.T) {
	e := newTestServer(t, &fakeSource{}, nil)

	_, env := doGet(t, e, "/api/history?symbol=BONK&interval=2h")
	if env.Status != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unsupported interval, got %d", env.Status)
	}
}

func TestLatestTokensEndpointFallback(t *testing.T) {
	e := newTestServer(t, &fakeSource{chainErr: errors.New("upstream down")}, nil)

	_, env := doGet(t, e, "/api/latest-tokens")
	if env.Status != http.StatusOK {
		t.Fatalf("expected status 200 in envelope, got %d", env.Status)
	}

	var data map[string][]models.TokenSummary
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	coins := data["memecoins"]
	if len(coins) == 0 || coins[0].Symbol != "$TROLL" {
		t.Fatalf("expected static fallback listing, got %+v", coins)
	}
}
