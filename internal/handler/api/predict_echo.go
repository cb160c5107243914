package api

import (
	"errors"

	"MemePulse/internal/domain/models"
	"MemePulse/internal/usecase"
	xhttp "MemePulse/pkg/http"
	xlogger "MemePulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictEchoHandler implements Echo-based HTTP handlers for the prediction
// API.
type PredictEchoHandler struct {
	logger    *xlogger.Logger
	pred      *usecase.Predictor
	chainID   string
	staticDir string
}

func NewPredictEchoHandler(logger *xlogger.Logger, pred *usecase.Predictor, chainID, staticDir string) *PredictEchoHandler {
	return &PredictEchoHandler{logger: logger, pred: pred, chainID: chainID, staticDir: staticDir}
}

func (h *PredictEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("", h.Home)
	g.GET("/predict", h.Predict)
	g.GET("/latest-tokens", h.LatestTokens)
	g.GET("/history", h.History)
	g.GET("/token-info", h.TokenInfo)

	if h.staticDir != "" {
		e.Static("/", h.staticDir)
	}
}

func (h *PredictEchoHandler) Home(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"message": "Welcome to MemePulse, live memecoin trend predictions!",
	})
}

func (h *PredictEchoHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	pred, err := h.pred.Predict(c.Request().Context(), req.Symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrTokenNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("token '%s' not found on %s", req.Symbol, h.chainID))
		}
		h.logger.Error("predict usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, pred)
}

func (h *PredictEchoHandler) TokenInfo(c echo.Context) error {
	req := &models.TokenInfoRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	snap, err := h.pred.TokenInfo(c.Request().Context(), req.Symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrTokenNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("token '%s' not found on %s", req.Symbol, h.chainID))
		}
		h.logger.Error("token-info usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, snap)
}

func (h *PredictEchoHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	// degraded results are still 200s with empty series
	history := h.pred.History(c.Request().Context(), req.Symbol, req.Interval)
	return xhttp.SuccessResponse(c, history)
}

func (h *PredictEchoHandler) LatestTokens(c echo.Context) error {
	tokens := h.pred.LatestTokens(c.Request().Context())
	return xhttp.SuccessResponse(c, map[string][]models.TokenSummary{
		"memecoins": tokens,
	})
}
