package service

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"perp_risk/internal/models"
	"perp_risk/pkg/logger"
)

// Запросы — плоский JSON: параметры позиции + поля конкретной операции.

type pnlRequest struct {
	models.PositionParams
	CurrentPrice float64 `json:"currentPrice"`
}

type feesRequest struct {
	models.PositionParams
	Hours *float64 `json:"hours"` // nil => горизонт по умолчанию
}

type riskRewardRequest struct {
	models.PositionParams
	StopLoss   float64 `json:"stopLoss"`
	TakeProfit float64 `json:"takeProfit"`
}

type safeLeverageRequest struct {
	Symbol     string  `json:"symbol"`
	Volatility float64 `json:"volatility"` // 0 => из справочника
	Tolerance  string  `json:"tolerance"`  // пусто => дефолт конфига
}

type safeLeverageResponse struct {
	Symbol              string  `json:"symbol"`
	Volatility          float64 `json:"volatility"`
	Tolerance           string  `json:"tolerance"`
	RecommendedLeverage float64 `json:"recommendedLeverage"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler собирает публичный роутер API.
func NewHandler(s *Service) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/position/validate", instrument("validate", s.handleValidate))
	mux.HandleFunc("POST /api/v1/position/liquidation", instrument("liquidation", s.handleLiquidation))
	mux.HandleFunc("POST /api/v1/position/pnl", instrument("pnl", s.handlePnL))
	mux.HandleFunc("POST /api/v1/position/fees", instrument("fees", s.handleFees))
	mux.HandleFunc("POST /api/v1/position/risk-reward", instrument("risk_reward", s.handleRiskReward))
	mux.HandleFunc("POST /api/v1/leverage/safe", instrument("safe_leverage", s.handleSafeLeverage))
	mux.HandleFunc("GET /api/v1/assets", instrument("assets", s.handleAssets))

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// instrument: спан + тайминг + счётчик кода ответа на каждый хендлер.
func instrument(op string, h func(w http.ResponseWriter, r *http.Request) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		span := opentracing.StartSpan("riskapi." + op)
		defer span.Finish()
		r = r.WithContext(opentracing.ContextWithSpan(r.Context(), span))

		start := time.Now()
		code := h(w, r)

		RequestDuration.WithLabelValues(op).Observe(float64(time.Since(start).Microseconds()) / 1000.0)
		RequestsTotal.WithLabelValues(op, strconv.Itoa(code)).Inc()
	}
}

func (s *Service) handleValidate(w http.ResponseWriter, r *http.Request) int {
	var p models.PositionParams
	if code := decode(w, r, &p); code != 0 {
		return code
	}
	// Сам validate всегда 200: результат — структура с ошибками, не отказ.
	return writeJSON(w, http.StatusOK, s.Validate(p))
}

func (s *Service) handleLiquidation(w http.ResponseWriter, r *http.Request) int {
	var p models.PositionParams
	if code := decode(w, r, &p); code != 0 {
		return code
	}
	if code := s.rejectInvalid(w, "liquidation", p); code != 0 {
		return code
	}

	res, err := s.Liquidation(p)
	if err != nil {
		return writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}
	return writeJSON(w, http.StatusOK, res)
}

func (s *Service) handlePnL(w http.ResponseWriter, r *http.Request) int {
	var req pnlRequest
	if code := decode(w, r, &req); code != 0 {
		return code
	}
	if code := s.rejectInvalid(w, "pnl", req.PositionParams); code != 0 {
		return code
	}
	if req.CurrentPrice <= 0 {
		return writeJSON(w, http.StatusBadRequest, errorResponse{Error: "currentPrice must be positive"})
	}
	return writeJSON(w, http.StatusOK, s.PnL(req.PositionParams, req.CurrentPrice))
}

func (s *Service) handleFees(w http.ResponseWriter, r *http.Request) int {
	var req feesRequest
	if code := decode(w, r, &req); code != 0 {
		return code
	}
	if code := s.rejectInvalid(w, "fees", req.PositionParams); code != 0 {
		return code
	}
	if req.Hours != nil && *req.Hours < 0 {
		return writeJSON(w, http.StatusBadRequest, errorResponse{Error: "hours must be >= 0"})
	}
	return writeJSON(w, http.StatusOK, s.Fees(req.PositionParams, req.Hours))
}

func (s *Service) handleRiskReward(w http.ResponseWriter, r *http.Request) int {
	var req riskRewardRequest
	if code := decode(w, r, &req); code != 0 {
		return code
	}
	if code := s.rejectInvalid(w, "risk_reward", req.PositionParams); code != 0 {
		return code
	}

	res, err := s.RiskReward(req.PositionParams, req.StopLoss, req.TakeProfit)
	if err != nil {
		return writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return writeJSON(w, http.StatusOK, res)
}

func (s *Service) handleSafeLeverage(w http.ResponseWriter, r *http.Request) int {
	var req safeLeverageRequest
	if code := decode(w, r, &req); code != 0 {
		return code
	}

	rec, err := s.SafeLeverage(req.Symbol, req.Volatility, models.RiskTolerance(req.Tolerance))
	if err != nil {
		return writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	vol := req.Volatility
	if vol == 0 {
		vol, _ = s.reg.Volatility(req.Symbol)
	}
	tol := req.Tolerance
	if tol == "" {
		tol = string(s.defaultTolerance)
	}

	return writeJSON(w, http.StatusOK, safeLeverageResponse{
		Symbol:              req.Symbol,
		Volatility:          vol,
		Tolerance:           tol,
		RecommendedLeverage: rec,
	})
}

func (s *Service) handleAssets(w http.ResponseWriter, r *http.Request) int {
	return writeJSON(w, http.StatusOK, s.Assets())
}

// rejectInvalid: калькуляторы считают вход провалидированным, поэтому
// невалидные параметры заворачиваем здесь со списком всех нарушений.
func (s *Service) rejectInvalid(w http.ResponseWriter, op string, p models.PositionParams) int {
	v := s.Validate(p)
	if v.IsValid {
		return 0
	}
	ValidationFailures.WithLabelValues(op).Inc()
	return writeJSON(w, http.StatusBadRequest, v)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) int {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return writeJSON(w, http.StatusBadRequest, errorResponse{Error: "read body: " + err.Error()})
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return writeJSON(w, http.StatusBadRequest, errorResponse{Error: "decode json: " + err.Error()})
	}
	return 0
}

func writeJSON(w http.ResponseWriter, code int, v any) int {
	data, err := sonic.Marshal(v)
	if err != nil {
		logger.Error("marshal response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
	return code
}
