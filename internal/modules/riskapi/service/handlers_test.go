package service

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"perp_risk/internal/assets"
	"perp_risk/internal/models"
	appcfg "perp_risk/internal/modules/config"
	healthsvc "perp_risk/internal/modules/health/service"
)

func newTestHandler(t *testing.T) (http.Handler, *healthsvc.State) {
	t.Helper()

	cfg := &appcfg.Config{
		DefaultHoldHours: 24,
		DefaultTolerance: "moderate",
	}
	state := healthsvc.NewState()
	svc := New(cfg, assets.Default(), state)
	return NewHandler(svc), state
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		data, err := sonic.Marshal(body)
		require.NoError(t, err)
		buf.Write(data)
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), dst))
}

func validPosition() models.PositionParams {
	return models.PositionParams{
		Symbol:     "AVAX",
		Collateral: 1000,
		Leverage:   5,
		Direction:  models.Long,
		EntryPrice: 25.50,
	}
}

func TestHandleLiquidation_OK(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/position/liquidation", validPosition())
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.LiquidationResult
	decodeInto(t, rec, &res)
	require.InDelta(t, 21.165, res.LiquidationPrice, 1e-9)
	require.InDelta(t, 17.0, res.DistancePct, 1e-9)
}

func TestHandleLiquidation_InvalidParamsRejected(t *testing.T) {
	h, _ := newTestHandler(t)

	p := validPosition()
	p.Leverage = 0
	p.Collateral = 0

	rec := doJSON(t, h, http.MethodPost, "/api/v1/position/liquidation", p)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// В отказе — весь накопленный список нарушений.
	var res models.ValidationResult
	decodeInto(t, rec, &res)
	require.False(t, res.IsValid)
	require.Len(t, res.Errors, 2)
}

func TestHandlePnL_Scenario(t *testing.T) {
	h, state := newTestHandler(t)

	req := pnlRequest{PositionParams: validPosition(), CurrentPrice: 28.05}
	rec := doJSON(t, h, http.MethodPost, "/api/v1/position/pnl", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.PnLResult
	decodeInto(t, rec, &res)
	require.InDelta(t, 500.0, res.PnL, 1e-9)
	require.InDelta(t, 50.0, res.ROI, 1e-9)

	require.Positive(t, state.CalcCount())
	require.False(t, state.LastCalc().IsZero())
}

func TestHandlePnL_BadCurrentPrice(t *testing.T) {
	h, _ := newTestHandler(t)

	req := pnlRequest{PositionParams: validPosition(), CurrentPrice: 0}
	rec := doJSON(t, h, http.MethodPost, "/api/v1/position/pnl", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleFees_DefaultAndExplicitHours(t *testing.T) {
	h, _ := newTestHandler(t)

	// Без hours берётся горизонт из конфига (24ч).
	rec := doJSON(t, h, http.MethodPost, "/api/v1/position/fees", feesRequest{PositionParams: validPosition()})
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.FeeResult
	decodeInto(t, rec, &res)
	require.InDelta(t, 24.5, res.Total, 1e-9)

	one := 1.0
	rec = doJSON(t, h, http.MethodPost, "/api/v1/position/fees", feesRequest{PositionParams: validPosition(), Hours: &one})
	require.Equal(t, http.StatusOK, rec.Code)

	decodeInto(t, rec, &res)
	require.InDelta(t, 1.5, res.Total, 1e-9)
}

func TestHandleRiskReward_StopAtEntryRejected(t *testing.T) {
	h, _ := newTestHandler(t)

	req := riskRewardRequest{PositionParams: validPosition(), StopLoss: 25.50, TakeProfit: 30}
	rec := doJSON(t, h, http.MethodPost, "/api/v1/position/risk-reward", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var res errorResponse
	decodeInto(t, rec, &res)
	require.Contains(t, res.Error, "stop loss")
}

func TestHandleSafeLeverage_DefaultsFromRegistryAndConfig(t *testing.T) {
	h, _ := newTestHandler(t)

	// Волатильность из справочника (AVAX 0.85), профиль из конфига (moderate).
	rec := doJSON(t, h, http.MethodPost, "/api/v1/leverage/safe", safeLeverageRequest{Symbol: "AVAX"})
	require.Equal(t, http.StatusOK, rec.Code)

	var res safeLeverageResponse
	decodeInto(t, rec, &res)
	require.Equal(t, 12.0, res.RecommendedLeverage)
	require.Equal(t, 0.85, res.Volatility)
	require.Equal(t, "moderate", res.Tolerance)
}

func TestHandleSafeLeverage_UnknownAsset(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/leverage/safe", safeLeverageRequest{Symbol: "DOGE"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleValidate_Always200(t *testing.T) {
	h, _ := newTestHandler(t)

	p := validPosition()
	p.Leverage = 60

	rec := doJSON(t, h, http.MethodPost, "/api/v1/position/validate", p)
	require.Equal(t, http.StatusOK, rec.Code)

	var res models.ValidationResult
	decodeInto(t, rec, &res)
	require.False(t, res.IsValid)
	require.NotEmpty(t, res.Errors)
}

func TestHandleAssets(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/assets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res []models.AssetConfig
	decodeInto(t, rec, &res)
	require.Len(t, res, 3)
	require.Equal(t, "AVAX", res[0].Symbol)
}

func TestDecode_MalformedBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/position/validate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
