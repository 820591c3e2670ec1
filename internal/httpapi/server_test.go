package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Simplici0/clt/internal/payroll"
)

type testEnvelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *apiError       `json:"error"`
	RequestID string          `json:"requestId"`
}

func newTestServer(token string) http.Handler {
	return New(payroll.New(payroll.DefaultSchedule()), zap.NewNop(), token).Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env testEnvelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealthz(t *testing.T) {
	rec, _ := do(t, newTestServer(""), http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestListOperations(t *testing.T) {
	rec, env := do(t, newTestServer(""), http.MethodGet, "/api/v1/operations", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var ops []operationView
	require.NoError(t, json.Unmarshal(env.Data, &ops))
	require.Len(t, ops, len(payroll.Operations()))
	assert.Equal(t, "rescisao", ops[0].Name)
	assert.Equal(t, []payroll.Param{payroll.ParamMonthsWorked}, ops[0].Params)
	assert.Equal(t, []payroll.Param{}, ops[1].Params)
}

func TestCalculateInstallments(t *testing.T) {
	body := `{"record":{"grossSalary":2000,"dependents":1},"args":{"monthsWorked":12}}`
	rec, env := do(t, newTestServer(""), http.MethodPost, "/api/v1/calculations/parcelas13", body,
		map[string]string{"X-Request-ID": "req-123"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", env.RequestID)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	var resp calculationResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "parcelas13", resp.Operation)
	assert.Equal(t, "2023", resp.Schedule)
	require.Len(t, resp.Figures, 2)
	assert.InDelta(t, 1000.00, resp.Figures[0].Amount, 1e-9)
	assert.Equal(t, "R$ 1000.00", resp.Figures[0].Display)
	assert.InDelta(t, 839.80, resp.Figures[1].Amount, 1e-9)
	assert.Equal(t, "R$ 839.80", resp.Figures[1].Display)
}

func TestCalculateNetPay(t *testing.T) {
	body := `{"record":{"grossSalary":3000,"dependents":1,"transportAllowance":100,"mealAllowance":200}}`
	rec, env := do(t, newTestServer(""), http.MethodPost, "/api/v1/calculations/liquido", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp calculationResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.Figures, 3)
	assert.Equal(t, "netPay", resp.Figures[0].Key)
	assert.Equal(t, "R$ 2388.69", resp.Figures[0].Display)
}

func TestCalculateUnknownOperation(t *testing.T) {
	rec, env := do(t, newTestServer(""), http.MethodPost, "/api/v1/calculations/bonus", `{}`, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "unknown_operation", env.Error.Code)
}

func TestCalculateRejectsInvalidBody(t *testing.T) {
	h := newTestServer("")

	for _, body := range []string{
		`{"record":{"grossSalary":"abc"}}`,
		`{"record":{"grossSalary":1000,"bonus":3}}`,
		`not json`,
	} {
		rec, env := do(t, h, http.MethodPost, "/api/v1/calculations/inss", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.NotNil(t, env.Error, body)
		assert.Equal(t, "invalid_body", env.Error.Code, body)
	}
}

func TestBearerToken(t *testing.T) {
	h := newTestServer("s3cret")
	body := `{"record":{"grossSalary":1500}}`

	rec, env := do(t, h, http.MethodPost, "/api/v1/calculations/inss", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "unauthorized", env.Error.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/calculations/inss", body, map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = do(t, h, http.MethodPost, "/api/v1/calculations/inss", body, map[string]string{"Authorization": "Bearer s3cret"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp calculationResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.InDelta(t, 115.2, resp.Figures[0].Amount, 1e-9)

	rec, _ = do(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "health check stays public")
}

func TestCalculateRejectsNegativeCounts(t *testing.T) {
	h := newTestServer("")

	cases := map[string]string{
		"inss":       `{"record":{"grossSalary":5000,"dependents":-5}}`,
		"irrf":       `{"record":{"grossSalary":5000,"dependents":-1}}`,
		"contrato":   `{"record":{"grossSalary":3000},"args":{"monthsWorked":-3}}`,
		"salario13":  `{"record":{"grossSalary":3000},"args":{"monthsWorked":-1}}`,
		"parcelas13": `{"record":{"grossSalary":3000},"args":{"monthsWorked":-12}}`,
	}
	for name, body := range cases {
		rec, env := do(t, h, http.MethodPost, "/api/v1/calculations/"+name, body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		require.NotNil(t, env.Error, name)
		assert.Equal(t, "invalid_input", env.Error.Code, name)
	}
}

func TestCalculateSeveranceAcceptsNegativeMonths(t *testing.T) {
	body := `{"record":{"grossSalary":3000,"dependents":1,"transportAllowance":100,"mealAllowance":200},"args":{"monthsWorked":-3}}`
	rec, env := do(t, newTestServer(""), http.MethodPost, "/api/v1/calculations/rescisao", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp calculationResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.Figures, 1)
	assert.Equal(t, "R$ 2863.03", resp.Figures[0].Display)
}

func TestListenAndServeWarnsWithoutToken(t *testing.T) {
	for token, warnings := range map[string]int{"": 1, "s3cret": 0} {
		core, logs := observer.New(zapcore.WarnLevel)
		srv := New(payroll.New(payroll.DefaultSchedule()), zap.New(core), token)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, srv.ListenAndServe(ctx, "127.0.0.1:0"))

		assert.Equal(t, warnings, logs.FilterMessageSnippet("CLT_API_TOKEN").Len(), "token %q", token)
	}
}
