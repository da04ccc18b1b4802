package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"builderhub-payments/config"
	"builderhub-payments/internal/adapter/http/middleware"
	"builderhub-payments/internal/gateway"
	"builderhub-payments/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "cli-test-secret"

func newMemoryApp(t *testing.T) *app {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.Storage.Driver = "memory"
	cfg.Auth.JWTSecret = testSecret
	cfg.Auth.JWTIssuer = ""
	cfg.Auth.ServiceKey = "svc-key"
	cfg.Encryption.Key = strings.Repeat("ab", 32)

	a, err := newApp(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		a.audit.Wait()
		a.Close()
	})
	return a
}

func bearer(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + tok
}

func call(a *app, method, path, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func responseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	d, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	return d
}

func TestMemoryApp_Health(t *testing.T) {
	a := newMemoryApp(t)

	w := call(a, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"memory"`)
	assert.Contains(t, w.Body.String(), `"redis"`)
}

func TestMemoryApp_WalletFlow(t *testing.T) {
	a := newMemoryApp(t)
	auth := bearer(t, uuid.New(), "artisan")

	w := call(a, http.MethodPost, "/api/v1/wallet/recharge", auth, `{"amount":5000,"reference":"OM-1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := responseData(t, w)
	assert.Equal(t, float64(5000), first["new_balance"])
	assert.Equal(t, false, first["replayed"])

	w = call(a, http.MethodPost, "/api/v1/wallet/recharge", auth, `{"amount":5000,"reference":"OM-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	replay := responseData(t, w)
	assert.Equal(t, true, replay["replayed"])
	assert.Equal(t, float64(5000), replay["new_balance"])
	assert.Equal(t, first["transaction_id"], replay["transaction_id"])

	w = call(a, http.MethodPost, "/api/v1/wallet/debit", auth, `{"amount":6000}`)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	w = call(a, http.MethodPost, "/api/v1/wallet/debit", auth, `{"amount":1500,"description":"Boost"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3500), responseData(t, w)["new_balance"])

	w = call(a, http.MethodGet, "/api/v1/wallet", auth, "")
	require.Equal(t, http.StatusOK, w.Code)
	balance := responseData(t, w)
	assert.Equal(t, float64(3500), balance["balance"])
	assert.Equal(t, float64(5000), balance["total_recharged"])
	assert.Equal(t, float64(1500), balance["total_spent"])
}

func TestMemoryApp_ProcessPaymentWithoutCredentials(t *testing.T) {
	a := newMemoryApp(t)

	req := httptest.NewRequest(http.MethodPost, "/process-payment",
		strings.NewReader(`{"provider":"wave","amount":1000,"reference":"BH-1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderServiceKey, "svc-key")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), gateway.MsgNotConfigured)
}

func TestFeeCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"fee", "10000", "--rate", "0.05"})
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())

	var got service.FeeBreakdown
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, int64(500), got.PlatformFee)
	assert.Equal(t, int64(10500), got.TotalCharged)
}

func TestFeeCommand_InvalidAmount(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"fee", "douze"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	assert.Error(t, rootCmd.Execute())
}

func TestProvidersCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"providers"})
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())

	text := out.String()
	for _, id := range []string{"orange_money", "moov_money", "wave", "telecel_money"} {
		assert.Contains(t, text, id)
	}
	assert.Contains(t, text, "CONFIGURED")
}

func TestMigrateCommand_RequiresPostgres(t *testing.T) {
	t.Setenv("BHP_STORAGE_DRIVER", "memory")
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"migrate"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	assert.ErrorContains(t, rootCmd.Execute(), "storage.driver=postgres")
}
