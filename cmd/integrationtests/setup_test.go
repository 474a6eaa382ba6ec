package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	bidding "lot-auction/internal/biddingService"
	model "lot-auction/internal/models"
	"lot-auction/internal/notify"
	"lot-auction/internal/persistence"
	"lot-auction/internal/repository"
	"lot-auction/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testAuction bundles a router with the store and notifier behind it
type testAuction struct {
	router   *gin.Engine
	store    *persistence.MemoryStore
	recorder *notify.Recorder
}

// SetupTestAuction boots a fresh engine on an empty in-memory store seeded with lots.
func SetupTestAuction(t *testing.T, lots ...model.Lot) *testAuction {
	t.Helper()
	return RestartTestAuction(t, persistence.NewMemoryStore(), lots...)
}

// RestartTestAuction boots a new engine over an existing store, as a process restart would.
func RestartTestAuction(t *testing.T, store *persistence.MemoryStore, lots ...model.Lot) *testAuction {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := notify.NewRecorder(256)
	service := bidding.NewBiddingService(
		repository.NewMemoryRepo(),
		repository.NewPendingTracker(),
		repository.NewRegistry(),
		store,
		recorder,
	)
	if len(lots) == 0 {
		lots = persistence.DefaultCatalog(time.Now().UTC())
	}
	require.NoError(t, service.Bootstrap(context.Background(), lots))

	return &testAuction{router: server.SetupRouter(service), store: store, recorder: recorder}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestWithHeader issues a GET carrying the given X-Request-ID
func ExecuteRequestWithHeader(t *testing.T, router *gin.Engine, url, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", url, nil)
	req.Header.Set("X-Request-ID", requestID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// register signs a participant up and fails the test on any error
func register(t *testing.T, a *testAuction, participantID string) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, a.router, "POST", "/participants", map[string]string{
		"participant_id": participantID,
		"contact":        "+38050" + participantID,
	})
	require.Equal(t, 201, w.Code)
}

// openIntent starts a bid on lotID and returns the quoted minimum
func openIntent(t *testing.T, a *testAuction, participantID, lotID string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, a.router, "POST", "/lots/"+lotID+"/intents", map[string]string{
		"participant_id": participantID,
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	return resp["data"].(map[string]any)["minimum_required"].(string)
}

// submit sends raw amount text for a participant
func submit(t *testing.T, a *testAuction, participantID, text string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return ExecuteRequestAndParse(t, a.router, "POST", "/participants/"+participantID+"/amount", map[string]string{
		"text": text,
	})
}
