package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	lastTo      string
	lastSubject string
	lastHTML    string
	err         error
}

func (m *stubMailer) Send(to, subject, html string) (string, error) {
	m.lastTo, m.lastSubject, m.lastHTML = to, subject, html
	if m.err != nil {
		return "", m.err
	}
	return "msg-123", nil
}

func setupNotificationRouter(mailer Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewService(mailer, "reservas@aerotours.mx")).RegisterRoutes(router)
	return router
}

func postJSON(router *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/send-notification", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSendNotificationSuccess(t *testing.T) {
	mailer := &stubMailer{}
	router := setupNotificationRouter(mailer)

	resp := postJSON(router, LeadPayload{
		Name:        "Ana Torres",
		Email:       "ana@example.com",
		ServiceType: "charter",
		Destination: "holbox",
		TravelDate:  "2025-03-10",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, true, payload["success"])
	require.Equal(t, "msg-123", payload["id"])

	require.Equal(t, "reservas@aerotours.mx", mailer.lastTo)
	require.Contains(t, mailer.lastSubject, "Ana Torres")
	require.Contains(t, mailer.lastHTML, "Holbox")
}

func TestSendNotificationInvalidPayload(t *testing.T) {
	router := setupNotificationRouter(&stubMailer{})

	req := httptest.NewRequest(http.MethodPost, "/api/send-notification", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "invalid payload", payload["error"])
}

func TestSendNotificationProviderFailure(t *testing.T) {
	router := setupNotificationRouter(&stubMailer{err: errors.New("smtp down")})

	resp := postJSON(router, LeadPayload{Name: "Ana", Email: "ana@example.com"})
	require.Equal(t, http.StatusBadGateway, resp.Code)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "failed to send notification", payload["error"])
}
