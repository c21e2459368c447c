package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"contium/internal/document/models"
	"contium/internal/leaderboard"
	"contium/internal/platform/config"
	"contium/internal/session"
	"contium/internal/verification"
	verifyhandler "contium/internal/verification/handler"
)

// AppSuite drives the assembled router the way the browser demo does.
type AppSuite struct {
	suite.Suite
	app *app
	srv *httptest.Server
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) SetupTest() {
	cfg := config.Server{
		Environment:       "dev",
		SessionSigningKey: "test-signing-key",
		SessionTTL:        time.Hour,
		SeedDemoData:      true,
		LedgerExplorerURL: "https://explorer.test/tx/",
	}
	application, err := build(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.app = application
	s.srv = httptest.NewServer(application.handler)
}

func (s *AppSuite) TearDownTest() {
	s.srv.Close()
	s.app.close()
}

func (s *AppSuite) call(method, path, token string, body any) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.srv.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.srv.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, out
}

func (s *AppSuite) login(role string) string {
	resp, body := s.call(http.MethodPost, "/session", "", map[string]string{"role": role})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))
	var sess session.Session
	s.Require().NoError(json.Unmarshal(body, &sess))
	return sess.Token
}

type documentView struct {
	ID             string        `json:"id"`
	Hash           string        `json:"hash"`
	Status         models.Status `json:"status"`
	RiskIndicator  string        `json:"riskIndicator"`
	CurrentVersion int           `json:"currentVersion"`
}

func (s *AppSuite) TestDocumentLifecycle() {
	exporter := s.login("exporter")
	authority := s.login("authority")

	invoice := map[string]any{
		"type":  "commercial-invoice",
		"title": "Commercial Invoice #FC-2024-100",
		"data": map[string]any{
			"invoiceNumber": "FC-2024-100",
			"exporter":      "Export Perú S.A.C.",
			"importer":      "Import Chile Ltda.",
			"currency":      "USD",
			"items": []map[string]any{
				{"description": "Laptop", "quantity": 10, "unitPrice": 580, "totalPrice": 5800, "hsCode": "8471.30"},
			},
			"totalValue": 5800,
		},
	}
	resp, body := s.call(http.MethodPost, "/documents", exporter, invoice)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))
	var doc documentView
	s.Require().NoError(json.Unmarshal(body, &doc))
	s.Len(doc.Hash, 64)
	s.Equal("LOW", doc.RiskIndicator)

	resp, body = s.call(http.MethodPost, "/verifications", authority, map[string]string{"documentId": doc.ID})
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	var result verifyhandler.ResultResponse
	s.Require().NoError(json.Unmarshal(body, &result))
	s.True(result.Valid)

	resp, body = s.call(http.MethodPut, "/documents/"+doc.ID+"/status", authority, map[string]string{"status": "validated"})
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	s.Require().NoError(json.Unmarshal(body, &doc))
	s.Equal(models.StatusValidated, doc.Status)

	resp, body = s.call(http.MethodPost, "/documents/"+doc.ID+"/badge", authority, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))
	resp, _ = s.call(http.MethodPost, "/documents/"+doc.ID+"/badge", authority, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, body = s.call(http.MethodGet, "/leaderboard", "", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var board leaderboard.Response
	s.Require().NoError(json.Unmarshal(body, &board))
	s.Equal("user-004", board.Entries[0].User.ID.String())
	s.Equal(4, board.Entries[0].VerificationsCount)
	var carlos leaderboard.Entry
	for _, e := range board.Entries {
		if e.User.ID.String() == "user-001" {
			carlos = e
		}
	}
	s.Equal(4, carlos.DocumentsRegistered)
	s.Equal(1, carlos.NFTBadgesCount)
}

func (s *AppSuite) TestSeededDataIsServed() {
	resp, body := s.call(http.MethodGet, "/documents?status=registered", "", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var list struct {
		Documents []documentView `json:"documents"`
		Count     int            `json:"count"`
	}
	s.Require().NoError(json.Unmarshal(body, &list))
	s.Require().Equal(1, list.Count)
	s.Equal("doc-004", list.Documents[0].ID)

	resp, body = s.call(http.MethodGet, "/documents/doc-002", "", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var doc documentView
	s.Require().NoError(json.Unmarshal(body, &doc))
	s.Equal(2, doc.CurrentVersion)
	s.Equal("HIGH", doc.RiskIndicator)
}

func (s *AppSuite) TestPermissions() {
	importer := s.login("importer")

	resp, _ := s.call(http.MethodPost, "/verifications", importer, map[string]string{"documentId": "doc-001"})
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp, _ = s.call(http.MethodPut, "/documents/doc-004/status", "", map[string]string{"status": "validated"})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.call(http.MethodGet, "/me", "forged.token.value", nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *AppSuite) TestVerificationStream() {
	authority := s.login("authority")
	req, err := http.NewRequest(http.MethodPost, s.srv.URL+"/verifications/stream", strings.NewReader(`{"documentId":"doc-003"}`))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authority)

	resp, err := s.srv.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal("application/x-ndjson", resp.Header.Get("Content-Type"))

	var events []verifyhandler.StreamEvent
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		var ev verifyhandler.StreamEvent
		s.Require().NoError(json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	s.Require().Len(events, len(verification.Steps)+2)
	last := events[len(events)-1]
	s.Require().NotNil(last.Result)
	s.True(last.Result.Valid)

	rejected, _ := s.call(http.MethodPost, "/verifications/stream", s.login("exporter"), map[string]string{"documentId": "doc-003"})
	s.Equal(http.StatusForbidden, rejected.StatusCode)

	rejected, _ = s.call(http.MethodPost, "/verifications/stream", authority, map[string]string{"documentId": "doc-missing"})
	s.Equal(http.StatusNotFound, rejected.StatusCode)
}

func (s *AppSuite) TestOperationalEndpoints() {
	resp, _ := s.call(http.MethodGet, "/health/ready", "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, body := s.call(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), "contium_http_requests_total")

	resp, body = s.call(http.MethodGet, "/reference-prices", "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), "8471.30")
}
