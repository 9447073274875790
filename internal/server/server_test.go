package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/service"
	"github.com/hailam/chesscore/internal/storage"
)

func newTestApp(t *testing.T) (*fiber.App, *service.MoveService) {
	t.Helper()
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	svc := service.NewMoveService(store)
	return New(svc, Config{}), svc
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	status, body := do(t, app, http.MethodGet, "/api/health", "")
	if status != http.StatusOK || !strings.Contains(string(body), `"ok"`) {
		t.Errorf("health = %d %s", status, body)
	}
}

func TestMovesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name   string
		body   string
		status int
		count  int
	}{
		{"side to move", `{"fen":"` + board.StartFEN + `"}`, http.StatusOK, 20},
		{"single knight", `{"fen":"8/8/8/8/4N3/8/8/8 w","square":"e4"}`, http.StatusOK, 8},
		{"bad fen", `{"fen":"nonsense"}`, http.StatusBadRequest, 0},
		{"empty square", `{"fen":"` + board.StartFEN + `","square":"e4"}`, http.StatusBadRequest, 0},
		{"bad json", `{"fen":`, http.StatusBadRequest, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, http.MethodPost, "/api/moves", tc.body)
			if status != tc.status {
				t.Fatalf("status = %d, want %d (%s)", status, tc.status, body)
			}
			if status != http.StatusOK {
				return
			}
			var report service.MoveReport
			if err := json.Unmarshal(body, &report); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if report.Count != tc.count {
				t.Errorf("count = %d, want %d", report.Count, tc.count)
			}
		})
	}
}

func TestSnapshotEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/snapshots", `{"fen":"N7/8/8/8/8/8/8/8 w","label":"corner"}`)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d (%s)", status, body)
	}
	var snap storage.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}

	status, body = do(t, app, http.MethodGet, "/api/snapshots/"+snap.ID+"/moves?square=a8", "")
	if status != http.StatusOK {
		t.Fatalf("moves status = %d (%s)", status, body)
	}
	var report service.MoveReport
	if err := json.Unmarshal(body, &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := map[string]bool{}
	for _, m := range report.Moves {
		got[m.To] = true
	}
	if len(got) != 2 || !got["c7"] || !got["b6"] {
		t.Errorf("destinations = %v, want c7 and b6", got)
	}

	status, _ = do(t, app, http.MethodGet, "/api/snapshots", "")
	if status != http.StatusOK {
		t.Errorf("list status = %d", status)
	}

	status, _ = do(t, app, http.MethodDelete, "/api/snapshots/"+snap.ID, "")
	if status != http.StatusNoContent {
		t.Errorf("delete status = %d", status)
	}
	status, _ = do(t, app, http.MethodGet, "/api/snapshots/"+snap.ID, "")
	if status != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", status)
	}
	status, _ = do(t, app, http.MethodGet, "/api/snapshots/not-a-uuid", "")
	if status != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", status)
	}
}

func TestVerifyEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	status, body := do(t, app, http.MethodPost, "/api/verify", `{"fen":"`+board.StartFEN+`"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d (%s)", status, body)
	}
	var report service.VerifyReport
	if err := json.Unmarshal(body, &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(report.Mismatches) != 0 {
		t.Errorf("mismatches = %v", report.Mismatches)
	}
}

func TestWebSocketRequiresUpgrade(t *testing.T) {
	app, _ := newTestApp(t)
	status, _ := do(t, app, http.MethodGet, "/ws/moves", "")
	if status != http.StatusUpgradeRequired {
		t.Errorf("status = %d, want 426", status)
	}
}

func TestWebSocketFrames(t *testing.T) {
	_, svc := newTestApp(t)
	wsc := NewWebSocketController(svc)

	tests := []struct {
		name  string
		frame string
		want  MessageType
	}{
		{"moves", `{"type":"moves","payload":{"fen":"8/8/8/8/4N3/8/8/8 w","square":"e4"}}`, MessageTypeMoves},
		{"verify", `{"type":"verify","payload":{"fen":"8/8/8/8/4N3/8/8/8 w"}}`, MessageTypeVerify},
		{"unknown type", `{"type":"resign","payload":{}}`, MessageTypeError},
		{"bad frame", `not json`, MessageTypeError},
		{"bad fen", `{"type":"moves","payload":{"fen":"x"}}`, MessageTypeError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply := wsc.handleFrame([]byte(tc.frame))
			if reply.Type != tc.want {
				t.Errorf("reply type = %s, want %s (%s)", reply.Type, tc.want, reply.Payload)
			}
		})
	}

	reply := wsc.handleFrame([]byte(`{"type":"moves","payload":{"fen":"8/8/8/8/4N3/8/8/8 w","square":"e4"}}`))
	var report service.MoveReport
	if err := json.Unmarshal(reply.Payload, &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Count != 8 {
		t.Errorf("count = %d, want 8", report.Count)
	}
}
