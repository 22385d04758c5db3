package explorer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zeu5/qtrain"
)

func newTestServer() *Server {
	trainer := qtrain.NewTrainer()
	trainer.Import(map[string]map[string]float64{
		"s1": {"a": 1.5, "b": -2},
	})
	trace := qtrain.NewTrace()
	trace.Append("s1", "a", "s2", -1)
	return NewServer("127.0.0.1:0", trainer, trace)
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.server.Handler.ServeHTTP(w, req)
	return w
}

func TestServerServesLearnedValues(t *testing.T) {
	s := newTestServer()

	w := get(s, "/values/s1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		State  string             `json:"state"`
		Values map[string]float64 `json:"values"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %s", err)
	}
	if resp.State != "s1" || resp.Values["a"] != 1.5 || resp.Values["b"] != -2 {
		t.Errorf("unexpected values response: %+v", resp)
	}

	if w := get(s, "/values/unknown"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown state, got %d", w.Code)
	}
}

func TestServerListsStates(t *testing.T) {
	s := newTestServer()

	w := get(s, "/states")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		States []string `json:"states"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %s", err)
	}
	if len(resp.States) != 1 || resp.States[0] != "s1" {
		t.Errorf("unexpected states response: %v", resp.States)
	}
}

func TestServerServesTraces(t *testing.T) {
	s := newTestServer()

	w := get(s, "/traces")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var listResp struct {
		Count   int   `json:"count"`
		Lengths []int `json:"lengths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("failed to parse response: %s", err)
	}
	if listResp.Count != 1 || len(listResp.Lengths) != 1 || listResp.Lengths[0] != 1 {
		t.Errorf("unexpected traces response: %+v", listResp)
	}

	w = get(s, "/traces/0")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var traceResp struct {
		Index int `json:"index"`
		Steps []struct {
			State     string  `json:"state"`
			Action    string  `json:"action"`
			NextState string  `json:"next_state"`
			Reward    float64 `json:"reward"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &traceResp); err != nil {
		t.Fatalf("failed to parse response: %s", err)
	}
	if len(traceResp.Steps) != 1 || traceResp.Steps[0].State != "s1" || traceResp.Steps[0].Reward != -1 {
		t.Errorf("unexpected trace response: %+v", traceResp)
	}

	if w := get(s, "/traces/5"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an out-of-range trace, got %d", w.Code)
	}
}
