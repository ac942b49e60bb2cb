package dashboardinfra_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abraxas-365/talentpool/pkg/errx"
	"github.com/Abraxas-365/talentpool/talentpool/dashboard/dashboardinfra"
	"github.com/Abraxas-365/talentpool/talentpool/introrequest"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestListCandidatesNormalizesPayloads(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"id": "cand-1", "role": "Engineer"},
			},
		})
	})

	client := dashboardinfra.NewAPIClient(srv.URL, "test-token")
	got, err := client.ListCandidates(context.Background())
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	// Normalization fills the defaults the wire omitted.
	if got[0].Skills == nil {
		t.Error("Skills should be normalized to an empty slice")
	}
	if !got[0].Salary.IsUnspecified() {
		t.Errorf("Salary = %+v, want unspecified", got[0].Salary)
	}
}

func TestSubmitIntroConflictSurvivesTheWire(t *testing.T) {
	conflict := introrequest.ErrAlreadyRequested()
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(conflict.ToHTTPResponse())
	})

	client := dashboardinfra.NewAPIClient(srv.URL, "test-token")
	_, err := client.SubmitIntro(context.Background(), "cand-1", "hello")
	if !errx.IsCode(err, introrequest.CodeAlreadyRequested) {
		t.Errorf("err = %v, want the already-requested code reconstructed", err)
	}
}

func TestMalformedErrorBodyDegrades(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	})

	client := dashboardinfra.NewAPIClient(srv.URL, "test-token")
	_, err := client.ListShortlist(context.Background())
	if err == nil {
		t.Fatal("expected an error for a 502")
	}
	if !errx.IsType(err, errx.TypeInternal) {
		t.Errorf("err = %v, want a generic internal error", err)
	}
}

func TestCancelIntroSendsDelete(t *testing.T) {
	var method, path string
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	client := dashboardinfra.NewAPIClient(srv.URL, "test-token")
	if err := client.CancelIntro(context.Background(), "cand-1"); err != nil {
		t.Fatalf("CancelIntro: %v", err)
	}
	if method != http.MethodDelete || path != "/api/intro-requests/cand-1" {
		t.Errorf("request = %s %s, want DELETE /api/intro-requests/cand-1", method, path)
	}
}

func TestListActiveIntrosDropsCancelled(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "req-1", "candidateId": "cand-1", "status": "PENDING"},
			{"id": "req-2", "candidateId": "cand-2", "status": "CANCELLED"},
		})
	})

	client := dashboardinfra.NewAPIClient(srv.URL, "test-token")
	active, err := client.ListActiveIntros(context.Background())
	if err != nil {
		t.Fatalf("ListActiveIntros: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("active = %v, want only the pending request", active)
	}
	if status := active["cand-1"]; status != introrequest.StatusPending {
		t.Errorf("status = %s, want PENDING", status)
	}
}
