package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/user/homeportal/internal/poller"
)

type fakeJobs []poller.JobStatus

func (f fakeJobs) JobStatuses() []poller.JobStatus { return f }

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := poller.NewMetrics(reg)
	m.ObservePoll(poller.EndpointStatus, poller.OutcomeApplied, 20*time.Millisecond)

	srv := httptest.NewServer(Handler(reg, fakeJobs{{Name: "status", Interval: 10 * time.Second, RunCount: 3}}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `homeportal_polls_total{endpoint="status",outcome="applied"} 1`) {
		t.Errorf("metrics output missing poll counter:\n%s", body)
	}

	resp, err = http.Get(srv.URL + "/api/jobs")
	if err != nil {
		t.Fatalf("GET /api/jobs: %v", err)
	}
	defer resp.Body.Close()
	var jobs []poller.JobStatus
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		t.Fatalf("decode jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Name != "status" || jobs[0].RunCount != 3 {
		t.Errorf("jobs = %+v", jobs)
	}

	resp, err = http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
}
