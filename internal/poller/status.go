package poller

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/util"
)

// StatusResult is one completed /api/status poll. Seq orders results by
// request start, so a slow response can be recognized as stale.
type StatusResult struct {
	Seq      uint64
	Snapshot *model.StatusSnapshot
	Err      error
	Duration time.Duration
}

// Degraded reports whether the result carries no usable status data.
func (r StatusResult) Degraded() bool {
	return r.Err != nil || !r.Snapshot.IsAvailable()
}

// StatusPoller fetches the service status snapshot.
type StatusPoller struct {
	fetcher *Fetcher
	path    string
	metrics *Metrics
	seq     *atomic.Uint64
}

// NewStatusPoller creates a status poller. seq is shared with any other
// poller whose results must be ordered against this one; nil allocates a
// private counter.
func NewStatusPoller(f *Fetcher, path string, m *Metrics, seq *atomic.Uint64) *StatusPoller {
	if seq == nil {
		seq = new(atomic.Uint64)
	}
	return &StatusPoller{fetcher: f, path: path, metrics: m, seq: seq}
}

// Poll performs one fetch. It never returns an error directly: failures are
// reported in the result and logged at warn level.
func (p *StatusPoller) Poll(ctx context.Context) StatusResult {
	res := StatusResult{Seq: p.seq.Add(1)}
	start := time.Now()

	var snap model.StatusSnapshot
	reqID, err := p.fetcher.GetJSON(ctx, p.path, &snap)
	res.Duration = time.Since(start)

	if err != nil {
		res.Err = err
		util.Warn("Status poll %d failed (%s, request %s): %v", res.Seq, FailureKind(err), reqID, err)
	} else {
		res.Snapshot = &snap
		if !snap.IsAvailable() {
			util.Info("Status poll %d: backend reports unavailable: %s", res.Seq, snap.Error)
		} else {
			util.Debug("Status poll %d: %d services in %v", res.Seq, len(snap.Services), res.Duration)
		}
	}

	p.metrics.ObservePoll(EndpointStatus, outcomeFor(err, res.Snapshot.IsAvailable()), res.Duration)
	return res
}
