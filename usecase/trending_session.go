package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"creator-dashboard/domain/model"
	"creator-dashboard/domain/repository"
	"creator-dashboard/infrastructure/logger"
)

// TrendingSession holds the fetch-cycle state of one user.
//
// Every Refresh starts a new cycle with the next sequence number and cancels
// the cycle in flight. A cycle only writes its result if its sequence number
// is still the latest when the catalog answers; otherwise the answer is
// dropped and Refresh returns model.ErrSuperseded.
type TrendingSession struct {
	userID  string
	catalog repository.ICatalog
	notify  func(model.FetchCycleEvent)
	now     func() time.Time

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	snap     model.FetchCycleSnapshot
	lastUsed time.Time
}

func newTrendingSession(userID string, catalog repository.ICatalog, notify func(model.FetchCycleEvent)) *TrendingSession {
	return &TrendingSession{
		userID:  userID,
		catalog: catalog,
		notify:  notify,
		now:     time.Now,
		snap: model.FetchCycleSnapshot{
			State:  model.CycleIdle,
			Params: model.QueryParameters{}.Normalize(),
			Videos: []model.NormalizedVideo{},
		},
	}
}

// Snapshot returns the current state. Video slices are replaced, never mutated,
// so sharing them with the caller is safe.
func (s *TrendingSession) Snapshot() model.FetchCycleSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *TrendingSession) touch(at time.Time) {
	s.mu.Lock()
	if at.After(s.lastUsed) {
		s.lastUsed = at
	}
	s.mu.Unlock()
}

// expired reports whether the session is idle with no cycle in flight and
// was last used before cutoff.
func (s *TrendingSession) expired(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel == nil && s.snap.State == model.CycleIdle && s.lastUsed.Before(cutoff)
}

// Refresh runs one fetch cycle: idle -> loading -> success|error -> idle.
func (s *TrendingSession) Refresh(ctx context.Context, params model.QueryParameters) (model.FetchCycleSnapshot, error) {
	params = params.Normalize()
	if err := params.Validate(); err != nil {
		return s.Snapshot(), err
	}

	seq, cycleCtx := s.begin(ctx, params)
	raw, err := s.catalog.MostPopular(cycleCtx, params)
	return s.finish(seq, params, raw, err)
}

func (s *TrendingSession) begin(ctx context.Context, params model.QueryParameters) (uint64, context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	cycleCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.snap.Seq = seq
	s.snap.State = model.CycleLoading
	s.snap.Error = ""
	s.snap.Params = params
	s.snap.UpdatedAt = s.now()
	s.mu.Unlock()

	s.emit(model.FetchCycleEvent{Seq: seq, State: model.CycleLoading})
	return seq, cycleCtx
}

func (s *TrendingSession) finish(seq uint64, params model.QueryParameters, raw []model.NormalizedVideo, fetchErr error) (model.FetchCycleSnapshot, error) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		logger.GetLogger().WithFields(map[string]interface{}{
			"user_id": s.userID,
			"seq":     seq,
		}).Debug("Discarding superseded trending response")
		s.emit(model.FetchCycleEvent{Seq: seq, State: model.CycleIdle, Error: model.ErrSuperseded.Error()})
		return model.FetchCycleSnapshot{}, model.ErrSuperseded
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	outcome := model.CycleSuccess
	var err error
	if fetchErr != nil {
		err = classifyFetchError(fetchErr)
		outcome = model.CycleError
		// a failed cycle drops the previous result set entirely
		s.snap.Videos = []model.NormalizedVideo{}
		s.snap.Totals = model.Totals{}
		s.snap.Error = err.Error()
	} else {
		result := RunPipeline(raw, params)
		s.snap.Videos = result.Videos
		s.snap.Totals = result.Totals
	}
	s.snap.LastOutcome = outcome
	s.snap.State = model.CycleIdle
	s.snap.UpdatedAt = s.now()
	snap := s.snap
	s.mu.Unlock()

	s.emit(model.FetchCycleEvent{Seq: seq, State: outcome, Outcome: outcome, Error: snap.Error, Count: len(snap.Videos)})
	s.emit(model.FetchCycleEvent{Seq: seq, State: model.CycleIdle, Outcome: outcome, Error: snap.Error, Count: len(snap.Videos)})
	return snap, err
}

func (s *TrendingSession) emit(evt model.FetchCycleEvent) {
	if s.notify == nil {
		return
	}
	evt.UserID = s.userID
	s.notify(evt)
}

// classifyFetchError keeps upstream and validation errors and wraps anything else.
func classifyFetchError(err error) error {
	var upstream *model.UpstreamError
	var validation *model.ValidationError
	if errors.As(err, &upstream) || errors.As(err, &validation) {
		return err
	}
	return &model.UnexpectedError{Err: err}
}
