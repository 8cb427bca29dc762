package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"creator-dashboard/domain/dto"
	"creator-dashboard/domain/model"
	"creator-dashboard/domain/repository"
	"creator-dashboard/infrastructure/logger"
)

type ITrendingUsecase interface {
	Options() dto.TrendingOptions
	Refresh(ctx context.Context, userID string, params model.QueryParameters) (model.FetchCycleSnapshot, error)
	State(userID string) model.FetchCycleSnapshot
}

// DefaultSessionTTL is how long an idle session is kept after its last use.
const DefaultSessionTTL = 30 * time.Minute

// TrendingUsecase keeps one TrendingSession per user. Sessions that sit idle
// for longer than the session TTL are dropped; a later call starts a fresh one.
type TrendingUsecase struct {
	catalog repository.ICatalog

	mu          sync.Mutex
	sessions    map[string]*TrendingSession
	broadcaster []func(model.FetchCycleEvent)
	sessionTTL  time.Duration
	now         func() time.Time
	lastSweep   time.Time
}

func NewTrendingUsecase(catalog repository.ICatalog) *TrendingUsecase {
	return &TrendingUsecase{
		catalog:    catalog,
		sessions:   make(map[string]*TrendingSession),
		sessionTTL: DefaultSessionTTL,
		now:        time.Now,
	}
}

// WithSessionTTL changes how long idle sessions are kept. Zero keeps them forever.
func (u *TrendingUsecase) WithSessionTTL(ttl time.Duration) *TrendingUsecase {
	u.mu.Lock()
	u.sessionTTL = ttl
	u.mu.Unlock()
	return u
}

// WithClock replaces the time source used for session expiry.
func (u *TrendingUsecase) WithClock(now func() time.Time) *TrendingUsecase {
	u.mu.Lock()
	u.now = now
	u.mu.Unlock()
	return u
}

// Sessions returns the number of live sessions.
func (u *TrendingUsecase) Sessions() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.sessions)
}

// WithBroadcaster registers a listener for fetch-cycle transitions.
// Listeners run synchronously and must not block.
func (u *TrendingUsecase) WithBroadcaster(fn func(model.FetchCycleEvent)) *TrendingUsecase {
	u.mu.Lock()
	u.broadcaster = append(u.broadcaster, fn)
	u.mu.Unlock()
	return u
}

func (u *TrendingUsecase) Options() dto.TrendingOptions {
	return dto.NewTrendingOptions()
}

func (u *TrendingUsecase) Refresh(ctx context.Context, userID string, params model.QueryParameters) (model.FetchCycleSnapshot, error) {
	snap, err := u.session(userID).Refresh(ctx, params)
	if err != nil && !errors.Is(err, model.ErrSuperseded) {
		logger.GetLogger().WithField("user_id", userID).WithError(err).Warn("Trending fetch cycle failed")
	}
	return snap, err
}

func (u *TrendingUsecase) State(userID string) model.FetchCycleSnapshot {
	return u.session(userID).Snapshot()
}

func (u *TrendingUsecase) session(userID string) *TrendingSession {
	u.mu.Lock()
	defer u.mu.Unlock()
	now := u.now()
	u.sweepLocked(now)
	s, ok := u.sessions[userID]
	if !ok {
		s = newTrendingSession(userID, u.catalog, u.dispatch)
		s.now = u.now
		u.sessions[userID] = s
	}
	// touched under u.mu so a concurrent sweep cannot drop a session being handed out
	s.touch(now)
	return s
}

// sweepLocked drops sessions idle since before now-ttl. It runs at most once
// per quarter TTL. u.mu must be held.
func (u *TrendingUsecase) sweepLocked(now time.Time) {
	if u.sessionTTL <= 0 || now.Sub(u.lastSweep) < u.sessionTTL/4 {
		return
	}
	u.lastSweep = now
	cutoff := now.Add(-u.sessionTTL)
	for id, s := range u.sessions {
		if s.expired(cutoff) {
			delete(u.sessions, id)
		}
	}
}

func (u *TrendingUsecase) dispatch(evt model.FetchCycleEvent) {
	u.mu.Lock()
	listeners := append([]func(model.FetchCycleEvent){}, u.broadcaster...)
	u.mu.Unlock()
	for _, fn := range listeners {
		fn(evt)
	}
}
