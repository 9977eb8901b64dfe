package session

import (
	"sync"
	"time"

	"product-compare/internal/i18n"
	"product-compare/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	// TTL is how long an idle session is kept. Zero keeps sessions forever.
	TTL time.Duration
	// CleanupInterval is how often expired sessions are evicted. Zero disables the sweeper.
	CleanupInterval time.Duration
	DefaultLanguage i18n.Language
}

// Store keeps sessions in memory, keyed by session id.
// Each operation runs atomically under the store lock.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	opts     Options
	logger   *zap.Logger
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func NewStore(opts Options, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !opts.DefaultLanguage.Valid() {
		opts.DefaultLanguage = i18n.Default
	}
	s := &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
		logger:   logger,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if opts.TTL > 0 && opts.CleanupInterval > 0 {
		go s.cleanup()
	}
	return s
}

// Close stops the cleanup goroutine.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Open returns the snapshot of session id. An empty, unknown or expired id gets a
// new session under a freshly issued id, which the returned snapshot carries.
func (s *Store) Open(id string) Snapshot {
	var snap Snapshot
	s.with(id, func(sess *Session) { snap = sess.snapshot() })
	return snap
}

// Add appends a validated product and returns the stored record.
func (s *Store) Add(id string, p model.Product) (model.Product, Snapshot) {
	var (
		stored model.Product
		snap   Snapshot
	)
	s.with(id, func(sess *Session) {
		stored = sess.add(p)
		snap = sess.snapshot()
	})
	return stored, snap
}

// Calculate summarizes the session's ledger. On error the session is unchanged.
func (s *Store) Calculate(id string) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	s.with(id, func(sess *Session) {
		err = sess.calculate()
		snap = sess.snapshot()
	})
	return snap, err
}

func (s *Store) Clear(id string) Snapshot {
	var snap Snapshot
	s.with(id, func(sess *Session) {
		sess.clear()
		snap = sess.snapshot()
	})
	return snap
}

func (s *Store) ToggleLanguage(id string) Snapshot {
	var snap Snapshot
	s.with(id, func(sess *Session) {
		sess.lang = sess.lang.Toggle()
		snap = sess.snapshot()
	})
	return snap
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) with(id string, fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[id]
	if ok && s.expired(sess, now) {
		delete(s.sessions, id)
		ok = false
	}
	if !ok {
		// Ids are only ever issued here, never taken from the client.
		id = uuid.NewString()
		sess = newSession(id, s.opts.DefaultLanguage, now)
		s.sessions[id] = sess
		s.logger.Debug("session created", zap.String("session_id", id))
	}
	sess.lastSeen = now
	fn(sess)
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.opts.TTL > 0 && now.Sub(sess.lastSeen) > s.opts.TTL
}

// evictExpired removes idle sessions and returns how many were dropped.
func (s *Store) evictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(s.opts.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.evictExpired(); n > 0 {
				s.logger.Info("evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}
