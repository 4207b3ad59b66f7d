package app

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"mvp-challenge/internal/domain"
)

// RecordStore abstracts the durable key-value storage for cross-day results
// (in-memory, Redis, etc). Values are strings; integers are stored decimally.
type RecordStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// AwardRepository loads the fixed year-to-winner table (from cache/backing store).
type AwardRepository interface {
	GetTable(ctx context.Context) (domain.AwardTable, error)
}

// Record store keys, carrying the namespace used by the original game's
// browser storage so existing values stay readable.
const (
	keyBestScore    = "nfl_mvp_best_score"
	keyLastPlayed   = "nfl_mvp_last_played"
	keyTodayScore   = "nfl_mvp_today_score"
	keyTodayHistory = "nfl_mvp_today_history"
)

// defaultFeedbackDelay is how long a correct-answer banner stays up before
// the next question.
const defaultFeedbackDelay = 1500 * time.Millisecond

// GameService contains the daily-challenge use cases. Each player gets at
// most one session per calendar day; the record store is the source of
// truth across restarts.
type GameService struct {
	records       RecordStore
	awards        AwardRepository
	feedbackDelay time.Duration
	now           func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewGameService(records RecordStore, awards AwardRepository, feedbackDelay time.Duration) *GameService {
	return newGameService(records, awards, feedbackDelay, time.Now)
}

// NewGameServiceWithClock is test-only for deterministic dates.
func NewGameServiceWithClock(records RecordStore, awards AwardRepository, feedbackDelay time.Duration, now func() time.Time) *GameService {
	return newGameService(records, awards, feedbackDelay, now)
}

func newGameService(records RecordStore, awards AwardRepository, feedbackDelay time.Duration, now func() time.Time) *GameService {
	if feedbackDelay <= 0 {
		feedbackDelay = defaultFeedbackDelay
	}
	return &GameService{
		records:       records,
		awards:        awards,
		feedbackDelay: feedbackDelay,
		now:           now,
		sessions:      make(map[string]*Session),
	}
}

// Start begins today's challenge for a player, or reconstructs the
// read-only completed view when the record store says today was already
// played. Calling it again on the same day returns the existing session's
// state and never resets progress.
func (s *GameService) Start(ctx context.Context, playerID string) (domain.Snapshot, error) {
	today := s.now()
	dateKey := DateKey(today)

	s.mu.RLock()
	existing, ok := s.sessions[playerID]
	s.mu.RUnlock()
	if ok && existing.dateKey == dateKey {
		return existing.snapshot(), nil
	}

	rec := s.loadRecord(ctx, dateKey)

	var session *Session
	if rec.lastPlayed == dateKey {
		session = newCompletedSession(playerID, today, rec.score, rec.best, rec.history, s.now)
	} else {
		table, err := s.awards.GetTable(ctx)
		if err != nil {
			return domain.Snapshot{}, err
		}
		years := SelectYears(DailySeed(today), table.Years())
		session = newSession(playerID, today, years, table, s.feedbackDelay, rec.best, s.now)
		session.onComplete = s.persistResult
	}

	// A session from a previous day is simply replaced; its state is gone.
	s.mu.Lock()
	s.sessions[playerID] = session
	s.mu.Unlock()
	return session.snapshot(), nil
}

// Submit grades a free-text answer for the player's current question.
// Empty input or a submission outside the answering phase leaves the
// session untouched and reports a sentinel error the view may ignore.
func (s *GameService) Submit(_ context.Context, playerID, answer string) (domain.Snapshot, error) {
	session, ok := s.session(playerID)
	if !ok {
		return domain.Snapshot{}, domain.ErrSessionNotFound
	}
	return session.submit(answer)
}

// Snapshot returns the player's current session state.
func (s *GameService) Snapshot(_ context.Context, playerID string) (domain.Snapshot, error) {
	session, ok := s.session(playerID)
	if !ok {
		return domain.Snapshot{}, domain.ErrSessionNotFound
	}
	return session.snapshot(), nil
}

// Share renders the shareable result text for a finished game.
func (s *GameService) Share(_ context.Context, playerID string) (string, error) {
	session, ok := s.session(playerID)
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return session.share()
}

// Subscribe returns a channel that receives session snapshots as the game
// progresses. The caller must invoke the returned cancel function to avoid leaks.
func (s *GameService) Subscribe(_ context.Context, playerID string) (<-chan domain.Snapshot, func(), error) {
	session, ok := s.session(playerID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.subscribe()
	return ch, cancel, nil
}

// TimeUntilNextGame reports how long until a fresh question set is available.
func (s *GameService) TimeUntilNextGame() time.Duration {
	return TimeUntilNextGame(s.now())
}

func (s *GameService) session(playerID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[playerID]
	return session, ok
}

type storedRecord struct {
	best       int
	lastPlayed string
	score      int
	history    []domain.AnswerRecord
}

// loadRecord reads the persisted record, falling back to zero values when
// the store is unavailable. Storage trouble is logged, never surfaced.
func (s *GameService) loadRecord(ctx context.Context, todayKey string) storedRecord {
	var rec storedRecord

	if v, ok, err := s.records.Get(ctx, keyBestScore); err != nil {
		log.Printf("record store unavailable, using defaults: %v", err)
		return rec
	} else if ok {
		if n, err := strconv.Atoi(v); err == nil {
			rec.best = n
		}
	}

	v, ok, err := s.records.Get(ctx, keyLastPlayed)
	if err != nil {
		log.Printf("read last played: %v", err)
		return rec
	}
	if !ok || v != todayKey {
		return rec
	}
	rec.lastPlayed = v

	if v, ok, err := s.records.Get(ctx, keyTodayScore); err != nil {
		log.Printf("read today score: %v", err)
	} else if ok {
		if n, err := strconv.Atoi(v); err == nil {
			rec.score = n
		}
	}
	if v, ok, err := s.records.Get(ctx, keyTodayHistory); err != nil {
		log.Printf("read today history: %v", err)
	} else if ok {
		if err := json.Unmarshal([]byte(v), &rec.history); err != nil {
			log.Printf("decode today history: %v", err)
			rec.history = nil
		}
	}
	return rec
}

// completion carries everything persisted when a game reaches Completed.
type completion struct {
	dateKey string
	score   int
	history []domain.AnswerRecord
	best    int
	newBest bool
}

// persistResult writes the day's result in program order: last played date,
// score, history, then the best score when it improved. Failures degrade to
// logging; the finished game is still shown to the player.
func (s *GameService) persistResult(c completion) {
	ctx := context.Background()
	if err := s.records.Set(ctx, keyLastPlayed, c.dateKey); err != nil {
		log.Printf("save last played: %v", err)
	}
	if err := s.records.Set(ctx, keyTodayScore, strconv.Itoa(c.score)); err != nil {
		log.Printf("save today score: %v", err)
	}
	if data, err := json.Marshal(c.history); err != nil {
		log.Printf("encode today history: %v", err)
	} else if err := s.records.Set(ctx, keyTodayHistory, string(data)); err != nil {
		log.Printf("save today history: %v", err)
	}
	if c.newBest {
		if err := s.records.Set(ctx, keyBestScore, strconv.Itoa(c.best)); err != nil {
			log.Printf("save best score: %v", err)
		}
	}
}

// Session is one player's state for one calendar day. It is the only
// mutable entity during play and is guarded by its mutex; the first
// incorrect answer ends the game immediately.
type Session struct {
	playerID string
	date     time.Time
	dateKey  string
	years    []int
	table    domain.AwardTable
	delay    time.Duration
	now      func() time.Time

	onComplete func(completion)

	mu          sync.Mutex
	phase       domain.Phase
	index       int
	score       int
	best        int
	feedback    string
	history     []domain.AnswerRecord
	subscribers map[chan domain.Snapshot]struct{}
}

func newSession(playerID string, date time.Time, years []int, table domain.AwardTable, delay time.Duration, best int, now func() time.Time) *Session {
	return &Session{
		playerID:    playerID,
		date:        date,
		dateKey:     DateKey(date),
		years:       years,
		table:       table,
		delay:       delay,
		now:         now,
		phase:       domain.PhaseAwaitingAnswer,
		best:        best,
		subscribers: make(map[chan domain.Snapshot]struct{}),
	}
}

// newCompletedSession rehydrates a read-only view of an already-played day
// from the persisted record. It accepts no answers.
func newCompletedSession(playerID string, date time.Time, score, best int, history []domain.AnswerRecord, now func() time.Time) *Session {
	return &Session{
		playerID:    playerID,
		date:        date,
		dateKey:     DateKey(date),
		now:         now,
		phase:       domain.PhaseCompleted,
		score:       score,
		best:        best,
		history:     history,
		subscribers: make(map[chan domain.Snapshot]struct{}),
	}
}

func (s *Session) submit(answer string) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseAwaitingAnswer {
		return s.snapshotLocked(), domain.ErrNotAcceptingAnswers
	}
	if strings.TrimSpace(answer) == "" {
		return s.snapshotLocked(), domain.ErrEmptyAnswer
	}

	year := s.years[s.index]
	name := s.table[year]
	correct := Grade(answer, name)
	s.history = append(s.history, domain.AnswerRecord{Year: year, Correct: correct, Answer: name})

	if correct {
		s.score++
		s.feedback = "✓ Correct! " + name
		s.phase = domain.PhaseShowingFeedback
		time.AfterFunc(s.delay, s.advance)
	} else {
		s.feedback = "✗ Incorrect. The answer was " + name
		s.completeLocked()
	}
	return s.broadcastLocked(), nil
}

// advance moves past the correct-answer feedback once the display delay has
// elapsed: on to the next question, or to Completed after the last one.
func (s *Session) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseShowingFeedback {
		return
	}
	s.feedback = ""
	if s.index+1 < len(s.years) {
		s.index++
		s.phase = domain.PhaseAwaitingAnswer
	} else {
		s.completeLocked()
	}
	s.broadcastLocked()
}

// completeLocked terminates the day. The persist hook runs under the
// session lock so grading, the final record append, and the writes behave
// atomically with respect to further submissions.
func (s *Session) completeLocked() {
	s.phase = domain.PhaseCompleted
	newBest := s.score > s.best
	if newBest {
		s.best = s.score
	}
	if s.onComplete != nil {
		s.onComplete(completion{
			dateKey: s.dateKey,
			score:   s.score,
			history: append([]domain.AnswerRecord(nil), s.history...),
			best:    s.best,
			newBest: newBest,
		})
	}
}

func (s *Session) share() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseCompleted {
		return "", domain.ErrGameNotFinished
	}
	return FormatShare(s.date, s.score, s.history), nil
}

func (s *Session) snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{
		Phase:         s.phase,
		Date:          s.dateKey,
		QuestionIndex: s.index,
		QuestionCount: questionCount,
		Score:         s.score,
		BestScore:     s.best,
		Feedback:      s.feedback,
		History:       append([]domain.AnswerRecord(nil), s.history...),
	}
	if len(s.years) > 0 {
		snap.QuestionCount = len(s.years)
	}
	switch s.phase {
	case domain.PhaseAwaitingAnswer, domain.PhaseShowingFeedback:
		snap.Year = s.years[s.index]
	case domain.PhaseCompleted:
		snap.NextGameIn = FormatCountdown(TimeUntilNextGame(s.now()))
	}
	return snap
}

func (s *Session) subscribe() (<-chan domain.Snapshot, func()) {
	ch := make(chan domain.Snapshot, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.snapshotLocked()
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked() domain.Snapshot {
	snap := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the oldest pending snapshot so a slow view never blocks play.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	return snap
}
