package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

var t0 = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeFlashcardRepo struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]*entities.Flashcard
	decks map[uuid.UUID]*entities.Deck
}

func newFakeFlashcardRepo() *fakeFlashcardRepo {
	return &fakeFlashcardRepo{
		cards: make(map[uuid.UUID]*entities.Flashcard),
		decks: make(map[uuid.UUID]*entities.Deck),
	}
}

func (r *fakeFlashcardRepo) Create(ctx context.Context, card *entities.Flashcard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *card
	r.cards[card.ID] = &c
	return nil
}

func (r *fakeFlashcardRepo) Get(ctx context.Context, id uuid.UUID) (*entities.Flashcard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.cards[id]
	if !ok {
		return nil, entities.ErrFlashcardNotFound
	}
	c := *card
	return &c, nil
}

func (r *fakeFlashcardRepo) Update(ctx context.Context, card *entities.Flashcard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[card.ID]; !ok {
		return entities.ErrFlashcardNotFound
	}
	c := *card
	r.cards[card.ID] = &c
	return nil
}

func (r *fakeFlashcardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[id]; !ok {
		return entities.ErrFlashcardNotFound
	}
	delete(r.cards, id)
	return nil
}

func (r *fakeFlashcardRepo) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*entities.Flashcard, error) {
	return r.filter(func(c *entities.Flashcard) bool { return c.DeckID != nil && *c.DeckID == deckID }), nil
}

func (r *fakeFlashcardRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Flashcard, error) {
	return r.filter(func(c *entities.Flashcard) bool { return c.OwnerID == ownerID }), nil
}

func (r *fakeFlashcardRepo) filter(keep func(c *entities.Flashcard) bool) []*entities.Flashcard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entities.Flashcard
	for _, c := range r.cards {
		if keep(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (r *fakeFlashcardRepo) CreateDeck(ctx context.Context, deck *entities.Deck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := *deck
	r.decks[deck.ID] = &d
	return nil
}

func (r *fakeFlashcardRepo) GetDeck(ctx context.Context, id uuid.UUID) (*entities.Deck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decks[id]
	if !ok {
		return nil, entities.ErrDeckNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeFlashcardRepo) ListDecks(ctx context.Context, ownerID int64) ([]*entities.Deck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entities.Deck
	for _, d := range r.decks {
		if d.OwnerID == ownerID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFlashcardRepo) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.decks[id]; !ok {
		return entities.ErrDeckNotFound
	}
	delete(r.decks, id)
	for cid, c := range r.cards {
		if c.DeckID != nil && *c.DeckID == id {
			delete(r.cards, cid)
		}
	}
	return nil
}

type stateKey struct {
	userID int64
	cardID uuid.UUID
}

type fakeReviewStateRepo struct {
	mu     sync.RWMutex
	cards  *fakeFlashcardRepo
	states map[stateKey]*entities.ReviewState
	stats  *entities.ProgressStats
	gets   int
}

func newFakeReviewStateRepo(cards *fakeFlashcardRepo) *fakeReviewStateRepo {
	return &fakeReviewStateRepo{cards: cards, states: make(map[stateKey]*entities.ReviewState)}
}

func (r *fakeReviewStateRepo) Get(ctx context.Context, userID int64, flashcardID uuid.UUID) (*entities.ReviewState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	s, ok := r.states[stateKey{userID, flashcardID}]
	if !ok {
		return nil, entities.ErrReviewStateNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeReviewStateRepo) Upsert(ctx context.Context, state *entities.ReviewState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *state
	r.states[stateKey{state.UserID, state.FlashcardID}] = &cp
	return nil
}

func (r *fakeReviewStateRepo) due(userID int64, now time.Time) []*entities.Flashcard {
	cards := r.cards.filter(func(c *entities.Flashcard) bool { return c.OwnerID == userID })
	r.mu.RLock()
	defer r.mu.RUnlock()

	dueAt := func(c *entities.Flashcard) time.Time {
		if s, ok := r.states[stateKey{userID, c.ID}]; ok {
			return s.DueDate
		}
		return c.CreatedAt
	}

	var out []*entities.Flashcard
	for _, c := range cards {
		if !dueAt(c).After(now) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return dueAt(out[i]).Before(dueAt(out[j])) })
	return out
}

func (r *fakeReviewStateRepo) NextDue(ctx context.Context, userID int64, now time.Time) (*entities.Flashcard, error) {
	due := r.due(userID, now)
	if len(due) == 0 {
		return nil, entities.ErrNoCardsDue
	}
	return due[0], nil
}

func (r *fakeReviewStateRepo) CountDue(ctx context.Context, userID int64, now time.Time) (int, error) {
	return len(r.due(userID, now)), nil
}

func (r *fakeReviewStateRepo) GetStats(ctx context.Context, userID int64, now time.Time) (*entities.ProgressStats, error) {
	if r.stats != nil {
		cp := *r.stats
		return &cp, nil
	}
	return &entities.ProgressStats{}, nil
}

type fakeReviewLogRepo struct {
	mu   sync.Mutex
	logs []*entities.ReviewLog
	days []time.Time
}

func (r *fakeReviewLogRepo) Append(ctx context.Context, log *entities.ReviewLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	cp.ID = int64(len(r.logs) + 1)
	log.ID = cp.ID
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *fakeReviewLogRepo) ReviewDays(ctx context.Context, userID int64, since time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, d := range r.days {
		if !d.Before(since) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeReminderRepo struct {
	mu       sync.Mutex
	settings map[int64]*entities.ReminderSettings
	targets  []*entities.ReminderTarget
	sent     map[int64]time.Time
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{
		settings: make(map[int64]*entities.ReminderSettings),
		sent:     make(map[int64]time.Time),
	}
}

func (r *fakeReminderRepo) Get(ctx context.Context, userID int64) (*entities.ReminderSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[userID]
	if !ok {
		return nil, entities.ErrReminderNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeReminderRepo) Upsert(ctx context.Context, settings *entities.ReminderSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *settings
	r.settings[settings.UserID] = &cp
	return nil
}

func (r *fakeReminderRepo) ListTargetsBatch(ctx context.Context, now time.Time, afterUserID int64, limit int) ([]*entities.ReminderTarget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.ReminderTarget
	for _, t := range r.targets {
		if t.UserID > afterUserID && len(out) < limit {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) MarkSent(ctx context.Context, userID int64, sentAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent[userID] = sentAt
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[int64]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entities.User)}
}

func (r *fakeUserRepo) Save(ctx context.Context, user *entities.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.users[user.ID]
	cp := *user
	r.users[user.ID] = &cp
	return !exists, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Deactivate(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return entities.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []int64
	fail map[int64]error
}

func (n *fakeNotifier) SendReminder(ctx context.Context, target *entities.ReminderTarget) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.fail[target.UserID]; err != nil {
		return err
	}
	n.sent = append(n.sent, target.UserID)
	return nil
}
