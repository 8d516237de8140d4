package impl

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"calshare/config"
	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	"calshare/internal/infra/ical"
	"calshare/internal/infra/index/memory"
	"calshare/internal/infra/secret"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shareLinkStore is an in-memory ShareLinkRepository that preserves
// creation order, standing in for the postgres implementation.
type shareLinkStore struct {
	mu    sync.Mutex
	links []*entity.ShareLink
}

func (s *shareLinkStore) Create(_ context.Context, link *entity.ShareLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *link
	stored.CreatedAt = time.Now()
	s.links = append(s.links, &stored)
	link.CreatedAt = stored.CreatedAt

	return nil
}

func (s *shareLinkStore) FindForUser(_ context.Context, userID uuid.UUID, shareID string) (*entity.ShareLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, link := range s.links {
		if link.UserID == userID && link.ShareID == shareID {
			found := *link
			return &found, nil
		}
	}

	return nil, repository.ErrShareLinkNotFound
}

func (s *shareLinkStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.ShareLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.ShareLink
	for _, link := range s.links {
		if link.UserID == userID {
			found := *link
			out = append(out, &found)
		}
	}

	return out, nil
}

func (s *shareLinkStore) Delete(_ context.Context, userID uuid.UUID, shareID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, link := range s.links {
		if link.UserID == userID && link.ShareID == shareID {
			s.links = append(s.links[:i], s.links[i+1:]...)
			return nil
		}
	}

	return repository.ErrShareLinkNotFound
}

func (s *shareLinkStore) TouchLastUsed(_ context.Context, userID uuid.UUID, shareID string, usedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, link := range s.links {
		if link.UserID == userID && link.ShareID == shareID {
			used := usedAt
			link.LastUsed = &used
			return nil
		}
	}

	return repository.ErrShareLinkNotFound
}

// calendarStore is an in-memory CalendarRepository/EventRepository pair.
type calendarStore struct {
	mu        sync.Mutex
	calendars map[uuid.UUID]*entity.Calendar
	events    map[uuid.UUID][]*entity.Event
}

func newCalendarStore() *calendarStore {
	return &calendarStore{
		calendars: make(map[uuid.UUID]*entity.Calendar),
		events:    make(map[uuid.UUID][]*entity.Event),
	}
}

func (s *calendarStore) Create(_ context.Context, calendar *entity.Calendar) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calendars[calendar.ID] = calendar

	return nil
}

func (s *calendarStore) FindForUser(_ context.Context, userID, calendarID uuid.UUID) (*entity.Calendar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	calendar, ok := s.calendars[calendarID]
	if !ok || calendar.UserID != userID {
		return nil, repository.ErrCalendarNotFound
	}

	return calendar, nil
}

func (s *calendarStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Calendar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.Calendar
	for _, calendar := range s.calendars {
		if calendar.UserID == userID {
			out = append(out, calendar)
		}
	}

	return out, nil
}

func (s *calendarStore) addEvent(event *entity.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.CalendarID] = append(s.events[event.CalendarID], event)
}

func (s *calendarStore) CreateEvent(_ context.Context, event *entity.Event) error {
	s.addEvent(event)

	return nil
}

func (s *calendarStore) ListByCalendar(_ context.Context, calendarID uuid.UUID) ([]*entity.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*entity.Event(nil), s.events[calendarID]...), nil
}

type eventStoreAdapter struct {
	store *calendarStore
}

func (a *eventStoreAdapter) Create(ctx context.Context, event *entity.Event) error {
	return a.store.CreateEvent(ctx, event)
}

func (a *eventStoreAdapter) ListByCalendar(ctx context.Context, calendarID uuid.UUID) ([]*entity.Event, error) {
	return a.store.ListByCalendar(ctx, calendarID)
}

// pipelineRepoFactory hands the shared stores to transactional callbacks.
// Only the share-link and index repositories take part in transactions.
type pipelineRepoFactory struct {
	shareLinks repository.ShareLinkRepository
	index      repository.ReverseIndexRepository
}

func (f *pipelineRepoFactory) UserRepo() repository.UserRepository                 { return nil }
func (f *pipelineRepoFactory) AuthRepo() repository.AuthRepository                 { return nil }
func (f *pipelineRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository { return nil }
func (f *pipelineRepoFactory) CalendarRepo() repository.CalendarRepository         { return nil }
func (f *pipelineRepoFactory) EventRepo() repository.EventRepository               { return nil }
func (f *pipelineRepoFactory) ShareLinkRepo() repository.ShareLinkRepository       { return f.shareLinks }
func (f *pipelineRepoFactory) ReverseIndexRepo() repository.ReverseIndexRepository { return f.index }

type pipelineTxManager struct {
	factory repository.RepositoryFactory
}

func (m *pipelineTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// sharePipeline wires the real codec, verifier, index and feed renderer
// against in-memory stores, so the derived keys computed at creation are
// the same ones the resolution path recomputes.
type sharePipeline struct {
	shares    usecase.ShareUsecase
	feeds     usecase.FeedUsecase
	calendars *calendarStore
}

func newSharePipeline(t *testing.T) *sharePipeline {
	t.Helper()

	cfg := &config.Config{
		ShareLinks: &config.ShareLinksConfig{
			PublicBaseURL: "https://cal.example.com",
			CreateRetries: 3,
			IndexKey:      base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x24}, 32)),
			// Deliberately cheap parameters so the test stays fast.
			Argon2: config.Argon2Config{MemoryKiB: 64, Time: 1, Threads: 1},
		},
	}

	codec := secret.NewCodec()
	verifier, err := secret.NewVerifier(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	links := &shareLinkStore{}
	index := memory.NewIndex()
	calendars := newCalendarStore()

	txManager := &pipelineTxManager{factory: &pipelineRepoFactory{
		shareLinks: links,
		index:      index,
	}}

	shares := NewShareService(ShareServiceParams{
		TxManager:     txManager,
		CalendarRepo:  calendars,
		ShareLinkRepo: links,
		Codec:         codec,
		Verifier:      verifier,
		QRCodeService: nil,
		Config:        cfg,
		Logger:        logger,
	})

	feeds := NewFeedService(FeedServiceParams{
		IndexRepo:     index,
		ShareLinkRepo: links,
		CalendarRepo:  calendars,
		EventRepo:     &eventStoreAdapter{store: calendars},
		Codec:         codec,
		Verifier:      verifier,
		FeedWriter:    ical.NewFeedWriter(),
		Logger:        logger,
	})

	return &sharePipeline{shares: shares, feeds: feeds, calendars: calendars}
}

func (p *sharePipeline) seedCalendar(userID uuid.UUID, name string) uuid.UUID {
	calendarID := uuid.New()
	p.calendars.calendars[calendarID] = &entity.Calendar{ID: calendarID, UserID: userID, Name: name}

	return calendarID
}

func TestSharePipeline_CreateResolveRevoke_Integration(t *testing.T) {
	pipeline := newSharePipeline(t)

	ctx := context.Background()
	userID := uuid.New()
	workID := pipeline.seedCalendar(userID, "work")
	personalID := pipeline.seedCalendar(userID, "personal")
	pipeline.calendars.addEvent(&entity.Event{
		ID:         uuid.New(),
		CalendarID: personalID,
		UID:        "private-1@example.com",
		RawICal:    "BEGIN:VEVENT\r\nUID:private-1@example.com\r\nSUMMARY:Dentist\r\nEND:VEVENT",
	})

	created, err := pipeline.shares.CreateShareLink(ctx, &usecase.CreateShareLinkInput{
		UserID:      userID,
		CalendarID:  workID,
		Description: "Q1",
	})
	require.NoError(t, err)
	assert.Len(t, created.Token, secret.TokenLength)
	assert.Equal(t, "https://cal.example.com/share/"+created.Token, created.URL)

	// A freshly shared empty calendar serves a valid empty feed.
	output, err := pipeline.feeds.ResolveFeed(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, "work", output.CalendarName)
	assert.True(t, strings.HasPrefix(output.Body, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(output.Body, "END:VCALENDAR\r\n"))
	assert.NotContains(t, output.Body, "BEGIN:VEVENT")

	// The token reaches exactly the shared calendar's events, never a
	// sibling calendar of the same account.
	pipeline.calendars.addEvent(&entity.Event{
		ID:         uuid.New(),
		CalendarID: workID,
		UID:        "standup-1@example.com",
		RawICal:    "BEGIN:VEVENT\r\nUID:standup-1@example.com\r\nSUMMARY:Standup\r\nEND:VEVENT",
	})
	output, err = pipeline.feeds.ResolveFeed(ctx, created.Token)
	require.NoError(t, err)
	assert.Contains(t, output.Body, "UID:standup-1@example.com")
	assert.NotContains(t, output.Body, "private-1@example.com")

	// Flipping one character keeps the token well-formed but changes its
	// lookup key, which must read as unauthorized, never as a crash or a
	// storage failure.
	altered := "A" + created.Token[1:]
	if created.Token[0] == 'A' {
		altered = "B" + created.Token[1:]
	}
	_, err = pipeline.feeds.ResolveFeed(ctx, altered)
	assert.ErrorIs(t, err, domainerrors.ErrShareUnauthorized)
	assert.NotErrorIs(t, err, domainerrors.ErrStorageUnavailable)

	// Revocation takes effect immediately for the exact same token.
	require.NoError(t, pipeline.shares.DeleteShareLink(ctx, userID, created.ShareID))
	_, err = pipeline.feeds.ResolveFeed(ctx, created.Token)
	assert.ErrorIs(t, err, domainerrors.ErrShareUnauthorized)
}

func TestShareService_ConcurrentCreate_Integration(t *testing.T) {
	pipeline := newSharePipeline(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := pipeline.seedCalendar(userID, "work")

	const n = 8
	outputs := make(chan *usecase.CreateShareLinkOutput, n)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()

			created, err := pipeline.shares.CreateShareLink(ctx, &usecase.CreateShareLinkInput{
				UserID:     userID,
				CalendarID: calendarID,
			})
			assert.NoError(t, err)
			outputs <- created
		}()
	}
	wg.Wait()
	close(outputs)

	tokens := make(map[string]struct{}, n)
	for created := range outputs {
		require.NotNil(t, created)
		tokens[created.Token] = struct{}{}
	}
	assert.Len(t, tokens, n)

	links, err := pipeline.shares.ListShareLinks(ctx, userID)
	require.NoError(t, err)
	require.Len(t, links, n)

	shareIDs := make(map[string]struct{}, n)
	for i, link := range links {
		shareIDs[link.ShareID] = struct{}{}
		assert.NotEmpty(t, link.SecretHash)
		if i > 0 {
			assert.False(t, link.CreatedAt.Before(links[i-1].CreatedAt),
				"links must come back in creation order")
		}
	}
	assert.Len(t, shareIDs, n)
}
