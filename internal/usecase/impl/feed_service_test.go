package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	"calshare/internal/domain/service"
	mockRepo "calshare/internal/mocks/repository"
	mockService "calshare/internal/mocks/service"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedServiceMocks struct {
	indexRepo     *mockRepo.MockReverseIndexRepository
	shareLinkRepo *mockRepo.MockShareLinkRepository
	calendarRepo  *mockRepo.MockCalendarRepository
	eventRepo     *mockRepo.MockEventRepository
	codec         *mockService.MockSecretCodec
	verifier      *mockService.MockSecretVerifier
	feedWriter    *mockService.MockFeedWriter
}

func newFeedService(t *testing.T) (usecase.FeedUsecase, *feedServiceMocks) {
	t.Helper()

	return newFeedServiceWithLogger(t, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newFeedServiceWithLogger(t *testing.T, logger *slog.Logger) (usecase.FeedUsecase, *feedServiceMocks) {
	t.Helper()

	mocks := &feedServiceMocks{
		indexRepo:     mockRepo.NewMockReverseIndexRepository(t),
		shareLinkRepo: mockRepo.NewMockShareLinkRepository(t),
		calendarRepo:  mockRepo.NewMockCalendarRepository(t),
		eventRepo:     mockRepo.NewMockEventRepository(t),
		codec:         mockService.NewMockSecretCodec(t),
		verifier:      mockService.NewMockSecretVerifier(t),
		feedWriter:    mockService.NewMockFeedWriter(t),
	}

	feedUsecase := NewFeedService(FeedServiceParams{
		IndexRepo:     mocks.indexRepo,
		ShareLinkRepo: mocks.shareLinkRepo,
		CalendarRepo:  mocks.calendarRepo,
		EventRepo:     mocks.eventRepo,
		Codec:         mocks.codec,
		Verifier:      mocks.verifier,
		FeedWriter:    mocks.feedWriter,
		Logger:        logger,
	})

	return feedUsecase, mocks
}

// logCapture is a slog handler that records every emitted level.
type logCapture struct {
	mu     sync.Mutex
	levels []slog.Level
}

func (h *logCapture) Enabled(context.Context, slog.Level) bool { return true }

func (h *logCapture) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.levels = append(h.levels, r.Level)

	return nil
}

func (h *logCapture) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *logCapture) WithGroup(string) slog.Handler { return h }

func (h *logCapture) captured() []slog.Level {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]slog.Level(nil), h.levels...)
}

func TestFeedService_ResolveFeed_Success(t *testing.T) {
	feedUsecase, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()
	secret := entity.ShareSecret{1}
	entry := &entity.ReverseIndexEntry{LookupKey: "lookup-key", UserID: userID, ShareID: "share-id"}
	link := &entity.ShareLink{ShareID: "share-id", UserID: userID, CalendarID: calendarID, SecretHash: "phc-hash"}
	calendar := &entity.Calendar{ID: calendarID, UserID: userID, Name: "work"}
	events := []*entity.Event{{ID: uuid.New(), CalendarID: calendarID, UID: "u1"}}

	mocks.codec.EXPECT().Decode("the-token").Return(secret, nil)
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key")
	mocks.indexRepo.EXPECT().Get(ctx, "lookup-key").Return(entry, nil)
	mocks.shareLinkRepo.EXPECT().FindForUser(ctx, userID, "share-id").Return(link, nil)
	mocks.verifier.EXPECT().Verify(secret, "phc-hash").Return(true)
	mocks.calendarRepo.EXPECT().FindForUser(ctx, userID, calendarID).Return(calendar, nil)
	mocks.eventRepo.EXPECT().ListByCalendar(ctx, calendarID).Return(events, nil)
	mocks.feedWriter.EXPECT().Render(calendar, events).Return("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")

	touched := make(chan struct{})
	mocks.shareLinkRepo.EXPECT().
		TouchLastUsed(mock.Anything, userID, "share-id", mock.AnythingOfType("time.Time")).
		RunAndReturn(func(context.Context, uuid.UUID, string, time.Time) error {
			close(touched)
			return nil
		})

	output, err := feedUsecase.ResolveFeed(ctx, "the-token")

	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", output.Body)
	assert.Equal(t, "work", output.CalendarName)

	select {
	case <-touched:
	case <-time.After(time.Second):
		t.Fatal("last-used timestamp was never touched")
	}
}

func TestFeedService_ResolveFeed_TouchFailureStillServes(t *testing.T) {
	feedUsecase, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()
	secret := entity.ShareSecret{1}
	entry := &entity.ReverseIndexEntry{LookupKey: "lookup-key", UserID: userID, ShareID: "share-id"}
	link := &entity.ShareLink{ShareID: "share-id", UserID: userID, CalendarID: calendarID, SecretHash: "phc-hash"}
	calendar := &entity.Calendar{ID: calendarID, UserID: userID, Name: "work"}

	mocks.codec.EXPECT().Decode("the-token").Return(secret, nil)
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key")
	mocks.indexRepo.EXPECT().Get(ctx, "lookup-key").Return(entry, nil)
	mocks.shareLinkRepo.EXPECT().FindForUser(ctx, userID, "share-id").Return(link, nil)
	mocks.verifier.EXPECT().Verify(secret, "phc-hash").Return(true)
	mocks.calendarRepo.EXPECT().FindForUser(ctx, userID, calendarID).Return(calendar, nil)
	mocks.eventRepo.EXPECT().ListByCalendar(ctx, calendarID).Return(nil, nil)
	mocks.feedWriter.EXPECT().Render(calendar, []*entity.Event(nil)).Return("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")

	touched := make(chan struct{})
	mocks.shareLinkRepo.EXPECT().
		TouchLastUsed(mock.Anything, userID, "share-id", mock.AnythingOfType("time.Time")).
		RunAndReturn(func(context.Context, uuid.UUID, string, time.Time) error {
			close(touched)
			return assert.AnError
		})

	output, err := feedUsecase.ResolveFeed(ctx, "the-token")

	// The timestamp update is best effort; its failure never reaches the
	// request that triggered it.
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", output.Body)

	select {
	case <-touched:
	case <-time.After(time.Second):
		t.Fatal("last-used update was never attempted")
	}
}

func TestFeedService_ResolveFeed_MalformedToken(t *testing.T) {
	feedUsecase, mocks := newFeedService(t)

	ctx := context.Background()

	mocks.codec.EXPECT().Decode("not-a-token").Return(entity.ShareSecret{}, service.ErrMalformedToken)

	output, err := feedUsecase.ResolveFeed(ctx, "not-a-token")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrShareUnauthorized)
}

func TestFeedService_ResolveFeed_MalformedTokenLogsDebug(t *testing.T) {
	capture := &logCapture{}
	feedUsecase, mocks := newFeedServiceWithLogger(t, slog.New(capture))

	ctx := context.Background()

	mocks.codec.EXPECT().Decode("not-a-token").Return(entity.ShareSecret{}, service.ErrMalformedToken)

	// Well past the warn budget: malformed input is routine, so none of
	// these may surface above debug no matter how many arrive.
	for range unauthorizedWarnLimit + 5 {
		_, err := feedUsecase.ResolveFeed(ctx, "not-a-token")
		require.ErrorIs(t, err, domainerrors.ErrShareUnauthorized)
	}

	levels := capture.captured()
	require.Len(t, levels, unauthorizedWarnLimit+5)
	for _, level := range levels {
		assert.Equal(t, slog.LevelDebug, level)
	}
}

func TestFeedService_ResolveFeed_UnknownToken(t *testing.T) {
	feedUsecase, mocks := newFeedService(t)

	ctx := context.Background()
	secret := entity.ShareSecret{1}

	mocks.codec.EXPECT().Decode("the-token").Return(secret, nil)
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key")
	mocks.indexRepo.EXPECT().Get(ctx, "lookup-key").Return(nil, nil)

	_, err := feedUsecase.ResolveFeed(ctx, "the-token")

	assert.ErrorIs(t, err, domainerrors.ErrShareUnauthorized)
}

func TestFeedService_ResolveFeed_StaleIndexEntry(t *testing.T) {
	feedUsecase, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	secret := entity.ShareSecret{1}
	entry := &entity.ReverseIndexEntry{LookupKey: "lookup-key", UserID: userID, ShareID: "share-id"}

	mocks.codec.EXPECT().Decode("the-token").Return(secret, nil)
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key")
	mocks.indexRepo.EXPECT().Get(ctx, "lookup-key").Return(entry, nil)
	mocks.shareLinkRepo.EXPECT().
		FindForUser(ctx, userID, "share-id").
		Return(nil, repository.ErrShareLinkNotFound)
	// The dangling entry is reconciled on the spot.
	mocks.indexRepo.EXPECT().Remove(ctx, "lookup-key").Return(nil)

	_, err := feedUsecase.ResolveFeed(ctx, "the-token")

	assert.ErrorIs(t, err, domainerrors.ErrShareUnauthorized)
}

func TestFeedService_ResolveFeed_HashMismatch(t *testing.T) {
	feedUsecase, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	secret := entity.ShareSecret{1}
	entry := &entity.ReverseIndexEntry{LookupKey: "lookup-key", UserID: userID, ShareID: "share-id"}
	link := &entity.ShareLink{ShareID: "share-id", UserID: userID, SecretHash: "phc-hash"}

	mocks.codec.EXPECT().Decode("the-token").Return(secret, nil)
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key")
	mocks.indexRepo.EXPECT().Get(ctx, "lookup-key").Return(entry, nil)
	mocks.shareLinkRepo.EXPECT().FindForUser(ctx, userID, "share-id").Return(link, nil)
	mocks.verifier.EXPECT().Verify(secret, "phc-hash").Return(false)
	mocks.indexRepo.EXPECT().Remove(ctx, "lookup-key").Return(nil)

	_, err := feedUsecase.ResolveFeed(ctx, "the-token")

	assert.ErrorIs(t, err, domainerrors.ErrShareUnauthorized)
}

func TestFeedService_ResolveFeed_CalendarGone(t *testing.T) {
	feedUsecase, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()
	secret := entity.ShareSecret{1}
	entry := &entity.ReverseIndexEntry{LookupKey: "lookup-key", UserID: userID, ShareID: "share-id"}
	link := &entity.ShareLink{ShareID: "share-id", UserID: userID, CalendarID: calendarID, SecretHash: "phc-hash"}

	mocks.codec.EXPECT().Decode("the-token").Return(secret, nil)
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key")
	mocks.indexRepo.EXPECT().Get(ctx, "lookup-key").Return(entry, nil)
	mocks.shareLinkRepo.EXPECT().FindForUser(ctx, userID, "share-id").Return(link, nil)
	mocks.verifier.EXPECT().Verify(secret, "phc-hash").Return(true)
	mocks.calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(nil, repository.ErrCalendarNotFound)

	_, err := feedUsecase.ResolveFeed(ctx, "the-token")

	// A valid token pointing at a deleted calendar is not an auth failure.
	assert.ErrorIs(t, err, domainerrors.ErrCalendarNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrShareUnauthorized)
}

func TestFeedService_ResolveFeed_StorageUnavailable(t *testing.T) {
	feedUsecase, mocks := newFeedService(t)

	ctx := context.Background()
	secret := entity.ShareSecret{1}

	mocks.codec.EXPECT().Decode("the-token").Return(secret, nil)
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key")
	mocks.indexRepo.EXPECT().Get(ctx, "lookup-key").Return(nil, assert.AnError)

	_, err := feedUsecase.ResolveFeed(ctx, "the-token")

	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, domainerrors.ErrShareUnauthorized)
}

func TestFixedWindowThrottle(t *testing.T) {
	throttle := newFixedWindowThrottle(3, time.Minute)
	now := time.Now()

	for range 3 {
		assert.True(t, throttle.allow(now))
	}
	assert.False(t, throttle.allow(now))
	assert.False(t, throttle.allow(now.Add(30*time.Second)))

	// A new window resets the budget.
	assert.True(t, throttle.allow(now.Add(time.Minute)))
}
