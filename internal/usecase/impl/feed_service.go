package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "calshare/internal/delivery/context"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	"calshare/internal/domain/service"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	unauthorizedWarnLimit  = 20
	unauthorizedWarnWindow = time.Minute
)

// feedService implements the FeedUsecase interface: the anonymous path
// from a presented token to a rendered calendar feed.
type feedService struct {
	indexRepo     repository.ReverseIndexRepository
	shareLinkRepo repository.ShareLinkRepository
	calendarRepo  repository.CalendarRepository
	eventRepo     repository.EventRepository
	codec         service.SecretCodec
	verifier      service.SecretVerifier
	feedWriter    service.FeedWriter
	logger        *slog.Logger
	warnThrottle  *fixedWindowThrottle
}

// FeedServiceParams holds dependencies for feedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	IndexRepo     repository.ReverseIndexRepository
	ShareLinkRepo repository.ShareLinkRepository
	CalendarRepo  repository.CalendarRepository
	EventRepo     repository.EventRepository
	Codec         service.SecretCodec
	Verifier      service.SecretVerifier
	FeedWriter    service.FeedWriter
	Logger        *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(params FeedServiceParams) usecase.FeedUsecase {
	return &feedService{
		indexRepo:     params.IndexRepo,
		shareLinkRepo: params.ShareLinkRepo,
		calendarRepo:  params.CalendarRepo,
		eventRepo:     params.EventRepo,
		codec:         params.Codec,
		verifier:      params.Verifier,
		feedWriter:    params.FeedWriter,
		logger:        params.Logger,
		warnThrottle:  newFixedWindowThrottle(unauthorizedWarnLimit, unauthorizedWarnWindow),
	}
}

func (srv *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveFeed authorizes a presented token and renders the calendar feed
// it grants access to. No locks are held during the argon2 verification;
// the worst case for a wrong guess is one index probe and one hash.
func (srv *feedService) ResolveFeed(ctx context.Context, token string) (*usecase.FeedOutput, error) {
	secret, err := srv.codec.Decode(token)
	if err != nil {
		// Routine bad input, not a guessing signal; stays at debug and
		// never draws from the warn budget.
		srv.log(ctx).Debug("Feed request unauthorized", slog.String("reason", "malformed token"))

		return nil, domainerrors.ErrShareUnauthorized
	}

	entry, err := srv.indexRepo.Get(ctx, srv.verifier.LookupKey(secret))
	if err != nil {
		return nil, srv.storageFailure(ctx, err, "index lookup failed")
	}
	if entry == nil {
		return nil, srv.unauthorized(ctx, "unknown token")
	}

	link, err := srv.shareLinkRepo.FindForUser(ctx, entry.UserID, entry.ShareID)
	if err != nil {
		if errors.Is(err, repository.ErrShareLinkNotFound) {
			// The record is authoritative; an entry without one is stale.
			srv.removeStaleEntry(ctx, entry.LookupKey)

			return nil, srv.unauthorized(ctx, "index entry without record")
		}

		return nil, srv.storageFailure(ctx, err, "record load failed")
	}

	if !srv.verifier.Verify(secret, link.SecretHash) {
		// The index pointed at a record whose hash does not match the
		// secret. The entry cannot be serving anyone; drop it.
		srv.removeStaleEntry(ctx, entry.LookupKey)

		return nil, srv.unauthorized(ctx, "hash mismatch")
	}

	calendar, err := srv.calendarRepo.FindForUser(ctx, link.UserID, link.CalendarID)
	if err != nil {
		if errors.Is(err, repository.ErrCalendarNotFound) {
			// The token is valid; the thing it points to is gone. This is
			// deliberately distinguishable from an auth failure.
			return nil, domainerrors.ErrCalendarNotFound.WrapMessage("shared calendar no longer exists")
		}

		return nil, srv.storageFailure(ctx, err, "calendar load failed")
	}

	events, err := srv.eventRepo.ListByCalendar(ctx, calendar.ID)
	if err != nil {
		return nil, srv.storageFailure(ctx, err, "event fetch failed")
	}

	body := srv.feedWriter.Render(calendar, events)

	srv.touchLastUsed(ctx, link.UserID, link.ShareID)

	return &usecase.FeedOutput{
		Body:         body,
		CalendarName: calendar.Name,
	}, nil
}

// unauthorized collapses every failure of a well-formed token into the
// single opaque error. The reason stays server-side, behind a throttle so
// a guessing storm cannot flood the log.
func (srv *feedService) unauthorized(ctx context.Context, reason string) error {
	if srv.warnThrottle.allow(time.Now()) {
		srv.log(ctx).Warn("Feed request unauthorized", slog.String("reason", reason))
	} else {
		srv.log(ctx).Debug("Feed request unauthorized", slog.String("reason", reason))
	}

	return domainerrors.ErrShareUnauthorized
}

func (srv *feedService) storageFailure(ctx context.Context, err error, msg string) error {
	srv.log(ctx).Error("Feed storage failure", slog.String("stage", msg), slog.Any("error", err))

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.ErrStorageUnavailable.WrapMessage(msg)
}

// removeStaleEntry lazily reconciles the index with the record store.
// Best effort: a failure leaves a dead entry that costs one extra probe.
func (srv *feedService) removeStaleEntry(ctx context.Context, lookupKey string) {
	if err := srv.indexRepo.Remove(ctx, lookupKey); err != nil {
		srv.log(ctx).Warn("Failed to remove stale index entry", slog.Any("error", err))
	}
}

// touchLastUsed records the access without delaying the response. The
// update is detached from the request's cancellation so it completes
// even when the client disconnects mid-download; failures only cost the
// owner a stale timestamp.
func (srv *feedService) touchLastUsed(ctx context.Context, userID uuid.UUID, shareID string) {
	detached := context.WithoutCancel(ctx)
	usedAt := time.Now()

	go func() {
		touchCtx, cancel := context.WithTimeout(detached, 5*time.Second)
		defer cancel()

		if err := srv.shareLinkRepo.TouchLastUsed(touchCtx, userID, shareID, usedAt); err != nil {
			srv.log(detached).Warn("Failed to update share last-used timestamp",
				slog.String("shareID", shareID),
				slog.Any("error", err),
			)
		}
	}()
}

// fixedWindowThrottle admits a bounded number of events per window.
type fixedWindowThrottle struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	windowStart time.Time
	count       int
}

func newFixedWindowThrottle(limit int, window time.Duration) *fixedWindowThrottle {
	return &fixedWindowThrottle{limit: limit, window: window}
}

func (t *fixedWindowThrottle) allow(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Sub(t.windowStart) >= t.window {
		t.windowStart = now
		t.count = 0
	}

	t.count++

	return t.count <= t.limit
}
