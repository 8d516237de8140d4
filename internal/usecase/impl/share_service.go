package impl

import (
	"context"
	"log/slog"
	"strings"

	"calshare/config"
	deliverycontext "calshare/internal/delivery/context"
	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	"calshare/internal/domain/service"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shareService implements the ShareUsecase interface.
type shareService struct {
	txManager     repository.TransactionManager
	calendarRepo  repository.CalendarRepository
	shareLinkRepo repository.ShareLinkRepository
	codec         service.SecretCodec
	verifier      service.SecretVerifier
	qrcodeService service.QRCodeService
	publicBaseURL string
	createRetries int
	logger        *slog.Logger
}

// ShareServiceParams holds dependencies for shareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CalendarRepo  repository.CalendarRepository
	ShareLinkRepo repository.ShareLinkRepository
	Codec         service.SecretCodec
	Verifier      service.SecretVerifier
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewShareService is the constructor for shareService.
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	publicBaseURL := ""
	createRetries := 1
	if params.Config != nil && params.Config.ShareLinks != nil {
		publicBaseURL = strings.TrimRight(params.Config.ShareLinks.PublicBaseURL, "/")
		if params.Config.ShareLinks.CreateRetries > 0 {
			createRetries = params.Config.ShareLinks.CreateRetries
		}
	}
	if publicBaseURL == "" {
		// Tokens still resolve, but create responses and QR codes carry a
		// relative /share/<token> URL that clients cannot open directly.
		params.Logger.Warn("shareLinks.publicBaseUrl is not configured, share URLs will be relative")
	}

	return &shareService{
		txManager:     params.TxManager,
		calendarRepo:  params.CalendarRepo,
		shareLinkRepo: params.ShareLinkRepo,
		codec:         params.Codec,
		verifier:      params.Verifier,
		qrcodeService: params.QRCodeService,
		publicBaseURL: publicBaseURL,
		createRetries: createRetries,
		logger:        params.Logger,
	}
}

func (srv *shareService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShareLink mints a fresh secret for one calendar and persists only
// its derived hashes; the plaintext token is returned exactly once. The
// record and its reverse-index entry commit in one transaction. A
// collision on either derived key aborts the transaction and retries
// with a brand-new secret, a bounded number of times.
func (srv *shareService) CreateShareLink(ctx context.Context, input *usecase.CreateShareLinkInput) (*usecase.CreateShareLinkOutput, error) {
	if _, err := srv.calendarRepo.FindForUser(ctx, input.UserID, input.CalendarID); err != nil {
		if errors.Is(err, repository.ErrCalendarNotFound) {
			return nil, domainerrors.ErrCalendarNotFound.WrapMessage("calendar not found")
		}

		return nil, errors.Wrap(err, "failed to load calendar")
	}

	var lastErr error
	for attempt := 0; attempt < srv.createRetries; attempt++ {
		secret, err := srv.codec.Generate()
		if err != nil {
			srv.log(ctx).Error("Secret generation failed", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to generate share secret")
		}

		secretHash, err := srv.verifier.Hash(secret)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash share secret")
		}

		link := &entity.ShareLink{
			ShareID:     srv.verifier.ShareID(secretHash),
			UserID:      input.UserID,
			CalendarID:  input.CalendarID,
			Description: input.Description,
			SecretHash:  secretHash,
		}
		indexEntry := &entity.ReverseIndexEntry{
			LookupKey: srv.verifier.LookupKey(secret),
			UserID:    input.UserID,
			ShareID:   link.ShareID,
		}

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.ShareLinkRepo().Create(ctx, link); err != nil {
				return err
			}

			return repoFactory.ReverseIndexRepo().Put(ctx, indexEntry)
		})
		if err == nil {
			token := srv.codec.Encode(secret)
			srv.log(ctx).Info("Share link created",
				slog.String("shareID", link.ShareID),
				slog.Any("calendarID", input.CalendarID),
				slog.Int("attempt", attempt+1),
			)

			return &usecase.CreateShareLinkOutput{
				ShareID:   link.ShareID,
				Token:     token,
				URL:       srv.feedURL(token),
				CreatedAt: link.CreatedAt,
			}, nil
		}

		lastErr = err
		if !isShareCollision(err) {
			return nil, err
		}

		srv.log(ctx).Warn("Share link collision, regenerating secret",
			slog.Any("calendarID", input.CalendarID),
			slog.Int("attempt", attempt+1),
		)
	}

	srv.log(ctx).Error("Share link creation exhausted retries", slog.Any("error", lastErr))

	return nil, domainerrors.ErrShareConflict.WrapMessage("could not allocate a unique share link")
}

// ListShareLinks returns the account's links in creation order.
func (srv *shareService) ListShareLinks(ctx context.Context, userID uuid.UUID) ([]*entity.ShareLink, error) {
	links, err := srv.shareLinkRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list share links", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list share links")
	}

	return links, nil
}

// DeleteShareLink revokes a link. Record and index rows are removed in
// one transaction, so the token stops resolving immediately.
func (srv *shareService) DeleteShareLink(ctx context.Context, userID uuid.UUID, shareID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ShareLinkRepo().Delete(ctx, userID, shareID); err != nil {
			return err
		}

		return repoFactory.ReverseIndexRepo().RemoveByShareID(ctx, shareID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrShareLinkNotFound) {
			return domainerrors.ErrShareNotFound.WrapMessage("share link not found")
		}

		srv.log(ctx).Error("Failed to delete share link", slog.String("shareID", shareID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete share link")
	}

	srv.log(ctx).Info("Share link revoked", slog.String("shareID", shareID), slog.Any("userID", userID))

	return nil
}

// ShareLinkQRCode renders the public feed URL of a link as a PNG. Only
// the client still holds the plaintext token, so it must supply it; the
// token is checked against the link's stored hash before anything is
// rendered, so the endpoint cannot be used to probe foreign links.
func (srv *shareService) ShareLinkQRCode(ctx context.Context, userID uuid.UUID, shareID, token string) ([]byte, error) {
	link, err := srv.shareLinkRepo.FindForUser(ctx, userID, shareID)
	if err != nil {
		if errors.Is(err, repository.ErrShareLinkNotFound) {
			return nil, domainerrors.ErrShareNotFound.WrapMessage("share link not found")
		}

		return nil, errors.Wrap(err, "failed to load share link")
	}

	secret, err := srv.codec.Decode(token)
	if err != nil || !srv.verifier.Verify(secret, link.SecretHash) {
		return nil, domainerrors.ErrShareNotFound.WrapMessage("token does not match share link")
	}

	png, err := srv.qrcodeService.GenerateShareQR(srv.feedURL(token))
	if err != nil {
		srv.log(ctx).Error("Failed to render QR code", slog.String("shareID", shareID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}

func (srv *shareService) feedURL(pathSegment string) string {
	return srv.publicBaseURL + "/share/" + pathSegment
}

// isShareCollision reports whether creation failed only because a derived
// key already exists, which a fresh secret resolves.
func isShareCollision(err error) bool {
	if errors.Is(err, repository.ErrIndexConflict) {
		return true
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode() == domainerrors.ErrShareConflict.ErrorCode()
	}

	return false
}
