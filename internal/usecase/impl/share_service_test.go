package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"calshare/config"
	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	mockRepo "calshare/internal/mocks/repository"
	mockService "calshare/internal/mocks/service"
	"calshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shareServiceMocks struct {
	txManager     *mockRepo.MockTransactionManager
	calendarRepo  *mockRepo.MockCalendarRepository
	shareLinkRepo *mockRepo.MockShareLinkRepository
	codec         *mockService.MockSecretCodec
	verifier      *mockService.MockSecretVerifier
	qrcodeService *mockService.MockQRCodeService
}

func newShareService(t *testing.T, retries int) (usecase.ShareUsecase, *shareServiceMocks) {
	t.Helper()

	mocks := &shareServiceMocks{
		txManager:     mockRepo.NewMockTransactionManager(t),
		calendarRepo:  mockRepo.NewMockCalendarRepository(t),
		shareLinkRepo: mockRepo.NewMockShareLinkRepository(t),
		codec:         mockService.NewMockSecretCodec(t),
		verifier:      mockService.NewMockSecretVerifier(t),
		qrcodeService: mockService.NewMockQRCodeService(t),
	}

	cfg := &config.Config{
		ShareLinks: &config.ShareLinksConfig{
			PublicBaseURL: "https://cal.example.com/",
			CreateRetries: retries,
		},
	}

	service := NewShareService(ShareServiceParams{
		TxManager:     mocks.txManager,
		CalendarRepo:  mocks.calendarRepo,
		ShareLinkRepo: mocks.shareLinkRepo,
		Codec:         mocks.codec,
		Verifier:      mocks.verifier,
		QRCodeService: mocks.qrcodeService,
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mocks
}

func TestShareService_CreateShareLink_Success(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()
	secret := entity.ShareSecret{1, 2, 3}

	mocks.calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(&entity.Calendar{ID: calendarID, UserID: userID}, nil)
	mocks.codec.EXPECT().Generate().Return(secret, nil)
	mocks.verifier.EXPECT().Hash(secret).Return("phc-hash", nil)
	mocks.verifier.EXPECT().ShareID("phc-hash").Return("share-id")
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key")
	mocks.codec.EXPECT().Encode(secret).Return("encoded-token")

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShareRepo := mockRepo.NewMockShareLinkRepository(t)
			mockIndexRepo := mockRepo.NewMockReverseIndexRepository(t)

			mockFactory.EXPECT().ShareLinkRepo().Return(mockShareRepo)
			mockFactory.EXPECT().ReverseIndexRepo().Return(mockIndexRepo)

			mockShareRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ShareLink")).
				RunAndReturn(func(_ context.Context, link *entity.ShareLink) error {
					assert.Equal(t, "share-id", link.ShareID)
					assert.Equal(t, "phc-hash", link.SecretHash)
					assert.Equal(t, userID, link.UserID)
					return nil
				})
			mockIndexRepo.EXPECT().
				Put(ctx, mock.AnythingOfType("*entity.ReverseIndexEntry")).
				RunAndReturn(func(_ context.Context, entry *entity.ReverseIndexEntry) error {
					assert.Equal(t, "lookup-key", entry.LookupKey)
					assert.Equal(t, "share-id", entry.ShareID)
					return nil
				})

			return fn(mockFactory)
		})

	output, err := service.CreateShareLink(ctx, &usecase.CreateShareLinkInput{
		UserID:      userID,
		CalendarID:  calendarID,
		Description: "team calendar",
	})

	require.NoError(t, err)
	assert.Equal(t, "share-id", output.ShareID)
	assert.Equal(t, "encoded-token", output.Token)
	assert.Equal(t, "https://cal.example.com/share/encoded-token", output.URL)
}

func TestShareService_CreateShareLink_RetriesOnCollision(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()
	secret := entity.ShareSecret{7}

	mocks.calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(&entity.Calendar{ID: calendarID, UserID: userID}, nil)
	mocks.codec.EXPECT().Generate().Return(secret, nil).Twice()
	mocks.verifier.EXPECT().Hash(secret).Return("phc-hash", nil).Twice()
	mocks.verifier.EXPECT().ShareID("phc-hash").Return("share-id").Twice()
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key").Twice()
	mocks.codec.EXPECT().Encode(secret).Return("encoded-token")

	// First attempt hits an occupied lookup key, second commits.
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrIndexConflict).Once()
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).Once()

	output, err := service.CreateShareLink(ctx, &usecase.CreateShareLinkInput{
		UserID:     userID,
		CalendarID: calendarID,
	})

	require.NoError(t, err)
	assert.Equal(t, "encoded-token", output.Token)
}

func TestShareService_CreateShareLink_ExhaustsRetries(t *testing.T) {
	service, mocks := newShareService(t, 2)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()
	secret := entity.ShareSecret{7}

	mocks.calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(&entity.Calendar{ID: calendarID, UserID: userID}, nil)
	mocks.codec.EXPECT().Generate().Return(secret, nil).Twice()
	mocks.verifier.EXPECT().Hash(secret).Return("phc-hash", nil).Twice()
	mocks.verifier.EXPECT().ShareID("phc-hash").Return("share-id").Twice()
	mocks.verifier.EXPECT().LookupKey(secret).Return("lookup-key").Twice()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrIndexConflict).Twice()

	_, err := service.CreateShareLink(ctx, &usecase.CreateShareLinkInput{
		UserID:     userID,
		CalendarID: calendarID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrShareConflict)
}

func TestShareService_CreateShareLink_CalendarNotOwned(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	calendarID := uuid.New()

	mocks.calendarRepo.EXPECT().
		FindForUser(ctx, userID, calendarID).
		Return(nil, repository.ErrCalendarNotFound)

	_, err := service.CreateShareLink(ctx, &usecase.CreateShareLinkInput{
		UserID:     userID,
		CalendarID: calendarID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCalendarNotFound)
}

func TestShareService_ListShareLinks_Success(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	links := []*entity.ShareLink{{ShareID: "a", UserID: userID}, {ShareID: "b", UserID: userID}}

	mocks.shareLinkRepo.EXPECT().ListByUser(ctx, userID).Return(links, nil)

	got, err := service.ListShareLinks(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestShareService_DeleteShareLink_Success(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShareRepo := mockRepo.NewMockShareLinkRepository(t)
			mockIndexRepo := mockRepo.NewMockReverseIndexRepository(t)

			mockFactory.EXPECT().ShareLinkRepo().Return(mockShareRepo)
			mockFactory.EXPECT().ReverseIndexRepo().Return(mockIndexRepo)

			mockShareRepo.EXPECT().Delete(ctx, userID, "share-id").Return(nil)
			mockIndexRepo.EXPECT().RemoveByShareID(ctx, "share-id").Return(nil)

			return fn(mockFactory)
		})

	err := service.DeleteShareLink(ctx, userID, "share-id")

	require.NoError(t, err)
}

func TestShareService_DeleteShareLink_NotFound(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrShareLinkNotFound)

	err := service.DeleteShareLink(ctx, userID, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrShareNotFound)
}

func TestShareService_ShareLinkQRCode_Success(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	secret := entity.ShareSecret{9}
	link := &entity.ShareLink{ShareID: "share-id", UserID: userID, SecretHash: "phc-hash"}

	mocks.shareLinkRepo.EXPECT().FindForUser(ctx, userID, "share-id").Return(link, nil)
	mocks.codec.EXPECT().Decode("the-token").Return(secret, nil)
	mocks.verifier.EXPECT().Verify(secret, "phc-hash").Return(true)
	mocks.qrcodeService.EXPECT().
		GenerateShareQR("https://cal.example.com/share/the-token").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := service.ShareLinkQRCode(ctx, userID, "share-id", "the-token")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestShareService_ShareLinkQRCode_TokenMismatch(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	secret := entity.ShareSecret{9}
	link := &entity.ShareLink{ShareID: "share-id", UserID: userID, SecretHash: "phc-hash"}

	mocks.shareLinkRepo.EXPECT().FindForUser(ctx, userID, "share-id").Return(link, nil)
	mocks.codec.EXPECT().Decode("someone-elses-token").Return(secret, nil)
	mocks.verifier.EXPECT().Verify(secret, "phc-hash").Return(false)

	_, err := service.ShareLinkQRCode(ctx, userID, "share-id", "someone-elses-token")

	assert.ErrorIs(t, err, domainerrors.ErrShareNotFound)
}

func TestShareService_ShareLinkQRCode_MalformedToken(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	link := &entity.ShareLink{ShareID: "share-id", UserID: userID, SecretHash: "phc-hash"}

	mocks.shareLinkRepo.EXPECT().FindForUser(ctx, userID, "share-id").Return(link, nil)
	mocks.codec.EXPECT().Decode("???").Return(entity.ShareSecret{}, assert.AnError)

	_, err := service.ShareLinkQRCode(ctx, userID, "share-id", "???")

	assert.ErrorIs(t, err, domainerrors.ErrShareNotFound)
}

func TestShareService_ShareLinkQRCode_LinkNotFound(t *testing.T) {
	service, mocks := newShareService(t, 3)

	ctx := context.Background()
	userID := uuid.New()

	mocks.shareLinkRepo.EXPECT().
		FindForUser(ctx, userID, "missing").
		Return(nil, repository.ErrShareLinkNotFound)

	_, err := service.ShareLinkQRCode(ctx, userID, "missing", "the-token")

	assert.ErrorIs(t, err, domainerrors.ErrShareNotFound)
}

func TestNewShareService_WarnsWhenBaseURLMissing(t *testing.T) {
	newService := func(t *testing.T, baseURL string) *logCapture {
		t.Helper()
		capture := &logCapture{}
		NewShareService(ShareServiceParams{
			TxManager:     mockRepo.NewMockTransactionManager(t),
			CalendarRepo:  mockRepo.NewMockCalendarRepository(t),
			ShareLinkRepo: mockRepo.NewMockShareLinkRepository(t),
			Codec:         mockService.NewMockSecretCodec(t),
			Verifier:      mockService.NewMockSecretVerifier(t),
			QRCodeService: mockService.NewMockQRCodeService(t),
			Config:        &config.Config{ShareLinks: &config.ShareLinksConfig{PublicBaseURL: baseURL}},
			Logger:        slog.New(capture),
		})
		return capture
	}

	capture := newService(t, "")
	require.Len(t, capture.captured(), 1)
	assert.Equal(t, slog.LevelWarn, capture.captured()[0])

	capture = newService(t, "https://cal.example.com")
	assert.Empty(t, capture.captured())
}
