package postgres

import (
	"context"
	"time"

	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	"calshare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shareLinkRepository implements the domain.ShareLinkRepository interface.
type shareLinkRepository struct {
	db *gorm.DB
}

// NewShareLinkRepository is the constructor for shareLinkRepository.
func NewShareLinkRepository(db *gorm.DB) repository.ShareLinkRepository {
	return &shareLinkRepository{db: db}
}

// Create persists a new share-link record under its owning user.
func (repo *shareLinkRepository) Create(ctx context.Context, link *entity.ShareLink) error {
	linkM := fromShareLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShareConflict.WrapMessage("share id already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCalendarNotFound.WrapMessage("invalid calendar reference")
		}
		if isStorageUnavailable(err) {
			return domainerrors.ErrStorageUnavailable.WrapMessage("failed to create share link")
		}

		return errors.WithStack(err)
	}

	link.CreatedAt = linkM.CreatedAt

	return nil
}

// FindForUser retrieves a record by share id, scoped to the owning user.
func (repo *shareLinkRepository) FindForUser(ctx context.Context, userID uuid.UUID, shareID string) (*entity.ShareLink, error) {
	var linkM model.ShareLinkModel

	err := repo.db.WithContext(ctx).
		Where("share_id = ? AND user_id = ?", shareID, userID).
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShareLinkNotFound
		}
		if isStorageUnavailable(err) {
			return nil, domainerrors.ErrStorageUnavailable.WrapMessage("failed to load share link")
		}

		return nil, errors.WithStack(err)
	}

	return toShareLinkDomain(&linkM), nil
}

// ListByUser returns all links of a user in creation order.
func (repo *shareLinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShareLink, error) {
	var linkModels []*model.ShareLinkModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&linkModels).Error
	if err != nil {
		if isStorageUnavailable(err) {
			return nil, domainerrors.ErrStorageUnavailable.WrapMessage("failed to list share links")
		}

		return nil, errors.WithStack(err)
	}

	links := make([]*entity.ShareLink, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toShareLinkDomain(linkM))
	}

	return links, nil
}

// Delete removes a record by share id, scoped to the owning user.
func (repo *shareLinkRepository) Delete(ctx context.Context, userID uuid.UUID, shareID string) error {
	result := repo.db.WithContext(ctx).
		Where("share_id = ? AND user_id = ?", shareID, userID).
		Delete(&model.ShareLinkModel{})
	if result.Error != nil {
		if isStorageUnavailable(result.Error) {
			return domainerrors.ErrStorageUnavailable.WrapMessage("failed to delete share link")
		}

		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrShareLinkNotFound
	}

	return nil
}

// TouchLastUsed sets the last-used timestamp of a link. Touching an already
// deleted link is not an error; the serving path runs this best effort.
func (repo *shareLinkRepository) TouchLastUsed(ctx context.Context, userID uuid.UUID, shareID string, usedAt time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ShareLinkModel{}).
		Where("share_id = ? AND user_id = ?", shareID, userID).
		Update("last_used", usedAt).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

func toShareLinkDomain(data *model.ShareLinkModel) *entity.ShareLink {
	if data == nil {
		return nil
	}

	return &entity.ShareLink{
		ShareID:     data.ShareID,
		UserID:      data.UserID,
		CalendarID:  data.CalendarID,
		Description: data.Description,
		SecretHash:  data.SecretHash,
		CreatedAt:   data.CreatedAt,
		LastUsed:    data.LastUsed,
	}
}

func fromShareLinkDomain(data *entity.ShareLink) *model.ShareLinkModel {
	if data == nil {
		return nil
	}

	return &model.ShareLinkModel{
		ShareID:     data.ShareID,
		UserID:      data.UserID,
		CalendarID:  data.CalendarID,
		Description: data.Description,
		SecretHash:  data.SecretHash,
		CreatedAt:   data.CreatedAt,
		LastUsed:    data.LastUsed,
	}
}
