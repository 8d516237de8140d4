package postgres

import (
	"context"

	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	"calshare/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shareIndexRepository implements the domain.ReverseIndexRepository
// interface on the share_index table. Rows are written in the same
// transaction as their share_links row, so the index can trail the record
// store only when an entry is removed lazily.
type shareIndexRepository struct {
	db *gorm.DB
}

// NewShareIndexRepository is the constructor for shareIndexRepository.
func NewShareIndexRepository(db *gorm.DB) repository.ReverseIndexRepository {
	return &shareIndexRepository{db: db}
}

// Put associates a lookup key with its owning record. Re-putting the
// identical entry is a no-op so index reconciliation can re-run safely.
func (repo *shareIndexRepository) Put(ctx context.Context, entry *entity.ReverseIndexEntry) error {
	entryM := &model.ShareIndexModel{
		LookupKey: entry.LookupKey,
		UserID:    entry.UserID,
		ShareID:   entry.ShareID,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			existing, getErr := repo.Get(ctx, entry.LookupKey)
			if getErr != nil {
				return getErr
			}
			if existing != nil && existing.UserID == entry.UserID && existing.ShareID == entry.ShareID {
				return nil
			}

			return repository.ErrIndexConflict
		}
		if isStorageUnavailable(err) {
			return domainerrors.ErrStorageUnavailable.WrapMessage("failed to write share index entry")
		}

		return errors.WithStack(err)
	}

	return nil
}

// Get resolves a lookup key. A miss is (nil, nil).
func (repo *shareIndexRepository) Get(ctx context.Context, lookupKey string) (*entity.ReverseIndexEntry, error) {
	var entryM model.ShareIndexModel

	err := repo.db.WithContext(ctx).
		Where("lookup_key = ?", lookupKey).
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if isStorageUnavailable(err) {
			return nil, domainerrors.ErrStorageUnavailable.WrapMessage("failed to resolve share index entry")
		}

		return nil, errors.WithStack(err)
	}

	return &entity.ReverseIndexEntry{
		LookupKey: entryM.LookupKey,
		UserID:    entryM.UserID,
		ShareID:   entryM.ShareID,
	}, nil
}

// Remove deletes a lookup key. Removing an absent key is not an error.
func (repo *shareIndexRepository) Remove(ctx context.Context, lookupKey string) error {
	err := repo.db.WithContext(ctx).
		Where("lookup_key = ?", lookupKey).
		Delete(&model.ShareIndexModel{}).Error
	if err != nil {
		if isStorageUnavailable(err) {
			return domainerrors.ErrStorageUnavailable.WrapMessage("failed to remove share index entry")
		}

		return errors.WithStack(err)
	}

	return nil
}

// RemoveByShareID deletes all entries pointing at one share record.
func (repo *shareIndexRepository) RemoveByShareID(ctx context.Context, shareID string) error {
	err := repo.db.WithContext(ctx).
		Where("share_id = ?", shareID).
		Delete(&model.ShareIndexModel{}).Error
	if err != nil {
		if isStorageUnavailable(err) {
			return domainerrors.ErrStorageUnavailable.WrapMessage("failed to remove share index entries")
		}

		return errors.WithStack(err)
	}

	return nil
}
