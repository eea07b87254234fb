package postgres

import (
	"context"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/repository"
	"skycast/internal/errors"
	"skycast/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository builds the GORM-backed account store.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	record := toAccountModel(account)

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateAccount
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.ID = record.ID
	account.CreatedAt = record.CreatedAt

	return nil
}

func (r *accountRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error) {
	var record model.AccountModel

	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to query account")
	}

	return toAccountEntity(&record), nil
}

func toAccountModel(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
}

func toAccountEntity(record *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           record.ID,
		Username:     record.Username,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		CreatedAt:    record.CreatedAt,
	}
}
