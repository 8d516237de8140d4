package repository

import "context"

// RepositoryFactory hands out repository instances bound to one open
// transaction, so multi-step operations (share-link record plus its
// reverse-index entry) commit or roll back as a unit.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
	CalendarRepo() CalendarRepository
	EventRepo() EventRepository
	ShareLinkRepo() ShareLinkRepository
	ReverseIndexRepo() ReverseIndexRepository
}

// TransactionManager executes a function within a single transaction.
// Transactions are scoped to the keys the callback touches; unrelated
// accounts never serialize against each other.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
