package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Store hands out units of work bound to one database handle.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Begin opens a transaction. The caller owns Commit/Rollback; a deferred
// Rollback after a successful Commit is a no-op.
func (s *Store) Begin(ctx context.Context) (*UnitOfWork, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "begin transaction")
	}
	return newUnitOfWork(tx, true), nil
}

// Reader returns a non-transactional unit of work for read-only paths.
func (s *Store) Reader(ctx context.Context) *UnitOfWork {
	return newUnitOfWork(s.db.WithContext(ctx), false)
}

// Transaction runs fn inside one unit of work, committing only if fn returns nil.
func (s *Store) Transaction(ctx context.Context, fn func(uow *UnitOfWork) error) error {
	uow, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit()
}

// UnitOfWork groups the repositories that share a single connection or transaction.
type UnitOfWork struct {
	tx            *gorm.DB
	transactional bool
	done          bool

	Medspas      MedspaRepository
	Categories   CategoryRepository
	Types        TypeRepository
	Products     ProductRepository
	Suppliers    SupplierRepository
	Services     ServiceRepository
	Appointments AppointmentRepository
}

func newUnitOfWork(tx *gorm.DB, transactional bool) *UnitOfWork {
	return &UnitOfWork{
		tx:            tx,
		transactional: transactional,
		Medspas:       NewGormMedspaRepository(tx),
		Categories:    NewGormCategoryRepository(tx),
		Types:         NewGormTypeRepository(tx),
		Products:      NewGormProductRepository(tx),
		Suppliers:     NewGormSupplierRepository(tx),
		Services:      NewGormServiceRepository(tx),
		Appointments:  NewGormAppointmentRepository(tx),
	}
}

func (u *UnitOfWork) Commit() error {
	if !u.transactional || u.done {
		return nil
	}
	u.done = true
	return errors.Wrap(u.tx.Commit().Error, "commit transaction")
}

func (u *UnitOfWork) Rollback() error {
	if !u.transactional || u.done {
		return nil
	}
	u.done = true
	err := u.tx.Rollback().Error
	if errors.Is(err, gorm.ErrInvalidTransaction) {
		return nil
	}
	return errors.Wrap(err, "rollback transaction")
}
