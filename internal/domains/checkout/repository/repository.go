package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"rathh/infras/otel"
	"rathh/internal/domains/checkout/model"
	"rathh/shared"
	"rathh/shared/constant"
	"rathh/shared/kv"
)

const (
	slotSession = "checkout:session"
	slotDraft   = "checkout:draft"
	slotFinal   = "checkout:final"
)

// Checkout persists the per-client checkout slots. Each slot holds one whole
// record per client: writes replace, deletes remove. Missing slots surface as
// kv.Nil so callers can distinguish absence from a storage fault.
type Checkout interface {
	PutSession(ctx context.Context, clientID string, session model.BookingSession) error
	GetSession(ctx context.Context, clientID string) (model.BookingSession, error)
	DeleteSession(ctx context.Context, clientID string) error
	SaveDraft(ctx context.Context, clientID string, draft model.CheckoutDraft) error
	GetDraft(ctx context.Context, clientID string) (model.CheckoutDraft, error)
	DeleteDraft(ctx context.Context, clientID string) error
	PutFinal(ctx context.Context, clientID string, booking model.FinalBooking) error
	GetFinal(ctx context.Context, clientID string) (model.FinalBooking, error)
}

type checkoutRepositoryImpl struct {
	store kv.Store
	otel  otel.Otel
}

func NewCheckoutRepository(store kv.Store, ot otel.Otel) Checkout {
	return &checkoutRepositoryImpl{
		store: store,
		otel:  ot,
	}
}

// PutSession implements Checkout.
func (repo *checkoutRepositoryImpl) PutSession(ctx context.Context, clientID string, session model.BookingSession) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "checkout.PutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.store.Put(ctx, shared.BuildCacheKey(slotSession, clientID), session, 0)
}

// GetSession implements Checkout.
func (repo *checkoutRepositoryImpl) GetSession(ctx context.Context, clientID string) (session model.BookingSession, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "checkout.GetSession")
	defer scope.End()

	err = repo.store.Get(ctx, shared.BuildCacheKey(slotSession, clientID), &session)

	return session, err
}

// DeleteSession implements Checkout.
func (repo *checkoutRepositoryImpl) DeleteSession(ctx context.Context, clientID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "checkout.DeleteSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.store.Delete(ctx, shared.BuildCacheKey(slotSession, clientID))
}

// SaveDraft implements Checkout.
func (repo *checkoutRepositoryImpl) SaveDraft(ctx context.Context, clientID string, draft model.CheckoutDraft) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "checkout.SaveDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.store.Put(ctx, shared.BuildCacheKey(slotDraft, clientID), draft, 0)
}

// GetDraft implements Checkout.
func (repo *checkoutRepositoryImpl) GetDraft(ctx context.Context, clientID string) (draft model.CheckoutDraft, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "checkout.GetDraft")
	defer scope.End()

	err = repo.store.Get(ctx, shared.BuildCacheKey(slotDraft, clientID), &draft)

	return draft, err
}

// DeleteDraft implements Checkout.
func (repo *checkoutRepositoryImpl) DeleteDraft(ctx context.Context, clientID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "checkout.DeleteDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.store.Delete(ctx, shared.BuildCacheKey(slotDraft, clientID))
}

// PutFinal implements Checkout.
func (repo *checkoutRepositoryImpl) PutFinal(ctx context.Context, clientID string, booking model.FinalBooking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "checkout.PutFinal")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.store.Put(ctx, shared.BuildCacheKey(slotFinal, clientID), booking, 0)
}

// GetFinal implements Checkout.
func (repo *checkoutRepositoryImpl) GetFinal(ctx context.Context, clientID string) (booking model.FinalBooking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "checkout.GetFinal")
	defer scope.End()

	err = repo.store.Get(ctx, shared.BuildCacheKey(slotFinal, clientID), &booking)

	return booking, err
}
