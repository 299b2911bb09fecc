package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domorder "example.com/grubhouse/internal/domain/order"
	"example.com/grubhouse/internal/infra/idgen"
	"example.com/grubhouse/internal/infra/persistence/memory"
)

func newTestService() *Service {
	return NewService(memory.NewOrderRepository(idgen.NewSequence("order-")))
}

func pendingOrder() *domorder.Order {
	return &domorder.Order{
		DeliverTo:    "123 Main",
		MobileNumber: "555-0100",
		Status:       domorder.StatusPending,
		Dishes: []domorder.LineItem{
			{Name: "Taco", Price: 5, Quantity: 2},
		},
	}
}

func TestCreateStoresStatusVerbatim(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	o := pendingOrder()
	o.Status = domorder.Status("anything-goes")
	created, err := svc.Create(ctx, o)
	require.NoError(t, err)
	require.Equal(t, domorder.Status("anything-goes"), created.Status)
}

func TestUpdateAdvancesStatus(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, pendingOrder())
	require.NoError(t, err)

	next := pendingOrder()
	next.Status = domorder.StatusPreparing
	updated, err := svc.Update(ctx, created.ID, next)
	require.NoError(t, err)
	require.Equal(t, domorder.StatusPreparing, updated.Status)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, pendingOrder())
	require.NoError(t, err)

	next := pendingOrder()
	next.Status = domorder.Status("invalid")
	_, err = svc.Update(ctx, created.ID, next)
	require.ErrorIs(t, err, domorder.ErrInvalidStatus)

	// A missing status field fails the same way.
	next.Status = ""
	_, err = svc.Update(ctx, created.ID, next)
	require.ErrorIs(t, err, domorder.ErrInvalidStatus)
}

func TestUpdateDeliveredOrderIsTerminal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, pendingOrder())
	require.NoError(t, err)

	next := pendingOrder()
	next.Status = domorder.StatusDelivered
	_, err = svc.Update(ctx, created.ID, next)
	require.NoError(t, err)

	// Any further update, even to delivered again, is rejected.
	_, err = svc.Update(ctx, created.ID, next)
	require.ErrorIs(t, err, domorder.ErrDeliveredLocked)

	next.Status = domorder.StatusPending
	_, err = svc.Update(ctx, created.ID, next)
	require.ErrorIs(t, err, domorder.ErrDeliveredLocked)
}

func TestUpdateIDMismatch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, pendingOrder())
	require.NoError(t, err)

	next := pendingOrder()
	next.ID = "other"
	_, err = svc.Update(ctx, created.ID, next)
	var mm *domorder.IDMismatchError
	require.ErrorAs(t, err, &mm)
	require.Equal(t, created.ID, mm.Found)
	require.Equal(t, "other", mm.Supplied)
}

func TestDeletePendingOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, pendingOrder())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	var nf *domorder.NotFoundError
	require.ErrorAs(t, err, &nf)

	preparing := pendingOrder()
	preparing.Status = domorder.StatusPreparing
	created, err = svc.Create(ctx, preparing)
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, domorder.ErrDeleteNotPending)
}

func TestDeleteUnknownID(t *testing.T) {
	svc := newTestService()

	err := svc.Delete(context.Background(), "missing")
	var nf *domorder.NotFoundError
	require.ErrorAs(t, err, &nf)
}
