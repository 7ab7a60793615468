package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medspa-backend/models"
)

func (f *fixture) draft() ServiceDraft {
	return ServiceDraft{
		MedspaID:   ptr(f.medspa.ID),
		CategoryID: ptr(f.category.ID),
		TypeID:     ptr(f.serviceType.ID),
		ProductID:  ptr(f.product.ID),
		Name:       ptr("Brow lift"),
		Price:      ptr(dec("120.00")),
		Duration:   ptr(25),
	}
}

func TestServiceCatalogCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := NewServiceCatalog()

	svc, err := catalog.Create(ctx, f.reader(), f.draft())
	require.NoError(t, err)
	assert.NotZero(t, svc.ID)
	assert.Equal(t, "Brow lift", svc.Name)
	assert.True(t, svc.Price.Equal(dec("120")))

	got, err := catalog.Get(ctx, f.reader(), svc.ID)
	require.NoError(t, err)
	assert.Equal(t, f.product.ID, got.ProductID)
}

func TestServiceCatalogCreateMissingFields(t *testing.T) {
	f := newFixture(t)
	before := f.count(t, &models.Service{})
	d := f.draft()
	d.Price = nil
	d.ProductID = nil

	_, err := NewServiceCatalog().Create(context.Background(), f.reader(), d)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Field, "price")
	assert.Contains(t, verr.Field, "product_id")
	assert.Equal(t, before, f.count(t, &models.Service{}))
}

func TestServiceCatalogCreateRejectsBadValues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := NewServiceCatalog()

	d := f.draft()
	d.Price = ptr(dec("-1"))
	_, err := catalog.Create(ctx, f.reader(), d)
	assert.ErrorIs(t, err, ErrValidation)

	d = f.draft()
	d.Duration = ptr(0)
	_, err = catalog.Create(ctx, f.reader(), d)
	assert.ErrorIs(t, err, ErrValidation)

	d = f.draft()
	d.Price = ptr(dec("0"))
	_, err = catalog.Create(ctx, f.reader(), d)
	assert.NoError(t, err)
}

func TestServiceCatalogCreateBrokenHierarchy(t *testing.T) {
	f := newFixture(t)
	before := f.count(t, &models.Service{})

	d := f.draft()
	d.ProductID = ptr(f.otherProduct.ID)
	_, err := NewServiceCatalog().Create(context.Background(), f.reader(), d)

	var herr *HierarchyError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "product/type mismatch", herr.Reason)
	assert.Equal(t, before, f.count(t, &models.Service{}))
}

func TestServiceCatalogCreateUnknownMedspa(t *testing.T) {
	f := newFixture(t)
	d := f.draft()
	d.MedspaID = ptr(int64(4242))

	_, err := NewServiceCatalog().Create(context.Background(), f.reader(), d)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "medspa", nf.Entity)
}

func TestServiceCatalogUpdatePartial(t *testing.T) {
	f := newFixture(t)

	svc, err := NewServiceCatalog().Update(context.Background(), f.reader(), f.botox.ID, ServicePatch{
		Price: ptr(dec("110.25")),
	})
	require.NoError(t, err)
	assert.True(t, svc.Price.Equal(dec("110.25")))
	assert.Equal(t, "Botox forehead", svc.Name)
	assert.Equal(t, 30, svc.Duration)
	assert.Equal(t, f.category.ID, svc.CategoryID)
}

func TestServiceCatalogUpdateHierarchy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := NewServiceCatalog()

	// type alone is merged with the stored category and product
	_, err := catalog.Update(ctx, f.reader(), f.botox.ID, ServicePatch{TypeID: ptr(f.otherTyp.ID)})
	var herr *HierarchyError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "type/category mismatch", herr.Reason)

	stored, err := catalog.Get(ctx, f.reader(), f.botox.ID)
	require.NoError(t, err)
	assert.Equal(t, f.serviceType.ID, stored.TypeID)

	svc, err := catalog.Update(ctx, f.reader(), f.botox.ID, ServicePatch{
		CategoryID: ptr(f.otherCat.ID),
		TypeID:     ptr(f.otherTyp.ID),
		ProductID:  ptr(f.otherProduct.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, f.otherCat.ID, svc.CategoryID)
	assert.Equal(t, f.otherTyp.ID, svc.TypeID)
	assert.Equal(t, f.otherProduct.ID, svc.ProductID)
}

func TestServiceCatalogUpdateUnknown(t *testing.T) {
	f := newFixture(t)
	_, err := NewServiceCatalog().Update(context.Background(), f.reader(), 9999, ServicePatch{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCatalogUpdateMedspaOfBookedService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := NewServiceCatalog()

	// unbooked services may move
	svc, err := catalog.Update(ctx, f.reader(), f.filler.ID, ServicePatch{MedspaID: ptr(f.otherMedspa.ID)})
	require.NoError(t, err)
	assert.Equal(t, f.otherMedspa.ID, svc.MedspaID)

	appt := f.newAppointment(t, f.medspa, tomorrow(), models.AppointmentStatusScheduled)
	f.link(t, appt, f.botox)

	_, err = catalog.Update(ctx, f.reader(), f.botox.ID, ServicePatch{MedspaID: ptr(f.otherMedspa.ID)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "medspa_id", verr.Field)
}

func TestServiceCatalogDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	catalog := NewServiceCatalog()

	appt := f.newAppointment(t, f.medspa, tomorrow(), models.AppointmentStatusScheduled)
	f.link(t, appt, f.botox, f.filler)

	deleted, err := catalog.Delete(ctx, f.reader(), f.botox.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, int64(1), f.count(t, &models.AppointmentService{}))

	_, err = catalog.Get(ctx, f.reader(), f.botox.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err = catalog.Delete(ctx, f.reader(), f.botox.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestServiceCatalogListByMedspa(t *testing.T) {
	f := newFixture(t)
	list, err := NewServiceCatalog().ListByMedspa(context.Background(), f.reader(), f.medspa.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Botox forehead", list[0].Name)
	assert.Equal(t, "Lip filler", list[1].Name)
}
