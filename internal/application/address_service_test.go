package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
)

type fakeAddressRepo struct {
	addresses map[int64]*entity.Address
	nextID    int64
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: map[int64]*entity.Address{}, nextID: 1}
}

func (f *fakeAddressRepo) Create(_ context.Context, a *entity.Address) error {
	a.ID = f.nextID
	f.nextID++
	cp := *a
	f.addresses[a.ID] = &cp
	return nil
}

func (f *fakeAddressRepo) FindByContact(_ context.Context, id, contactID int64) (*entity.Address, error) {
	a, ok := f.addresses[id]
	if !ok || a.ContactID != contactID {
		return nil, errFakeNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAddressRepo) Update(_ context.Context, a *entity.Address) error {
	stored, ok := f.addresses[a.ID]
	if !ok {
		return errFakeNotFound
	}
	stored.Street = a.Street
	stored.City = a.City
	stored.Province = a.Province
	stored.Country = a.Country
	stored.PostalCode = a.PostalCode
	return nil
}

func (f *fakeAddressRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.addresses[id]; !ok {
		return errFakeNotFound
	}
	delete(f.addresses, id)
	return nil
}

func (f *fakeAddressRepo) ListByContact(_ context.Context, contactID int64) ([]*entity.Address, error) {
	out := make([]*entity.Address, 0)
	for _, a := range f.addresses {
		if a.ContactID == contactID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fixture builds an address service with one contact owned by "owner".
func addressFixture(t *testing.T) (*AddressService, *fakeAddressRepo, *entity.Contact) {
	t.Helper()
	contactRepo := newFakeContactRepo()
	contactSvc := newContactService(contactRepo)
	addrRepo := newFakeAddressRepo()
	svc := NewAddressService(addrRepo, contactSvc, testLogger())

	c, err := contactSvc.Create(context.Background(), owner(), ContactInput{FirstName: "test", LastName: "user"})
	require.NoError(t, err)
	return svc, addrRepo, c
}

func sampleAddress() AddressInput {
	return AddressInput{
		Street:     "Jl. Merdeka No. 10",
		City:       "Bandung",
		Province:   "Jawa Barat",
		Country:    "Indonesia",
		PostalCode: "40111",
	}
}

func TestAddressCreate(t *testing.T) {
	svc, _, c := addressFixture(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, owner(), c.ID, sampleAddress())
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.Equal(t, c.ID, a.ContactID)
}

func TestAddressCreateForeignContactShortCircuits(t *testing.T) {
	svc, addrRepo, c := addressFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, intruder(), c.ID, sampleAddress())
	assert.ErrorIs(t, err, ErrContactNotFound)
	assert.Empty(t, addrRepo.addresses, "address store must never be touched")
}

func TestAddressGet(t *testing.T) {
	svc, _, c := addressFixture(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, owner(), c.ID, sampleAddress())
	require.NoError(t, err)

	got, err := svc.Get(ctx, owner(), c.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = svc.Get(ctx, owner(), c.ID, a.ID+100)
	assert.ErrorIs(t, err, ErrAddressNotFound)

	_, err = svc.Get(ctx, intruder(), c.ID, a.ID)
	assert.ErrorIs(t, err, ErrContactNotFound, "contact check fails before the address is consulted")
}

func TestAddressGetWrongContact(t *testing.T) {
	svc, _, c := addressFixture(t)
	ctx := context.Background()

	other, err := svc.Contacts.Create(ctx, owner(), ContactInput{FirstName: "other", LastName: "contact"})
	require.NoError(t, err)

	a, err := svc.Create(ctx, owner(), c.ID, sampleAddress())
	require.NoError(t, err)

	_, err = svc.Get(ctx, owner(), other.ID, a.ID)
	assert.ErrorIs(t, err, ErrAddressNotFound, "address is scoped to its own contact")
}

func TestAddressUpdate(t *testing.T) {
	svc, addrRepo, c := addressFixture(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, owner(), c.ID, sampleAddress())
	require.NoError(t, err)

	in := sampleAddress()
	in.City = "Jakarta"
	updated, err := svc.Update(ctx, owner(), c.ID, a.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", updated.City)
	assert.Equal(t, "Jakarta", addrRepo.addresses[a.ID].City)

	_, err = svc.Update(ctx, intruder(), c.ID, a.ID, in)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestAddressRemove(t *testing.T) {
	svc, addrRepo, c := addressFixture(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, owner(), c.ID, sampleAddress())
	require.NoError(t, err)

	err = svc.Remove(ctx, intruder(), c.ID, a.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)

	err = svc.Remove(ctx, owner(), c.ID, a.ID+100)
	assert.ErrorIs(t, err, ErrAddressNotFound)

	require.NoError(t, svc.Remove(ctx, owner(), c.ID, a.ID))
	assert.Empty(t, addrRepo.addresses)
}

func TestAddressList(t *testing.T) {
	svc, _, c := addressFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner(), c.ID, sampleAddress())
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner(), c.ID, sampleAddress())
	require.NoError(t, err)

	list, err := svc.List(ctx, owner(), c.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.List(ctx, intruder(), c.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)
}
