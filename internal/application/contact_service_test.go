package application

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
	repo "github.com/aditrahmn/contact-management-api/internal/domain/repository"
)

type fakeContactRepo struct {
	contacts map[int64]*entity.Contact
	nextID   int64
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[int64]*entity.Contact{}, nextID: 1}
}

func (f *fakeContactRepo) Create(_ context.Context, c *entity.Contact) error {
	c.ID = f.nextID
	f.nextID++
	cp := *c
	f.contacts[c.ID] = &cp
	return nil
}

func (f *fakeContactRepo) FindOwned(_ context.Context, id int64, username string) (*entity.Contact, error) {
	c, ok := f.contacts[id]
	if !ok || c.Username != username {
		return nil, errFakeNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeContactRepo) Update(_ context.Context, c *entity.Contact) error {
	stored, ok := f.contacts[c.ID]
	if !ok {
		return errFakeNotFound
	}
	stored.FirstName = c.FirstName
	stored.LastName = c.LastName
	stored.Email = c.Email
	stored.Phone = c.Phone
	return nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.contacts[id]; !ok {
		return errFakeNotFound
	}
	delete(f.contacts, id)
	return nil
}

func (f *fakeContactRepo) matches(c *entity.Contact, username string, flt repo.ContactFilter) bool {
	if c.Username != username {
		return false
	}
	if flt.Name != "" && !strings.Contains(c.FirstName, flt.Name) && !strings.Contains(c.LastName, flt.Name) {
		return false
	}
	if flt.Email != "" && !strings.Contains(c.Email, flt.Email) {
		return false
	}
	if flt.Phone != "" && !strings.Contains(c.Phone, flt.Phone) {
		return false
	}
	return true
}

func (f *fakeContactRepo) all(username string, flt repo.ContactFilter) []*entity.Contact {
	out := make([]*entity.Contact, 0)
	for _, c := range f.contacts {
		if f.matches(c, username, flt) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeContactRepo) Search(_ context.Context, username string, flt repo.ContactFilter, limit, offset int) ([]*entity.Contact, error) {
	all := f.all(username, flt)
	if offset >= len(all) {
		return []*entity.Contact{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeContactRepo) CountSearch(_ context.Context, username string, flt repo.ContactFilter) (int64, error) {
	return int64(len(f.all(username, flt))), nil
}

func newContactService(r *fakeContactRepo) *ContactService {
	return NewContactService(r, testLogger(), nil, "")
}

func owner() *entity.User    { return &entity.User{Username: "owner", Name: "Owner"} }
func intruder() *entity.User { return &entity.User{Username: "intruder", Name: "Intruder"} }

func TestContactCreateScopedToOwner(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, owner(), ContactInput{FirstName: "test", LastName: "user", Email: "test@example.com", Phone: "0812"})
	require.NoError(t, err)
	assert.Equal(t, "owner", c.Username)
	assert.NotZero(t, c.ID)
}

func TestContactGetForeignOwnerIsNotFound(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, owner(), ContactInput{FirstName: "test", LastName: "user"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, intruder(), c.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)

	_, err = svc.Get(ctx, owner(), c.ID+100)
	assert.ErrorIs(t, err, ErrContactNotFound, "missing and foreign contacts are indistinguishable")
}

func TestContactUpdateRechecksOwnership(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, owner(), ContactInput{FirstName: "test", LastName: "user"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, intruder(), c.ID, ContactInput{FirstName: "hacked", LastName: "user"})
	assert.ErrorIs(t, err, ErrContactNotFound)
	assert.Equal(t, "test", repo.contacts[c.ID].FirstName)

	updated, err := svc.Update(ctx, owner(), c.ID, ContactInput{FirstName: "changed", LastName: "user", Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.FirstName)
	assert.Equal(t, "owner", repo.contacts[c.ID].Username, "owner never changes")
}

func TestContactRemove(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, owner(), ContactInput{FirstName: "test", LastName: "user"})
	require.NoError(t, err)

	_, err = svc.Remove(ctx, intruder(), c.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)

	_, err = svc.Remove(ctx, owner(), c.ID)
	require.NoError(t, err)

	_, err = svc.Remove(ctx, owner(), c.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestContactSearchSubstringOnName(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner(), ContactInput{FirstName: "test", LastName: "user"})
	require.NoError(t, err)

	results, _, err := svc.Search(ctx, owner(), SearchContactInput{Name: "es", Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, _, err = svc.Search(ctx, owner(), SearchContactInput{Name: "zzz", Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestContactSearchNoFiltersReturnsAllOwned(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, owner(), ContactInput{FirstName: "a", LastName: "b"})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, intruder(), ContactInput{FirstName: "a", LastName: "b"})
	require.NoError(t, err)

	results, paging, err := svc.Search(ctx, owner(), SearchContactInput{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, results, 3, "foreign contacts never leak into search")
	assert.Equal(t, 1, paging.TotalPage)
}

func TestContactSearchPagingPastEnd(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner(), ContactInput{FirstName: "only", LastName: "one"})
	require.NoError(t, err)

	results, paging, err := svc.Search(ctx, owner(), SearchContactInput{Page: 2, Size: 1})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 2, paging.CurrentPage)
	assert.Equal(t, 1, paging.Size)
	assert.Equal(t, 1, paging.TotalPage)
}

func TestContactSearchTotalPageCeil(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, owner(), ContactInput{FirstName: "a", LastName: "b"})
		require.NoError(t, err)
	}

	results, paging, err := svc.Search(ctx, owner(), SearchContactInput{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 3, paging.TotalPage)
}

func TestContactSearchDefaults(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	_, paging, err := svc.Search(ctx, owner(), SearchContactInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, paging.CurrentPage)
	assert.Equal(t, 10, paging.Size)
}

func TestContactSearchSizeCapped(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner(), ContactInput{FirstName: "a", LastName: "b"})
	require.NoError(t, err)

	_, paging, err := svc.Search(ctx, owner(), SearchContactInput{Page: 1, Size: 1000000})
	require.NoError(t, err)
	assert.Equal(t, maxSearchSize, paging.Size, "requested size must never exceed the cap")
}

func TestContactSearchConjunctiveFilters(t *testing.T) {
	repo := newFakeContactRepo()
	svc := newContactService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner(), ContactInput{FirstName: "alice", LastName: "smith", Email: "alice@example.com", Phone: "111"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner(), ContactInput{FirstName: "alice", LastName: "jones", Email: "aj@other.org", Phone: "222"})
	require.NoError(t, err)

	results, _, err := svc.Search(ctx, owner(), SearchContactInput{Name: "alice", Email: "example", Page: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "smith", results[0].LastName)
}
