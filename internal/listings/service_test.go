package listings

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udalba/campusmarket/internal/common"
)

type fakeRepo struct {
	nextID int64
	items  map[int64]*Listing
	owners map[string]ownerInfo
}

type ownerInfo struct {
	name    string
	contact string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID: 1,
		items:  map[int64]*Listing{},
		owners: map[string]ownerInfo{
			"ana@udalba.cl": {name: "Ana", contact: "56911112222"},
			"leo@udalba.cl": {name: "Leo", contact: "56933334444"},
		},
	}
}

func (f *fakeRepo) Create(ctx context.Context, l *Listing) error {
	l.ID = f.nextID
	f.nextID++
	l.CreatedAt = time.Now().Add(time.Duration(l.ID) * time.Second)
	cp := *l
	f.items[l.ID] = &cp
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, id int64) (*Listing, error) {
	l, ok := f.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, owner, name, description string, price int64) error {
	l, ok := f.items[id]
	if !ok || l.OwnerEmail != owner {
		return common.ErrNotOwner
	}
	l.Name, l.Description, l.Price = name, description, price
	return nil
}

func (f *fakeRepo) SetState(ctx context.Context, id int64, owner string, state State) error {
	l, ok := f.items[id]
	if !ok || l.OwnerEmail != owner {
		return common.ErrNotOwner
	}
	l.State = state
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64, owner string) error {
	l, ok := f.items[id]
	if !ok || l.OwnerEmail != owner {
		return common.ErrNotOwner
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) ListAvailable(ctx context.Context) ([]*CatalogItem, error) {
	var items []*CatalogItem
	for _, l := range f.items {
		if l.State != StateAvailable {
			continue
		}
		o := f.owners[l.OwnerEmail]
		items = append(items, &CatalogItem{Listing: *l, OwnerName: o.name, OwnerContact: o.contact})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (f *fakeRepo) ListByOwner(ctx context.Context, owner string) ([]*Listing, error) {
	var result []*Listing
	for _, l := range f.items {
		if l.OwnerEmail == owner {
			cp := *l
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type fakePhotoStore struct {
	blobs map[string][]byte
}

func (f *fakePhotoStore) Put(ctx context.Context, data []byte) (string, error) {
	if f.blobs == nil {
		f.blobs = map[string][]byte{}
	}
	key := fmt.Sprintf("listing-photos/%d", len(f.blobs)+1)
	f.blobs[key] = data
	return key, nil
}

func (f *fakePhotoStore) URL(ctx context.Context, key string) (string, error) {
	return "http://minio/bucket/" + key + "?sig=x", nil
}

func TestPublish_RejectsNegativePrice(t *testing.T) {
	s := NewService(newFakeRepo(), nil)

	_, err := s.Publish(context.Background(), "ana@udalba.cl", "Bici", "mtb", -1, nil)
	assert.ErrorIs(t, err, common.ErrInvalidPrice)
}

func TestPublish_InlinePhotoByDefault(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(repo, nil)

	photo := []byte{0x89, 0x50}
	id, err := s.Publish(context.Background(), "ana@udalba.cl", "Bici", "mtb", 5000, photo)
	require.NoError(t, err)

	stored := repo.items[id]
	assert.Equal(t, StateAvailable, stored.State)
	assert.Equal(t, photo, stored.Photo)
	assert.Nil(t, stored.PhotoKey)
}

func TestPublish_ObjectStorePhoto(t *testing.T) {
	repo := newFakeRepo()
	store := &fakePhotoStore{}
	s := NewService(repo, store)

	id, err := s.Publish(context.Background(), "ana@udalba.cl", "Bici", "mtb", 5000, []byte("img"))
	require.NoError(t, err)

	stored := repo.items[id]
	assert.Nil(t, stored.Photo)
	require.NotNil(t, stored.PhotoKey)
	assert.Equal(t, []byte("img"), store.blobs[*stored.PhotoKey])

	items, err := s.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].PhotoURL, *stored.PhotoKey)
}

func TestEdit_OwnershipGuard(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := NewService(repo, nil)

	id, err := s.Publish(ctx, "ana@udalba.cl", "Bici", "mtb", 5000, nil)
	require.NoError(t, err)

	err = s.Edit(ctx, id, "leo@udalba.cl", "Robada", "jaja", 1)
	assert.ErrorIs(t, err, common.ErrNotOwner)

	// record unmodified
	stored := repo.items[id]
	assert.Equal(t, "Bici", stored.Name)
	assert.Equal(t, int64(5000), stored.Price)

	require.NoError(t, s.Edit(ctx, id, "ana@udalba.cl", "Bici MTB", "aro 29", 6000))
	assert.Equal(t, "Bici MTB", repo.items[id].Name)
}

func TestDelete_OwnershipGuard(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := NewService(repo, nil)

	id, err := s.Publish(ctx, "ana@udalba.cl", "Bici", "mtb", 5000, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete(ctx, id, "leo@udalba.cl"), common.ErrNotOwner)
	require.NoError(t, s.Delete(ctx, id, "ana@udalba.cl"))
	assert.ErrorIs(t, s.Delete(ctx, id, "ana@udalba.cl"), common.ErrNotOwner)
}

func TestSetState_CatalogVisibility(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := NewService(repo, nil)

	first, err := s.Publish(ctx, "ana@udalba.cl", "Bici", "mtb", 5000, nil)
	require.NoError(t, err)
	second, err := s.Publish(ctx, "leo@udalba.cl", "Guitarra", "acústica", 3000, nil)
	require.NoError(t, err)

	items, err := s.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// newest first
	assert.Equal(t, second, items[0].ID)
	assert.Equal(t, "Leo", items[0].OwnerName)

	require.NoError(t, s.SetState(ctx, second, "leo@udalba.cl", StatePaused))

	items, err = s.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, first, items[0].ID)

	// reactivating makes it reappear
	require.NoError(t, s.SetState(ctx, second, "leo@udalba.cl", StateAvailable))
	items, err = s.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSetState_RejectsUnknownState(t *testing.T) {
	s := NewService(newFakeRepo(), nil)
	err := s.SetState(context.Background(), 1, "ana@udalba.cl", State("sold"))
	assert.ErrorIs(t, err, common.ErrInvalidState)
}

func TestListByOwner_AllStates(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := NewService(repo, nil)

	id, err := s.Publish(ctx, "ana@udalba.cl", "Bici", "mtb", 5000, nil)
	require.NoError(t, err)
	_, err = s.Publish(ctx, "leo@udalba.cl", "Guitarra", "acústica", 3000, nil)
	require.NoError(t, err)
	require.NoError(t, s.SetState(ctx, id, "ana@udalba.cl", StatePaused))

	mine, err := s.ListByOwner(ctx, "ana@udalba.cl")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, StatePaused, mine[0].State)
}
