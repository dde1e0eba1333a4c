package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akojamsy/voting-system/db"
	"github.com/akojamsy/voting-system/types"
	"github.com/akojamsy/voting-system/utils"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(client db.Client) *Store {
	return New(Config{
		Client: client,
		IDs:    utils.NewSequenceGenerator(100),
		Now:    func() time.Time { return fixedNow },
	})
}

type failingClient struct {
	db.Client
}

func (failingClient) Save(ctx context.Context, name string, data []byte) error {
	return errors.New("disk full")
}

func TestStore_LoadSeedsEmptyBackend(t *testing.T) {
	ctx := context.Background()
	client := db.NewMemoryDB()
	s := newTestStore(client)
	require.NoError(t, s.Load(ctx))

	assert.Len(t, s.Members, 3)
	assert.Len(t, s.Bills, 4)
	assert.Empty(t, s.Votes)
	assert.Empty(t, s.Users)

	assert.Equal(t, types.BillActive, s.Bills[0].Status)
	assert.Equal(t, "Health Care Reform Act", s.Bills[0].Title)
	assert.Equal(t, fixedNow, s.Bills[0].CreatedAt)
	assert.Equal(t, fixedNow.Add(-72*time.Hour), s.Bills[3].CreatedAt)

	active := 0
	for _, b := range s.Bills {
		if b.Status == types.BillActive {
			active++
		}
	}
	assert.Equal(t, 1, active)

	for _, name := range db.Collections {
		_, err := client.Load(ctx, name)
		assert.NoError(t, err, name)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := db.NewMemoryDB()
	s := newTestStore(client)
	require.NoError(t, s.Load(ctx))

	bills := append([]types.Bill{{
		ID:        42,
		Title:     "Digital Services Act",
		Category:  "Technology",
		Status:    types.BillActive,
		CreatedAt: fixedNow,
	}}, s.Bills...)
	bills[1].Status = types.BillPassed
	s.Lock()
	require.NoError(t, s.ReplaceBills(ctx, bills))
	require.NoError(t, s.ReplaceVotes(ctx, []types.Vote{
		{ID: 7, BillID: 42, UserID: 1, Vote: types.VoteNo, Timestamp: fixedNow},
	}))
	s.Unlock()

	reloaded := newTestStore(client)
	require.NoError(t, reloaded.Load(ctx))
	require.Len(t, reloaded.Bills, 5)
	assert.Equal(t, int64(42), reloaded.Bills[0].ID)
	assert.Equal(t, types.BillPassed, reloaded.Bills[1].Status)
	for i := range bills {
		assert.Equal(t, bills[i].ID, reloaded.Bills[i].ID)
		assert.True(t, bills[i].CreatedAt.Equal(reloaded.Bills[i].CreatedAt))
	}
	require.Len(t, reloaded.Votes, 1)
	assert.Equal(t, types.VoteNo, reloaded.Votes[0].Vote)
	assert.Len(t, reloaded.Members, 3)
}

func TestStore_LoadMalformed(t *testing.T) {
	ctx := context.Background()
	client := db.NewMemoryDB()
	require.NoError(t, client.Save(ctx, db.CBills, []byte(`{"not":"a list"}`)))

	err := newTestStore(client).Load(ctx)
	assert.True(t, errors.Is(err, types.ErrMalformedCollection))

	require.NoError(t, client.Save(ctx, db.CVotes, []byte(`[{"id":1,"billId":1,"userId":1,"vote":"maybe"}]`)))
	require.NoError(t, client.Save(ctx, db.CBills, []byte(`[]`)))
	err = newTestStore(client).Load(ctx)
	assert.True(t, errors.Is(err, types.ErrMalformedCollection))
}

func TestStore_LoadKeepsSingleActiveBill(t *testing.T) {
	ctx := context.Background()
	client := db.NewMemoryDB()
	require.NoError(t, client.Save(ctx, db.CBills, []byte(`[
		{"id":1,"title":"A","category":"x","status":"passed","createdAt":"2024-03-01T00:00:00Z"},
		{"id":2,"title":"B","category":"x","status":"active","createdAt":"2024-03-01T00:00:00Z"},
		{"id":3,"title":"C","category":"x","status":"active","createdAt":"2024-03-01T00:00:00Z"}
	]`)))

	s := newTestStore(client)
	require.NoError(t, s.Load(ctx))
	require.Len(t, s.Bills, 3)
	assert.Equal(t, types.BillPassed, s.Bills[0].Status)
	assert.Equal(t, types.BillActive, s.Bills[1].Status)
	assert.Equal(t, types.BillPassed, s.Bills[2].Status)
}

func TestStore_LoadOrSeedRecovers(t *testing.T) {
	ctx := context.Background()
	client := db.NewMemoryDB()
	require.NoError(t, client.Save(ctx, db.CBills, []byte(`garbage`)))

	s := newTestStore(client)
	require.NoError(t, s.LoadOrSeed(ctx))
	assert.Len(t, s.Bills, 4)

	raw, err := client.Load(ctx, db.CBills)
	require.NoError(t, err)
	assert.Equal(t, "garbage", string(raw))
}

func TestStore_ReplaceKeepsMemoryOnFailedWrite(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(db.NewMemoryDB())
	require.NoError(t, s.Load(ctx))

	s.client = failingClient{Client: db.NewMemoryDB()}
	s.Lock()
	defer s.Unlock()
	err := s.ReplaceBills(ctx, nil)
	assert.Error(t, err)
	assert.Len(t, s.Bills, 4)

	err = s.ReplaceMembers(ctx, nil)
	assert.Error(t, err)
	assert.Len(t, s.Members, 3)
}
