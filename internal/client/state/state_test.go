package state

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/client/storage"
	"github.com/dmitrijs2005/luggageshare/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sample() *State {
	s := New()
	me := models.User{ID: "u1", Role: models.RoleSeeker, Name: "Amal"}
	s.Me = &me
	s.Users = append(s.Users, me, models.User{ID: "u2", Role: models.RoleCarrier, Name: "Badr"})
	s.SeekerPosts = append(s.SeekerPosts, models.SeekerPost{
		ID: "s1", UserID: "u1", From: "Dubai", To: "London", Date: "2025-06-01", Kg: 10, Total: 400,
		Docs: models.Docs{Passport: "data:image/png;base64,AAAA"},
	})
	s.CarrierPosts = append(s.CarrierPosts, models.CarrierPost{
		ID: "c1", UserID: "u2", From: "Dubai", To: "London", Date: "2025-06-01", Kg: 15, Revenue: 315,
	})
	s.Deals = append(s.Deals, models.Deal{
		ID: "d1", SeekerID: "u1", CarrierID: "u2", Kg: 10, Total: 400,
		Status: models.StatusAccepted, TimelineIdx: 1,
		Chat: []models.ChatMessage{{ID: "m1", UserID: "u2", Text: "hi", TS: 1}},
	})
	return s
}

func TestPersistThenLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	want := sample()
	require.NoError(t, NewSQLPersister(db).Persist(ctx, want))

	got := Load(ctx, storage.NewSQLiteRepository(db), logging.Nop())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyStore(t *testing.T) {
	got := Load(context.Background(), storage.NewSQLiteRepository(openDB(t)), logging.Nop())

	assert.Nil(t, got.Me)
	assert.NotNil(t, got.Users)
	assert.Empty(t, got.Users)
	assert.Empty(t, got.SeekerPosts)
	assert.Empty(t, got.CarrierPosts)
	assert.Empty(t, got.Deals)
}

func TestLoad_MalformedDealsFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, NewSQLPersister(db).Persist(ctx, sample()))

	repo := storage.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, KeyDeals, []byte(`[{"id":`)))

	var buf bytes.Buffer
	log, err := logging.New(logging.BackendSlog, "warn", &buf)
	require.NoError(t, err)

	got := Load(ctx, repo, log)
	assert.Empty(t, got.Deals)
	assert.NotNil(t, got.Deals)
	assert.Len(t, got.Users, 2, "other documents still load")
	assert.Contains(t, buf.String(), "key=deals")
}

func TestLoad_NullChatBecomesEmpty(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewSQLiteRepository(openDB(t))
	require.NoError(t, repo.Set(ctx, KeyDeals, []byte(`[{"id":"d1","status":"Proposed","timelineIdx":0,"chat":null}]`)))

	got := Load(ctx, repo, logging.Nop())
	require.Len(t, got.Deals, 1)
	assert.NotNil(t, got.Deals[0].Chat)
}

func TestPersist_MeNilIsStoredAsNull(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	s := sample()
	s.Me = nil

	require.NoError(t, NewSQLPersister(db).Persist(ctx, s))

	raw, err := storage.NewSQLiteRepository(db).Get(ctx, KeyMe)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestPersist_ClosedDB(t *testing.T) {
	db := openDB(t)
	require.NoError(t, db.Close())
	require.Error(t, NewSQLPersister(db).Persist(context.Background(), sample()))
}

func TestClone_IsIndependent(t *testing.T) {
	s := sample()
	c := s.Clone()

	c.Me.Name = "changed"
	c.Users[0].Name = "changed"
	c.Deals[0].Chat[0].Text = "changed"
	c.Deals[0].Status = models.StatusReleased

	assert.Equal(t, "Amal", s.Me.Name)
	assert.Equal(t, "Amal", s.Users[0].Name)
	assert.Equal(t, "hi", s.Deals[0].Chat[0].Text)
	assert.Equal(t, models.StatusAccepted, s.Deals[0].Status)
}
