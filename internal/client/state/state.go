// Package state holds the marketplace's in-memory application state and
// moves it to and from the key/value store as five whole documents.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/client/storage"
	"github.com/dmitrijs2005/luggageshare/internal/dbx"
	"github.com/dmitrijs2005/luggageshare/internal/logging"
)

// Document keys in the store.
const (
	KeyMe           = "me"
	KeyUsers        = "users"
	KeySeekerPosts  = "seekerPosts"
	KeyCarrierPosts = "carrierPosts"
	KeyDeals        = "deals"
)

// State is everything the client knows. Me is nil until someone logs in.
type State struct {
	Me           *models.User
	Users        []models.User
	SeekerPosts  []models.SeekerPost
	CarrierPosts []models.CarrierPost
	Deals        []models.Deal
}

// New returns an empty state with non-nil collections.
func New() *State {
	return &State{
		Users:        []models.User{},
		SeekerPosts:  []models.SeekerPost{},
		CarrierPosts: []models.CarrierPost{},
		Deals:        []models.Deal{},
	}
}

// Clone returns a copy that shares nothing mutable with s.
func (s *State) Clone() *State {
	c := &State{
		Users:        slices.Clone(s.Users),
		SeekerPosts:  slices.Clone(s.SeekerPosts),
		CarrierPosts: slices.Clone(s.CarrierPosts),
		Deals:        make([]models.Deal, len(s.Deals)),
	}
	if s.Me != nil {
		me := *s.Me
		c.Me = &me
	}
	for i, d := range s.Deals {
		d.Chat = slices.Clone(d.Chat)
		c.Deals[i] = d
	}
	return c
}

// Load reads the five documents from r. A document that is missing or cannot
// be decoded is replaced by an empty collection and a warning is logged; Load
// itself never fails.
func Load(ctx context.Context, r storage.Repository, log logging.Logger) *State {
	s := New()

	warn := func(key string, err error) {
		if err != nil {
			log.Warn(ctx, "stored document unreadable, starting empty", "key", key, "error", err)
		}
	}

	var err error
	s.Me, err = storage.Load[*models.User](ctx, r, KeyMe, nil)
	warn(KeyMe, err)
	s.Users, err = storage.Load(ctx, r, KeyUsers, s.Users)
	warn(KeyUsers, err)
	s.SeekerPosts, err = storage.Load(ctx, r, KeySeekerPosts, s.SeekerPosts)
	warn(KeySeekerPosts, err)
	s.CarrierPosts, err = storage.Load(ctx, r, KeyCarrierPosts, s.CarrierPosts)
	warn(KeyCarrierPosts, err)
	s.Deals, err = storage.Load(ctx, r, KeyDeals, s.Deals)
	warn(KeyDeals, err)

	for i := range s.Deals {
		if s.Deals[i].Chat == nil {
			s.Deals[i].Chat = []models.ChatMessage{}
		}
	}
	return s
}

// Save writes all five documents to r.
func Save(ctx context.Context, r storage.Repository, s *State) error {
	docs := []struct {
		key string
		v   any
	}{
		{KeyMe, s.Me},
		{KeyUsers, s.Users},
		{KeySeekerPosts, s.SeekerPosts},
		{KeyCarrierPosts, s.CarrierPosts},
		{KeyDeals, s.Deals},
	}
	for _, d := range docs {
		if err := storage.Save(ctx, r, d.key, d.v); err != nil {
			return fmt.Errorf("save %s: %w", d.key, err)
		}
	}
	return nil
}

// Persister writes a whole State somewhere durable.
type Persister interface {
	Persist(ctx context.Context, s *State) error
}

// SQLPersister saves the five documents inside one SQLite transaction.
type SQLPersister struct {
	db *sql.DB
}

func NewSQLPersister(db *sql.DB) *SQLPersister {
	return &SQLPersister{db: db}
}

func (p *SQLPersister) Persist(ctx context.Context, s *State) error {
	return dbx.WithTx(ctx, p.db, func(ctx context.Context, tx dbx.DBTX) error {
		return Save(ctx, storage.NewSQLiteRepository(tx), s)
	})
}
