// Package services holds the marketplace controller. It owns the application
// state, applies the domain rules from models, matching and deals, and
// persists the whole state after every successful mutation.
package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/luggageshare/internal/client/deals"
	"github.com/dmitrijs2005/luggageshare/internal/client/matching"
	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/client/state"
	"github.com/dmitrijs2005/luggageshare/internal/common"
	"github.com/dmitrijs2005/luggageshare/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source market.go -destination=mocks/market.go -package=mock_services

// IDFunc produces identifiers for new users, posts, deals and messages.
type IDFunc func() string

// Clock returns the current time for chat timestamps.
type Clock func() time.Time

// AdminStats is the platform overview shown in the admin view.
type AdminStats struct {
	Users   int
	Deals   int
	Revenue decimal.Decimal
}

// MarketService is the marketplace controller driven by the CLI.
type MarketService interface {
	Me() *models.User
	Login(ctx context.Context, role models.Role, name, photo string) (*models.User, error)
	Logout(ctx context.Context) error
	SwitchUser(ctx context.Context, userID string) (*models.User, error)
	Users() []models.User

	CreateSeekerPost(ctx context.Context, in models.PostInput) (*models.SeekerPost, error)
	CreateCarrierPost(ctx context.Context, in models.PostInput) (*models.CarrierPost, error)
	MatchingCarriers() []models.CarrierPost
	MatchingSeekers() []models.SeekerPost
	AllSeekerPosts() []models.SeekerPost
	AllCarrierPosts() []models.CarrierPost

	RequestDeal(ctx context.Context, carrierPostID string) (*models.Deal, error)
	ProposeDeal(ctx context.Context, seekerPostID string) (*models.Deal, error)
	AcceptDeal(ctx context.Context, dealID string) (*models.Deal, error)
	AdvanceDeal(ctx context.Context, dealID string) (*models.Deal, error)
	SendMessage(ctx context.Context, dealID, text string) (*models.ChatMessage, error)

	Deal(dealID string) (*models.Deal, error)
	MyDeals() []models.Deal
	AllDeals() []models.Deal
	AdminStats() AdminStats
	UserName(id string) string
	Snapshot() *state.State
}

// Option customizes a market service.
type Option func(*marketService)

func WithIDFunc(f IDFunc) Option {
	return func(s *marketService) { s.newID = f }
}

func WithClock(c Clock) Option {
	return func(s *marketService) { s.now = c }
}

// marketService is not safe for concurrent use; the REPL drives it from a
// single goroutine.
type marketService struct {
	st        *state.State
	persister state.Persister
	log       logging.Logger
	newID     IDFunc
	now       Clock
}

func NewMarketService(st *state.State, persister state.Persister, log logging.Logger, opts ...Option) MarketService {
	if st == nil {
		st = state.New()
	}
	s := &marketService{
		st:        st,
		persister: persister,
		log:       log,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *marketService) persist(ctx context.Context) error {
	if err := s.persister.Persist(ctx, s.st); err != nil {
		s.log.Error(ctx, "persist state failed", "error", err)
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

func (s *marketService) requireMe() (*models.User, error) {
	if s.st.Me == nil {
		return nil, common.ErrNotLoggedIn
	}
	return s.st.Me, nil
}

func cloneDeal(d *models.Deal) *models.Deal {
	c := *d
	c.Chat = slices.Clone(d.Chat)
	return &c
}

func (s *marketService) Me() *models.User {
	if s.st.Me == nil {
		return nil
	}
	me := *s.st.Me
	return &me
}

// Login makes the given identity the active user. The first login creates
// the user; later ones update role and name, and the photo only when a new
// one is supplied.
func (s *marketService) Login(ctx context.Context, role models.Role, name, photo string) (*models.User, error) {
	if s.st.Me == nil {
		u, err := models.NewUser(s.newID(), role, name, photo)
		if err != nil {
			return nil, err
		}
		s.st.Me = u
		s.st.Users = append(s.st.Users, *u)
		s.log.Info(ctx, "user created", "user_id", u.ID, "role", u.Role)
	} else {
		upd, err := models.NewUser(s.st.Me.ID, role, name, s.st.Me.Photo)
		if err != nil {
			return nil, err
		}
		if photo != "" {
			upd.Photo = photo
		}
		s.st.Me = upd
		if u := models.FindUser(s.st.Users, upd.ID); u != nil {
			*u = *upd
		} else {
			s.st.Users = append(s.st.Users, *upd)
		}
		s.log.Info(ctx, "user updated", "user_id", upd.ID, "role", upd.Role)
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s.Me(), nil
}

// Logout clears the active user so the next Login creates a new one.
func (s *marketService) Logout(ctx context.Context) error {
	if s.st.Me == nil {
		return nil
	}
	s.log.Info(ctx, "user logged out", "user_id", s.st.Me.ID)
	s.st.Me = nil
	return s.persist(ctx)
}

// SwitchUser makes a previously created user on this device the active one.
func (s *marketService) SwitchUser(ctx context.Context, userID string) (*models.User, error) {
	u := models.FindUser(s.st.Users, userID)
	if u == nil {
		return nil, fmt.Errorf("%w: %s", common.ErrUserNotFound, userID)
	}
	me := *u
	s.st.Me = &me
	s.log.Info(ctx, "user switched", "user_id", me.ID, "role", me.Role)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s.Me(), nil
}

func (s *marketService) Users() []models.User {
	return slices.Clone(s.st.Users)
}

// AllSeekerPosts lists every request on the device, for the admin view.
func (s *marketService) AllSeekerPosts() []models.SeekerPost {
	return slices.Clone(s.st.SeekerPosts)
}

func (s *marketService) AllCarrierPosts() []models.CarrierPost {
	return slices.Clone(s.st.CarrierPosts)
}

func (s *marketService) CreateSeekerPost(ctx context.Context, in models.PostInput) (*models.SeekerPost, error) {
	me, err := s.requireMe()
	if err != nil {
		return nil, err
	}
	p, err := models.NewSeekerPost(s.newID(), me.ID, in)
	if err != nil {
		return nil, err
	}
	s.st.SeekerPosts = append(s.st.SeekerPosts, *p)
	s.log.Info(ctx, "seeker post created", "post_id", p.ID, "from", p.From, "to", p.To, "date", p.Date, "kg", p.Kg)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *marketService) CreateCarrierPost(ctx context.Context, in models.PostInput) (*models.CarrierPost, error) {
	me, err := s.requireMe()
	if err != nil {
		return nil, err
	}
	p, err := models.NewCarrierPost(s.newID(), me.ID, in)
	if err != nil {
		return nil, err
	}
	s.st.CarrierPosts = append(s.st.CarrierPosts, *p)
	s.log.Info(ctx, "carrier post created", "post_id", p.ID, "from", p.From, "to", p.To, "date", p.Date, "kg", p.Kg)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// MatchingCarriers lists carrier offers on the active user's seeker routes.
func (s *marketService) MatchingCarriers() []models.CarrierPost {
	if s.st.Me == nil {
		return nil
	}
	return matching.MatchCarriersForSeeker(s.st.Me.ID, s.st.SeekerPosts, s.st.CarrierPosts)
}

// MatchingSeekers lists seeker requests on the active user's carrier routes.
func (s *marketService) MatchingSeekers() []models.SeekerPost {
	if s.st.Me == nil {
		return nil
	}
	return matching.MatchSeekersForCarrier(s.st.Me.ID, s.st.CarrierPosts, s.st.SeekerPosts)
}

func findSeekerPost(posts []models.SeekerPost, id string) *models.SeekerPost {
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i]
		}
	}
	return nil
}

func findCarrierPost(posts []models.CarrierPost, id string) *models.CarrierPost {
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i]
		}
	}
	return nil
}

// RequestDeal is the seeker's entry point: it pairs carrierPostID with the
// active user's own seeker post on the same route.
func (s *marketService) RequestDeal(ctx context.Context, carrierPostID string) (*models.Deal, error) {
	me, err := s.requireMe()
	if err != nil {
		return nil, err
	}
	carrier := findCarrierPost(s.st.CarrierPosts, carrierPostID)
	if carrier == nil {
		return nil, fmt.Errorf("%w: %s", common.ErrPostNotFound, carrierPostID)
	}
	seeker, err := matching.FindOwnSeekerPost(me.ID, s.st.SeekerPosts, carrier.Route())
	if err != nil {
		return nil, err
	}
	return s.createDeal(ctx, seeker, carrier)
}

// ProposeDeal is the carrier's entry point, the mirror of RequestDeal.
func (s *marketService) ProposeDeal(ctx context.Context, seekerPostID string) (*models.Deal, error) {
	me, err := s.requireMe()
	if err != nil {
		return nil, err
	}
	seeker := findSeekerPost(s.st.SeekerPosts, seekerPostID)
	if seeker == nil {
		return nil, fmt.Errorf("%w: %s", common.ErrPostNotFound, seekerPostID)
	}
	carrier, err := matching.FindOwnCarrierPost(me.ID, s.st.CarrierPosts, seeker.Route())
	if err != nil {
		return nil, err
	}
	return s.createDeal(ctx, seeker, carrier)
}

func (s *marketService) createDeal(ctx context.Context, seeker *models.SeekerPost, carrier *models.CarrierPost) (*models.Deal, error) {
	d, err := deals.Propose(s.newID(), seeker, carrier)
	if err != nil {
		return nil, err
	}
	s.st.Deals = append(s.st.Deals, *d)
	s.log.Info(ctx, "deal created", "deal_id", d.ID, "seeker_id", d.SeekerID, "carrier_id", d.CarrierID, "kg", d.Kg)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return cloneDeal(d), nil
}

func (s *marketService) findDeal(id string) (*models.Deal, error) {
	d := models.FindDeal(s.st.Deals, id)
	if d == nil {
		return nil, fmt.Errorf("%w: %s", common.ErrDealNotFound, id)
	}
	return d, nil
}

// AcceptDeal lets the deal's carrier accept a Proposed deal.
func (s *marketService) AcceptDeal(ctx context.Context, dealID string) (*models.Deal, error) {
	me, err := s.requireMe()
	if err != nil {
		return nil, err
	}
	d, err := s.findDeal(dealID)
	if err != nil {
		return nil, err
	}
	if d.CarrierID != me.ID {
		return nil, common.ErrNotDealCarrier
	}
	if err := deals.Accept(d); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "deal accepted", "deal_id", d.ID)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return cloneDeal(d), nil
}

// AdvanceDeal moves the deal one lifecycle step. Either party may do it.
// A Released deal is returned unchanged and nothing is written.
func (s *marketService) AdvanceDeal(ctx context.Context, dealID string) (*models.Deal, error) {
	me, err := s.requireMe()
	if err != nil {
		return nil, err
	}
	d, err := s.findDeal(dealID)
	if err != nil {
		return nil, err
	}
	if !d.Involves(me.ID) {
		return nil, common.ErrNotDealParty
	}
	if !deals.Advance(d) {
		return cloneDeal(d), nil
	}
	s.log.Info(ctx, "deal advanced", "deal_id", d.ID, "status", d.Status)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return cloneDeal(d), nil
}

// SendMessage appends text to the deal chat as the active user. Blank text
// is a no-op and returns a nil message without error.
func (s *marketService) SendMessage(ctx context.Context, dealID, text string) (*models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	me, err := s.requireMe()
	if err != nil {
		return nil, err
	}
	d, err := s.findDeal(dealID)
	if err != nil {
		return nil, err
	}
	msg, ok := deals.SendMessage(d, s.newID(), me.ID, text, s.now())
	if !ok {
		return nil, nil
	}
	m := *msg
	s.log.Debug(ctx, "chat message sent", "deal_id", d.ID, "message_id", m.ID)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *marketService) Deal(dealID string) (*models.Deal, error) {
	d, err := s.findDeal(dealID)
	if err != nil {
		return nil, err
	}
	return cloneDeal(d), nil
}

// MyDeals lists the deals the active user takes part in on either side,
// whatever their current role.
func (s *marketService) MyDeals() []models.Deal {
	me := s.st.Me
	if me == nil {
		return nil
	}
	var out []models.Deal
	for i := range s.st.Deals {
		d := &s.st.Deals[i]
		if d.SeekerID == me.ID || d.CarrierID == me.ID {
			out = append(out, *cloneDeal(d))
		}
	}
	return out
}

func (s *marketService) AllDeals() []models.Deal {
	out := make([]models.Deal, len(s.st.Deals))
	for i := range s.st.Deals {
		out[i] = *cloneDeal(&s.st.Deals[i])
	}
	return out
}

func (s *marketService) AdminStats() AdminStats {
	return AdminStats{
		Users:   len(s.st.Users),
		Deals:   len(s.st.Deals),
		Revenue: deals.AdminRevenue(s.st.Deals),
	}
}

func (s *marketService) UserName(id string) string {
	return models.UserName(s.st.Users, id)
}

func (s *marketService) Snapshot() *state.State {
	return s.st.Clone()
}
