package models

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/luggageshare/internal/client/pricing"
	"github.com/dmitrijs2005/luggageshare/internal/common"
)

// Docs holds the identity documents attached to a post as inline data URLs.
// Any of them may be empty.
type Docs struct {
	Passport string `json:"passport"`
	ID       string `json:"id"`
	Photo    string `json:"photo"`
}

// Route is the (from, to, date) triple posts are matched on.
type Route struct {
	From string
	To   string
	Date string
}

// Complete reports whether all three fields are set; incomplete routes
// never match anything.
func (r Route) Complete() bool {
	return r.From != "" && r.To != "" && r.Date != ""
}

// PostInput carries the user-entered fields shared by both post kinds.
type PostInput struct {
	From   string
	To     string
	Flight string
	Date   string
	Kg     float64
	Docs   Docs
}

// SeekerPost is a request for Kg of luggage space on a flight.
type SeekerPost struct {
	ID     string  `json:"id"`
	UserID string  `json:"userId"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Flight string  `json:"flight"`
	Date   string  `json:"date"`
	Kg     float64 `json:"kg"`
	Total  float64 `json:"total"`
	Docs   Docs    `json:"docs"`
}

func (p SeekerPost) Route() Route { return Route{From: p.From, To: p.To, Date: p.Date} }

// CarrierPost is an offer of Kg of spare allowance on a flight.
type CarrierPost struct {
	ID      string  `json:"id"`
	UserID  string  `json:"userId"`
	From    string  `json:"from"`
	To      string  `json:"to"`
	Flight  string  `json:"flight"`
	Date    string  `json:"date"`
	Kg      float64 `json:"kg"`
	Revenue float64 `json:"revenue"`
	Docs    Docs    `json:"docs"`
}

func (p CarrierPost) Route() Route { return Route{From: p.From, To: p.To, Date: p.Date} }

func validatePost(id, userID string, kg float64) error {
	if id == "" {
		return fmt.Errorf("%w: post id is required", common.ErrValidation)
	}
	if userID == "" {
		return fmt.Errorf("%w: post owner is required", common.ErrValidation)
	}
	if kg < 0 || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return fmt.Errorf("%w: kg must be a non-negative number, got %v", common.ErrValidation, kg)
	}
	return nil
}

// NewSeekerPost validates in and prices it at pricing.PricePerKg.
func NewSeekerPost(id, userID string, in PostInput) (*SeekerPost, error) {
	if err := validatePost(id, userID, in.Kg); err != nil {
		return nil, err
	}
	return &SeekerPost{
		ID:     id,
		UserID: userID,
		From:   in.From,
		To:     in.To,
		Flight: in.Flight,
		Date:   in.Date,
		Kg:     in.Kg,
		Total:  pricing.Amount(pricing.Total(in.Kg)),
		Docs:   in.Docs,
	}, nil
}

// NewCarrierPost validates in and computes the carrier's payout.
func NewCarrierPost(id, userID string, in PostInput) (*CarrierPost, error) {
	if err := validatePost(id, userID, in.Kg); err != nil {
		return nil, err
	}
	return &CarrierPost{
		ID:      id,
		UserID:  userID,
		From:    in.From,
		To:      in.To,
		Flight:  in.Flight,
		Date:    in.Date,
		Kg:      in.Kg,
		Revenue: pricing.Amount(pricing.CarrierShare(in.Kg)),
		Docs:    in.Docs,
	}, nil
}
