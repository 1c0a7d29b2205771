// Package matching pairs seeker requests with carrier offers.
//
// Two posts match when their from, to and date fields are byte-for-byte
// equal and all non-empty. There is no normalization, ranking, fuzzy or
// date-range matching.
package matching

import (
	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/common"
)

func sameRoute(own, other models.Route) bool {
	return own.Complete() && own == other
}

func anyRoute(own []models.Route, r models.Route) bool {
	for _, o := range own {
		if sameRoute(o, r) {
			return true
		}
	}
	return false
}

// MatchCarriersForSeeker returns, in list order, every carrier post that
// shares a route with one of meID's seeker posts.
func MatchCarriersForSeeker(meID string, seekerPosts []models.SeekerPost, carrierPosts []models.CarrierPost) []models.CarrierPost {
	var own []models.Route
	for _, p := range seekerPosts {
		if meID != "" && p.UserID == meID {
			own = append(own, p.Route())
		}
	}

	var out []models.CarrierPost
	for _, c := range carrierPosts {
		if anyRoute(own, c.Route()) {
			out = append(out, c)
		}
	}
	return out
}

// MatchSeekersForCarrier mirrors MatchCarriersForSeeker for the carrier side.
func MatchSeekersForCarrier(meID string, carrierPosts []models.CarrierPost, seekerPosts []models.SeekerPost) []models.SeekerPost {
	var own []models.Route
	for _, p := range carrierPosts {
		if meID != "" && p.UserID == meID {
			own = append(own, p.Route())
		}
	}

	var out []models.SeekerPost
	for _, s := range seekerPosts {
		if anyRoute(own, s.Route()) {
			out = append(out, s)
		}
	}
	return out
}

// FindOwnSeekerPost returns meID's first seeker post on route.
func FindOwnSeekerPost(meID string, seekerPosts []models.SeekerPost, route models.Route) (*models.SeekerPost, error) {
	for i := range seekerPosts {
		p := &seekerPosts[i]
		if meID != "" && p.UserID == meID && sameRoute(p.Route(), route) {
			return p, nil
		}
	}
	return nil, common.ErrNoMatchingPost
}

// FindOwnCarrierPost returns meID's first carrier post on route.
func FindOwnCarrierPost(meID string, carrierPosts []models.CarrierPost, route models.Route) (*models.CarrierPost, error) {
	for i := range carrierPosts {
		p := &carrierPosts[i]
		if meID != "" && p.UserID == meID && sameRoute(p.Route(), route) {
			return p, nil
		}
	}
	return nil, common.ErrNoMatchingPost
}
