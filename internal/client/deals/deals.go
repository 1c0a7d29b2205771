// Package deals creates deals from matched posts and drives their lifecycle
// and chat. Everything here is a pure transition on *models.Deal; persisting
// the result is the caller's job.
package deals

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/client/pricing"
	"github.com/dmitrijs2005/luggageshare/internal/common"
	"github.com/shopspring/decimal"
)

// Propose builds a Proposed deal between a seeker post and a carrier post.
// Route equality is the caller's concern. The weight is always the smaller of
// the two posts' weights.
func Propose(id string, seeker *models.SeekerPost, carrier *models.CarrierPost) (*models.Deal, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: deal id is required", common.ErrValidation)
	}
	if seeker == nil || carrier == nil {
		return nil, common.ErrNoMatchingPost
	}

	kg := math.Min(seeker.Kg, carrier.Kg)
	return &models.Deal{
		ID:          id,
		SeekerID:    seeker.UserID,
		CarrierID:   carrier.UserID,
		Kg:          kg,
		Total:       pricing.Amount(pricing.Total(kg)),
		Status:      models.StatusProposed,
		TimelineIdx: 0,
		Chat:        []models.ChatMessage{},
	}, nil
}

// Accept moves a Proposed deal to Accepted. Any other status is rejected
// with common.ErrNotProposed and d is left untouched.
func Accept(d *models.Deal) error {
	if d.Status != models.StatusProposed {
		return fmt.Errorf("%w: deal %s is %s", common.ErrNotProposed, d.ID, d.Status)
	}
	d.TimelineIdx = models.IndexOf(models.StatusAccepted)
	d.Status = models.StatusAccepted
	return nil
}

// Advance moves d one step along the lifecycle. Released stays Released.
// Advancing a Proposed deal reaches Accepted without an explicit Accept.
// It reports whether the status changed.
func Advance(d *models.Deal) bool {
	before := d.Status
	next := d.TimelineIdx + 1
	if next < 0 {
		next = 0
	}
	if next > models.LastStep {
		next = models.LastStep
	}
	d.TimelineIdx = next
	d.Status = models.Lifecycle[next]
	return d.Status != before
}

// SendMessage appends a message from senderID to d's chat. Blank text is
// ignored: nothing is appended and ok is false.
func SendMessage(d *models.Deal, id, senderID, text string, now time.Time) (msg *models.ChatMessage, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	d.Chat = append(d.Chat, models.ChatMessage{
		ID:     id,
		UserID: senderID,
		Text:   text,
		TS:     now.UnixMilli(),
	})
	return &d.Chat[len(d.Chat)-1], true
}

// AdminRevenue is the platform's total commission across all deals. It is
// derived on every call and never stored.
func AdminRevenue(all []models.Deal) decimal.Decimal {
	kgs := make([]float64, len(all))
	for i, d := range all {
		kgs[i] = d.Kg
	}
	return pricing.AdminRevenue(kgs...)
}
