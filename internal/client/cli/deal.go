package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/common"
)

func (a *App) dealCreated(d *models.Deal) {
	fmt.Fprintf(a.out, "Deal %s proposed: %s for %s\n", d.ID, kg(d.Kg), a.market.UserName(d.SeekerID))
	renderDeal(a.out, d, a.market.UserName)
}

// Request opens a deal with a carrier's offer using the seeker's own
// request on the same route.
func (a *App) Request(ctx context.Context, carrierPostID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	d, err := a.market.RequestDeal(ctx, carrierPostID)
	if err != nil {
		return err
	}
	a.dealCreated(d)
	return nil
}

// Propose is the carrier's mirror of Request.
func (a *App) Propose(ctx context.Context, seekerPostID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	d, err := a.market.ProposeDeal(ctx, seekerPostID)
	if err != nil {
		return err
	}
	a.dealCreated(d)
	return nil
}

func (a *App) Deals(ctx context.Context) error {
	me := a.market.Me()
	if me == nil {
		return common.ErrNotLoggedIn
	}
	renderDeals(a.out, a.market.MyDeals(), me.ID, a.market.UserName)
	return nil
}

func (a *App) Accept(ctx context.Context, dealID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	d, err := a.market.AcceptDeal(ctx, dealID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deal %s is now %s\n", d.ID, statusString(d.Status))
	renderTimeline(a.out, d)
	return nil
}

func (a *App) Advance(ctx context.Context, dealID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	d, err := a.market.AdvanceDeal(ctx, dealID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deal %s is now %s\n", d.ID, statusString(d.Status))
	renderTimeline(a.out, d)
	return nil
}

func (a *App) Progress(ctx context.Context, dealID string) error {
	d, err := a.market.Deal(dealID)
	if err != nil {
		return err
	}
	renderDeal(a.out, d, a.market.UserName)
	return nil
}

func (a *App) Chat(ctx context.Context, dealID string) error {
	d, err := a.market.Deal(dealID)
	if err != nil {
		return err
	}
	renderChat(a.out, d, a.market.UserName)
	return nil
}

// Send appends one line to the deal chat. Blank text sends nothing.
func (a *App) Send(ctx context.Context, dealID, text string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.market.SendMessage(ctx, dealID, text)
	if err != nil {
		return err
	}
	if msg == nil {
		fmt.Fprintln(a.out, "Nothing to send.")
		return nil
	}
	fmt.Fprintln(a.out, "Sent.")
	return nil
}
