package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/client/pricing"
	"github.com/dmitrijs2005/luggageshare/internal/common"
)

// inputPost collects the fields shared by requests and offers. Document
// files are read before anything is created.
func (a *App) inputPost(ctx context.Context, kgPrompt string) (models.PostInput, error) {
	var in models.PostInput

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"From (city)", &in.From},
		{"To (city)", &in.To},
		{"Flight number", &in.Flight},
		{"Date (YYYY-MM-DD)", &in.Date},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return in, err
		}
		*f.dst = v
	}

	weight, err := GetKg(a.reader, kgPrompt, a.out)
	if err != nil {
		return in, err
	}
	in.Kg = weight

	files := []struct {
		prompt string
		dst    *string
	}{
		{"Passport file (Enter to skip)", &in.Docs.Passport},
		{"ID card file (Enter to skip)", &in.Docs.ID},
		{"Personal photo file (Enter to skip)", &in.Docs.Photo},
	}
	for _, f := range files {
		path, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return in, err
		}
		if *f.dst, err = readDataURL(ctx, path); err != nil {
			return in, err
		}
	}
	return in, nil
}

// Seek posts a request for luggage space and shows matching offers.
func (a *App) Seek(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}
	in, err := a.inputPost(ctx, "Weight needed (kg)")
	if err != nil {
		return err
	}

	opCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.market.CreateSeekerPost(opCtx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Request %s posted: %s, total %s\n", p.ID, kg(p.Kg), pricing.FormatAED(pricing.Total(p.Kg)))
	renderCarrierMatches(a.out, a.market.MatchingCarriers(), a.market.UserName)
	return nil
}

// Carry posts an offer of spare allowance and shows matching requests.
func (a *App) Carry(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotLoggedIn
	}
	in, err := a.inputPost(ctx, "Spare allowance (kg)")
	if err != nil {
		return err
	}

	opCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.market.CreateCarrierPost(opCtx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Offer %s posted: %s, up to %s for you\n", p.ID, kg(p.Kg), pricing.FormatAED(pricing.CarrierShare(p.Kg)))
	renderSeekerMatches(a.out, a.market.MatchingSeekers(), a.market.UserName)
	return nil
}

// Matches shows the opposite side's posts on the active user's routes,
// depending on their role.
func (a *App) Matches(ctx context.Context) error {
	me := a.market.Me()
	if me == nil {
		return common.ErrNotLoggedIn
	}
	if me.Role == models.RoleCarrier {
		renderSeekerMatches(a.out, a.market.MatchingSeekers(), a.market.UserName)
	} else {
		renderCarrierMatches(a.out, a.market.MatchingCarriers(), a.market.UserName)
	}
	return nil
}
