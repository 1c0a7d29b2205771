package cli

import "context"

// Admin prints platform totals, every post and every deal with its fee split.
func (a *App) Admin(ctx context.Context) error {
	renderAdmin(a.out, adminView{
		stats:    a.market.AdminStats(),
		seekers:  a.market.AllSeekerPosts(),
		carriers: a.market.AllCarrierPosts(),
		deals:    a.market.AllDeals(),
	}, a.market.UserName)
	return nil
}
