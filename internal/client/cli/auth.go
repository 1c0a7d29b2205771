package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/common"
)

// Login asks for a role, a display name and an optional photo file, then
// logs in. The first login on a device creates the user; later logins update
// it.
func (a *App) Login(ctx context.Context) error {
	roleText, err := getSimpleText(a.reader, "Role (seeker/carrier)", a.out)
	if err != nil {
		return err
	}
	role, err := models.ParseRole(roleText)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return err
	}

	photoPath, err := getSimpleText(a.reader, "Photo file (Enter to skip)", a.out)
	if err != nil {
		return err
	}
	photo, err := readDataURL(ctx, photoPath)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.market.Login(ctx, role, name, photo)
	if err != nil {
		return err
	}
	renderProfile(a.out, u)
	return nil
}

// Logout forgets the active user; the next login creates a new one.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.market.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	me := a.market.Me()
	if me == nil {
		return common.ErrNotLoggedIn
	}
	renderProfile(a.out, me)
	return nil
}

// Users lists everyone who has logged in on this device.
func (a *App) Users(ctx context.Context) error {
	meID := ""
	if me := a.market.Me(); me != nil {
		meID = me.ID
	}
	renderUsers(a.out, a.market.Users(), meID)
	return nil
}

// Switch makes an existing user the active one.
func (a *App) Switch(ctx context.Context, userID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.market.SwitchUser(ctx, userID)
	if err != nil {
		return err
	}
	renderProfile(a.out, u)
	return nil
}
