package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/luggageshare/internal/client/config"
	"github.com/dmitrijs2005/luggageshare/internal/client/services"
	"github.com/dmitrijs2005/luggageshare/internal/client/state"
	"github.com/dmitrijs2005/luggageshare/internal/client/storage"
	"github.com/dmitrijs2005/luggageshare/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_DubaiToLondon drives the whole REPL against a real store:
// a seeker and a carrier on the same device close a deal and chat on it.
func TestScenario_DubaiToLondon(t *testing.T) {
	captureOutput(t)
	ctx := context.Background()

	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	n := 0
	ids := func() string { n++; return fmt.Sprintf("x%d", n) }
	market := services.NewMarketService(state.New(), state.NewSQLPersister(db), logging.Nop(),
		services.WithIDFunc(ids), services.WithClock(func() time.Time { return time.UnixMilli(0) }))

	// ids: x1 seeker, x2 request, x3 carrier, x4 offer, x5 deal, x6 message
	script := strings.Join([]string{
		"login", "seeker", "Amal", "",
		"seek", "Dubai", "London", "EK1", "2025-06-01", "10", "", "", "",
		"logout",
		"login", "carrier", "Badr", "",
		"carry", "Dubai", "London", "EK1", "2025-06-01", "15", "", "", "",
		"propose x2",
		"accept x5",
		"advance x5",
		"switch x1",
		"accept x5",
		"advance x5",
		"advance x5",
		"advance x5",
		"send x5 thank you!",
		"chat x5",
		"admin",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	app := NewApp(&config.Config{OperationTimeout: time.Second}, market, logging.Nop(), strings.NewReader(script), &out)
	runREPL(ctx, app, app.status, app.reader, false)

	s := out.String()
	assert.Contains(t, s, "Request x2 posted: 10 kg, total AED 400.00")
	assert.Contains(t, s, "Offer x4 posted: 15 kg, up to AED 315.00 for you")
	assert.Contains(t, s, "Deal x5 proposed: 10 kg for Amal")
	assert.Contains(t, s, "Deal x5 is now Accepted")
	assert.Contains(t, s, "Deal x5 is now Released")
	assert.Contains(t, s, "Amal: thank you!")
	assert.Contains(t, s, "Revenue: AED 190.00")
	assert.Contains(t, s, "Seeker requests")
	assert.Contains(t, s, "Carrier offers")
	assert.Contains(t, s, "AED 315.00")

	d, err := market.Deal("x5")
	require.NoError(t, err)
	assert.Equal(t, "Released", string(d.Status))
	assert.Equal(t, 10.0, d.Kg)
	assert.Equal(t, 400.0, d.Total)

	reloaded := state.Load(ctx, storage.NewSQLiteRepository(db), logging.Nop())
	require.Len(t, reloaded.Deals, 1)
	assert.Equal(t, d.Status, reloaded.Deals[0].Status)
	require.Len(t, reloaded.Deals[0].Chat, 1)
	assert.Equal(t, "x1", reloaded.Deals[0].Chat[0].UserID)
}
