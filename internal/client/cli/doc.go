// Package cli provides the interactive luggageshare command-line client.
//
// It renders the profile, seeker, carrier and admin views as terminal output
// and drives a services.MarketService from a simple REPL. Typical flow: log in
// as a seeker or carrier, post a request or an offer, look at matches, open a
// deal, and then accept, advance and chat on it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See App and runREPL for details.
package cli
