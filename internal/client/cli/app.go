package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/luggageshare/internal/client/config"
	"github.com/dmitrijs2005/luggageshare/internal/client/services"
	"github.com/dmitrijs2005/luggageshare/internal/logging"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// App is the REPL front end. Prompts and user input share one buffered
// reader; views are written to out.
type App struct {
	config *config.Config
	market services.MarketService
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, market services.MarketService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		market: market,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run greets the user and blocks in the REPL. The prompt is printed only when
// stdin is a terminal, so piped scripts produce clean output.
func (a *App) Run(ctx context.Context) {
	interactive := isTerminal(int(os.Stdin.Fd()))
	if !interactive {
		color.NoColor = true
	}

	printlnFn("Welcome to luggageshare (type 'help' for commands)")
	if me := a.market.Me(); me != nil {
		printlnFn(fmt.Sprintf("Logged in as %s (%s)", me.Name, me.Role))
	}

	runREPL(ctx, a, a.status, a.reader, interactive)
}

func (a *App) isLoggedIn() bool {
	return a.market.Me() != nil
}

func (a *App) status() string {
	me := a.market.Me()
	if me == nil {
		return "(guest)"
	}
	return fmt.Sprintf("(%s %s)", me.Name, me.Role)
}

// withTimeout bounds a single store operation.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.OperationTimeout)
}
