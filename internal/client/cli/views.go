package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dmitrijs2005/luggageshare/internal/client/docs"
	"github.com/dmitrijs2005/luggageshare/internal/client/models"
	"github.com/dmitrijs2005/luggageshare/internal/client/pricing"
	"github.com/dmitrijs2005/luggageshare/internal/client/services"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const progressWidth = 32

var progressTemplate pb.ProgressBarTemplate = `{{bar . "[" "=" ">" "." "]"}} {{percent . "%.0f%%"}}`

var (
	yellow = color.New(color.FgYellow).SprintFunc()
	blue   = color.New(color.FgBlue).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
}

func kg(v float64) string {
	return humanize.Ftoa(v) + " kg"
}

func statusString(s models.Status) string {
	switch s {
	case models.StatusProposed:
		return yellow(s)
	case models.StatusAccepted, models.StatusInTransit:
		return blue(s)
	case models.StatusDelivered:
		return cyan(s)
	default:
		return green(s)
	}
}

func attachment(dataURL string) string {
	switch {
	case dataURL == "":
		return "-"
	case docs.IsImage(dataURL):
		return "image"
	default:
		return "file"
	}
}

func docsSummary(d models.Docs) string {
	return fmt.Sprintf("passport:%s id:%s photo:%s", attachment(d.Passport), attachment(d.ID), attachment(d.Photo))
}

func renderProfile(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "%s %s\n", color.BlueString("Name:"), u.Name)
	fmt.Fprintf(w, "%s %s\n", color.BlueString("Role:"), u.Role)
	fmt.Fprintf(w, "%s %s\n", color.BlueString("ID:  "), u.ID)
	fmt.Fprintf(w, "%s %s\n", color.BlueString("Photo:"), attachment(u.Photo))
}

func renderUsers(w io.Writer, users []models.User, meID string) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users yet.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "\tID\tNAME\tROLE")
	for _, u := range users {
		mark := ""
		if u.ID == meID {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, u.ID, u.Name, u.Role)
	}
	_ = tw.Flush()
}

// renderCarrierMatches is the seeker's view of matching offers.
func renderCarrierMatches(w io.Writer, posts []models.CarrierPost, name func(string) string) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No matching carriers yet.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCARRIER\tROUTE\tDATE\tFLIGHT\tSPACE\tDOCS")
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s → %s\t%s\t%s\t%s\t%s\n",
			p.ID, name(p.UserID), p.From, p.To, p.Date, p.Flight, kg(p.Kg), docsSummary(p.Docs))
	}
	_ = tw.Flush()
}

// renderSeekerMatches is the carrier's view of matching requests.
func renderSeekerMatches(w io.Writer, posts []models.SeekerPost, name func(string) string) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No matching seekers yet.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSEEKER\tROUTE\tDATE\tFLIGHT\tWEIGHT\tYOU EARN\tDOCS")
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s → %s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, name(p.UserID), p.From, p.To, p.Date, p.Flight, kg(p.Kg),
			pricing.FormatAED(pricing.CarrierShare(p.Kg)), docsSummary(p.Docs))
	}
	_ = tw.Flush()
}

// side labels which party of d the user meID is.
func side(d models.Deal, meID string) string {
	switch {
	case d.SeekerID == meID && d.CarrierID == meID:
		return "both"
	case d.SeekerID == meID:
		return string(models.RoleSeeker)
	case d.CarrierID == meID:
		return string(models.RoleCarrier)
	default:
		return "-"
	}
}

func renderDeals(w io.Writer, deals []models.Deal, meID string, name func(string) string) {
	if len(deals) == 0 {
		fmt.Fprintln(w, "No deals yet.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSIDE\tSEEKER\tCARRIER\tWEIGHT\tTOTAL\tSTATUS\tPROGRESS")
	for _, d := range deals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, side(d, meID), name(d.SeekerID), name(d.CarrierID), kg(d.Kg),
			pricing.FormatAED(pricing.Total(d.Kg)), statusString(d.Status), progressBar(d.TimelineIdx))
	}
	_ = tw.Flush()
}

// progressBar renders how far along the lifecycle a deal is.
func progressBar(idx int) string {
	if idx < 0 {
		idx = 0
	}
	if idx > models.LastStep {
		idx = models.LastStep
	}
	bar := progressTemplate.New(models.LastStep)
	bar.SetWidth(progressWidth)
	bar.SetCurrent(int64(idx))
	return bar.String()
}

// renderTimeline shows every lifecycle step with the current one in brackets.
func renderTimeline(w io.Writer, d *models.Deal) {
	steps := make([]string, len(models.Lifecycle))
	for i, s := range models.Lifecycle {
		switch {
		case i == d.TimelineIdx:
			steps[i] = "[" + statusString(s) + "]"
		case i < d.TimelineIdx:
			steps[i] = green(s)
		default:
			steps[i] = string(s)
		}
	}
	fmt.Fprintln(w, strings.Join(steps, " > "))
	fmt.Fprintln(w, progressBar(d.TimelineIdx))
}

func renderDeal(w io.Writer, d *models.Deal, name func(string) string) {
	fmt.Fprintf(w, "%s %s\n", color.BlueString("Deal:   "), d.ID)
	fmt.Fprintf(w, "%s %s\n", color.BlueString("Seeker: "), name(d.SeekerID))
	fmt.Fprintf(w, "%s %s\n", color.BlueString("Carrier:"), name(d.CarrierID))
	fmt.Fprintf(w, "%s %s, %s (carrier gets %s)\n", color.BlueString("Weight: "),
		kg(d.Kg), pricing.FormatAED(pricing.Total(d.Kg)), pricing.FormatAED(pricing.CarrierShare(d.Kg)))
	renderTimeline(w, d)
}

func renderChat(w io.Writer, d *models.Deal, name func(string) string) {
	if len(d.Chat) == 0 {
		fmt.Fprintln(w, "No messages yet.")
		return
	}
	for _, m := range d.Chat {
		ts := time.UnixMilli(m.TS).Format("2006-01-02 15:04")
		fmt.Fprintf(w, "%s %s: %s\n", yellow(ts), blue(name(m.UserID)), m.Text)
	}
}

// adminView is everything the admin screen shows.
type adminView struct {
	stats    services.AdminStats
	seekers  []models.SeekerPost
	carriers []models.CarrierPost
	deals    []models.Deal
}

func renderAdmin(w io.Writer, v adminView, name func(string) string) {
	fmt.Fprintf(w, "%s %d\n", color.BlueString("Users:  "), v.stats.Users)
	fmt.Fprintf(w, "%s %d\n", color.BlueString("Deals:  "), v.stats.Deals)
	fmt.Fprintf(w, "%s %s\n", color.BlueString("Revenue:"), green(pricing.FormatAED(v.stats.Revenue)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.BlueString("Seeker requests"))
	if len(v.seekers) == 0 {
		fmt.Fprintln(w, "No requests yet.")
	} else {
		tw := newTable(w)
		fmt.Fprintln(tw, "ID\tSEEKER\tFLIGHT\tDATE\tROUTE\tWEIGHT\tTOTAL")
		for _, p := range v.seekers {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s → %s\t%s\t%s\n",
				p.ID, name(p.UserID), p.Flight, p.Date, p.From, p.To, kg(p.Kg), pricing.FormatAED(pricing.Total(p.Kg)))
		}
		_ = tw.Flush()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.BlueString("Carrier offers"))
	if len(v.carriers) == 0 {
		fmt.Fprintln(w, "No offers yet.")
	} else {
		tw := newTable(w)
		fmt.Fprintln(tw, "ID\tCARRIER\tFLIGHT\tDATE\tROUTE\tWEIGHT\tREVENUE")
		for _, p := range v.carriers {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s → %s\t%s\t%s\n",
				p.ID, name(p.UserID), p.Flight, p.Date, p.From, p.To, kg(p.Kg), pricing.FormatAED(pricing.CarrierShare(p.Kg)))
		}
		_ = tw.Flush()
	}

	deals := v.deals
	if len(deals) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.BlueString("Deals"))
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSEEKER\tCARRIER\tWEIGHT\tTOTAL\tFEE\tPAYOUT\tSTATUS")
	for _, d := range deals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, name(d.SeekerID), name(d.CarrierID), kg(d.Kg), pricing.FormatAED(pricing.Total(d.Kg)),
			pricing.FormatAED(pricing.AdminShare(d.Kg)), pricing.FormatAED(pricing.CarrierShare(d.Kg)),
			statusString(d.Status))
	}
	_ = tw.Flush()
}
