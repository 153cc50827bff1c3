package provision

import (
	"fmt"
	"io"
	"strings"

	"gam-provisioner/core/config"
	"gam-provisioner/core/gam"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const maxListed = 7

// WriteSummary prints what a run of plan is going to create.
func WriteSummary(w io.Writer, cfg config.App, plan *Plan) {
	bidder := ""
	if cfg.Targeting.Bidder != "" {
		bidder = cfg.Bidder
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Going to create %d new line items.\n", plan.LineItems())
	fmt.Fprintf(w, "  Order: %s%s\n", cfg.OrderName, newMark(plan.Order == nil))
	fmt.Fprintf(w, "  Advertiser: %s%s\n", cfg.AdvertiserName, newMark(plan.Advertiser == nil))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Line items will have targeting:")
	fmt.Fprintf(w, "  cpm = [%s]\n", formatList(lo.Map(plan.Prices, func(p decimal.Decimal, _ int) string { return p.StringFixed(2) })))
	fmt.Fprintf(w, "  bidder = %s\n", bidder)
	fmt.Fprintf(w, "  sizes = [%s]\n", formatList(lo.Map(plan.Sizes, func(s Size, _ int) string { return s.String() })))
	fmt.Fprintf(w, "  placements = [%s]\n", formatList(lo.Map(plan.Inventory.Placements, func(p gam.Placement, _ int) string { return p.Name })))
	fmt.Fprintf(w, "  ad units = [%s]\n", formatList(lo.Map(plan.Inventory.AdUnits, func(u gam.AdUnit, _ int) string { return u.Name })))
	fmt.Fprintln(w)
}

func newMark(isNew bool) string {
	if isNew {
		return " [new]"
	}
	return ""
}

// formatList joins items, keeping the first and last three of lists longer than seven.
func formatList(items []string) string {
	if len(items) > maxListed {
		items = append(append(items[:3:3], "..."), items[len(items)-3:]...)
	}
	return strings.Join(items, ", ")
}
