package provision

import (
	"context"
	"time"

	"gam-provisioner/core/config"
	"gam-provisioner/core/reconcile"
	"gam-provisioner/core/storage"

	"github.com/google/uuid"
)

// Report describes what one run found and created.
type Report struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Order      string   `json:"order"`
	Advertiser string   `json:"advertiser"`
	Bidder     string   `json:"bidder"`
	Prices     []string `json:"prices"`
	AdUnits    []string `json:"ad_units"`
	Sizes      []string `json:"sizes"`
	LineItems  int      `json:"line_items"`

	Created []CreatedEntity  `json:"created"`
	Totals  map[string]Tally `json:"totals"`
}

// CreatedEntity is one entity created by the run.
type CreatedEntity struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tally counts the entities of one kind.
type Tally struct {
	Found   int `json:"found"`
	Created int `json:"created"`
}

// NewReport starts a report for plan with a fresh run id.
func NewReport(cfg config.App, plan *Plan) *Report {
	r := &Report{
		RunID:      uuid.NewString(),
		StartedAt:  time.Now().UTC(),
		Order:      cfg.OrderName,
		Advertiser: cfg.AdvertiserName,
		Bidder:     cfg.Bidder,
		LineItems:  plan.LineItems(),
		Created:    []CreatedEntity{},
		Totals:     map[string]Tally{},
	}
	for _, p := range plan.Prices {
		r.Prices = append(r.Prices, p.StringFixed(2))
	}
	r.AdUnits = plan.Inventory.AdUnitIDs()
	for _, s := range plan.Sizes {
		r.Sizes = append(r.Sizes, s.Key)
	}
	return r
}

func (r *Report) record(kind, id, name string) {
	r.Created = append(r.Created, CreatedEntity{Kind: kind, ID: id, Name: name})
}

func (r *Report) finish(c *reconcile.Counter) *Report {
	r.FinishedAt = time.Now().UTC()
	for _, kind := range c.Kinds() {
		r.Totals[kind] = Tally{Found: c.Found(kind), Created: c.Created(kind)}
	}
	return r
}

// CreatedCount returns how many entities of kind the run created.
func (r *Report) CreatedCount(kind string) int {
	return r.Totals[kind].Created
}

// Archive uploads the report as <prefix>/<run id>.json and returns the object key.
func (r *Report) Archive(ctx context.Context, client storage.Client, cfg storage.Config) (string, error) {
	return storage.Archive(ctx, client, cfg, r.RunID, r)
}
