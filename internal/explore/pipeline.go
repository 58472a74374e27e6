package explore

import (
	"context"
	"time"

	"github.com/dbmrq/fightsongs/internal/aggregate"
	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/filter"
	"github.com/dbmrq/fightsongs/internal/logging"
)

// Interaction is the outcome of one filter and aggregate run.
type Interaction struct {
	ID      string           `json:"id" yaml:"id"`
	Filter  string           `json:"filter" yaml:"filter"`
	Matched int              `json:"matched" yaml:"matched"`
	Total   int              `json:"total" yaml:"total"`
	Result  aggregate.Result `json:"result" yaml:"result"`
	Subset  []dataset.Record `json:"-" yaml:"-"`
	Elapsed time.Duration    `json:"-" yaml:"-"`
}

// Pipeline runs interactions against one dataset and logs each of them.
type Pipeline struct {
	ds     *dataset.Dataset
	logger *logging.Logger
}

// NewPipeline creates a pipeline over ds. A nil logger uses the global one.
func NewPipeline(ds *dataset.Dataset, logger *logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Global()
	}
	return &Pipeline{ds: ds, logger: logger}
}

// Dataset returns the dataset the pipeline reads.
func (p *Pipeline) Dataset() *dataset.Dataset {
	return p.ds
}

// Run filters the dataset with spec and aggregates the subset with req.
// Proportions default to the full dataset as their population.
func (p *Pipeline) Run(ctx context.Context, spec filter.Spec, req aggregate.Request) (Interaction, error) {
	if err := spec.Validate(); err != nil {
		return Interaction{}, err
	}
	if err := req.Validate(); err != nil {
		return Interaction{}, err
	}

	id := logging.NewID()
	log := p.logger.WithContext(logging.WithInteractionID(ctx, id))
	start := time.Now()

	subset := filter.Apply(p.ds.Records(), spec)
	if req.Metric == aggregate.Proportion && req.Population == 0 {
		req.Population = p.ds.Len()
	}
	res := aggregate.Aggregate(subset, req)

	it := Interaction{
		ID:      id,
		Filter:  spec.Describe(),
		Matched: len(subset),
		Total:   p.ds.Len(),
		Result:  res,
		Subset:  subset,
		Elapsed: time.Since(start),
	}
	log.Info("interaction",
		"filter", it.Filter,
		"group_by", req.GroupBy.String(),
		"metric", string(req.Metric),
		"matched", it.Matched,
		"groups", len(res.Groups),
		"elapsed", it.Elapsed,
	)
	return it, nil
}

// DecadeTrends computes the decade view and logs it as an interaction.
func (p *Pipeline) DecadeTrends(ctx context.Context, minDecade int, tropes []dataset.Trope) DecadeTrend {
	trend := DecadeTrends(p.ds, minDecade, tropes)
	p.logView(ctx, "decade", "min_decade", minDecade, "series", len(tropes), "decades", len(trend.Profile.Groups))
	return trend
}

// ConferenceProfiles computes the conference view and logs it.
func (p *Pipeline) ConferenceProfiles(ctx context.Context, selected []string, tropes []dataset.Trope) (ConferenceProfile, error) {
	prof, err := ConferenceProfiles(p.ds, selected, tropes)
	if err != nil {
		p.logView(ctx, "conference", "dimensions", len(tropes), "error", err.Error())
		return prof, err
	}
	p.logView(ctx, "conference", "selected", prof.Selected, "dimensions", len(tropes))
	return prof, nil
}

// AuthorshipComparison computes the authorship view and logs it.
func (p *Pipeline) AuthorshipComparison(ctx context.Context, kind AuthorshipKind) Authorship {
	a := AuthorshipComparison(p.ds, kind)
	p.logView(ctx, "authorship", "kind", string(kind), "yes", a.YesCount, "no", a.NoCount)
	return a
}

func (p *Pipeline) logView(ctx context.Context, view string, args ...any) {
	ctx = logging.WithInteractionID(ctx, logging.NewID())
	p.logger.WithContext(ctx).Debug("view", append([]any{"view", view}, args...)...)
}
