package explore

import (
	"math"
	"strconv"

	"github.com/dbmrq/fightsongs/internal/aggregate"
	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/filter"
)

// DecadeTrend is the share of songs using each trope, per decade.
type DecadeTrend struct {
	MinDecade int                     `json:"min_decade" yaml:"min_decade"`
	Profile   aggregate.ProfileResult `json:"profile" yaml:"profile"`
}

// DecadeTrends profiles the songs from minDecade onward by decade.
func DecadeTrends(ds *dataset.Dataset, minDecade int, tropes []dataset.Trope) DecadeTrend {
	subset := filter.Apply(ds.Records(), filter.Spec{MinDecade: &minDecade})
	return DecadeTrend{
		MinDecade: minDecade,
		Profile:   aggregate.Profile(subset, aggregate.ByDecade, tropes),
	}
}

// Decades returns the decades that have songs, ascending.
func (d DecadeTrend) Decades() []int {
	out := make([]int, 0, len(d.Profile.Groups))
	for _, g := range d.Profile.Groups {
		if dec, err := strconv.Atoi(g.Key); err == nil {
			out = append(out, dec)
		}
	}
	return out
}

// Series returns the per-decade values of one trope, aligned with Decades.
// A decade where no song has a known value for t is NaN. ok is false if
// the trope was not profiled.
func (d DecadeTrend) Series(t dataset.Trope) (values []float64, ok bool) {
	for i, pt := range d.Profile.Tropes {
		if pt != t {
			continue
		}
		values = make([]float64, len(d.Profile.Groups))
		for j, g := range d.Profile.Groups {
			if g.Samples[i] == 0 {
				values[j] = math.NaN()
				continue
			}
			values[j] = g.Values[i]
		}
		return values, true
	}
	return nil, false
}

// AvailableDecades lists the decades with songs at or after minDecade.
func AvailableDecades(ds *dataset.Dataset, minDecade int) []int {
	subset := filter.Apply(ds.Records(), filter.Spec{MinDecade: &minDecade})
	res := aggregate.Aggregate(subset, aggregate.Request{GroupBy: aggregate.ByDecade, Metric: aggregate.Count})

	out := make([]int, 0, len(res.Groups))
	for _, g := range res.Groups {
		if dec, err := strconv.Atoi(g.Key); err == nil {
			out = append(out, dec)
		}
	}
	return out
}
