// Package dashboard composes a dataset, its aggregation and the achievement
// catalog into a single read-only snapshot for presentation.
package dashboard

import (
	"github.com/nikogura/skill-dashboard/pkg/achievements"
	"github.com/nikogura/skill-dashboard/pkg/aggregate"
	"github.com/nikogura/skill-dashboard/pkg/events"
)

// View is an immutable snapshot of one dataset load. Aggregation happens once
// in Build; achievements are re-evaluated on every call to Achievements. The
// view owns private copies of its events: neither the caller's dataset nor
// values returned by accessors alias them.
type View struct {
	data    events.Dataset
	result  aggregate.Result
	catalog *achievements.Catalog
}

// Build copies data, aggregates it and binds it to catalog. A nil catalog
// selects the default catalog.
func Build(data events.Dataset, catalog *achievements.Catalog, limits aggregate.Limits) (view *View) {
	if catalog == nil {
		catalog = achievements.DefaultCatalog()
	}

	data = data.Clone()

	view = &View{
		data:    data,
		result:  aggregate.AggregateWithLimits(data.Events, limits),
		catalog: catalog,
	}

	return view
}

// Dataset returns a copy of the events the view was built from.
func (v *View) Dataset() (data events.Dataset) {
	data = v.data.Clone()
	return data
}

// Result returns a copy of the aggregation result.
func (v *View) Result() (result aggregate.Result) {
	result = v.result.Clone()
	return result
}

// Achievements evaluates the catalog against the snapshot, in catalog order.
func (v *View) Achievements() (statuses []achievements.Status) {
	statuses = v.catalog.Evaluate(v.result.Soft, v.result.Hard, v.data.Clone())
	return statuses
}

// EarnedCount returns how many achievements are currently earned.
func (v *View) EarnedCount() (count int) {
	for _, status := range v.Achievements() {
		if status.Earned {
			count++
		}
	}
	return count
}
