// Package resolve converts a dimension value produced by the chart parser
// into a concrete, JSON-serialisable reading anchored to a reference
// interval: a Datetime's predicate is walked to find the nearest matching
// instant, while non-temporal values pass through with unit/precision
// normalisation. The output schema mirrors the teacher's
// datetime.Result/ner.Entity JSON-tag convention.
package resolve

import (
	"github.com/az-ai-labs/chronolex/chart"
	"github.com/az-ai-labs/chronolex/moment"
	"github.com/az-ai-labs/chronolex/predicate"
	"github.com/az-ai-labs/chronolex/value"
)

// Resolved is the output schema spec.md §6 names: dim tags the value's
// dimension; Value carries a scalar reading (number, ordinal, duration
// seconds, temperature, money, percentage); From/To carry a datetime's
// resolved span as ISO 8601 local times. Grain, Unit, Precision, and
// Direction annotate the reading the way the grammar and resolver derived
// it.
type Resolved struct {
	Dim       string   `json:"dim"`
	Value     *float64 `json:"value,omitempty"`
	From      *string  `json:"from,omitempty"`
	To        *string  `json:"to,omitempty"`
	Grain     string   `json:"grain,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	Precision string   `json:"precision,omitempty"`
	Direction string   `json:"direction,omitempty"`
	Text      string   `json:"text"`
	Start     int      `json:"start"`
	End       int      `json:"end"`
}

const isoLocal = "2006-01-02T15:04:05-07:00"

// Resolve converts a single dimension value into its output reading,
// anchored at ref. It returns false when a Datetime's predicate has no
// match within the engine's lookahead bound (spec.md §4.3).
func Resolve(v value.Value, ref moment.Interval) (Resolved, bool) {
	switch val := v.(type) {
	case value.Datetime:
		return resolveDatetime(val, ref)
	case value.Integer:
		return scalar("number", float64(val.Value), "", value.Exact), true
	case value.Float:
		return scalar("number", val.Value, "", value.Exact), true
	case value.Ordinal:
		return scalar("ordinal", float64(val.Value), "", value.Exact), true
	case value.Duration:
		return resolveDuration(val), true
	case value.UnitOfDuration:
		return Resolved{Dim: "unit-of-duration", Grain: val.Grain.String()}, true
	case value.Cycle:
		return Resolved{Dim: "cycle", Grain: val.Grain.String()}, true
	case value.AmountOfMoney:
		return scalar("amount-of-money", val.Value, val.Unit, val.Precision), true
	case value.MoneyUnit:
		return Resolved{Dim: "money-unit", Unit: val.Symbol}, true
	case value.Temperature:
		return scalar("temperature", val.Value, val.Unit, value.Exact), true
	case value.Percentage:
		return scalar("percentage", val.Value, "", value.Exact), true
	case value.RelativeMinute:
		return scalar("relative-minute", float64(val.Value), "", value.Exact), true
	default:
		return Resolved{}, false
	}
}

func scalar(dim string, f float64, unit string, prec value.Precision) Resolved {
	return Resolved{Dim: dim, Value: &f, Unit: unit, Precision: prec.String()}
}

func resolveDuration(d value.Duration) Resolved {
	var seconds float64
	for _, c := range d.Comps {
		seconds += float64(c.Quantity) * grainSeconds(c.Grain)
	}
	r := scalar("duration", seconds, "second", d.Precision)
	return r
}

func grainSeconds(g moment.Grain) float64 {
	switch g {
	case moment.Second:
		return 1
	case moment.Minute:
		return 60
	case moment.Hour:
		return 3600
	case moment.Day:
		return 86400
	case moment.Week:
		return 7 * 86400
	case moment.Month:
		return 30 * 86400
	case moment.Quarter:
		return 3 * 30 * 86400
	case moment.Year:
		return 365 * 86400
	default:
		return 0
	}
}

// resolveDatetime walks the datetime's predicate in its stated direction
// (future-biased when unspecified, per spec.md §4.6: "absent an explicit
// past/future cue, readings resolve to the nearest future instant of the
// anchor's own grain or coarser") and reports the matching span.
func resolveDatetime(d value.Datetime, ref moment.Interval) (Resolved, bool) {
	dir := predicate.Future
	if d.Dir == value.Past {
		dir = predicate.Past
	}
	matches := predicate.Resolve(d.Pred, ref, dir, 1)
	if len(matches) == 0 {
		return Resolved{}, false
	}
	iv := matches[0]

	r := Resolved{
		Dim:       "datetime",
		Grain:     iv.Grain().String(),
		Precision: d.Prec.String(),
		Direction: d.Dir.String(),
	}
	from := iv.Start().Time().Format(isoLocal)
	to := iv.EndMoment().Time().Format(isoLocal)
	r.From = &from
	r.To = &to
	return r, true
}

// All resolves every chart node's value against ref, dropping any node
// whose predicate cannot be resolved (spec.md §6's parse_and_resolve:
// unresolvable candidates are simply absent from the result list, not an
// error). text is the original input the nodes' byte ranges index into,
// used to populate the matched-text field the way the teacher's
// ner.Entity does.
func All(nodes []chart.Node, text string, ref moment.Interval) []Resolved {
	out := make([]Resolved, 0, len(nodes))
	for _, n := range nodes {
		r, ok := Resolve(n.Value, ref)
		if !ok {
			continue
		}
		r.Text = text[n.Start:n.End]
		r.Start = n.Start
		r.End = n.End
		out = append(out, r)
	}
	return out
}
