package scene

import "sync"

// Progress is one aggregated loading update.
type Progress struct {
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}

// ProgressFunc receives aggregated updates. It is called serially and must
// not call back into the aggregator.
type ProgressFunc func(Progress)

// Mode selects how per-asset progress is folded into one percentage.
type Mode int

const (
	// ModeSlice reports the reporting asset's position inside its own slice:
	// floor((100*i + p) / N). Concurrent assets can make the value move back.
	ModeSlice Mode = iota
	// ModeHighWater keeps the best value seen per asset and reports
	// floor(sum(high) / N), which never decreases.
	ModeHighWater
)

// String returns the wire name of m.
func (m Mode) String() string {
	if m == ModeHighWater {
		return "high-water"
	}
	return "slice"
}

// ParseMode maps a wire name to a Mode. Unknown names select ModeSlice.
func ParseMode(value string) Mode {
	if value == "high-water" {
		return ModeHighWater
	}
	return ModeSlice
}

// AssetPercent converts byte counts to floor(loaded*100/total), clamped to
// 0..100. An unknown or zero total reports 0.
func AssetPercent(loaded, total int64) int {
	if total <= 0 || loaded <= 0 {
		return 0
	}
	if loaded >= total {
		return 100
	}
	return int(loaded * 100 / total)
}

// SlicePercent maps asset index's own percent p into the overall range
// split into total equal slices.
func SlicePercent(index, p, total int) int {
	if total <= 0 {
		return 0
	}
	p = clampPercent(p)
	return (100*index + p) / total
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Aggregator folds concurrent per-asset progress into one stream.
type Aggregator struct {
	mu    sync.Mutex
	total int
	mode  Mode
	high  []int
	emit  ProgressFunc
}

// NewAggregator returns an aggregator over total slices.
func NewAggregator(total int, mode Mode, emit ProgressFunc) *Aggregator {
	if total < 1 {
		total = 1
	}
	return &Aggregator{total: total, mode: mode, high: make([]int, total), emit: emit}
}

// Report records asset index at percent p and emits the aggregate.
func (a *Aggregator) Report(index int, label string, p int) Progress {
	a.mu.Lock()
	defer a.mu.Unlock()

	p = clampPercent(p)
	var out Progress
	switch a.mode {
	case ModeHighWater:
		if index >= 0 && index < len(a.high) && p > a.high[index] {
			a.high[index] = p
		}
		sum := 0
		for _, h := range a.high {
			sum += h
		}
		out = Progress{Percent: sum / a.total, Label: label}
	default:
		out = Progress{Percent: SlicePercent(index, p, a.total), Label: label}
	}
	if a.emit != nil {
		a.emit(out)
	}
	return out
}
