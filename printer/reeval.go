package printer

import (
	"log/slog"
	"sync"

	"github.com/teleivo/fmtcore/ir"
)

// maxReevaluations bounds how many times a single condition may flip before the protector refuses
// further re-evaluation and keeps the last stable branch. Ported from the printer's
// infinite-re-evaluation guard.
const maxReevaluations = 500

// reevalProtector bounds condition re-evaluations per id (C8) so cycles or unstable conditions
// cannot loop forever. The per-id counter is reset when allow is called with the same value it
// last allowed for that id. Callers only call allow when a re-evaluation changes a condition's
// stored result, so re-evaluations that leave the result unchanged do not reset the counter.
type reevalProtector struct {
	mu       sync.Mutex
	counts   map[ir.ConditionID]int
	lastSeen map[ir.ConditionID]bool
	warned   map[ir.ConditionID]bool
	logger   *slog.Logger
}

func newReevalProtector(logger *slog.Logger) *reevalProtector {
	if logger == nil {
		logger = slog.Default()
	}
	return &reevalProtector{
		counts:   make(map[ir.ConditionID]int),
		lastSeen: make(map[ir.ConditionID]bool),
		warned:   make(map[ir.ConditionID]bool),
		logger:   logger,
	}
}

// allow reports whether id may re-evaluate to newValue. It returns false once id has oscillated
// past maxReevaluations, in which case the caller must keep the previously chosen branch.
func (r *reevalProtector) allow(id ir.ConditionID, newValue bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, had := r.lastSeen[id]
	if had && prev == newValue {
		r.counts[id] = 0
		return true
	}

	r.counts[id]++
	if r.counts[id] > maxReevaluations {
		if !r.warned[id] {
			r.warned[id] = true
			r.logger.Warn("condition re-evaluation ceiling reached, keeping last stable branch",
				"condition_id", id, "limit", maxReevaluations)
		}
		return false
	}
	r.lastSeen[id] = newValue
	return true
}
