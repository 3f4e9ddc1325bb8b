package printer

import "github.com/teleivo/fmtcore/ir"

// resolverContext implements [ir.ResolverContext] over a printer's live writer and resolution
// tables, exactly as described in the condition engine's resolution context (C5): current writer
// state is live, infos and conditions are looked up from the tables filled in by earlier passes.
type resolverContext struct {
	p *printer
}

func (c resolverContext) Writer() ir.Snapshot {
	return c.p.w.live()
}

func (c resolverContext) Info(id ir.InfoID) (ir.Snapshot, bool) {
	return c.p.tables.getInfo(id)
}

func (c resolverContext) Condition(id ir.ConditionID) (bool, bool) {
	return c.p.tables.getCondition(id)
}

// evaluate runs cond's resolver. A nil result ("cannot decide yet") is treated as false, and cond
// is registered against each of its dependent infos so it gets re-evaluated once they resolve.
func (p *printer) evaluate(cond *ir.Condition) bool {
	result := cond.Resolve(resolverContext{p})
	if result == nil {
		for _, infoID := range cond.DependentInfos {
			p.pendingByInfo[infoID] = append(p.pendingByInfo[infoID], cond.ID)
		}
		return false
	}
	return *result
}

// enterCondition is the C6 step 5 handler: evaluate cond, optionally record its result, take a
// save point before following the chosen branch, and return that branch (possibly nil).
func (p *printer) enterCondition(cond *ir.Condition, cont *ir.Item, stack []*ir.Item) *ir.Item {
	value := p.evaluate(cond)
	if cond.IsStored || len(cond.DependentInfos) > 0 {
		p.tables.setCondition(cond.ID, value)
	}

	cs := conditionState{
		cond:  cond,
		sp:    p.w.snapshot(),
		cont:  cont,
		stack: append([]*ir.Item(nil), stack...),
	}
	p.tables.setConditionState(cond.ID, cs)

	if value {
		return cond.True
	}
	return cond.False
}

// reenterCondition rewinds to cs's save point and resumes traversal down the newly chosen branch.
// It returns the new current item and continuation stack for the caller to adopt.
func (p *printer) reenterCondition(cs conditionState, newValue bool) (*ir.Item, []*ir.Item) {
	p.w.restore(cs.sp)
	p.clearActiveSavePoints()

	newStack := append([]*ir.Item(nil), cs.stack...)
	newStack = append(newStack, cs.cont)

	if newValue {
		return cs.cond.True, newStack
	}
	return cs.cond.False, newStack
}

// notifyInfoResolved re-evaluates every condition depending on infoID (directly, via
// DependentInfos). If the first one whose result changes passes the re-evaluation protector, the
// printer rewinds to it and the caller must resume from the returned item/stack. Rewinding
// invalidates forward progress made since that condition was first entered, so any other
// conditions still pending for this infoID will naturally be reconsidered when that region is
// re-walked.
func (p *printer) notifyInfoResolved(infoID ir.InfoID) (*ir.Item, []*ir.Item, bool) {
	pending := p.pendingByInfo[infoID]
	if len(pending) == 0 {
		return nil, nil, false
	}
	delete(p.pendingByInfo, infoID)

	for _, condID := range pending {
		cs, ok := p.tables.getConditionState(condID)
		if !ok {
			continue
		}
		newValue := p.evaluate(cs.cond)
		oldValue, _ := p.tables.getCondition(condID)
		if newValue == oldValue {
			continue
		}
		if !p.reeval.allow(condID, newValue) {
			continue
		}
		p.tables.setCondition(condID, newValue)
		item, stack := p.reenterCondition(cs, newValue)
		return item, stack, true
	}
	return nil, nil, false
}

// reevaluateMarker is the C6 step 6 handler for an explicit ConditionReevaluation marker: look up
// the condition's current value, and if re-evaluating now yields a different result, rewind and
// re-enter with the new result.
func (p *printer) reevaluateMarker(r *ir.ConditionReevaluation) (*ir.Item, []*ir.Item, bool) {
	cs, ok := p.tables.getConditionState(r.Condition)
	if !ok {
		return nil, nil, false
	}
	newValue := p.evaluate(cs.cond)
	oldValue, _ := p.tables.getCondition(r.Condition)
	if newValue == oldValue {
		return nil, nil, false
	}
	if !p.reeval.allow(r.Condition, newValue) {
		return nil, nil, false
	}
	p.tables.setCondition(r.Condition, newValue)
	item, stack := p.reenterCondition(cs, newValue)
	return item, stack, true
}
