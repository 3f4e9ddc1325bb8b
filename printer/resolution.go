package printer

import (
	"github.com/teleivo/fmtcore/internal/densemap"
	"github.com/teleivo/fmtcore/ir"
)

// conditionState is everything the condition engine (C5) needs to re-evaluate and, if the branch
// flips, roll back to a previously chosen condition.
type conditionState struct {
	cond *ir.Condition
	sp   savePoint
	// cont is the item to resume at once the chosen branch's chain is exhausted.
	cont *ir.Item
	// stack is the continuation stack in effect when the condition was first reached, i.e. before
	// cont was pushed onto it.
	stack []*ir.Item
}

// tables (C4) stores, per format run, the resolved value of every info and condition. Backing
// storage favours random access by dense integer id: a densemap.Map indexed directly by id rather
// than a hash map, per the printer's id-allocation discipline.
type tables struct {
	infos      *densemap.Map[ir.Snapshot]
	conditions *densemap.Map[bool]
	condState  *densemap.Map[conditionState]
}

func newTables() *tables {
	return &tables{
		infos:      densemap.New[ir.Snapshot](),
		conditions: densemap.New[bool](),
		condState:  densemap.New[conditionState](),
	}
}

func (t *tables) setInfo(id ir.InfoID, snap ir.Snapshot) {
	t.infos.Set(uint32(id), snap)
}

func (t *tables) getInfo(id ir.InfoID) (ir.Snapshot, bool) {
	return t.infos.Get(uint32(id))
}

func (t *tables) clearInfo(id ir.InfoID) {
	t.infos.Remove(uint32(id))
}

func (t *tables) setCondition(id ir.ConditionID, v bool) {
	t.conditions.Set(uint32(id), v)
}

func (t *tables) getCondition(id ir.ConditionID) (bool, bool) {
	return t.conditions.Get(uint32(id))
}

func (t *tables) setConditionState(id ir.ConditionID, cs conditionState) {
	t.condState.Set(uint32(id), cs)
}

func (t *tables) getConditionState(id ir.ConditionID) (conditionState, bool) {
	return t.condState.Get(uint32(id))
}
