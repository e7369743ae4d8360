package usecases

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/open-sspm/open-aigov/internal/validate"
)

var (
	ErrLastRisk     = errors.New("a use case must keep at least one risk")
	ErrRiskNotFound = errors.New("risk not found")
)

type RiskState string

const (
	RiskStateExisting RiskState = "existing"
	RiskStateEdited   RiskState = "edited"
	RiskStateNew      RiskState = "new"
)

// RiskItem is one visible entry of a RiskSet.
type RiskItem struct {
	Key   string    `json:"key"`
	State RiskState `json:"state"`
	Risk  Risk      `json:"risk"`
}

// RiskPlan is the set of writes that reconciles stored risks with a RiskSet.
type RiskPlan struct {
	Creates []Risk
	Updates []Risk
	Deletes []int64
}

func (p RiskPlan) Empty() bool {
	return len(p.Creates) == 0 && len(p.Updates) == 0 && len(p.Deletes) == 0
}

type draft struct {
	Key  string `json:"key"`
	Risk Risk   `json:"risk"`
}

// RiskSet tracks the risks of a use case while it is being edited: the risks
// as loaded, pending edits to them, the ids marked for removal, and brand-new
// drafts. Keys are "r<id>" for loaded risks and "new-<n>" for drafts.
type RiskSet struct {
	existing []Risk
	edits    map[int64]Risk
	removed  map[int64]bool
	drafts   []draft
	nextKey  int
}

func NewRiskSet(existing []Risk) *RiskSet {
	rs := &RiskSet{
		existing: make([]Risk, 0, len(existing)),
		edits:    make(map[int64]Risk),
		removed:  make(map[int64]bool),
	}
	for _, r := range existing {
		if r.ID > 0 {
			rs.existing = append(rs.existing, r)
		}
	}
	return rs
}

func existingKey(id int64) string {
	return "r" + strconv.FormatInt(id, 10)
}

func parseExistingKey(key string) (int64, bool) {
	if !strings.HasPrefix(key, "r") {
		return 0, false
	}
	id, err := strconv.ParseInt(key[1:], 10, 64)
	return id, err == nil && id > 0
}

// Total is (existing - removed) + new.
func (rs *RiskSet) Total() int {
	return len(rs.existing) - len(rs.removed) + len(rs.drafts)
}

// Add stages a new risk and returns its key.
func (rs *RiskSet) Add(r Risk) string {
	rs.nextKey++
	key := "new-" + strconv.Itoa(rs.nextKey)
	r.ID = 0
	rs.drafts = append(rs.drafts, draft{Key: key, Risk: r.Normalized()})
	return key
}

// Update replaces the staged value of the risk under key.
func (rs *RiskSet) Update(key string, r Risk) error {
	r = r.Normalized()
	if i := rs.draftIndex(key); i >= 0 {
		r.ID = 0
		rs.drafts[i].Risk = r
		return nil
	}
	id, ok := rs.liveExisting(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRiskNotFound, key)
	}
	r.ID = id
	rs.edits[id] = r
	return nil
}

// Remove drops a draft or marks a loaded risk for deletion. It refuses when
// the set would be left without risks.
func (rs *RiskSet) Remove(key string) error {
	i := rs.draftIndex(key)
	id, isExisting := rs.liveExisting(key)
	if i < 0 && !isExisting {
		return fmt.Errorf("%w: %s", ErrRiskNotFound, key)
	}
	if rs.Total()-1 < 1 {
		return ErrLastRisk
	}
	if i >= 0 {
		rs.drafts = append(rs.drafts[:i], rs.drafts[i+1:]...)
		return nil
	}
	rs.removed[id] = true
	delete(rs.edits, id)
	return nil
}

func (rs *RiskSet) draftIndex(key string) int {
	for i, d := range rs.drafts {
		if d.Key == key {
			return i
		}
	}
	return -1
}

// liveExisting resolves key to a loaded risk that is not marked removed.
func (rs *RiskSet) liveExisting(key string) (int64, bool) {
	id, ok := parseExistingKey(key)
	if !ok || rs.removed[id] {
		return 0, false
	}
	for _, r := range rs.existing {
		if r.ID == id {
			return id, true
		}
	}
	return 0, false
}

// Items lists the risks that would exist after saving: loaded risks (with
// their pending edit applied) followed by drafts.
func (rs *RiskSet) Items() []RiskItem {
	out := make([]RiskItem, 0, rs.Total())
	for _, r := range rs.existing {
		if rs.removed[r.ID] {
			continue
		}
		item := RiskItem{Key: existingKey(r.ID), State: RiskStateExisting, Risk: r}
		if edit, ok := rs.edits[r.ID]; ok {
			item.State = RiskStateEdited
			item.Risk = edit
		}
		out = append(out, item)
	}
	for _, d := range rs.drafts {
		out = append(out, RiskItem{Key: d.Key, State: RiskStateNew, Risk: d.Risk})
	}
	return out
}

// Validate checks the count rule and every staged (new or edited) risk.
// Field keys are prefixed with the risk key, e.g. "new-2.name".
func (rs *RiskSet) Validate() validate.FieldErrors {
	fe := validate.FieldErrors{}
	if rs.Total() < 1 {
		fe.Add("risks", "Add at least one risk")
	}
	for _, item := range rs.Items() {
		if item.State == RiskStateExisting {
			continue
		}
		fe.Merge(item.Key, item.Risk.Validate())
	}
	return fe
}

// Plan computes the writes needed to persist the set. Edits identical to the
// loaded value are skipped.
func (rs *RiskSet) Plan() RiskPlan {
	var plan RiskPlan
	for _, r := range rs.existing {
		if rs.removed[r.ID] {
			plan.Deletes = append(plan.Deletes, r.ID)
			continue
		}
		if edit, ok := rs.edits[r.ID]; ok && edit != r.Normalized() {
			plan.Updates = append(plan.Updates, edit)
		}
	}
	for _, d := range rs.drafts {
		plan.Creates = append(plan.Creates, d.Risk)
	}
	return plan
}

type riskSetJSON struct {
	Existing []Risk  `json:"existing"`
	Edits    []Risk  `json:"edits,omitempty"`
	Removed  []int64 `json:"removed,omitempty"`
	Drafts   []draft `json:"drafts,omitempty"`
	NextKey  int     `json:"next_key"`
}

func (rs *RiskSet) MarshalJSON() ([]byte, error) {
	out := riskSetJSON{Existing: rs.existing, NextKey: rs.nextKey, Drafts: rs.drafts}
	for _, r := range rs.existing {
		if edit, ok := rs.edits[r.ID]; ok {
			out.Edits = append(out.Edits, edit)
		}
		if rs.removed[r.ID] {
			out.Removed = append(out.Removed, r.ID)
		}
	}
	return json.Marshal(out)
}

func (rs *RiskSet) UnmarshalJSON(data []byte) error {
	var in riskSetJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	next := NewRiskSet(in.Existing)
	for _, e := range in.Edits {
		next.edits[e.ID] = e
	}
	for _, id := range in.Removed {
		next.removed[id] = true
	}
	next.drafts = in.Drafts
	next.nextKey = in.NextKey
	*rs = *next
	return nil
}
