package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrDraftNotFound = errors.New("wizard draft not found")

// SessionStore is the subset of *scs.SessionManager drafts are kept in.
type SessionStore interface {
	Put(ctx context.Context, key string, val any)
	GetBytes(ctx context.Context, key string) []byte
	Remove(ctx context.Context, key string)
}

// Drafts keeps in-progress wizards in the caller's session, so abandoning a
// wizard never leaves rows behind.
type Drafts struct {
	sess SessionStore
}

func NewDrafts(sess SessionStore) *Drafts {
	return &Drafts{sess: sess}
}

func draftKey(id string) string {
	return "wizard:" + id
}

func (d *Drafts) Save(ctx context.Context, w *Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode wizard draft: %w", err)
	}
	d.sess.Put(ctx, draftKey(w.ID), b)
	return nil
}

// Load returns the draft id when it exists and belongs to tenantID.
func (d *Drafts) Load(ctx context.Context, tenantID int64, id string) (*Wizard, error) {
	b := d.sess.GetBytes(ctx, draftKey(id))
	if len(b) == 0 {
		return nil, ErrDraftNotFound
	}
	var w Wizard
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("decode wizard draft: %w", err)
	}
	if w.TenantID != tenantID || w.ID != id {
		return nil, ErrDraftNotFound
	}
	if w.Risks == nil {
		w.Risks = NewRiskSet(nil)
	}
	if w.Assessments == nil {
		w.Assessments = Assessments{}
	}
	return &w, nil
}

// Discard drops a draft and everything staged in it.
func (d *Drafts) Discard(ctx context.Context, id string) {
	d.sess.Remove(ctx, draftKey(id))
}
