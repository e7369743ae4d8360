// Package secrets stores integration credential blobs. The database backend
// keeps them in the integrations.config column; the Vault backend writes them
// to a KV v2 mount and keeps only a reference in the column.
package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Ref identifies the credentials of one integration.
type Ref struct {
	TenantID      int64
	IntegrationID int64
}

func (r Ref) Path() string {
	return fmt.Sprintf("tenants/%d/integrations/%d", r.TenantID, r.IntegrationID)
}

// Backend persists a credential document and returns what should be written
// to the integration's config column. Get returns the document Put was given.
type Backend interface {
	Name() string
	Put(ctx context.Context, ref Ref, config any) ([]byte, error)
	Get(ctx context.Context, ref Ref, stored []byte) (any, error)
	Delete(ctx context.Context, ref Ref, stored []byte) error
}

var ErrNotFound = errors.New("credentials not found")

type Database struct{}

func NewDatabase() Database {
	return Database{}
}

func (Database) Name() string { return "database" }

func (Database) Put(_ context.Context, _ Ref, config any) ([]byte, error) {
	return json.Marshal(config)
}

func (Database) Get(_ context.Context, _ Ref, stored []byte) (any, error) {
	if len(stored) == 0 {
		return map[string]any{}, nil
	}
	var out any
	if err := json.Unmarshal(stored, &out); err != nil {
		return nil, fmt.Errorf("decode stored config: %w", err)
	}
	return out, nil
}

func (Database) Delete(context.Context, Ref, []byte) error {
	return nil
}

func decodeObject(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode stored config: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// Keys returns the top-level keys of a stored config column: an empty slice
// for an empty column, nil when the column holds a document that is not an
// object. Values are never returned.
func Keys(stored []byte) []string {
	obj, err := decodeObject(stored)
	if err != nil {
		return nil
	}
	if ref, ok := obj[vaultRefKey].(map[string]any); ok {
		if raw, ok := ref["keys"].([]any); ok {
			keys := make([]string, 0, len(raw))
			for _, k := range raw {
				if s, ok := k.(string); ok {
					keys = append(keys, s)
				}
			}
			return sortedCopy(keys)
		}
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	return sortedCopy(keys)
}
