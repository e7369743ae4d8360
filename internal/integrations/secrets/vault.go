package secrets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	vaultapi "github.com/hashicorp/vault/api"
)

const (
	vaultRefKey    = "vault_ref"
	vaultKeyPrefix = "open-aigov"
)

type VaultOptions struct {
	Address   string
	Token     string
	Namespace string
	Mount     string
}

// Vault keeps credentials in a KV v2 secrets engine.
type Vault struct {
	kv    *vaultapi.KVv2
	mount string
}

func NewVault(opts VaultOptions) (*Vault, error) {
	address := strings.TrimSpace(opts.Address)
	if address == "" {
		return nil, errors.New("vault address is required")
	}
	token := strings.TrimSpace(opts.Token)
	if token == "" {
		return nil, errors.New("vault token is required")
	}
	mount := strings.Trim(strings.TrimSpace(opts.Mount), "/")
	if mount == "" {
		mount = "secret"
	}

	cfg := vaultapi.DefaultConfig()
	cfg.Address = address
	cfg.HttpClient = &http.Client{Timeout: 30 * time.Second}

	client, err := vaultapi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault client setup: %w", err)
	}
	client.SetToken(token)
	if ns := strings.TrimSpace(opts.Namespace); ns != "" {
		client.SetNamespace(ns)
	}
	return &Vault{kv: client.KVv2(mount), mount: mount}, nil
}

func (v *Vault) Name() string { return "vault" }

func (v *Vault) secretPath(ref Ref) string {
	return vaultKeyPrefix + "/" + ref.Path()
}

func (v *Vault) Put(ctx context.Context, ref Ref, config any) ([]byte, error) {
	path := v.secretPath(ref)
	values, keys, wrapped := kvData(config)
	if _, err := v.kv.Put(ctx, path, values); err != nil {
		return nil, fmt.Errorf("vault put %s/%s: %w", v.mount, path, err)
	}
	return marshalRef(vaultRef{Mount: v.mount, Path: path, Keys: keys, Wrapped: wrapped})
}

// kvData shapes config for a KV v2 write. Objects are written as-is; any
// other document is wrapped under wrappedKey and reports no keys.
func kvData(config any) (map[string]any, []string, bool) {
	if obj, ok := config.(map[string]any); ok && obj != nil {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		return obj, sortedCopy(keys), false
	}
	return map[string]any{wrappedKey: config}, nil, true
}

func (v *Vault) Get(ctx context.Context, ref Ref, stored []byte) (any, error) {
	path := v.secretPath(ref)
	secret, err := v.kv.Get(ctx, path)
	if err != nil {
		if errors.Is(err, vaultapi.ErrSecretNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("vault get %s/%s: %w", v.mount, path, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, ErrNotFound
	}
	if r, ok := parseRef(stored); ok && r.Wrapped {
		return secret.Data[wrappedKey], nil
	}
	return secret.Data, nil
}

func (v *Vault) Delete(ctx context.Context, ref Ref, _ []byte) error {
	path := v.secretPath(ref)
	if err := v.kv.DeleteMetadata(ctx, path); err != nil {
		return fmt.Errorf("vault delete %s/%s: %w", v.mount, path, err)
	}
	return nil
}

func sortedCopy(keys []string) []string {
	out := slices.Clone(keys)
	slices.Sort(out)
	return out
}
