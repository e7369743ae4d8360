package secrets

import "encoding/json"

// wrappedKey holds a credential document that is not an object; KV v2 only
// stores objects.
const wrappedKey = "value"

type vaultRef struct {
	Mount   string   `json:"mount"`
	Path    string   `json:"path"`
	Keys    []string `json:"keys"`
	Wrapped bool     `json:"wrapped,omitempty"`
}

func marshalRef(ref vaultRef) ([]byte, error) {
	return json.Marshal(map[string]vaultRef{vaultRefKey: ref})
}

// parseRef reads the reference written by marshalRef. A column that holds
// no reference yields ok=false.
func parseRef(stored []byte) (vaultRef, bool) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(stored, &wrapper); err != nil {
		return vaultRef{}, false
	}
	raw, ok := wrapper[vaultRefKey]
	if !ok {
		return vaultRef{}, false
	}
	var ref vaultRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return vaultRef{}, false
	}
	return ref, true
}
