package integrations

import (
	"testing"
	"time"
)

func TestCacheExpiresAndEvicts(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	c := NewCache(2, time.Minute)
	c.now = func() time.Time { return now }

	c.Set(1, []Integration{{ID: 10, TenantID: 1}})
	now = now.Add(time.Second)
	c.Set(2, []Integration{{ID: 20, TenantID: 2}})
	now = now.Add(time.Second)
	c.Set(3, []Integration{{ID: 30, TenantID: 3}})

	if _, ok := c.Get(1); ok {
		t.Fatal("oldest tenant should have been evicted")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get(2); ok {
		t.Fatal("expired entry returned")
	}
}

func TestCacheSwap(t *testing.T) {
	t.Parallel()

	c := NewCache(4, time.Minute)
	c.Set(1, []Integration{{ID: 10, TenantID: 1, Name: "OpenAI"}})

	prev, ok := c.Swap(Integration{ID: 10, TenantID: 1, Name: "OpenAI", Enabled: true})
	if !ok || prev.Enabled {
		t.Fatalf("Swap() = %+v, %v", prev, ok)
	}
	items, _ := c.Get(1)
	if !items[0].Enabled {
		t.Fatal("Swap() did not replace cached record")
	}

	if _, ok := c.Swap(Integration{ID: 99, TenantID: 1}); ok {
		t.Fatal("Swap() of unknown id should report false")
	}
	if _, ok := c.Swap(Integration{ID: 10, TenantID: 7}); ok {
		t.Fatal("Swap() for uncached tenant should report false")
	}
}
