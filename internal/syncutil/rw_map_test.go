package syncutil_test

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/ghettovoice/sipheader/internal/syncutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRWMap(t *testing.T) {
	t.Parallel()

	var m syncutil.RWMap[string, int]
	if _, ok := m.Get("a"); ok {
		t.Fatal("m.Get(\"a\") on empty map = _, true, want _, false")
	}
	if m.Delete("a") {
		t.Error("m.Delete(\"a\") on empty map = true, want false")
	}

	m.Set("a", 1)
	m.Set("a", 2)
	if got, ok := m.Get("a"); !ok || got != 2 {
		t.Errorf("m.Get(\"a\") = %v, %v, want 2, true", got, ok)
	}
	if !m.Delete("a") {
		t.Error("m.Delete(\"a\") = false, want true")
	}
	if _, ok := m.Get("a"); ok {
		t.Error("m.Get(\"a\") after delete = _, true, want _, false")
	}

	var nilMap *syncutil.RWMap[string, int]
	if _, ok := nilMap.Get("a"); ok {
		t.Error("nil.Get(\"a\") = _, true, want _, false")
	}
}

func TestRWMap_Concurrent(t *testing.T) {
	t.Parallel()

	var (
		m  syncutil.RWMap[string, int]
		eg errgroup.Group
	)
	for i := range 16 {
		eg.Go(func() error {
			key := fmt.Sprintf("k%d", i%4)
			m.Set(key, i)
			if _, ok := m.Get(key); !ok {
				return fmt.Errorf("key %q not found", key)
			}
			if i >= 12 {
				m.Delete(fmt.Sprintf("k%d", i%2))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"k2", "k3"} {
		if _, ok := m.Get(key); !ok {
			t.Errorf("m.Get(%q) = _, false, want _, true", key)
		}
	}
}
