package storage

import "sync"

const sentinelKey = "__storage_probe__"

// Probe self-tests a store before anyone relies on it. The test runs once
// per probe; a store that is present but disabled (or full) is reported
// unavailable for the probe's lifetime. Inject a fresh probe to re-test.
type Probe struct {
	once sync.Once
	ok   bool
}

// NewProbe builds an unevaluated probe.
func NewProbe() *Probe {
	return &Probe{}
}

// Available reports whether the store round-trips a sentinel value. The
// sentinel is always removed.
func (p *Probe) Available(s Store) bool {
	if p == nil {
		return selfTest(s)
	}
	p.once.Do(func() {
		p.ok = selfTest(s)
	})
	return p.ok
}

func selfTest(s Store) bool {
	if s == nil {
		return false
	}
	if err := s.Set(sentinelKey, "probe"); err != nil {
		return false
	}
	got, err := s.Get(sentinelKey)
	if err != nil || got != "probe" {
		_ = s.Remove(sentinelKey)
		return false
	}
	return s.Remove(sentinelKey) == nil
}
