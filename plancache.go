package xfft

import "sync"

// planCacheKey identifies a cached plan by the concern it serves
// (complex, real, or Hartley), the working precision, and the
// transform length.
type planCacheKey struct {
	kind string
	bits int
	n    int
}

// PlanCache is a process-lifetime, in-memory cache of precomputed
// plans. Nothing is ever written to or read from disk: nothing
// persists once the process exits, so there is no import/export
// counterpart here.
type PlanCache struct {
	mu    sync.Mutex
	plans map[planCacheKey]any
}

var defaultPlanCache = &PlanCache{plans: make(map[planCacheKey]any)}

// NewPlanCache creates an empty plan cache for callers who want
// isolation from the package-level default (for example, to bound
// its lifetime to a single request).
func NewPlanCache() *PlanCache {
	return &PlanCache{plans: make(map[planCacheKey]any)}
}

// ClearPlanCache removes every entry from the default plan cache.
func ClearPlanCache() { defaultPlanCache.Clear() }

// PlanCacheLen reports how many plans the default plan cache holds.
func PlanCacheLen() int { return defaultPlanCache.Len() }

func (c *PlanCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans = make(map[planCacheKey]any)
}

func (c *PlanCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.plans)
}

func bitsOf[T Complex | Float]() int {
	var zero T
	switch any(zero).(type) {
	case complex64, float32:
		return 32
	default:
		return 64
	}
}

// cachedComplexPlan returns c's cached complex plan of length n,
// building and storing one via NewPlan if none exists yet. Go methods
// cannot carry their own type parameters, so the cache is threaded
// through as a plain argument to a generic function instead of a
// generic method.
func cachedComplexPlan[T Complex](c *PlanCache, n int) (*Plan[T], error) {
	key := planCacheKey{kind: "complex", bits: bitsOf[T](), n: n}

	c.mu.Lock()
	if p, ok := c.plans[key]; ok {
		c.mu.Unlock()
		return p.(*Plan[T]), nil
	}
	c.mu.Unlock()

	p, err := NewPlan[T](n)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.plans[key]; ok {
		return existing.(*Plan[T]), nil
	}
	c.plans[key] = p
	return p, nil
}

func cachedRealPlan[T Float](c *PlanCache, n int) (*RealPlan[T], error) {
	key := planCacheKey{kind: "real", bits: bitsOf[T](), n: n}

	c.mu.Lock()
	if p, ok := c.plans[key]; ok {
		c.mu.Unlock()
		return p.(*RealPlan[T]), nil
	}
	c.mu.Unlock()

	p, err := NewRealPlan[T](n)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.plans[key]; ok {
		return existing.(*RealPlan[T]), nil
	}
	c.plans[key] = p
	return p, nil
}

func cachedHartleyPlan[T Float](c *PlanCache, n int) (*HartleyPlan[T], error) {
	key := planCacheKey{kind: "hartley", bits: bitsOf[T](), n: n}

	c.mu.Lock()
	if p, ok := c.plans[key]; ok {
		c.mu.Unlock()
		return p.(*HartleyPlan[T]), nil
	}
	c.mu.Unlock()

	p, err := NewHartleyPlan[T](n)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.plans[key]; ok {
		return existing.(*HartleyPlan[T]), nil
	}
	c.plans[key] = p
	return p, nil
}
