// Package cache provides the small LRU cache used to memoize derived
// kernel data (convolution weights, lookup tables) across frames.
//
//	c := cache.New[int, []float32](64)
//	weights := c.GetOrCreate(key, func() []float32 { return build(key) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
