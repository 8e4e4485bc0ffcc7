package lang

import "github.com/flarebyte/greet/internal/randsrc"

// SelectRandom draws one language uniformly from pool. When filtered is
// false the pool is ignored and the whole catalog is used.
func SelectRandom(src randsrc.Source, pool []Language, filtered bool) (Language, error) {
	if !filtered {
		pool = catalog
	}
	if len(pool) == 0 {
		return Language{}, &EmptyPoolError{}
	}
	return pool[src.Intn(len(pool))], nil
}
