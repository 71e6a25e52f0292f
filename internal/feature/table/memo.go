package table

import "go-gin-user-table/internal/domain"

// memo keeps the last (key, output) pair of one stage. rev changes whenever
// the output is recomputed so the next stage can key on it.
type memo[K comparable] struct {
	key  K
	out  []domain.User
	ok   bool
	rev  uint64
	runs int
}

func (m *memo[K]) get(key K, compute func() []domain.User) []domain.User {
	if m.ok && m.key == key {
		return m.out
	}
	m.out = compute()
	m.key = key
	m.ok = true
	m.rev++
	m.runs++
	return m.out
}
