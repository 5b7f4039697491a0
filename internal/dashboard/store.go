package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// record is anything stored in an id-keyed collection.
type record interface {
	recordID() string
}

func (p Project) recordID() string                 { return p.ID }
func (m TeamMember) recordID() string              { return m.ID }
func (p ProjectTeamMember) recordID() string       { return p.ID }
func (i Issue) recordID() string                   { return i.ID }
func (c Certification) recordID() string           { return c.ID }
func (p MemberPOC) recordID() string               { return p.ID }
func (t Task) recordID() string                    { return t.ID }
func (p StandalonePOC) recordID() string           { return p.ID }
func (m StandalonePOCTeamMember) recordID() string { return m.ID }

// collection is an insertion-ordered sequence of records keyed by id.
// All reads hand out copies; no caller ever holds a reference into the
// backing slice.
type collection[T record] struct {
	items []T
}

func (c *collection[T]) insert(v T) {
	c.items = append(c.items, v)
}

func (c *collection[T]) byID(id string) (T, bool) {
	for _, v := range c.items {
		if v.recordID() == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) has(id string) bool {
	_, ok := c.byID(id)
	return ok
}

// all returns the records matching keep, in insertion order. A nil keep
// matches everything.
func (c *collection[T]) all(keep func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (c *collection[T]) count(keep func(T) bool) int {
	n := 0
	for _, v := range c.items {
		if keep == nil || keep(v) {
			n++
		}
	}
	return n
}

// removeWhere deletes every record matching match, preserving the order
// of the rest, and reports how many were removed.
func (c *collection[T]) removeWhere(match func(T) bool) int {
	kept := c.items[:0]
	removed := 0
	for _, v := range c.items {
		if match(v) {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	c.items = kept
	return removed
}

// update applies apply to the record with the given id in place and
// reports whether it was found.
func (c *collection[T]) update(id string, apply func(*T)) bool {
	for i := range c.items {
		if c.items[i].recordID() == id {
			apply(&c.items[i])
			return true
		}
	}
	return false
}

// Store is the exclusive holder of every entity collection. All access
// goes through the Service, which serializes writers on mu; the
// original design relied on a single-threaded event loop for this.
type Store struct {
	mu    sync.RWMutex
	nowFn func() time.Time

	projects       collection[Project]
	members        collection[TeamMember]
	projectMembers collection[ProjectTeamMember]
	issues         collection[Issue]
	certifications collection[Certification]
	memberPOCs     collection[MemberPOC]
	tasks          collection[Task]
	standalonePOCs collection[StandalonePOC]
	standaloneTeam collection[StandalonePOCTeamMember]

	// Junction rows with no identity beyond their (parent, value) pair.
	// Duplicates are not deduplicated by the store.
	skills          []TeamMemberSkill
	pocTechnologies []MemberPOCTechnology
	standaloneTech  []StandalonePOCTechnology
	assignments     []InternAssignment
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) now() time.Time {
	return s.nowFn()
}

// newID produces a process-unique opaque identifier.
func (s *Store) newID() string {
	return uuid.New().String()
}
