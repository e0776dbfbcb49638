package voicing

// Collection is the full, ranked output of one generation run: an ordered
// list of voicings with no duplicate canonical ids, plus an id index for
// O(1) lookup. A Collection is immutable after construction — a Spec
// change produces a brand-new Collection, never an edit of an old one.
type Collection struct {
	items []*Voicing
	byID  map[ID]*Voicing
}

// NewCollection builds a Collection from an already-ranked voicing slice.
// Later duplicates of an id are dropped silently: the generator dedups at
// acceptance time, so a collision here can only come from caller-composed
// slices, and order priority belongs to the earlier (better-ranked) entry.
func NewCollection(items []*Voicing) *Collection {
	c := &Collection{
		items: make([]*Voicing, 0, len(items)),
		byID:  make(map[ID]*Voicing, len(items)),
	}
	for _, v := range items {
		if _, dup := c.byID[v.ID]; dup {
			continue
		}
		c.byID[v.ID] = v
		c.items = append(c.items, v)
	}

	return c
}

// Len returns the number of voicings.
func (c *Collection) Len() int { return len(c.items) }

// At returns the voicing at rank i (0 = best).
func (c *Collection) At(i int) *Voicing { return c.items[i] }

// ByID returns the voicing with canonical id id, or ok=false.
func (c *Collection) ByID(id ID) (*Voicing, bool) {
	v, ok := c.byID[id]

	return v, ok
}

// IDs returns the canonical ids in rank order.
func (c *Collection) IDs() []ID {
	ids := make([]ID, len(c.items))
	for i, v := range c.items {
		ids[i] = v.ID
	}

	return ids
}

// All returns the ranked voicings. The returned slice is shared with the
// Collection and must be treated as read-only.
func (c *Collection) All() []*Voicing { return c.items }
