// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

// Type Cache deduplicates truth tables.
//
// Tables are stored normalized, so that bit 0 is 0.  The literal of a table
// is 2*slot | c, where slot is the position of the normalized table in the
// cache and c records whether the table had to be complemented.  Hence the
// complement of a cached table has the literal with the low bit flipped.
type Cache struct {
	tables []T
	index  map[string]uint32
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{index: make(map[string]uint32)}
}

// Insert returns the literal of t, adding t to the cache if neither t nor
// its complement was inserted before.
func (c *Cache) Insert(t T) uint32 {
	var compl uint32
	u := t
	if t.Bit(0) {
		compl = 1
		u = t.Not()
	}
	k := u.key()
	if slot, ok := c.index[k]; ok {
		return slot<<1 | compl
	}
	slot := uint32(len(c.tables))
	c.tables = append(c.tables, u.Clone())
	c.index[k] = slot
	return slot<<1 | compl
}

// Lookup returns the table with literal lit.  Lookup panics if lit
// was never returned by Insert.
func (c *Cache) Lookup(lit uint32) T {
	t := c.tables[lit>>1]
	if lit&1 == 1 {
		return t.Not()
	}
	return t.Clone()
}

// Vars returns the number of variables of the table with literal lit.
func (c *Cache) Vars(lit uint32) int {
	return c.tables[lit>>1].n
}

// Bit returns bit m of the table with literal lit without copying.
func (c *Cache) Bit(lit uint32, m int) bool {
	return c.tables[lit>>1].Bit(m) != (lit&1 == 1)
}

// Len returns the number of distinct normalized tables in c.
func (c *Cache) Len() int {
	return len(c.tables)
}

// Clone returns a deep copy of c.
func (c *Cache) Clone() *Cache {
	d := &Cache{
		tables: make([]T, len(c.tables)),
		index:  make(map[string]uint32, len(c.index))}
	for i, t := range c.tables {
		d.tables[i] = t.Clone()
	}
	for k, v := range c.index {
		d.index[k] = v
	}
	return d
}
