package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID    string
	Value int
}

func TestCollectionPreservesInsertionOrder(t *testing.T) {
	c := NewCollection[record]()
	c.Append(record{ID: "a"}, record{ID: "b"})
	c.Append(record{ID: "c"})

	all := c.All()
	assert.Equal(t, 3, len(all))
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestCollectionReplace(t *testing.T) {
	c := NewCollection[record]()
	c.Append(record{ID: "old"})

	c.Replace([]record{{ID: "x"}, {ID: "y"}})

	assert.Equal(t, 2, c.Len())
	_, found := c.Find(func(r record) bool { return r.ID == "old" })
	assert.False(t, found)
}

func TestCollectionUpdateInPlace(t *testing.T) {
	c := NewCollection[record]()
	c.Append(record{ID: "a", Value: 1}, record{ID: "b", Value: 2})

	ok := c.Update(
		func(r record) bool { return r.ID == "b" },
		func(r *record) { r.Value = 42 },
	)
	assert.True(t, ok)

	got, found := c.Find(func(r record) bool { return r.ID == "b" })
	assert.True(t, found)
	assert.Equal(t, 42, got.Value)

	// update keeps position
	all := c.All()
	assert.Equal(t, "b", all[1].ID)
}

func TestCollectionUpdateMissing(t *testing.T) {
	c := NewCollection[record]()
	ok := c.Update(
		func(r record) bool { return r.ID == "nope" },
		func(r *record) { r.Value = 1 },
	)
	assert.False(t, ok)
}

func TestCollectionRemoveByPredicate(t *testing.T) {
	c := NewCollection[record]()
	c.Append(
		record{ID: "a", Value: 1},
		record{ID: "b", Value: 2},
		record{ID: "c", Value: 1},
	)

	removed := c.Remove(func(r record) bool { return r.Value == 1 })

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())
	all := c.All()
	assert.Equal(t, "b", all[0].ID)
}

func TestCollectionAllReturnsSnapshot(t *testing.T) {
	c := NewCollection[record]()
	c.Append(record{ID: "a", Value: 1})

	snapshot := c.All()
	snapshot[0].Value = 99

	got, _ := c.Find(func(r record) bool { return r.ID == "a" })
	assert.Equal(t, 1, got.Value)
}
