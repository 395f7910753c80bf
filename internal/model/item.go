package model

// Item is the domain model for a todo entry.
// IDs are assigned by the store that owns the item; Text is trimmed on add
// and never edited in place.
type Item struct {
	ID        int    `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Counts summarizes a list of items.
type Counts struct {
	Total     int
	Completed int
	Pending   int
}

// CountItems tallies completed and pending items.
func CountItems(items []Item) Counts {
	c := Counts{Total: len(items)}
	for _, it := range items {
		if it.Completed {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}
