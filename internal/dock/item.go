package dock

// Item is a single dock entry. Items carry no identity of their own; the
// dock addresses them purely by position in its current order.
type Item struct {
	Icon  string
	Label string
}

// CloneItems returns an independent copy of the supplied items.
func CloneItems(items []Item) []Item {
	return append([]Item(nil), items...)
}
