package tabular

// Column describes one output column of a tabular export.
//
// Key is a dotted path resolved against the row map ("metrics.rsvps.total").
// Format, when set, overrides the default rendering; it receives the resolved
// value and the whole row so derived columns can combine fields.
type Column struct {
	Key    string
	Label  string
	Format func(value any, row map[string]any) string
}
