package adms

// Pad appends blank placeholder rows until the channel list reaches
// Capacity, continuing the channel numbering. Lists already at or above
// capacity pass through unchanged.
func Pad(rows []Row) []Row {
	for i := len(rows) + 1; i <= Capacity; i++ {
		rows = append(rows, Blank(i))
	}
	return rows
}
