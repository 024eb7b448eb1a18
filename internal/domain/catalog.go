package domain

// Slot is one bookable office-hour with its display label.
type Slot struct {
	Hour  int
	Label string
}

// Catalog is the static inventory of rooms and office-hour slots. It is fixed
// configuration built once at startup, never derived from stored data.
type Catalog struct {
	totalRooms int
	slots      []Slot
	labels     map[int]string
}

// DefaultCatalog returns the standard office catalog: 10 rooms, hourly slots
// from 10:00 through the 18:00 slot (ending 7 PM).
func DefaultCatalog() Catalog {
	return NewCatalog(10, []Slot{
		{Hour: 10, Label: "10-11 AM"},
		{Hour: 11, Label: "11-12 PM"},
		{Hour: 12, Label: "12-1 PM"},
		{Hour: 13, Label: "1-2 PM"},
		{Hour: 14, Label: "2-3 PM"},
		{Hour: 15, Label: "3-4 PM"},
		{Hour: 16, Label: "4-5 PM"},
		{Hour: 17, Label: "5-6 PM"},
		{Hour: 18, Label: "6-7 PM"},
	})
}

// NewCatalog builds a catalog over rooms 1..totalRooms and the given slots.
// Slot order is preserved; it defines the column order of the dashboard grid.
func NewCatalog(totalRooms int, slots []Slot) Catalog {
	copied := make([]Slot, len(slots))
	copy(copied, slots)

	labels := make(map[int]string, len(copied))
	for _, s := range copied {
		labels[s.Hour] = s.Label
	}
	return Catalog{
		totalRooms: totalRooms,
		slots:      copied,
		labels:     labels,
	}
}

// TotalRooms reports the number of rooms; valid room IDs are 1..TotalRooms.
func (c Catalog) TotalRooms() int {
	return c.totalRooms
}

// Slots returns the office-hour slots in grid order. Callers must not modify
// the returned slice.
func (c Catalog) Slots() []Slot {
	return c.slots
}

// RoomExists reports whether roomID identifies a room in the catalog.
func (c Catalog) RoomExists(roomID int) bool {
	return roomID >= 1 && roomID <= c.totalRooms
}

// SlotLabel returns the display label for hour and whether the hour is a
// bookable office-hour slot.
func (c Catalog) SlotLabel(hour int) (string, bool) {
	label, ok := c.labels[hour]
	return label, ok
}
