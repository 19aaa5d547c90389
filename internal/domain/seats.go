package domain

import "slices"

// SeatMap is the occupancy record of a single showtime: a fixed capacity plus
// the set of reserved seat numbers. Seat numbers are 1-based; anything outside
// [1, capacity] is never free and never reservable. The zero value has no
// capacity and no free seats.
type SeatMap struct {
	capacity int
	reserved map[int]struct{}
}

// NewSeatMap returns a seat map with the given capacity and every seat free.
func NewSeatMap(capacity int) SeatMap {
	if capacity < 0 {
		capacity = 0
	}

	return SeatMap{
		capacity: capacity,
		reserved: make(map[int]struct{}),
	}
}

func (m SeatMap) Capacity() int {
	return m.capacity
}

// IsFree reports whether seat is inside [1, capacity] and not reserved.
func (m SeatMap) IsFree(seat int) bool {
	if seat < 1 || seat > m.capacity {
		return false
	}

	_, taken := m.reserved[seat]

	return !taken
}

// Reserve marks seat as taken. It returns false when the seat is out of range
// or already reserved, leaving the map unchanged.
func (m *SeatMap) Reserve(seat int) bool {
	if !m.IsFree(seat) {
		return false
	}

	m.reserved[seat] = struct{}{}

	return true
}

// Release frees a previously reserved seat. Releasing a free or out-of-range
// seat is a no-op.
func (m *SeatMap) Release(seat int) {
	delete(m.reserved, seat)
}

func (m SeatMap) FreeCount() int {
	return m.capacity - len(m.reserved)
}

// Clone returns an independent copy. Mutating the clone does not affect the
// original, which matters for the compare-and-swap write path.
func (m SeatMap) Clone() SeatMap {
	clone := NewSeatMap(m.capacity)
	for seat := range m.reserved {
		clone.reserved[seat] = struct{}{}
	}

	return clone
}

func (m SeatMap) Equal(other SeatMap) bool {
	if m.capacity != other.capacity || len(m.reserved) != len(other.reserved) {
		return false
	}

	for seat := range m.reserved {
		if _, ok := other.reserved[seat]; !ok {
			return false
		}
	}

	return true
}

// Flags returns the storage form: one 0/1 flag per seat, index 0 holding seat 1.
func (m SeatMap) Flags() []int16 {
	flags := make([]int16, m.capacity)
	for seat := range m.reserved {
		flags[seat-1] = 1
	}

	return flags
}

// SeatMapFromFlags rebuilds a seat map from its storage form.
func SeatMapFromFlags(flags []int16) SeatMap {
	m := NewSeatMap(len(flags))
	for i, flag := range flags {
		if flag != 0 {
			m.reserved[i+1] = struct{}{}
		}
	}

	return m
}

// ReservedSeats returns the reserved seat numbers in ascending order.
func (m SeatMap) ReservedSeats() []int {
	seats := make([]int, 0, len(m.reserved))
	for seat := range m.reserved {
		seats = append(seats, seat)
	}

	slices.Sort(seats)

	return seats
}
