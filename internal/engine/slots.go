package engine

import "github.com/shesviral/viralkit/internal/catalog"

// SlotCount is the number of script positions in a content package.
const SlotCount = 5

// Slot positions. The first two slots form the complementary pair, slot 3
// carries the viral plug and the remaining two are fillers.
const (
	SlotPairFirst  = 0
	SlotPairSecond = 1
	SlotFillerA    = 2
	SlotViral      = 3
	SlotFillerB    = 4
)

// Slots holds the scripts assigned to each position; nil marks an empty slot.
// Assigned scripts are never mutated, so copies of Slots may share them.
type Slots [SlotCount]*catalog.Script

// InRange reports whether i is a valid slot index.
func InRange(i int) bool {
	return i >= 0 && i < SlotCount
}

// Filled returns the number of non-empty slots.
func (s Slots) Filled() int {
	n := 0
	for _, sc := range s {
		if sc != nil {
			n++
		}
	}
	return n
}

// Full reports whether every slot holds a script.
func (s Slots) Full() bool {
	return s.Filled() == SlotCount
}

// IndexOf returns the slot holding the script with the given id, or -1.
func (s Slots) IndexOf(id string) int {
	for i, sc := range s {
		if sc != nil && sc.ID == id {
			return i
		}
	}
	return -1
}

// NextEmpty returns the first empty slot after i, wrapping around to the first
// empty slot overall. It returns -1 when every slot is filled.
func (s Slots) NextEmpty(after int) int {
	for i := after + 1; i < SlotCount; i++ {
		if s[i] == nil {
			return i
		}
	}
	for i := 0; i < SlotCount; i++ {
		if s[i] == nil {
			return i
		}
	}
	return -1
}

// partner returns the other slot of the complementary pair.
func partner(slot int) int {
	if slot == SlotPairFirst {
		return SlotPairSecond
	}
	return SlotPairFirst
}

func isPairSlot(slot int) bool {
	return slot == SlotPairFirst || slot == SlotPairSecond
}

func isFillerSlot(slot int) bool {
	return slot == SlotFillerA || slot == SlotFillerB
}
