package hotel

type RoomKind string

const (
	RoomSingle RoomKind = "single"
	RoomDouble RoomKind = "double"
	RoomFamily RoomKind = "family"
)

func (k RoomKind) String() string {
	return string(k)
}

func (k RoomKind) IsValid() bool {
	switch k {
	case RoomSingle, RoomDouble, RoomFamily:
		return true
	default:
		return false
	}
}

// Occupancy is the number of guests one room of this kind sleeps.
func (k RoomKind) Occupancy() int {
	switch k {
	case RoomDouble:
		return 2
	case RoomFamily:
		return 4
	default:
		return 1
	}
}

func (k RoomKind) Display() string {
	switch k {
	case RoomSingle:
		return "Single"
	case RoomDouble:
		return "Double"
	case RoomFamily:
		return "Family"
	default:
		return string(k)
	}
}
