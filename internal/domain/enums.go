package domain

// Kind distinguishes the two sorts of device moved between floors.
type Kind int

const (
	Generator Kind = iota
	Microchip
)

// Suffix is the one-letter code used in item identifiers.
func (k Kind) Suffix() string {
	if k == Microchip {
		return "M"
	}
	return "G"
}

// Status is the outcome of checking a state.
type Status int

const (
	Safe    Status = iota // legal, search continues
	Success               // every item on the top floor
	Fried                 // a microchip shares a floor with a foreign generator
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Fried:
		return "fried"
	default:
		return "safe"
	}
}

// Direction of an elevator move.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Delta is the floor offset of a move in this direction.
func (d Direction) Delta() int {
	if d == Down {
		return -1
	}
	return 1
}
