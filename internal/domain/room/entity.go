package room

import "errors"

var (
	ErrInvalidNumber    = errors.New("room number must not be empty")
	ErrInvalidCapacity  = errors.New("room capacity must be positive")
	ErrInvalidComputers = errors.New("lab computer count must be positive")
	ErrInvalidKind      = errors.New("invalid room kind")
)

// Kind is the explicit discriminant of the Standard | Lab variant. It is
// carried through serialization instead of relying on a zero computer count.
type Kind string

const (
	KindStandard Kind = "standard"
	KindLab      Kind = "lab"
)

func (k Kind) IsValid() bool {
	return k == KindStandard || k == KindLab
}

type Room struct {
	id           int64
	number       string
	capacity     int
	hasProjector bool
	hasTV        bool
	kind         Kind
	computers    int
}

// NewStandard builds a plain room. The identifier is assigned by the store.
func NewStandard(number string, capacity int, hasProjector, hasTV bool) (*Room, error) {
	return newRoom(number, capacity, hasProjector, hasTV, KindStandard, 0)
}

// NewLab builds a lab room with a positive computer count.
func NewLab(number string, capacity int, hasProjector, hasTV bool, computers int) (*Room, error) {
	if computers <= 0 {
		return nil, ErrInvalidComputers
	}
	return newRoom(number, capacity, hasProjector, hasTV, KindLab, computers)
}

func newRoom(number string, capacity int, hasProjector, hasTV bool, kind Kind, computers int) (*Room, error) {
	if number == "" {
		return nil, ErrInvalidNumber
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Room{
		number:       number,
		capacity:     capacity,
		hasProjector: hasProjector,
		hasTV:        hasTV,
		kind:         kind,
		computers:    computers,
	}, nil
}

func Reconstruct(id int64, number string, capacity int, hasProjector, hasTV bool, kind Kind, computers int) *Room {
	return &Room{
		id:           id,
		number:       number,
		capacity:     capacity,
		hasProjector: hasProjector,
		hasTV:        hasTV,
		kind:         kind,
		computers:    computers,
	}
}

func (r *Room) ID() int64          { return r.id }
func (r *Room) Number() string     { return r.number }
func (r *Room) Capacity() int      { return r.capacity }
func (r *Room) HasProjector() bool { return r.hasProjector }
func (r *Room) HasTV() bool        { return r.hasTV }
func (r *Room) Kind() Kind         { return r.kind }

func (r *Room) IsLab() bool {
	return r.kind == KindLab
}

// Computers is zero for standard rooms.
func (r *Room) Computers() int {
	return r.computers
}
