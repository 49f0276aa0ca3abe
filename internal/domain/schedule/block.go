package schedule

// Block identifies one of the fixed daily time windows reservations can occupy.
// Blocks are compared by identity only; the wall-clock times exist for display.
type Block string

const (
	BlockMorning1   Block = "morning-1"
	BlockMorning2   Block = "morning-2"
	BlockAfternoon1 Block = "afternoon-1"
	BlockAfternoon2 Block = "afternoon-2"
	BlockEvening1   Block = "evening-1"
	BlockEvening2   Block = "evening-2"
)

type BlockInfo struct {
	Block  Block
	Starts string
	Ends   string
}

// catalog is closed: no runtime mutation, blocks never overlap by construction.
var catalog = []BlockInfo{
	{BlockMorning1, "08:00", "10:00"},
	{BlockMorning2, "10:15", "12:15"},
	{BlockAfternoon1, "13:00", "15:00"},
	{BlockAfternoon2, "15:15", "17:15"},
	{BlockEvening1, "18:00", "20:00"},
	{BlockEvening2, "20:30", "22:30"},
}

var blockOrder = func() map[Block]int {
	m := make(map[Block]int, len(catalog))
	for i, info := range catalog {
		m[info.Block] = i
	}
	return m
}()

// Catalog returns the six blocks in chronological order.
func Catalog() []BlockInfo {
	out := make([]BlockInfo, len(catalog))
	copy(out, catalog)
	return out
}

func (b Block) IsValid() bool {
	_, ok := blockOrder[b]
	return ok
}

func (b Block) String() string {
	return string(b)
}
