package entity

// Mark is the content of a single cell.
type Mark string

const (
	Empty Mark = ""
	MarkA Mark = "X"
	MarkB Mark = "O"
)

// Opponent - returns the mark that plays after the given one.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return Empty
	}
}

func (that Mark) String() string {
	if that == Empty {
		return "-"
	}

	return string(that)
}
