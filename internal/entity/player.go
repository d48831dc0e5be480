package entity

// Player is a seat at the table: a display name bound to a mark.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}

// Players - seats both marks, MarkA first.
func Players(nameA, nameB string) [2]Player {
	return [2]Player{
		{Name: nameA, Mark: MarkA},
		{Name: nameB, Mark: MarkB},
	}
}
