package templates

type BoardView struct {
	Lists []ListView
}

type ListView struct {
	Status string // "active" or "finished"
	Title  string
	ListID string
	Items  []ItemView
}

type ItemView struct {
	ID          string
	Title       string
	Description string
	Assigned    string // e.g. "2 people assigned"
}
