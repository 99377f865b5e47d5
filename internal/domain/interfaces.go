package domain

// ListItem is the common API for rows rendered in list panes.
// Movie and Person implement it directly.
type ListItem interface {
	// GetID returns the TMDB identifier
	GetID() int

	// GetTitle returns the display title
	GetTitle() string

	// GetDescription returns secondary info for display (e.g., "2019 · ★ 7.4")
	GetDescription() string

	// GetItemType returns the type identifier: "movie" or "person"
	GetItemType() string
}

func (m Movie) GetID() int             { return m.ID }
func (m Movie) GetTitle() string       { return m.Title }
func (m Movie) GetDescription() string { return m.Description() }
func (m Movie) GetItemType() string    { return "movie" }

func (p Person) GetID() int          { return p.ID }
func (p Person) GetTitle() string    { return p.Name }
func (p Person) GetItemType() string { return "person" }

func (p Person) GetDescription() string {
	return p.KnownForDepartment
}
