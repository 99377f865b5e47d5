package components

import "github.com/charmbracelet/bubbles/key"

// ListColumnKeyMap defines key bindings for the list filter input
type ListColumnKeyMap struct {
	Escape key.Binding
	Accept key.Binding
	Filter key.Binding
}

// DefaultListColumnKeyMap returns the default list column key bindings
func DefaultListColumnKeyMap() ListColumnKeyMap {
	return ListColumnKeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
	}
}

// SearchBarKeyMap defines key bindings for the search input
type SearchBarKeyMap struct {
	Done       key.Binding
	ToggleMode key.Binding
}

// DefaultSearchBarKeyMap returns the default search bar key bindings
func DefaultSearchBarKeyMap() SearchBarKeyMap {
	return SearchBarKeyMap{
		Done: key.NewBinding(
			key.WithKeys("esc", "enter", "down", "tab"),
			key.WithHelp("enter", "browse results"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "movies/people"),
		),
	}
}

// Package-level key map instances
var (
	ListColumnKeys = DefaultListColumnKeyMap()
	SearchBarKeys  = DefaultSearchBarKeyMap()
)
