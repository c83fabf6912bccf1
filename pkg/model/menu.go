package model

// Menu is a group of toolbox entries of a db console.
type Menu struct {
	Name     string      `json:"name" yaml:"name"`
	ID       string      `json:"id" yaml:"id"`
	Icon     string      `json:"icon" yaml:"icon"`
	Children []MenuChild `json:"children" yaml:"children"`
}

// MenuChild is a single toolbox entry. DBConsoleValue is the key of the console page it opens.
// TicketType is set on entries whose tickets can be cloned.
type MenuChild struct {
	Name           string     `json:"name" yaml:"name"`
	ID             string     `json:"id" yaml:"id"`
	ParentID       string     `json:"parentId" yaml:"parentId"`
	DBConsoleValue string     `json:"dbConsoleValue" yaml:"dbConsoleValue"`
	TicketType     TicketType `json:"ticketType,omitempty" yaml:"ticketType,omitempty"`
}
