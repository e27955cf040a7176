package entity

const AnonymousName = "Anonymous"

// Player is the identity behind a match session.
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
}

func (that *Player) IsAnonymous() bool {
	return that == nil || that.ID == ""
}

// Name returns the display name, falling back to AnonymousName.
func (that *Player) Name() string {
	if that == nil || that.DisplayName == "" {
		return AnonymousName
	}
	return that.DisplayName
}
