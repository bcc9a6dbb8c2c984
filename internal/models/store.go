package models

// TribeSlotCount is the fixed number of tribe slots in a store document.
const TribeSlotCount = 4

// TribeSlot is the resolved view of one tribe slot. An empty RoleID means
// the slot is inactive.
type TribeSlot struct {
	RoleID string
	Emoji  string
}

// Active reports whether the slot has a role bound to it.
func (s TribeSlot) Active() bool {
	return s.RoleID != ""
}

// TribeConfig is the persisted 4-slot tribe configuration. The flat field
// layout matches the tribes.json document written by earlier versions of
// the bot, so existing files keep loading.
type TribeConfig struct {
	Tribe1      *string `json:"tribe1"`
	Tribe1Emoji *string `json:"tribe1emoji"`
	Tribe2      *string `json:"tribe2"`
	Tribe2Emoji *string `json:"tribe2emoji"`
	Tribe3      *string `json:"tribe3"`
	Tribe3Emoji *string `json:"tribe3emoji"`
	Tribe4      *string `json:"tribe4"`
	Tribe4Emoji *string `json:"tribe4emoji"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Slot returns the slot with the given index (1..4). Out-of-range indexes
// return an inactive slot.
func (c *TribeConfig) Slot(n int) TribeSlot {
	switch n {
	case 1:
		return TribeSlot{RoleID: deref(c.Tribe1), Emoji: deref(c.Tribe1Emoji)}
	case 2:
		return TribeSlot{RoleID: deref(c.Tribe2), Emoji: deref(c.Tribe2Emoji)}
	case 3:
		return TribeSlot{RoleID: deref(c.Tribe3), Emoji: deref(c.Tribe3Emoji)}
	case 4:
		return TribeSlot{RoleID: deref(c.Tribe4), Emoji: deref(c.Tribe4Emoji)}
	}
	return TribeSlot{}
}

// SetSlot binds a role (and optional emoji) to a slot. An empty emoji is
// stored as null.
func (c *TribeConfig) SetSlot(n int, roleID, emoji string) {
	var role, emj *string
	if roleID != "" {
		role = &roleID
	}
	if emoji != "" {
		emj = &emoji
	}
	switch n {
	case 1:
		c.Tribe1, c.Tribe1Emoji = role, emj
	case 2:
		c.Tribe2, c.Tribe2Emoji = role, emj
	case 3:
		c.Tribe3, c.Tribe3Emoji = role, emj
	case 4:
		c.Tribe4, c.Tribe4Emoji = role, emj
	}
}

// ClearSlot sets a slot's role and emoji to null.
func (c *TribeConfig) ClearSlot(n int) {
	c.SetSlot(n, "", "")
}

// ActiveRoleIDs returns the role IDs of every active slot, in slot order.
func (c *TribeConfig) ActiveRoleIDs() []string {
	ids := make([]string, 0, TribeSlotCount)
	for n := 1; n <= TribeSlotCount; n++ {
		if slot := c.Slot(n); slot.Active() {
			ids = append(ids, slot.RoleID)
		}
	}
	return ids
}

// StoreConfig is the config sub-document of a store document.
type StoreConfig struct {
	Tribes TribeConfig `json:"tribes"`
}

// StoreDocument is the whole persisted player-data document. It is always
// read and written as a unit.
type StoreDocument struct {
	Players map[string]*PlayerRecord `json:"players"`
	Config  StoreConfig              `json:"config"`
}

// NewStoreDocument returns an empty document seeded with the given tribe
// configuration.
func NewStoreDocument(tribes TribeConfig) *StoreDocument {
	return &StoreDocument{
		Players: make(map[string]*PlayerRecord),
		Config:  StoreConfig{Tribes: tribes},
	}
}
