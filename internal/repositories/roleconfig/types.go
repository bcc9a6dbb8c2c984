package roleconfig

// SetTribeSlotInput contains parameters for binding a role to a tribe
// slot.
type SetTribeSlotInput struct {
	// Slot is the tribe slot index, 1..4.
	Slot int

	RoleID string

	// Emoji optionally decorates the tribe header in rendered output.
	Emoji string
}

// ClearTribeSlotInput contains parameters for clearing a tribe slot.
type ClearTribeSlotInput struct {
	Slot int
}

// AddPronounRolesInput contains parameters for adding pronoun roles.
type AddPronounRolesInput struct {
	RoleIDs []string
}

// AddPronounRolesOutput reports which role IDs were added and which were
// already present.
type AddPronounRolesOutput struct {
	Added          []string
	AlreadyPresent []string
}

// RemovePronounRolesInput contains parameters for removing pronoun roles.
type RemovePronounRolesInput struct {
	RoleIDs []string
}

// RemovePronounRolesOutput reports which role IDs were removed and which
// were not in the list.
type RemovePronounRolesOutput struct {
	Removed  []string
	NotFound []string
}
