package models

import "fmt"

// Emoji is a guild emoji resource handle. The inline token form
// (<:name:id>) is rendered only at output time.
type Emoji struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// IsZero reports whether no emoji is set.
func (e Emoji) IsZero() bool {
	return e.Name == "" && e.ID == ""
}

// Token returns the inline message token for the emoji.
func (e Emoji) Token() string {
	if e.IsZero() {
		return ""
	}
	return fmt.Sprintf("<:%s:%s>", e.Name, e.ID)
}

// PlayerRecord holds the persisted, per-guild state for one player.
//
// Age and the emoji fields are admin-set and survive aggregation passes.
// Member and the timezone fields are a cache refreshed on every pass and
// stale until the next one runs.
type PlayerRecord struct {
	// Age is free-form, admin-set.
	Age string `json:"age,omitempty"`

	// EmojiCode is the legacy inline token, kept for on-disk
	// compatibility with older store documents. EmojiName/EmojiID are
	// the structured source of truth.
	EmojiCode string `json:"emojiCode,omitempty"`
	EmojiName string `json:"emojiName,omitempty"`
	EmojiID   string `json:"emojiID,omitempty"`

	// Member is the last-observed display name, overwritten on every
	// aggregation pass.
	Member string `json:"member,omitempty"`

	// Snapshot of the most recent timezone computation.
	TimezoneRoleID string `json:"timezoneRoleId,omitempty"`
	Timezone       string `json:"timezone,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	UTCTime        string `json:"utcTime,omitempty"`
	MemberTime     string `json:"memberTime,omitempty"`
}

// Emoji returns the structured emoji handle.
func (r *PlayerRecord) Emoji() Emoji {
	return Emoji{Name: r.EmojiName, ID: r.EmojiID}
}

// SetEmoji stores the structured emoji pair and keeps the legacy token in
// step with it.
func (r *PlayerRecord) SetEmoji(e Emoji) {
	r.EmojiName = e.Name
	r.EmojiID = e.ID
	r.EmojiCode = e.Token()
}

// ClearEmoji removes all emoji fields from the record.
func (r *PlayerRecord) ClearEmoji() {
	r.EmojiName = ""
	r.EmojiID = ""
	r.EmojiCode = ""
}

// PlayerPatch is a partial PlayerRecord for shallow-merge updates. Nil
// fields leave the target record untouched.
type PlayerPatch struct {
	Age            *string
	Emoji          *Emoji
	Member         *string
	TimezoneRoleID *string
	Timezone       *string
	Offset         *int
	UTCTime        *string
	MemberTime     *string
}

// Apply shallow-merges the patch onto the record.
func (r *PlayerRecord) Apply(p *PlayerPatch) {
	if p == nil {
		return
	}
	if p.Age != nil {
		r.Age = *p.Age
	}
	if p.Emoji != nil {
		r.SetEmoji(*p.Emoji)
	}
	if p.Member != nil {
		r.Member = *p.Member
	}
	if p.TimezoneRoleID != nil {
		r.TimezoneRoleID = *p.TimezoneRoleID
	}
	if p.Timezone != nil {
		r.Timezone = *p.Timezone
	}
	if p.Offset != nil {
		r.Offset = *p.Offset
	}
	if p.UTCTime != nil {
		r.UTCTime = *p.UTCTime
	}
	if p.MemberTime != nil {
		r.MemberTime = *p.MemberTime
	}
}
