package domain

import "time"

// RecentTool is one entry in the recently-used list. LastAccessed is
// epoch milliseconds, matching the persisted JSON layout.
type RecentTool struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	LastAccessed int64  `json:"lastAccessed"`
}

// AccessedAt returns the entry's access time.
func (r RecentTool) AccessedAt() time.Time {
	return time.UnixMilli(r.LastAccessed)
}
