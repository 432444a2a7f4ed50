package models

import "time"

// BiometricKeys holds the ten named finger slots of one enrolled finger
// set. Each value is an opaque fingerprint signature token. Every non-empty
// value must be globally unique across all records and all slots.
type BiometricKeys struct {
	RightThumb  string `json:"right_thumb_finger"`
	RightIndex  string `json:"right_index_finger"`
	RightMiddle string `json:"right_middle_finger"`
	RightRing   string `json:"right_ring_finger"`
	RightShort  string `json:"right_short_finger"`
	LeftThumb   string `json:"left_thumb_finger"`
	LeftIndex   string `json:"left_index_finger"`
	LeftMiddle  string `json:"left_middle_finger"`
	LeftRing    string `json:"left_ring_finger"`
	LeftShort   string `json:"left_short_finger"`
}

// Slots returns the ten key values in a fixed order (right hand first,
// thumb to short finger, then left hand).
func (k BiometricKeys) Slots() [10]string {
	return [10]string{
		k.RightThumb, k.RightIndex, k.RightMiddle, k.RightRing, k.RightShort,
		k.LeftThumb, k.LeftIndex, k.LeftMiddle, k.LeftRing, k.LeftShort,
	}
}

// Biometric is one enrolled finger set, owned by exactly one user.
// Owner is populated on reads that join the users table.
type Biometric struct {
	ID        string
	UserID    string
	Keys      BiometricKeys
	Owner     *User
	CreatedAt time.Time
}
