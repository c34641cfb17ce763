package db

import (
	"time"

	"gorm.io/datatypes"
)

// User is the participant row. Registration writes it once; afterwards the core
// only reads it, except for Suspended/ReportCount which moderation owns.
type User struct {
	ID           uint64                      `gorm:"primaryKey;autoIncrement"`
	Username     string                      `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string                      `gorm:"size:255;not null"`
	Gender       string                      `gorm:"size:16;not null"`
	Interests    datatypes.JSONSlice[string] `gorm:"not null"`
	ClusterID    string                      `gorm:"size:32;not null;index:idx_users_cluster_suspended,priority:1"`
	Suspended    bool                        `gorm:"not null;default:false;index:idx_users_cluster_suspended,priority:2"`
	ReportCount  int64                       `gorm:"not null;default:0"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Decision represents an actor's like/pass decision on a recipient.
//
// Composite PK: (ActorID, RecipientID)
//   - Ensures a single row per pair (overwrite guarantee).
//
// Indexes:
//   - idx_recipient_liked_updated_actor(recipient_id, liked, updated_at DESC, actor_id)
//     Optimizes queries for "who liked me" lists with pagination.
//   - idx_actor_recipient_liked(actor_id, recipient_id, liked)
//     Optimizes O(1) lookup for mutual like checks.
type Decision struct {
	ActorID     uint64    `gorm:"primaryKey;index:idx_actor_recipient_liked,priority:1"`
	RecipientID uint64    `gorm:"primaryKey;index:idx_recipient_liked_updated_actor,priority:1;index:idx_actor_recipient_liked,priority:2"`
	Liked       bool      `gorm:"not null;index:idx_recipient_liked_updated_actor,priority:2;index:idx_actor_recipient_liked,priority:3"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;index:idx_recipient_liked_updated_actor,priority:3,sort:desc"`
}

// Match is created once per unordered pair. The unique index on
// (user_low_id, user_high_id) is what makes concurrent creation collapse into a
// single row. Rows are hard-deleted on unmatch so the pair can match again.
type Match struct {
	ID         string    `gorm:"primaryKey;size:36"`
	UserLowID  uint64    `gorm:"not null;uniqueIndex:idx_match_pair,priority:1"`
	UserHighID uint64    `gorm:"not null;uniqueIndex:idx_match_pair,priority:2;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// ContentFingerprint records the first owner of a content hash. Write-once.
type ContentFingerprint struct {
	Hash        string    `gorm:"primaryKey;size:64"`
	OwnerID     uint64    `gorm:"not null;index"`
	FirstSeenAt time.Time `gorm:"not null"`
}

// ContentClaimEvent is an audit row written when someone uploads bytes that
// another account already owns.
type ContentClaimEvent struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Hash       string    `gorm:"size:64;not null;index"`
	OwnerID    uint64    `gorm:"not null;index"`
	ClaimantID uint64    `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

type Photo struct {
	ID        string    `gorm:"primaryKey;size:36"`
	OwnerID   uint64    `gorm:"not null;index"`
	Hash      string    `gorm:"size:64;not null;uniqueIndex"`
	Type      string    `gorm:"size:16;not null"`
	SizeBytes int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Block is directional; eligibility checks both directions.
type Block struct {
	BlockerID uint64    `gorm:"primaryKey"`
	BlockedID uint64    `gorm:"primaryKey;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type Report struct {
	ID         string    `gorm:"primaryKey;size:36"`
	ReporterID uint64    `gorm:"not null;index"`
	TargetID   uint64    `gorm:"not null;index"`
	Reason     string    `gorm:"size:32;not null"`
	Details    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

type Message struct {
	ID        string    `gorm:"primaryKey;size:36"`
	MatchID   string    `gorm:"size:36;not null;index"`
	SenderID  uint64    `gorm:"not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Models lists every table, in migration order.
func Models() []any {
	return []any{
		&User{}, &Decision{}, &Match{}, &ContentFingerprint{}, &ContentClaimEvent{},
		&Photo{}, &Block{}, &Report{}, &Message{},
	}
}
