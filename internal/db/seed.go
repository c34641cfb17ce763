package db

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchcore/internal/fingerprint"
	"github.com/oggyb/matchcore/internal/pairkey"
)

// seedClusters are the service areas demo users are spread over.
var seedClusters = []string{"gta", "ottawa", "hamilton"}

// SeedTestData resets the database and populates it with demo participants.
//
// Behavior:
//  1. Clears every table, children first.
//  2. Creates 24 users (8 per cluster, alternating male/female) with the
//     password "password", one primary photo each and its fingerprint.
//  3. Decides once on every opposite-gender pair inside a cluster with ~70%
//     likes; every 3rd pair is made mutual and gets its match record.
//
// Compatible with MySQL, Postgres and SQLite.
func SeedTestData(db *gorm.DB, logger *slog.Logger) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, m := range []any{
		&Message{}, &Report{}, &Block{}, &ContentClaimEvent{}, &Photo{},
		&ContentFingerprint{}, &Match{}, &Decision{}, &User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", m, err)
		}
	}

	// Reset auto-increment sequences
	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
	case "postgres":
		db.Exec("ALTER SEQUENCE users_id_seq RESTART WITH 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
	}

	logger.Info("cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// --- Seed users, photos and fingerprints ---
	byCluster := map[string][]User{}
	for i := 1; i <= 24; i++ {
		cluster := seedClusters[(i-1)/8]
		gender, interests := "male", []string{"female"}
		if i%2 == 0 {
			gender, interests = "female", []string{"male"}
		}
		login := time.Now().Add(-time.Duration(r.Intn(500)) * time.Hour)

		user := User{
			Username:     fmt.Sprintf("user%d", i),
			PasswordHash: string(hash),
			Gender:       gender,
			Interests:    interests,
			ClusterID:    cluster,
			LastLoginAt:  &login,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		digest := fingerprint.Digest([]byte(fmt.Sprintf("seed-photo-%s", user.Username)))
		if err := db.Create(&ContentFingerprint{Hash: digest, OwnerID: user.ID, FirstSeenAt: time.Now().UTC()}).Error; err != nil {
			return fmt.Errorf("failed to seed fingerprint: %w", err)
		}
		photo := Photo{ID: uuid.NewString(), OwnerID: user.ID, Hash: digest, Type: "primary", SizeBytes: 1024}
		if err := db.Create(&photo).Error; err != nil {
			return fmt.Errorf("failed to seed photo: %w", err)
		}

		byCluster[cluster] = append(byCluster[cluster], user)
	}
	logger.Info("seeded users", "count", 24)

	// --- Seed decisions and matches ---
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
	}
	counter, matches := 0, 0
	for _, users := range byCluster {
		for a := range users {
			for b := a + 1; b < len(users); b++ {
				actor, recipient := users[a], users[b]
				if actor.Gender == recipient.Gender {
					continue
				}
				// alternate who swipes first
				if counter%2 == 1 {
					actor, recipient = recipient, actor
				}

				// like probability 70%
				liked := r.Intn(100) < 70

				// guarantee mutual likes every 3rd pair
				if counter%3 == 0 {
					liked = true
					recip := Decision{ActorID: recipient.ID, RecipientID: actor.ID, Liked: true}
					if err := db.Clauses(upsert).Create(&recip).Error; err != nil {
						return fmt.Errorf("failed to seed decision: %w", err)
					}

					key := pairkey.Canonical(actor.ID, recipient.ID)
					res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Match{
						ID: uuid.NewString(), UserLowID: key.Low, UserHighID: key.High,
					})
					if res.Error != nil {
						return fmt.Errorf("failed to seed match: %w", res.Error)
					}
					matches += int(res.RowsAffected)
				}

				decision := Decision{ActorID: actor.ID, RecipientID: recipient.ID, Liked: liked}
				if err := db.Clauses(upsert).Create(&decision).Error; err != nil {
					return fmt.Errorf("failed to seed decision: %w", err)
				}
				counter++
			}
		}
	}
	logger.Info("seeded decisions", "decisions", counter, "matches", matches)

	return nil
}
