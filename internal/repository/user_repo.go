package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchcore/internal/db"
	svcErr "github.com/oggyb/matchcore/internal/errors"
)

// UserRepository reads participants and owns the two moderation columns.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Create inserts a new participant. A taken username maps to ErrUsernameTaken.
func (r *UserRepository) Create(ctx context.Context, u *db.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return svcErr.ErrUsernameTaken
	}
	return svcErr.Infra("create user", err)
}

// FindByID returns nil when the user does not exist.
func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*db.User, error) {
	var u db.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, svcErr.Infra("find user", err)
	}
	return &u, nil
}

// LockForUpdate takes a row lock on the user for the rest of the surrounding
// transaction, serializing writers that check per-user limits. SQLite has no
// row locks; its single writer gives the same ordering.
func (r *UserRepository) LockForUpdate(ctx context.Context, id uint64) error {
	var u db.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return svcErr.ErrNotFound
	}
	return svcErr.Infra("lock user", err)
}

// FindByUsername returns nil when the user does not exist.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*db.User, error) {
	var u db.User
	err := r.db.WithContext(ctx).Where("username = ?", username).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, svcErr.Infra("find user by username", err)
	}
	return &u, nil
}

// FindMany loads users by id; missing ids are simply absent from the result.
func (r *UserRepository) FindMany(ctx context.Context, ids []uint64) (map[uint64]db.User, error) {
	var users []db.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, svcErr.Infra("find users", err)
	}
	out := make(map[uint64]db.User, len(users))
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// SetReportCount stores the latest aggregated report count.
func (r *UserRepository) SetReportCount(ctx context.Context, id uint64, count int64) error {
	err := r.db.WithContext(ctx).Model(&db.User{}).
		Where("id = ?", id).
		Update("report_count", count).Error
	return svcErr.Infra("set report count", err)
}

// SetSuspended flips suspended to true. The WHERE suspended = false guard makes
// the transition happen exactly once: changed is true only for the caller that
// performed it.
func (r *UserRepository) SetSuspended(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db.User{}).
		Where("id = ? AND suspended = ?", id, false).
		Update("suspended", true)
	if res.Error != nil {
		return false, svcErr.Infra("set suspended", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// TouchLogin records a successful login.
func (r *UserRepository) TouchLogin(ctx context.Context, id uint64, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&db.User{}).
		Where("id = ?", id).
		Update("last_login_at", at.UTC()).Error
	return svcErr.Infra("touch login", err)
}

// ListCandidates returns users in cluster that actor has not decided on, that
// are not suspended, not blocked in either direction, have at least one photo
// and whose gender is in genders. Ordered by id for cursor pagination.
//
// The reverse interest check (candidate interested in actor) is left to the
// caller because interests are stored as JSON.
func (r *UserRepository) ListCandidates(
	ctx context.Context,
	actorID uint64,
	cluster string,
	genders []string,
	afterID uint64,
	limit int,
) ([]db.User, error) {
	var users []db.User
	err := r.db.WithContext(ctx).
		Table("users u").
		Where("u.cluster_id = ? AND u.suspended = ? AND u.id <> ? AND u.id > ?", cluster, false, actorID, afterID).
		Where("u.gender IN ?", genders).
		Where("NOT EXISTS (SELECT 1 FROM decisions d WHERE d.actor_id = ? AND d.recipient_id = u.id)", actorID).
		Where(`NOT EXISTS (
			SELECT 1 FROM blocks b
			WHERE (b.blocker_id = ? AND b.blocked_id = u.id)
			   OR (b.blocker_id = u.id AND b.blocked_id = ?)
		)`, actorID, actorID).
		Where("EXISTS (SELECT 1 FROM photos p WHERE p.owner_id = u.id)").
		Order("u.id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, svcErr.Infra("list candidates", err)
	}
	return users, nil
}
