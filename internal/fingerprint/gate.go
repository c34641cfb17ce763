// Package fingerprint decides whether uploaded bytes may be claimed by an owner.
//
// The first owner to register a content hash keeps it. The same owner uploading
// it again is told it is a duplicate; anyone else is refused, and the attempt is
// recorded for review. When the ownership store cannot answer, the gate refuses
// the upload instead of guessing.
package fingerprint

import (
	"context"
	"encoding/hex"
	"log/slog"
	"time"

	"golang.org/x/crypto/blake2b"

	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/metrics"
)

// Digest is the canonical content fingerprint: hex-encoded BLAKE2b-256.
func Digest(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Store is the write-once ownership table. repository.FingerprintRepository
// implements it.
type Store interface {
	RegisterIfAbsent(ctx context.Context, hash string, owner uint64, now time.Time) (uint64, bool, error)
	RecordClaimConflict(ctx context.Context, hash string, owner, claimant uint64) error
}

type Gate struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewGate(store Store, logger *slog.Logger, m *metrics.Metrics) *Gate {
	return &Gate{store: store, logger: logger, metrics: m, now: time.Now}
}

// WithStore returns a gate bound to another store, typically one scoped to a
// transaction.
func (g *Gate) WithStore(store Store) *Gate {
	cp := *g
	cp.store = store
	return &cp
}

// Register claims hash for owner.
//
// Returns:
//   - nil when the hash was new and now belongs to owner.
//   - ErrDuplicateOwn when owner already holds it.
//   - ErrContentClaimed when another account holds it.
//   - ErrServiceUnavailable when the store failed; nothing is assumed.
func (g *Gate) Register(ctx context.Context, hash string, owner uint64) error {
	if hash == "" {
		return svcErr.ErrEmptyContent
	}
	holder, created, err := g.store.RegisterIfAbsent(ctx, hash, owner, g.now())
	if err != nil {
		g.logger.Error("fingerprint store unavailable", "owner_id", owner, "error", err)
		g.metrics.FingerprintRejected(svcErr.ErrServiceUnavailable.Reason)
		return svcErr.ErrServiceUnavailable
	}
	if created {
		return nil
	}
	if holder == owner {
		g.metrics.FingerprintRejected(svcErr.ErrDuplicateOwn.Reason)
		return svcErr.ErrDuplicateOwn
	}

	g.metrics.FingerprintRejected(svcErr.ErrContentClaimed.Reason)
	g.logger.Warn("content already claimed by another account",
		"hash", hash, "owner_id", holder, "claimant_id", owner)
	if err := g.store.RecordClaimConflict(ctx, hash, holder, owner); err != nil {
		// the rejection stands even if the audit row is lost
		g.logger.Error("record claim conflict failed", "hash", hash, "error", err)
	}
	return svcErr.ErrContentClaimed
}
