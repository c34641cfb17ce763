// Package ratelimit applies per-class fixed-window budgets over a shared counter store.
package ratelimit

import (
	"fmt"
	"time"

	"github.com/oggyb/matchcore/internal/config"
)

// Class is an abuse class with its own independent window.
type Class string

const (
	ClassGlobal  Class = "global"
	ClassAuth    Class = "auth"
	ClassSwipe   Class = "swipe"
	ClassMessage Class = "message"
	ClassUpload  Class = "upload"
)

// Scope says what identity a class is keyed by.
type Scope string

const (
	PerIdentity Scope = "per_identity"
	PerIP       Scope = "per_ip"
)

// Policy is one row of the configuration table.
type Policy struct {
	Window time.Duration
	Max    int64
	Scope  Scope
	// CountsFailures classes reserve a slot on Check that the caller
	// releases when the attempt succeeds.
	CountsFailures bool
}

// Policies is the single configuration table consumed by the Governor.
type Policies map[Class]Policy

// PoliciesFromConfig builds the table from env-level budgets.
func PoliciesFromConfig(c config.RateLimitConfig) Policies {
	return Policies{
		ClassGlobal:  {Window: c.GlobalWindow, Max: int64(c.GlobalMax), Scope: PerIP},
		ClassAuth:    {Window: c.AuthWindow, Max: int64(c.AuthMax), Scope: PerIP, CountsFailures: true},
		ClassSwipe:   {Window: c.SwipeWindow, Max: int64(c.SwipeMax), Scope: PerIdentity},
		ClassMessage: {Window: c.MessageWindow, Max: int64(c.MessageMax), Scope: PerIdentity},
		ClassUpload:  {Window: c.UploadWindow, Max: int64(c.UploadMax), Scope: PerIdentity},
	}
}

// Validate rejects rows that could never admit a request or never expire.
func (p Policies) Validate() error {
	for class, pol := range p {
		if pol.Window <= 0 {
			return fmt.Errorf("rate policy %s: window must be positive", class)
		}
		if pol.Max <= 0 {
			return fmt.Errorf("rate policy %s: max must be positive", class)
		}
		if pol.Scope != PerIdentity && pol.Scope != PerIP {
			return fmt.Errorf("rate policy %s: unknown scope %q", class, pol.Scope)
		}
	}
	return nil
}
