// Package legacy keeps the meta-progression ledger: Legacy Points earned by
// delivering survivors, and the boat upgrades bought with them.
package legacy

import (
	"io"
	"maps"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dark-seas/internal/config"
	"github.com/vovakirdan/dark-seas/internal/storage"
)

// DefaultProfile is used for local play.
const DefaultProfile = "local"

// Store persists ledger state. *storage.Store implements it.
// Changes are sent as deltas and the store answers with the stored state,
// so several ledgers on one profile stay consistent.
type Store interface {
	LoadLegacy(profile string) (storage.LegacyState, error)
	AddLegacyPoints(profile string, delta int) (storage.LegacyState, error)
	BuyUpgrade(profile, upgradeID string, cost int, stackable bool) (storage.LegacyState, bool, error)
}

// Ledger tracks one profile's points and purchased upgrades.
// Its operations never fail: persistence errors are logged and play goes on.
type Ledger struct {
	store  Store
	logger *log.Logger

	profile            string
	pointsPerPassenger int
	points             int
	upgrades           map[string]int
}

// NewLedger creates a ledger and loads the profile from store.
// A nil store keeps the ledger in memory only.
func NewLedger(store Store, profile string, cfg config.LegacyConfig, logger *log.Logger) *Ledger {
	if profile == "" {
		profile = DefaultProfile
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Ledger{
		store:              store,
		logger:             logger,
		profile:            profile,
		pointsPerPassenger: max(cfg.PointsPerPassenger, 0),
		upgrades:           make(map[string]int),
	}
	l.load()
	return l
}

func (l *Ledger) load() {
	if l.store == nil {
		return
	}
	state, err := l.store.LoadLegacy(l.profile)
	if err != nil {
		l.logger.Warn("could not load legacy progress", "profile", l.profile, "error", err)
		return
	}
	l.adopt(state)
	l.logger.Debug("legacy loaded", "profile", l.profile, "points", l.points, "upgrades", len(l.upgrades))
}

// Reload picks up changes other writers made to the profile.
func (l *Ledger) Reload() {
	l.load()
}

// adopt replaces the in-memory progress with the stored one.
func (l *Ledger) adopt(state storage.LegacyState) {
	l.points = max(state.Points, 0)
	clear(l.upgrades)
	for id, n := range state.Upgrades {
		if n > 0 {
			l.upgrades[id] = n
		}
	}
}

// AddFromPassengers awards points for delivered passengers and returns the award.
// Non-positive counts are ignored.
func (l *Ledger) AddFromPassengers(count int) int {
	if count <= 0 {
		return 0
	}
	points := count * l.pointsPerPassenger
	l.points += points
	if l.store != nil {
		state, err := l.store.AddLegacyPoints(l.profile, points)
		if err != nil {
			l.logger.Warn("could not save legacy points", "profile", l.profile, "error", err)
		} else {
			l.adopt(state)
		}
	}
	l.logger.Info("passengers delivered", "profile", l.profile, "count", count, "points", points, "total", l.points)
	return points
}

// CanPurchase reports whether u is affordable and not already owned
// (unless stackable).
func (l *Ledger) CanPurchase(u config.UpgradeDef) bool {
	if u.ID == "" {
		return false
	}
	if l.points < cost(u) {
		return false
	}
	if !u.Stackable && l.upgrades[u.ID] > 0 {
		return false
	}
	return true
}

// Purchase debits the cost and records the upgrade. Returns false when the
// purchase is not allowed. With a store the stored balance decides; the
// in-memory check is used only when the store cannot be reached.
func (l *Ledger) Purchase(u config.UpgradeDef) bool {
	if u.ID == "" {
		return false
	}
	if l.store != nil {
		state, ok, err := l.store.BuyUpgrade(l.profile, u.ID, cost(u), u.Stackable)
		if err == nil {
			l.adopt(state)
			if ok {
				l.logPurchase(u)
			}
			return ok
		}
		l.logger.Warn("could not save upgrade purchase", "profile", l.profile, "upgrade", u.ID, "error", err)
	}

	if !l.CanPurchase(u) {
		return false
	}
	l.points -= cost(u)
	l.upgrades[u.ID]++
	l.logPurchase(u)
	return true
}

func (l *Ledger) logPurchase(u config.UpgradeDef) {
	l.logger.Info("upgrade purchased", "profile", l.profile, "upgrade", u.ID, "count", l.upgrades[u.ID], "points", l.points)
}

func cost(u config.UpgradeDef) int {
	return max(u.LegacyCost, 0)
}

func (l *Ledger) Profile() string { return l.profile }
func (l *Ledger) Points() int     { return l.points }

// Count returns how many times upgrade id was bought.
func (l *Ledger) Count(id string) int {
	return l.upgrades[id]
}

// Purchases returns a copy of upgrade id -> count.
func (l *Ledger) Purchases() map[string]int {
	return maps.Clone(l.upgrades)
}

// PurchasedIDs returns owned upgrade ids in sorted order.
func (l *Ledger) PurchasedIDs() []string {
	ids := make([]string, 0, len(l.upgrades))
	for id := range l.upgrades {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ApplyUpgrades returns base improved by every owned upgrade in catalog.
// Each effect is the upgrade value times its purchase count.
func (l *Ledger) ApplyUpgrades(base config.BoatConfig, catalog []config.UpgradeDef) config.BoatConfig {
	out := base
	for _, u := range catalog {
		n := float64(l.upgrades[u.ID])
		if n == 0 {
			continue
		}
		bonus := u.Value * n
		switch u.Type {
		case config.UpgradeLight:
			out.HeadlightRange += bonus
		case config.UpgradeHull:
			out.HullHP += int(bonus)
		case config.UpgradeFuel:
			out.FuelCapacity += bonus
		case config.UpgradeSeats:
			out.Seats += int(bonus)
		}
	}
	return out
}
