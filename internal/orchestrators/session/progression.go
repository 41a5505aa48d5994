package session

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/services/session"
)

// grantLevelIfDue levels the player once when XP meets the threshold and leaves
// the save waiting for stat allocation. Otherwise the player returns to exploring.
func (o *Orchestrator) grantLevelIfDue(ctx context.Context, save *game.SaveGame) bool {
	if !engine.CanLevelUp(save.Player) {
		save.Phase = game.PhaseExploring
		return false
	}

	save.Player = engine.LevelUpPlayer(save.Player)
	save.PendingStatPoints = engine.StatPointsPerLevel
	save.Phase = game.PhaseLevelUp

	slog.Info("Player leveled up",
		"save_id", save.ID,
		"level", save.Player.Level,
		"xp", save.Player.XP,
	)
	o.publish(ctx, EventPlayerLeveledUp, save)
	return true
}

// validateAllocation checks the allocation spends exactly the pending points
func validateAllocation(allocation game.StatMap, pending int) error {
	vb := errors.NewValidationBuilder()

	total := 0
	for _, stat := range sortedStats(allocation) {
		amount := allocation[stat]
		if !stat.IsValid() {
			vb.InvalidField(string(stat), "unknown stat")
			continue
		}
		if amount < 0 {
			vb.InvalidField(string(stat), "points cannot be negative")
			continue
		}
		total += amount
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if total != pending {
		return errors.InvalidArgumentf("allocation spends %d points, %d are pending", total, pending)
	}
	return nil
}

// ApplyLevelUp spends the pending stat points. A class offer follows on milestone
// levels; otherwise remaining XP may grant the next level straight away.
func (o *Orchestrator) ApplyLevelUp(ctx context.Context, input *session.ApplyLevelUpInput) (*session.ApplyLevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, err := o.loadSave(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}
	if save.Phase != game.PhaseLevelUp {
		return nil, errors.FailedPrecondition("no level-up is pending")
	}
	if err := validateAllocation(input.Allocation, save.PendingStatPoints); err != nil {
		return nil, err
	}

	data, err := o.loadContent(ctx)
	if err != nil {
		return nil, err
	}

	for _, stat := range game.AllStats {
		if amount := input.Allocation[stat]; amount > 0 {
			save.Player = engine.ApplyStatIncrease(save.Player, stat, amount)
		}
	}
	save.PendingStatPoints = 0

	out := &session.ApplyLevelUpOutput{}
	if engine.ShouldOfferClass(save.Player, data.ClassRequirements) {
		save.Phase = game.PhaseClassSelection
		out.OfferedClasses = engine.UnlockableClasses(save.Player, data.ClassRequirements)
	} else {
		out.LeveledUp = o.grantLevelIfDue(ctx, save)
	}

	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	slog.Debug("Stat points allocated",
		"save_id", save.ID,
		"level", save.Player.Level,
		"phase", save.Phase,
	)

	out.SaveGame = save
	return out, nil
}

// SelectClass answers a class offer. An empty class declines it.
func (o *Orchestrator) SelectClass(ctx context.Context, input *session.SelectClassInput) (*session.SelectClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, err := o.loadSave(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}
	if save.Phase != game.PhaseClassSelection {
		return nil, errors.FailedPrecondition("no class offer is pending")
	}

	if input.Class != "" {
		data, err := o.loadContent(ctx)
		if err != nil {
			return nil, err
		}
		if !engine.CanUnlockClass(save.Player, input.Class, data.ClassRequirements) {
			return nil, errors.FailedPreconditionf("class %s cannot be unlocked", input.Class)
		}

		save.Player = engine.AddClassToPlayer(save.Player, input.Class, data.Classes[input.Class])

		slog.Info("Class unlocked",
			"save_id", save.ID,
			"class", input.Class,
			"level", save.Player.Level,
		)
		o.publish(ctx, EventPlayerClassUnlocked, save)
	}

	out := &session.SelectClassOutput{}
	out.LeveledUp = o.grantLevelIfDue(ctx, save)

	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	out.SaveGame = save
	return out, nil
}

func sortedStats(m game.StatMap) []game.Stat {
	stats := make([]game.Stat, 0, len(m))
	for stat := range m {
		stats = append(stats, stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i] < stats[j] })
	return stats
}
