package prize

import (
	"context"
	"fmt"
	"sort"

	"crorepati-quiz-service/internal/domain"
)

// builtinLevels is the fixed ladder the game ships with. Ordering is
// load-bearing: valuation and the gift floor lookup both walk it.
var builtinLevels = []domain.PrizeLevel{
	{Amount: 100, Label: "₹ ૧૦૦"},
	{Amount: 500, Label: "₹ ૫૦૦"},
	{Amount: 1000, Label: "₹ ૧,૦૦૦"},
	{Amount: 2000, Label: "₹ ૨,૦૦૦"},
	{Amount: 5000, Label: "₹ ૫,૦૦૦", IsMilestone: true},
	{Amount: 10000, Label: "₹ ૧૦,૦૦૦"},
	{Amount: 20000, Label: "₹ ૨૦,૦૦૦"},
	{Amount: 40000, Label: "₹ ૪૦,૦૦૦"},
	{Amount: 80000, Label: "₹ ૮૦,૦૦૦"},
	{Amount: 160000, Label: "₹ ૧,૬૦,૦૦૦", IsMilestone: true},
	{Amount: 320000, Label: "₹ ૩,૨૦,૦૦૦"},
	{Amount: 640000, Label: "₹ ૬,૪૦,૦૦૦"},
	{Amount: 1250000, Label: "₹ ૧૨,૫૦,૦૦૦"},
	{Amount: 2500000, Label: "₹ ૨૫,૦૦,૦૦૦"},
	{Amount: 5000000, Label: "₹ ૫૦,૦૦,૦૦૦", IsMilestone: true},
	{Amount: 10000000, Label: "₹ ૧ કરોડ", IsMilestone: true},
}

// BuiltinLevels returns a copy of the fixed ladder.
func BuiltinLevels() []domain.PrizeLevel {
	levels := make([]domain.PrizeLevel, len(builtinLevels))
	copy(levels, builtinLevels)
	return levels
}

// SettingsStore abstracts how quiz settings are persisted (in-memory, Redis, etc).
type SettingsStore interface {
	Settings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// Ladder merges the built-in prize levels with teacher-added custom levels.
type Ladder struct {
	settings SettingsStore
}

func NewLadder(settings SettingsStore) *Ladder {
	return &Ladder{settings: settings}
}

// Levels returns the merged ladder: built-in plus custom levels, deduplicated
// by amount (the built-in label wins on collision), sorted ascending.
func (l *Ladder) Levels(ctx context.Context) ([]domain.PrizeLevel, error) {
	settings, err := l.settings.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	byAmount := make(map[int64]domain.PrizeLevel, len(builtinLevels)+len(settings.CustomPrizeAmounts))
	for _, amount := range settings.CustomPrizeAmounts {
		byAmount[amount] = domain.PrizeLevel{Amount: amount, Label: FormatAmountLabel(amount)}
	}
	for _, level := range builtinLevels {
		byAmount[level.Amount] = level
	}

	levels := make([]domain.PrizeLevel, 0, len(byAmount))
	for _, level := range byAmount {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Amount < levels[j].Amount })
	return levels, nil
}

// AddCustomLevel registers a teacher-assigned amount outside the built-in
// ladder. Amounts already present (built-in or custom) are a no-op.
func (l *Ladder) AddCustomLevel(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: prize amount must be positive", domain.ErrValidation)
	}
	for _, level := range builtinLevels {
		if level.Amount == amount {
			return nil
		}
	}

	settings, err := l.settings.Settings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	for _, existing := range settings.CustomPrizeAmounts {
		if existing == amount {
			return nil
		}
	}
	settings.CustomPrizeAmounts = append(settings.CustomPrizeAmounts, amount)
	sort.Slice(settings.CustomPrizeAmounts, func(i, j int) bool {
		return settings.CustomPrizeAmounts[i] < settings.CustomPrizeAmounts[j]
	})
	if err := l.settings.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LabelFor resolves an amount to its ladder label, falling back to the
// formatting rule for ad hoc amounts that were never registered.
func (l *Ladder) LabelFor(ctx context.Context, amount int64) string {
	levels, err := l.Levels(ctx)
	if err == nil {
		for _, level := range levels {
			if level.Amount == amount {
				return level.Label
			}
		}
	}
	return FormatAmountLabel(amount)
}
