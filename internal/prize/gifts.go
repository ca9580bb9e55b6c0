package prize

import (
	"context"
	"fmt"
	"strings"

	"crorepati-quiz-service/internal/domain"
)

// defaultGifts maps built-in prize levels to the physical prize handed out
// at school. Teachers can override any row; ResetToDefaults restores this table.
var defaultGifts = map[int64]string{
	100:      "૧ ટોફી",
	200:      "૧ પેન્સિલ",
	500:      "૧ રબર",
	1000:     "૧ શાર્પનર",
	2000:     "૧ સ્કેલ",
	5000:     "૧ પેન",
	10000:    "૧ નોટબુક",
	20000:    "૧ રંગપેટી",
	40000:    "૧ કલર પેન્સિલ સેટ",
	80000:    "૧ જીઓમેટ્રી બોક્સ",
	160000:   "૧ વોટર બોટલ",
	320000:   "૧ ટિફિન બોક્સ",
	640000:   "૧ સ્કૂલ બેગ",
	1250000:  "૧ પુસ્તક સેટ",
	5000000:  "૧ ચેમ્પિયન ટ્રોફી",
	10000000: "૧ સુવર્ણ ચંદ્રક 🏅",
}

// genericGift is handed out when not even the lowest level has a gift.
const genericGift = "ઇનામ"

// GiftStore persists teacher overrides of the gift table.
type GiftStore interface {
	Overrides(ctx context.Context) (map[int64]string, error)
	SetOverride(ctx context.Context, amount int64, gift string) error
	ClearOverrides(ctx context.Context) error
}

// GiftResolver maps a won amount to a gift description via floor lookup
// over the built-in ladder.
type GiftResolver struct {
	store GiftStore
}

func NewGiftResolver(store GiftStore) *GiftResolver {
	return &GiftResolver{store: store}
}

// GiftFor returns the gift of the greatest ladder level <= amount that has
// a gift assigned. An amount between two levels resolves to the lower one.
func (r *GiftResolver) GiftFor(ctx context.Context, amount int64) (string, error) {
	gifts, err := r.Gifts(ctx)
	if err != nil {
		return "", err
	}
	for i := len(builtinLevels) - 1; i >= 0; i-- {
		level := builtinLevels[i].Amount
		if amount >= level && gifts[level] != "" {
			return gifts[level], nil
		}
	}
	if gift := gifts[builtinLevels[0].Amount]; gift != "" {
		return gift, nil
	}
	return genericGift, nil
}

// SetGift persists a teacher override for the given amount.
func (r *GiftResolver) SetGift(ctx context.Context, amount int64, gift string) error {
	gift = strings.TrimSpace(gift)
	if gift == "" {
		return fmt.Errorf("%w: gift description required", domain.ErrValidation)
	}
	if err := r.store.SetOverride(ctx, amount, gift); err != nil {
		return fmt.Errorf("save gift: %w", err)
	}
	return nil
}

// ResetToDefaults discards every override, restoring the built-in table.
func (r *GiftResolver) ResetToDefaults(ctx context.Context) error {
	return r.store.ClearOverrides(ctx)
}

// Gifts returns the effective table: defaults with overrides applied.
func (r *GiftResolver) Gifts(ctx context.Context) (map[int64]string, error) {
	overrides, err := r.store.Overrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("load gift overrides: %w", err)
	}
	merged := make(map[int64]string, len(defaultGifts)+len(overrides))
	for amount, gift := range defaultGifts {
		merged[amount] = gift
	}
	for amount, gift := range overrides {
		merged[amount] = gift
	}
	return merged, nil
}
