package loyalty

// Tier is a loyalty level with its reported discount.
type Tier struct {
	Name            string
	MinOrders       int64
	DiscountPercent int
}

func getTiers() []Tier {
	return []Tier{
		{Name: "Bronze", MinOrders: 0, DiscountPercent: 0},
		{Name: "Silver", MinOrders: 20, DiscountPercent: 5},
		{Name: "Gold", MinOrders: 50, DiscountPercent: 10},
	}
}

// TierFor returns the highest tier whose threshold totalOrders reaches.
func TierFor(totalOrders int64) Tier {
	tiers := getTiers()
	current := tiers[0]
	for _, t := range tiers[1:] {
		if totalOrders >= t.MinOrders {
			current = t
		}
	}
	return current
}

// OrdersToNextTier reports how many more delivered orders reach the next
// tier. ok is false at the top tier.
func OrdersToNextTier(totalOrders int64) (remaining int64, next Tier, ok bool) {
	for _, t := range getTiers() {
		if totalOrders < t.MinOrders {
			return t.MinOrders - totalOrders, t, true
		}
	}
	return 0, Tier{}, false
}
