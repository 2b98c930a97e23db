package model

import "time"

// DiscussionPost is one owner-community post.
type DiscussionPost struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Vehicle   string    `json:"vehicle,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// Appointment is a test-drive booking.
type Appointment struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Model        string    `json:"model"`
	TrimName     string    `json:"trim_name,omitempty"`
	Date         string    `json:"date"` // YYYY-MM-DD
	TimeSlot     string    `json:"time_slot"`
	CreatedAt    time.Time `json:"created_at"`
}

// RewardTier is a loyalty tier name.
type RewardTier string

const (
	TierSilver   RewardTier = "silver"
	TierGold     RewardTier = "gold"
	TierPlatinum RewardTier = "platinum"
)

// TierFor maps a points balance onto a tier. Gold starts at 2000 points,
// platinum at 5000.
func TierFor(points int) RewardTier {
	switch {
	case points >= 5000:
		return TierPlatinum
	case points >= 2000:
		return TierGold
	default:
		return TierSilver
	}
}

// RewardItem is one redeemable reward.
type RewardItem struct {
	Title       string `json:"title"`
	Points      int    `json:"points"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// RewardCatalog is the fixed list of redeemable rewards.
var RewardCatalog = []RewardItem{
	{Title: "Gas Discount", Points: 500, Value: "$25", Description: "$25 gas card for partner stations", Category: "gas"},
	{Title: "Rental Car Day", Points: 750, Value: "$75", Description: "Free rental day (up to $75 value)", Category: "rental"},
	{Title: "Service Discount", Points: 1000, Value: "$100", Description: "$100 off your next service", Category: "service"},
	{Title: "Gas Discount XL", Points: 1500, Value: "$75", Description: "$75 gas card for partner stations", Category: "gas"},
	{Title: "Weekend Rental", Points: 2000, Value: "$200", Description: "Free weekend rental (Fri-Mon)", Category: "rental"},
	{Title: "Premium Service", Points: 2500, Value: "$250", Description: "Premium service package", Category: "service"},
}

// FindReward looks a catalog entry up by title.
func FindReward(title string) (RewardItem, bool) {
	for _, r := range RewardCatalog {
		if r.Title == title {
			return r, true
		}
	}
	return RewardItem{}, false
}

// RewardActivity is one ledger entry for a member.
type RewardActivity struct {
	Action    string    `json:"action"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberRewards is the balance view returned by the rewards endpoint.
type MemberRewards struct {
	Member     string           `json:"member"`
	Points     int              `json:"points"`
	Tier       RewardTier       `json:"tier"`
	Activities []RewardActivity `json:"activities"`
	Catalog    []RewardItem     `json:"catalog"`
}
