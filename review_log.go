package sm2

import "time"

// ReviewLog records a single review event for a card.
type ReviewLog struct {
	CardID     string    `json:"card_id"`
	Response   Response  `json:"response"`
	ReviewedAt time.Time `json:"reviewed_at"`
}
