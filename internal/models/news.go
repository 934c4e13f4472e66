package models

import "time"

// Headline — one fetched article. Not cached anywhere.
type Headline struct {
	Title       string
	Description string
	PublishedAt time.Time
}

// NewsScore aggregates headline sentiment. Score is roughly [-1,1];
// Impact is a [0,1] confidence measure from total freshness weight.
type NewsScore struct {
	Score  float64
	Impact float64
}
