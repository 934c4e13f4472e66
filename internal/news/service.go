package news

import (
	"context"
	"math"
	"time"

	"paper_trader/internal/models"
	"paper_trader/pkg/logger"
)

const (
	maxHeadlines = 5
	minAgeHours  = 0.001 // freshness floor, keeps 1/age finite
	impactScale  = 3.0   // total weight at which impact saturates to 1
)

// Service turns recent headlines into a single recency-weighted sentiment
// score. It fails soft: no credential, a fetch error or zero headlines all
// come back as a neutral zero-impact score.
type Service struct {
	client *Client
	lex    *Analyzer
	now    func() time.Time
}

func NewService(client *Client) *Service {
	return &Service{
		client: client,
		lex:    NewAnalyzer(),
		now:    time.Now,
	}
}

func (s *Service) Score(ctx context.Context, query string) models.NewsScore {
	if !s.client.Configured() {
		return models.NewsScore{}
	}

	headlines, err := s.client.Headlines(ctx, query, maxHeadlines)
	if err != nil {
		logger.Error("news fetch failed: %v", err)
		return models.NewsScore{}
	}
	return s.aggregate(headlines)
}

func (s *Service) aggregate(headlines []models.Headline) models.NewsScore {
	if len(headlines) == 0 {
		return models.NewsScore{}
	}

	var sum, totalWeight float64
	for _, h := range headlines {
		score := s.lex.Normalized(h.Title + " " + h.Description)
		ageHours := s.now().Sub(h.PublishedAt).Hours()
		if ageHours < minAgeHours {
			ageHours = minAgeHours
		}
		weight := 1 / ageHours
		sum += score * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return models.NewsScore{}
	}

	return models.NewsScore{
		Score:  sum / totalWeight,
		Impact: math.Min(1, totalWeight/impactScale),
	}
}
