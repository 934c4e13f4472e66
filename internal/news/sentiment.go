package news

import (
	"math"
	"strings"
	"unicode"
)

const normScale = 5.0

// Analyzer scores text with a signed word lexicon: AFINN-style weights in
// [-5,5], skewed towards the financial vocabulary that shows up in market
// headlines.
type Analyzer struct {
	lexicon map[string]int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: loadLexicon()}
}

// Raw returns the summed lexicon score of all words in text.
func (a *Analyzer) Raw(text string) int {
	score := 0
	for _, w := range tokenize(strings.ToLower(text)) {
		score += a.lexicon[w]
	}
	return score
}

// Normalized maps the raw score to (-1,1) with a saturating transform.
func (a *Analyzer) Normalized(text string) float64 {
	return math.Tanh(float64(a.Raw(text)) / normScale)
}

func tokenize(text string) []string {
	var words []string
	var cur strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			cur.WriteRune(r)
		} else if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}

func loadLexicon() map[string]int {
	return map[string]int{
		// strongly positive
		"breakthrough": 3, "soar": 3, "soars": 3, "soaring": 3, "surge": 3,
		"surges": 3, "surging": 3, "skyrocket": 4, "skyrockets": 4,
		"outstanding": 4, "exceptional": 3, "extraordinary": 3, "tremendous": 3,
		"record": 2, "boom": 3, "booming": 3, "winner": 3, "winning": 3,

		// positive
		"adopt": 1, "adoption": 1, "advance": 1, "advances": 1, "approval": 2,
		"approve": 2, "approved": 2, "benefit": 2, "better": 2, "bullish": 3,
		"buy": 1, "confidence": 2, "confident": 2, "excellent": 3, "favorable": 2,
		"gain": 2, "gains": 2, "good": 2, "great": 3, "grew": 2, "growth": 2,
		"high": 1, "improve": 2, "improved": 2, "improvement": 2, "innovation": 1,
		"innovative": 1, "jump": 2, "jumps": 2, "leader": 1, "leading": 1,
		"milestone": 2, "opportunity": 2, "optimism": 2, "optimistic": 2,
		"outperform": 2, "positive": 2, "profit": 2, "profitable": 2,
		"progress": 2, "rally": 2, "rallies": 2, "rebound": 2, "recover": 2,
		"recovery": 2, "rise": 1, "rises": 1, "rising": 1, "robust": 2,
		"solid": 2, "strength": 2, "strong": 2, "succeed": 3, "success": 2,
		"successful": 3, "support": 1, "upbeat": 2, "upgrade": 2, "upside": 2,

		// negative
		"bearish": -3, "collapse": -3, "collapses": -3, "concern": -2,
		"concerns": -2, "crash": -3, "crashes": -3, "crisis": -3, "damage": -2,
		"decline": -2, "declines": -2, "decrease": -2, "deficit": -2,
		"difficult": -1, "disappoint": -2, "disappointing": -2, "downgrade": -2,
		"downturn": -3, "drop": -2, "drops": -2, "dump": -2, "fail": -2,
		"failure": -2, "fall": -1, "falls": -1, "falling": -1, "fear": -2,
		"fears": -2, "fraud": -4, "hack": -3, "hacked": -3, "lawsuit": -2,
		"liquidation": -2, "loss": -3, "losses": -3, "low": -1, "negative": -2,
		"panic": -3, "plunge": -3, "plunges": -3, "poor": -2, "probe": -2,
		"problem": -2, "recession": -2, "risk": -2, "risks": -2, "scam": -3,
		"sell": -1, "selloff": -2, "slow": -1, "slowdown": -2, "slump": -3,
		"slumps": -3, "tumble": -3, "tumbles": -3, "uncertain": -2,
		"uncertainty": -2, "unfavorable": -2, "volatile": -2, "volatility": -2,
		"warn": -2, "warning": -3, "weak": -2, "weakness": -2, "worse": -3,
		"worst": -3,

		// regulation / enforcement
		"ban": -2, "banned": -2, "crackdown": -2, "investigation": -2,
		"regulatory": -1, "sanction": -2, "sanctions": -2, "seize": -2,
		"violation": -2,
	}
}
