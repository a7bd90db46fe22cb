package pricing

import "strings"

type priceBand struct {
	Min     float64
	Max     float64
	Deposit float64
}

var categoryBands = map[string]priceBand{
	"electronics":    {Min: 15, Max: 50, Deposit: 200},
	"photography":    {Min: 20, Max: 60, Deposit: 300},
	"tools":          {Min: 10, Max: 25, Deposit: 80},
	"fashion":        {Min: 20, Max: 40, Deposit: 150},
	"sports":         {Min: 10, Max: 30, Deposit: 100},
	"party supplies": {Min: 15, Max: 35, Deposit: 100},
	"academic":       {Min: 3, Max: 10, Deposit: 50},
	"transportation": {Min: 15, Max: 30, Deposit: 150},
}

// Suggestion is the listing price a new item is pre-filled with
type Suggestion struct {
	Category   string
	MinDaily   float64
	MaxDaily   float64
	DailyRate  float64
	WeeklyRate float64
	Deposit    float64
}

// Suggest returns the suggested pricing for a category name. The daily rate
// is the midpoint of the band and a week costs six days.
func Suggest(category string) (Suggestion, bool) {
	band, ok := categoryBands[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return Suggestion{}, false
	}
	daily := (band.Min + band.Max) / 2
	return Suggestion{
		Category:   category,
		MinDaily:   band.Min,
		MaxDaily:   band.Max,
		DailyRate:  daily,
		WeeklyRate: daily * 6,
		Deposit:    band.Deposit,
	}, true
}
