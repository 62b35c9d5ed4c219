package domain

import "github.com/shopspring/decimal"

// SeriesDays is the fixed length of a monthly rate series, covering the
// calendar window [today-29, today].
const SeriesDays = 30

// RateSeries is an ordered run of daily rates, oldest first. A series built
// by the rate service always holds exactly SeriesDays entries with no gaps.
type RateSeries []decimal.Decimal
