package enum

// Strategy is the investment style a recommendation was generated under.
type Strategy string

const (
	Growth     Strategy = "growth"
	Value      Strategy = "value"
	Defensive  Strategy = "defensive"
	Contrarian Strategy = "contrarian"
)

// Strategies lists every known strategy. Dispatch tables over
// strategies must cover exactly this set.
var Strategies = []Strategy{Growth, Value, Defensive, Contrarian}

func (s Strategy) Valid() bool {
	for _, known := range Strategies {
		if s == known {
			return true
		}
	}
	return false
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Severity grades a geopolitical risk event.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)
