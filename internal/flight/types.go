package flight

// Kind discriminates the two prediction variants.
type Kind string

const (
	KindDelay Kind = "delay"
	KindPrice Kind = "price"
)

// DelayRequest is the payload for the delay-risk model.
type DelayRequest struct {
	Airline     string `json:"airline"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"` // ISO date, e.g. 2026-05-20
	Time        string `json:"time"` // HH:MM
}

// PriceRequest is the payload for the fare-estimate model.
type PriceRequest struct {
	Airline      string `json:"airline"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DurationMins int    `json:"duration_mins"`
}

// RiskBand partitions a risk score into the two bands the UI renders.
type RiskBand string

const (
	RiskElevated RiskBand = "elevated"
	RiskNominal  RiskBand = "nominal"
)

// riskThreshold is a fixed business rule, not configurable.
const riskThreshold = 40

// DelayResult is the delay model's response.
type DelayResult struct {
	Prediction  string  `json:"prediction"`
	Probability float64 `json:"probability"`
	RiskScore   float64 `json:"risk_score"`
}

// Band classifies the risk score: above 40 is elevated, otherwise nominal.
func (r DelayResult) Band() RiskBand {
	if r.RiskScore > riskThreshold {
		return RiskElevated
	}
	return RiskNominal
}

// PriceResult is the fare model's response.
type PriceResult struct {
	EstimatedPrice float64 `json:"estimated_price"`
}

// OptionsSet holds the server-supplied enumerations used to populate
// selection inputs. Empty slices are valid before the fetch resolves.
type OptionsSet struct {
	Airlines []string `json:"airlines"`
	Cities   []string `json:"cities"`
}

// Result is the tagged union a prediction round trip produces. Kind tells
// which member is populated.
type Result struct {
	Kind  Kind
	Delay DelayResult
	Price PriceResult
}

// DelayOutcome wraps a delay response as a Result.
func DelayOutcome(r DelayResult) Result {
	return Result{Kind: KindDelay, Delay: r}
}

// PriceOutcome wraps a price response as a Result.
func PriceOutcome(r PriceResult) Result {
	return Result{Kind: KindPrice, Price: r}
}
