package flight

import "log/slog"

// DelayInput holds the mutable form state for a delay prediction. Setters
// return a fresh snapshot so a render in progress never observes a
// partially-updated record.
type DelayInput struct {
	Airline     string
	Origin      string
	Destination string
	Date        string
	Time        string
}

func (in DelayInput) WithAirline(v string) DelayInput     { in.Airline = v; return in }
func (in DelayInput) WithOrigin(v string) DelayInput      { in.Origin = v; return in }
func (in DelayInput) WithDestination(v string) DelayInput { in.Destination = v; return in }
func (in DelayInput) WithDate(v string) DelayInput        { in.Date = v; return in }
func (in DelayInput) WithTime(v string) DelayInput        { in.Time = v; return in }

// Request builds the immutable payload sent at submission time. Empty
// fields are passed through; the backend is the validator.
func (in DelayInput) Request() DelayRequest {
	return DelayRequest{
		Airline:     in.Airline,
		Origin:      in.Origin,
		Destination: in.Destination,
		Date:        in.Date,
		Time:        in.Time,
	}
}

// PriceInput holds the mutable form state for a fare estimate. The duration
// is kept both as the raw text the operator typed and as parsed minutes.
type PriceInput struct {
	Airline      string
	Origin       string
	Destination  string
	DurationText string
	DurationMins int
}

func (in PriceInput) WithAirline(v string) PriceInput     { in.Airline = v; return in }
func (in PriceInput) WithOrigin(v string) PriceInput      { in.Origin = v; return in }
func (in PriceInput) WithDestination(v string) PriceInput { in.Destination = v; return in }

// WithDurationText re-parses the duration on every edit. Malformed text
// coerces to zero minutes rather than rejecting the edit; the coercion is
// logged so it stays diagnosable.
func (in PriceInput) WithDurationText(raw string) PriceInput {
	in.DurationText = raw
	in.DurationMins = ParseDuration(raw)
	if raw != "" && in.DurationMins == 0 {
		slog.Debug("duration text coerced to zero minutes", "raw", raw)
	}
	return in
}

// WithDurationMins sets the duration directly, for numeric entry paths.
func (in PriceInput) WithDurationMins(mins int) PriceInput {
	if mins < 0 {
		slog.Debug("negative duration coerced to zero minutes", "mins", mins)
		mins = 0
	}
	in.DurationMins = mins
	return in
}

// Request builds the immutable payload sent at submission time.
func (in PriceInput) Request() PriceRequest {
	return PriceRequest{
		Airline:      in.Airline,
		Origin:       in.Origin,
		Destination:  in.Destination,
		DurationMins: in.DurationMins,
	}
}
