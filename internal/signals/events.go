// Package signals provides the event bus that connects the simulation's
// entities to the systems observing them (ledger, run machine, HUD).
package signals

// Kind identifies an event type on the bus.
type Kind int

const (
	KindFuelEmpty Kind = iota
	KindCollideIce
	KindRescueStarted
	KindRescueProgress
	KindRescueCanceled
	KindRescuePickedUp
	KindDelivered
	KindRunStart
	KindRunEnd
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFuelEmpty:
		return "FuelEmpty"
	case KindCollideIce:
		return "CollideIce"
	case KindRescueStarted:
		return "RescueStarted"
	case KindRescueProgress:
		return "RescueProgress"
	case KindRescueCanceled:
		return "RescueCanceled"
	case KindRescuePickedUp:
		return "RescuePickedUp"
	case KindDelivered:
		return "Delivered"
	case KindRunStart:
		return "RunStart"
	case KindRunEnd:
		return "RunEnd"
	default:
		return "Unknown"
	}
}

// Event is implemented by every payload published on the bus.
type Event interface {
	Kind() Kind
}

// FuelEmpty fires once when the tank runs dry.
type FuelEmpty struct {
	Time float64
}

func (FuelEmpty) Kind() Kind { return KindFuelEmpty }

// CollideIce fires once per discrete contact between the hull and an ice hazard.
// It intentionally carries no damage value.
type CollideIce struct {
	Size          int
	RelativeSpeed float64
}

func (CollideIce) Kind() Kind { return KindCollideIce }

// RescueStarted fires when a hold-to-rescue attempt begins.
type RescueStarted struct {
	ID string
}

func (RescueStarted) Kind() Kind { return KindRescueStarted }

// RescueProgress reports hold progress in [0, 1].
type RescueProgress struct {
	ID       string
	Progress float64
}

func (RescueProgress) Kind() Kind { return KindRescueProgress }

// RescueCanceled fires when an attempt is interrupted or released.
type RescueCanceled struct {
	ID string
}

func (RescueCanceled) Kind() Kind { return KindRescueCanceled }

// RescuePickedUp fires when a survivor joins the roster.
type RescuePickedUp struct {
	ID   string
	Time float64
}

func (RescuePickedUp) Kind() Kind { return KindRescuePickedUp }

// Delivered fires when passengers are handed over at the dock.
type Delivered struct {
	Count  int
	Points int
}

func (Delivered) Kind() Kind { return KindDelivered }

// RunStart fires when an expedition begins.
type RunStart struct {
	Seed int64
}

func (RunStart) Kind() Kind { return KindRunStart }

// Run result tags carried by RunEnd.
const (
	ResultSank      = "Sank"
	ResultReturned  = "Returned"
	ResultStranded  = "Stranded"
	ResultAbandoned = "Abandoned"
)

// RunEnd fires when an expedition ends, from any source.
type RunEnd struct {
	Result       string
	RescuedCount int
}

func (RunEnd) Kind() Kind { return KindRunEnd }
