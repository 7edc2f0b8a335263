package webapptest

import "fmt"

// DriftKind identifies how a route deviates from the whitelist.
type DriftKind int

const (
	// DriftUndeclared means a registered route is missing from the whitelist.
	DriftUndeclared DriftKind = iota + 1
	// DriftMissing means a whitelisted route is not registered.
	DriftMissing
	// DriftAmbiguous means a pattern and method matched more than once.
	DriftAmbiguous
	// DriftControllerMismatch means the route is bound to another controller.
	DriftControllerMismatch
	// DriftControllerUnregistered means the controller can not be resolved.
	DriftControllerUnregistered
)

func (k DriftKind) String() string {
	switch k {
	case DriftUndeclared:
		return "undeclared"
	case DriftMissing:
		return "missing"
	case DriftAmbiguous:
		return "ambiguous"
	case DriftControllerMismatch:
		return "controller-mismatch"
	case DriftControllerUnregistered:
		return "controller-unregistered"
	default:
		return fmt.Sprintf("DriftKind(%d)", int(k))
	}
}

// Drift describes a single difference between the whitelist and the routes
// an application registers.
type Drift struct {
	Kind     DriftKind
	Pattern  string
	Method   string
	Expected string
	Actual   string

	// Matches and InWhitelist are set for DriftAmbiguous.
	Matches     int
	InWhitelist bool

	// Err is set for DriftControllerUnregistered when resolution failed.
	Err error
}

// Error implements error.  The message always names the pattern and method.
func (d *Drift) Error() string {
	switch d.Kind {
	case DriftUndeclared:
		return fmt.Sprintf("route %v %v (controller '%v') is not present in the whitelist of routes", d.Method, d.Pattern, d.Actual)
	case DriftMissing:
		return fmt.Sprintf("route %v %v (controller '%v') is in the whitelist but is not registered", d.Method, d.Pattern, d.Expected)
	case DriftAmbiguous:
		source := "registered routes"
		if d.InWhitelist {
			source = "whitelist entries"
		}
		return fmt.Sprintf("route %v %v matches %v %v, expected exactly 1", d.Method, d.Pattern, d.Matches, source)
	case DriftControllerMismatch:
		return fmt.Sprintf("route %v %v is bound to controller '%v' but the whitelist expects '%v'", d.Method, d.Pattern, d.Actual, d.Expected)
	case DriftControllerUnregistered:
		if d.Err != nil {
			return fmt.Sprintf("route %v %v expects controller '%v' which could not be resolved: %v", d.Method, d.Pattern, d.Expected, d.Err)
		}
		return fmt.Sprintf("route %v %v expects controller '%v' which resolved to nothing", d.Method, d.Pattern, d.Expected)
	default:
		return fmt.Sprintf("route %v %v drifted (%v)", d.Method, d.Pattern, d.Kind)
	}
}

// Unwrap returns the resolution error, if any.
func (d *Drift) Unwrap() error {
	return d.Err
}
