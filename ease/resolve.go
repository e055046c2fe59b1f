package ease

import (
	"fmt"
	"sort"
	"strings"
)

// functions maps normalized selector names to easing functions. The short
// names ease_in/ease_out/ease_in_out alias the quad family, matching CSS
// convention.
var functions = map[string]Func{
	"linear":              Linear,
	"ease_in":             In,
	"ease_out":            Out,
	"ease_in_out":         InOut,
	"ease_in_quad":        InQuad,
	"ease_out_quad":       OutQuad,
	"ease_in_out_quad":    InOutQuad,
	"ease_in_cubic":       InCubic,
	"ease_out_cubic":      OutCubic,
	"ease_in_out_cubic":   InOutCubic,
	"ease_in_quart":       InQuart,
	"ease_out_quart":      OutQuart,
	"ease_in_out_quart":   InOutQuart,
	"ease_in_quint":       InQuint,
	"ease_out_quint":      OutQuint,
	"ease_in_out_quint":   InOutQuint,
	"ease_in_sine":        InSine,
	"ease_out_sine":       OutSine,
	"ease_in_out_sine":    InOutSine,
	"ease_in_expo":        InExpo,
	"ease_out_expo":       OutExpo,
	"ease_in_out_expo":    InOutExpo,
	"ease_in_circ":        InCirc,
	"ease_out_circ":       OutCirc,
	"ease_in_out_circ":    InOutCirc,
	"ease_in_back":        InBack,
	"ease_out_back":       OutBack,
	"ease_in_out_back":    InOutBack,
	"ease_in_elastic":     InElastic,
	"ease_out_elastic":    OutElastic,
	"ease_in_out_elastic": InOutElastic,
	"ease_in_bounce":      InBounce,
	"ease_out_bounce":     OutBounce,
	"ease_in_out_bounce":  InOutBounce,
}

// Names returns the sorted list of selector names accepted by Resolve.
func Names() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns an easing selector into a Func. A Func (or any
// func(float64) float64) passes through unchanged; a string is looked up
// by name, ignoring case and treating "-", " ", and "_" interchangeably.
// Unknown names and unsupported selector types are errors; there is no
// silent fallback to Linear.
//
// Resolve is intended to run once, when a task is constructed, not per
// tick.
func Resolve(selector any) (Func, error) {
	switch v := selector.(type) {
	case nil:
		return Linear, nil
	case Func:
		return v, nil
	case func(float64) float64:
		return v, nil
	case string:
		name := strings.ToLower(v)
		name = strings.ReplaceAll(name, "-", "_")
		name = strings.ReplaceAll(name, " ", "_")
		fn, ok := functions[name]
		if !ok {
			return nil, fmt.Errorf("ease: unknown easing %q (valid: %s)",
				v, strings.Join(Names(), ", "))
		}
		return fn, nil
	default:
		return nil, fmt.Errorf("ease: selector must be a name or ease.Func, got %T", selector)
	}
}
