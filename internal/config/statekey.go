package config

// StateKey is the closed enumeration of named animation states. KeyNormal is
// the implicit resting baseline; the remaining keys correspond to the
// optional state definitions of an Animation block.
type StateKey int

const (
	KeyNormal StateKey = iota
	KeyEnter
	KeyExit
	KeyInitial
	KeyAnimate
	KeyHover
	KeyPress
	KeyCheck
)

var stateKeyNames = map[StateKey]string{
	KeyNormal:  "normal",
	KeyEnter:   "enter",
	KeyExit:    "exit",
	KeyInitial: "initial",
	KeyAnimate: "animate",
	KeyHover:   "hover",
	KeyPress:   "press",
	KeyCheck:   "check",
}

func (k StateKey) String() string {
	if name, ok := stateKeyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseStateKey maps an external key string to its StateKey. Unrecognized
// strings return ok == false; callers ignore such requests rather than fail.
func ParseStateKey(s string) (StateKey, bool) {
	switch s {
	case "normal":
		return KeyNormal, true
	case "enter":
		return KeyEnter, true
	case "exit":
		return KeyExit, true
	case "initial":
		return KeyInitial, true
	case "animate":
		return KeyAnimate, true
	case "hover":
		return KeyHover, true
	case "press":
		return KeyPress, true
	case "check":
		return KeyCheck, true
	default:
		return KeyNormal, false
	}
}

// Interaction reports whether the key is a valid interaction request for the
// engine's interaction track (normal, hover, press, check).
func (k StateKey) Interaction() bool {
	switch k {
	case KeyNormal, KeyHover, KeyPress, KeyCheck:
		return true
	default:
		return false
	}
}
