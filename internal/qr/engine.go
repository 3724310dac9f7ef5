package qr

import (
	"fmt"
	"strings"
)

// Engine produces the module matrix of a QR symbol for a payload. Engines
// always use error correction level L and pick the smallest version that
// fits. The returned matrix has no quiet zone and is indexed [y][x].
type Engine interface {
	Name() string
	Matrix(payload string) ([][]bool, error)
}

// segmentingEngine is implemented by engines that mix encoding modes
// within one symbol. Their own size check replaces the single-mode
// capacity limits.
type segmentingEngine interface {
	Segments() bool
}

func segments(e Engine) bool {
	s, ok := e.(segmentingEngine)
	return ok && s.Segments()
}

// Engine names accepted by EngineByName.
const (
	EngineYeqown = "yeqown"
	EngineSkip2  = "skip2"
)

// DefaultEngine is used when no engine is configured.
const DefaultEngine = EngineYeqown

// EngineNames lists the available engines in display order.
func EngineNames() []string {
	return []string{EngineYeqown, EngineSkip2}
}

// EngineByName returns the engine registered under name. An empty name
// selects DefaultEngine.
func EngineByName(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineYeqown:
		return YeqownEngine{}, nil
	case EngineSkip2:
		return Skip2Engine{}, nil
	default:
		return nil, fmt.Errorf("unknown qr engine %q (available: %s)", name, strings.Join(EngineNames(), ", "))
	}
}
