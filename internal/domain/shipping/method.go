package shipping

import (
	"fmt"
	"strings"

	"github.com/resale/backend/internal/domain/shared"
)

// Method represents a Japan Post shipping method
type Method string

const (
	MethodEPacket     Method = "ePacket"
	MethodSmallPacket Method = "SmallPacket"
	MethodEMS         Method = "EMS"
	MethodAir         Method = "Air"
	MethodSAL         Method = "SAL"
	MethodSurface     Method = "Surface"
)

// methodPriority is the fixed tie-break order when two methods quote the
// same cost. Lower index wins.
var methodPriority = []Method{
	MethodEPacket,
	MethodSmallPacket,
	MethodEMS,
	MethodAir,
	MethodSAL,
	MethodSurface,
}

// AllMethods returns every known method in priority order
func AllMethods() []Method {
	methods := make([]Method, len(methodPriority))
	copy(methods, methodPriority)
	return methods
}

// Priority returns the tie-break rank of the method. Unknown methods sort last.
func (m Method) Priority() int {
	for i, known := range methodPriority {
		if m == known {
			return i
		}
	}
	return len(methodPriority)
}

// IsValid returns true if the method is a known shipping method
func (m Method) IsValid() bool {
	return m.Priority() < len(methodPriority)
}

// String returns the method name
func (m Method) String() string {
	return string(m)
}

// ParseMethod parses a method name, case-insensitively
func ParseMethod(s string) (Method, error) {
	for _, known := range methodPriority {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown shipping method: %q", s))
}
