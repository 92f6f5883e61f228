package pilotingitf

import (
	"fmt"
	"strings"

	"github.com/skyward-sdk/skyward-go/pkg/component"
)

// Piloting interface component types. The 0x01xx range of component types is
// reserved for piloting interfaces.
const (
	TypeManualCopter     component.Type = 0x0101
	TypeReturnHome       component.Type = 0x0102
	TypeFollowMe         component.Type = 0x0103
	TypeFlightPlan       component.Type = 0x0104
	TypeGuided           component.Type = 0x0105
	TypeLookAt           component.Type = 0x0106
	TypePointOfInterest  component.Type = 0x0107
	typePilotingItfBase  component.Type = 0x0100
	typePilotingItfLimit component.Type = 0x01ff
)

var typeNames = map[component.Type]string{
	TypeManualCopter:    "manualCopter",
	TypeReturnHome:      "returnHome",
	TypeFollowMe:        "followMe",
	TypeFlightPlan:      "flightPlan",
	TypeGuided:          "guided",
	TypeLookAt:          "lookAt",
	TypePointOfInterest: "pointOfInterest",
}

func init() {
	for t, name := range typeNames {
		component.RegisterTypeName(t, name)
	}
}

// IsPilotingItf reports whether t is in the piloting interface range.
func IsPilotingItf(t component.Type) bool {
	return t > typePilotingItfBase && t <= typePilotingItfLimit
}

// ParseType parses a piloting interface name (case-insensitive).
func ParseType(s string) (component.Type, error) {
	for t, name := range typeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown piloting interface: %s", s)
}

// Descriptor returns the component descriptor for a piloting interface type.
func Descriptor(t component.Type) component.Descriptor {
	return component.Descriptor{Type: t, Name: t.String()}
}
