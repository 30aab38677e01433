package air

import (
	"github.com/ansel1/merry"
	"strconv"
	"strings"
)

// Property identifies one of the fitted properties of equilibrium air.
type Property int

const (
	PropH Property = iota
	PropCp
	PropK
	PropMu
	PropZ
)

var Properties = []Property{PropH, PropCp, PropK, PropMu, PropZ}

var propertyInfo = map[Property]struct {
	name, title, unit string
}{
	PropH:  {"h", "specific enthalpy", "J/kg"},
	PropCp: {"cp", "specific heat at constant pressure", "J/(kg·K)"},
	PropK:  {"k", "thermal conductivity", "W/(m·K)"},
	PropMu: {"mu", "dynamic viscosity", "Pa·s"},
	PropZ:  {"z", "compressibility factor", "-"},
}

func (x Property) String() string {
	if i, f := propertyInfo[x]; f {
		return i.name
	}
	return "Property(" + strconv.Itoa(int(x)) + ")"
}

func (x Property) Title() string {
	return propertyInfo[x].title
}

// NominalUnit is the SI unit the property is conventionally given in. Fits
// take raw T in K, so values are the raw fit output and need not be in it.
func (x Property) NominalUnit() string {
	return propertyInfo[x].unit
}

func (x Property) Valid() bool {
	_, f := propertyInfo[x]
	return f
}

// ParseProperty accepts the short property name, case insensitive.
func ParseProperty(s string) (Property, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, x := range Properties {
		if propertyInfo[x].name == s {
			return x, nil
		}
	}
	return 0, merry.Errorf("unknown property %q: expected one of h, cp, k, mu, z", s)
}
