// Package ucumgen compiles a UCUM essence XML document into the embedded
// Go tables pkg/ucum's registry consumes.
package ucumgen

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/ucum-go/ucum/pkg/common"
)

// Spec is the parsed form of a UCUM essence XML document.
type Spec struct {
	XMLName   xml.Name      `xml:"root"`
	Prefixes  []PrefixXML   `xml:"prefix"`
	BaseUnits []BaseUnitXML `xml:"base-unit"`
	Units     []UnitXML     `xml:"unit"`
}

// PrefixXML is a <prefix> element.
type PrefixXML struct {
	Code  string `xml:"Code,attr"`
	Name  string `xml:"name"`
	Value struct {
		Value string `xml:"value,attr"`
	} `xml:"value"`
}

// BaseUnitXML is a <base-unit> element: one of the seven dimensions this
// module tracks (M, L, T, I, H, N, J), or the empty string for a
// dimensionless base such as radian.
type BaseUnitXML struct {
	Code string `xml:"Code,attr"`
	Dim  string `xml:"dim,attr"`
	Name string `xml:"name"`
}

// UnitXML is a <unit> element: a derived or customary unit defined in
// terms of an expression over already-known codes (or "1" for a
// dimensionless reference).
type UnitXML struct {
	Code     string `xml:"Code,attr"`
	Metric   string `xml:"Metric,attr"`
	Special  string `xml:"special,attr"`
	Name     string `xml:"name"`
	Property string `xml:"property"`
	Value    struct {
		Unit     string `xml:"Unit,attr"`
		Value    string `xml:"value,attr"`
		Offset   string `xml:"offset,attr"`
		Override string `xml:"override,attr"`
	} `xml:"value"`
}

// LoadFromFile reads and parses a UCUM essence XML document at path.
func LoadFromFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapPathf(path, "reading UCUM essence XML: %w", err)
	}
	var spec Spec
	if err := xml.Unmarshal(data, &spec); err != nil {
		return nil, common.WrapPathf(path, "parsing UCUM essence XML: %w", err)
	}
	if len(spec.BaseUnits) == 0 {
		return nil, fmt.Errorf("%s: no base-unit elements found", path)
	}
	return &spec, nil
}
