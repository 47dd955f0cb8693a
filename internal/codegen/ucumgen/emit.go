package ucumgen

import (
	"os"
	"sort"
	"strconv"
	"text/template"

	"github.com/ucum-go/ucum/pkg/common"
	"github.com/ucum-go/ucum/pkg/ucum"
)

const registryTemplate = `// Code generated by ucumgen from {{.SourcePath}}. DO NOT EDIT.

package ucum

func dim(m, l, t, i, th, n, j int8) Dimension {
	return Dimension{m, l, t, i, th, n, j}
}

func init() {
	registerPrefixes(generatedPrefixes)
	registerUnits(generatedUnits)
}

var generatedPrefixes = []Prefix{
{{- range .Prefixes}}
	{Symbol: {{.Symbol | printf "%q"}}, Name: {{.Name | printf "%q"}}, Factor: {{.Factor}}, Exponent: {{.Exponent}}},
{{- end}}
}

var generatedUnits = []UnitRecord{
{{- range .Units}}
	{Code: {{.Code | printf "%q"}}, Name: {{.Name | printf "%q"}}, Dim: dim({{.Dim0}}, {{.Dim1}}, {{.Dim2}}, {{.Dim3}}, {{.Dim4}}, {{.Dim5}}, {{.Dim6}}), Factor: {{.Factor}}, Offset: {{.Offset}}, Special: {{.Special}}, Metric: {{.Metric}}},
{{- end}}
}
`

type templatePrefix struct {
	Symbol   string
	Name     string
	Factor   string
	Exponent int
}

type templateUnit struct {
	Code                                     string
	Name                                     string
	Dim0, Dim1, Dim2, Dim3, Dim4, Dim5, Dim6 int8
	Factor, Offset                           string
	Special                                  string
	Metric                                   bool
}

var specialKindNames = map[ucum.SpecialKind]string{
	ucum.SpecialNone:         "SpecialNone",
	ucum.SpecialLinearOffset: "SpecialLinearOffset",
	ucum.SpecialLog10:        "SpecialLog10",
	ucum.SpecialLn:           "SpecialLn",
	ucum.SpecialTanTimes100:  "SpecialTanTimes100",
	ucum.SpecialArbitrary:    "SpecialArbitrary",
}

// Generate writes the compiled registry as Go source to outputPath.
func Generate(sourcePath, outputPath string, r *Resolved) error {
	units := append([]ucum.UnitRecord{}, r.Units...)
	sort.Slice(units, func(i, j int) bool { return units[i].Code < units[j].Code })

	prefixes := append([]ucum.Prefix{}, r.Prefixes...)
	sort.Slice(prefixes, func(i, j int) bool { return prefixes[i].Symbol < prefixes[j].Symbol })

	data := struct {
		SourcePath string
		Prefixes   []templatePrefix
		Units      []templateUnit
	}{SourcePath: sourcePath}

	for _, p := range prefixes {
		data.Prefixes = append(data.Prefixes, templatePrefix{
			Symbol: p.Symbol, Name: p.Name, Factor: formatFloat(p.Factor), Exponent: p.Exponent,
		})
	}
	for _, u := range units {
		data.Units = append(data.Units, templateUnit{
			Code: u.Code, Name: u.Name,
			Dim0: u.Dim[0], Dim1: u.Dim[1], Dim2: u.Dim[2], Dim3: u.Dim[3], Dim4: u.Dim[4], Dim5: u.Dim[5], Dim6: u.Dim[6],
			Factor: formatFloat(u.Factor), Offset: formatFloat(u.Offset),
			Special: specialKindNames[u.Special], Metric: u.Metric,
		})
	}

	tmpl, err := template.New("registry").Parse(registryTemplate)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return common.WrapPathf(outputPath, "creating registry output file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return common.WrapPathf(outputPath, "rendering registry template: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
