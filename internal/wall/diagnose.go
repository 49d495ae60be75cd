package wall

import (
	"fmt"
	"math"
)

// IssueKind classifies a data-quality problem in an assembly
type IssueKind string

const (
	IssueIncompleteLayer     IssueKind = "incomplete-layer"
	IssueNegativeThickness   IssueKind = "negative-thickness"
	IssueInvalidConductivity IssueKind = "invalid-conductivity"
	IssueExtraFramedLayer    IssueKind = "extra-framed-layer"
	IssueFramingFraction     IssueKind = "framing-fraction"
	IssueFramingUnused       IssueKind = "framing-unused"
	IssueTooManyLayers       IssueKind = "too-many-layers"
)

// Issue is a data-quality problem found in an assembly.
// Issues never stop a calculation; they are surfaced to the caller.
type Issue struct {
	Kind    IssueKind
	Layer   int // 0-based layer index, -1 for assembly-wide issues
	Message string
}

func (i Issue) String() string {
	if i.Layer < 0 {
		return i.Message
	}
	return fmt.Sprintf("layer %d: %s", i.Layer+1, i.Message)
}

// Diagnose reports malformed or incomplete parts of an assembly
func Diagnose(layers []Layer, framing *FramingConfig) []Issue {
	var issues []Issue

	if len(layers) > MaxLayers {
		issues = append(issues, Issue{
			Kind:    IssueTooManyLayers,
			Layer:   -1,
			Message: fmt.Sprintf("assembly has %d layers, more than the %d supported by the layer editor", len(layers), MaxLayers),
		})
	}

	framed := FramedLayer(layers)
	for i, layer := range layers {
		switch {
		case math.IsNaN(layer.Thickness) || math.IsInf(layer.Thickness, 0):
			issues = append(issues, Issue{IssueIncompleteLayer, i, fmt.Sprintf("thickness %v is not a finite number, treated as 0", layer.Thickness)})
		case layer.Thickness < 0:
			issues = append(issues, Issue{IssueNegativeThickness, i, fmt.Sprintf("negative thickness %.2f mm treated as 0", layer.Thickness)})
		case !layer.IsComplete():
			issues = append(issues, Issue{IssueIncompleteLayer, i, "material or thickness not set"})
		}

		if layer.Material != "" && layer.ThicknessMeters() > 0 && !(layer.Conductivity > 0) {
			issues = append(issues, Issue{IssueInvalidConductivity, i, fmt.Sprintf("conductivity %.3f W/mK is not positive, layer adds no resistance", layer.Conductivity)})
		}

		if layer.HasFraming && i != framed {
			issues = append(issues, Issue{IssueExtraFramedLayer, i, fmt.Sprintf("framing already applied to layer %d, flag ignored", framed+1)})
		}
	}

	if framing.Applies() {
		switch f := framing.AreaFraction; {
		case math.IsNaN(f):
			issues = append(issues, Issue{IssueFramingFraction, -1, "framing area fraction is not a number, treated as 0"})
		case f < 0 || f > 1:
			issues = append(issues, Issue{IssueFramingFraction, -1, fmt.Sprintf("framing area fraction %.3f outside [0, 1], clamped", f)})
		}
		if !(framing.Conductivity > 0) {
			issues = append(issues, Issue{IssueInvalidConductivity, -1, fmt.Sprintf("framing conductivity %.3f W/mK is not positive, framed layer adds no resistance", framing.Conductivity)})
		}
		if framed < 0 {
			issues = append(issues, Issue{IssueFramingUnused, -1, fmt.Sprintf("%s framing selected but no layer carries it", framing.Type)})
		}
	}

	return issues
}
