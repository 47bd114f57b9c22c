package styleprofile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// overrideFile is the HCL document shape for tuning style profiles without
// recompiling, one optional `style` block per Style.
type overrideFile struct {
	Styles []styleBlock `hcl:"style,block"`
}

type styleBlock struct {
	Name              string  `hcl:"name,label"`
	FoldMargin        float64 `hcl:"fold_margin,optional"`
	RaiseMargin       float64 `hcl:"raise_margin,optional"`
	StrongValueMargin float64 `hcl:"strong_value_margin,optional"`
	CommitThreshold   float64 `hcl:"commit_threshold,optional"`
	BluffFrequency    float64 `hcl:"bluff_frequency,optional"`
	SizingMultiplier  float64 `hcl:"sizing_multiplier,optional"`
	ConfidenceFloor   float64 `hcl:"confidence_floor,optional"`
	ConfidenceCeiling float64 `hcl:"confidence_ceiling,optional"`
}

// LoadOverrides reads an HCL file of `style "name" { ... }` blocks and
// returns the defaults with each named field in each named block applied on
// top. A missing file is not an error; it returns the unmodified defaults,
// matching the teacher's LoadClientConfig behavior for an absent config.
func LoadOverrides(filename string) (map[Style]Profile, error) {
	profiles := All()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return profiles, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse style override file %s: %s", filename, diags.Error())
	}

	var overrides overrideFile
	diags = gohcl.DecodeBody(file.Body, nil, &overrides)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode style override file %s: %s", filename, diags.Error())
	}

	for _, block := range overrides.Styles {
		style, err := FromString(block.Name)
		if err != nil {
			return nil, fmt.Errorf("style override file %s: %w: %q", filename, ErrUnknownStyleBlock, block.Name)
		}
		p := profiles[style]
		applyOverride(&p, block)
		profiles[style] = p
	}

	return profiles, nil
}

// applyOverride copies each non-zero field of block onto p, leaving fields
// the override file omitted at their existing default value.
func applyOverride(p *Profile, block styleBlock) {
	if block.FoldMargin != 0 {
		p.FoldMargin = block.FoldMargin
	}
	if block.RaiseMargin != 0 {
		p.RaiseMargin = block.RaiseMargin
	}
	if block.StrongValueMargin != 0 {
		p.StrongValueMargin = block.StrongValueMargin
	}
	if block.CommitThreshold != 0 {
		p.CommitThreshold = block.CommitThreshold
	}
	if block.BluffFrequency != 0 {
		p.BluffFrequency = block.BluffFrequency
	}
	if block.SizingMultiplier != 0 {
		p.SizingMultiplier = block.SizingMultiplier
	}
	if block.ConfidenceFloor != 0 {
		p.ConfidenceFloor = block.ConfidenceFloor
	}
	if block.ConfidenceCeiling != 0 {
		p.ConfidenceCeiling = block.ConfidenceCeiling
	}
}
