package policy

import (
	"fmt"
	"os"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/depgate/internal/domain/entities"
)

// ScanPolicyFile reads an HCL policy file and extracts dependency specs.
// Policy files declare one block per requirement:
//
//	dependency "flake8" {
//	  min = "2.5.4"
//	  max = "3.0.0"
//	}
func ScanPolicyFile(path string) ([]entities.DependencySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %q: %w", path, err)
	}
	return ScanPolicy(string(data), path)
}

// ScanPolicy parses HCL policy content and extracts dependency specs.
func ScanPolicy(content, filePath string) ([]entities.DependencySpec, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL([]byte(content), filePath)
	if diags.HasErrors() {
		// Try regex-based parsing as fallback
		return scanWithRegex(content)
	}

	body := file.Body
	if body == nil {
		return nil, nil
	}

	bodyContent, _, diags := body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "dependency", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return scanWithRegex(content)
	}

	var specs []entities.DependencySpec

	for _, block := range bodyContent.Blocks {
		if block.Type != "dependency" || len(block.Labels) == 0 {
			continue
		}

		attrs, _ := block.Body.JustAttributes()
		minVal, minOK := stringAttr(attrs, "min")
		maxVal, maxOK := stringAttr(attrs, "max")
		if !minOK || !maxOK {
			return nil, fmt.Errorf(
				"dependency %q in %s needs both min and max",
				block.Labels[0], filePath,
			)
		}

		specs = append(specs, entities.DependencySpec{
			Name:       block.Labels[0],
			MinVersion: minVal,
			MaxVersion: maxVal,
		})
	}

	return specs, nil
}

// stringAttr evaluates an attribute as a literal string.
func stringAttr(attrs hcl.Attributes, name string) (string, bool) {
	attr, ok := attrs[name]
	if !ok {
		return "", false
	}
	val, diags := attr.Expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() || val.Type() != cty.String {
		return "", false
	}
	return val.AsString(), true
}

// dependencyPattern matches dependency blocks with min followed by max.
var dependencyPattern = regexp.MustCompile(
	`(?s)dependency\s+"([^"]+)"\s*\{[^}]*?min\s*=\s*"([^"]+)"[^}]*?max\s*=\s*"([^"]+)"`,
)

// scanWithRegex is a fallback parser using regex for cases where HCL parsing fails.
func scanWithRegex(content string) ([]entities.DependencySpec, error) {
	var specs []entities.DependencySpec

	matches := dependencyPattern.FindAllStringSubmatch(content, -1)
	for _, match := range matches {
		if len(match) < 4 {
			continue
		}
		specs = append(specs, entities.DependencySpec{
			Name:       match[1],
			MinVersion: match[2],
			MaxVersion: match[3],
		})
	}

	return specs, nil
}
