package blockmtl

import "strconv"

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
	// IssueInfo indicates an informational notice.
	IssueInfo IssueLevel = "info"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Affected material name
}

// ValidatePalette checks a color table for colors that are ambiguous in the output.
func ValidatePalette(t ColorTable, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	if t == nil {
		return []Issue{{Level: IssueError, Code: "no_table", Message: "color table is nil"}}
	}

	var out []Issue
	first := make(map[Color]int)
	for id := 0; id < vopt.PaletteSize; id++ {
		c, ok := t.Color(id)
		if !ok {
			continue
		}
		name := DefaultMaterialPrefix + strconv.Itoa(id)

		if !vopt.DisableUnknownCollisionCheck && c == unknownColor {
			out = append(out, Issue{
				Level:   IssueWarning,
				Code:    "unknown_color",
				Message: "color equals the fallback material color",
				Path:    name,
			})
		}

		if !vopt.DisableDuplicateColorCheck {
			if prev, seen := first[c]; seen {
				out = append(out, Issue{
					Level:   IssueInfo,
					Code:    "duplicate_color",
					Message: "same color as " + DefaultMaterialPrefix + strconv.Itoa(prev),
					Path:    name,
				})
				continue
			}
			first[c] = id
		}
	}

	return out
}
