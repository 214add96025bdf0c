package blockmtl

// Material represents one newmtl block read back from a material library.
type Material struct {
	Name  string     `json:"name" yaml:"name"`                       // Material name
	Kd    [3]float64 `json:"kd" yaml:"kd"`                           // Diffuse color
	HasKd bool       `json:"hasKd,omitempty" yaml:"hasKd,omitempty"` // Whether a Kd line was present
}
