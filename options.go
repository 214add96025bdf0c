package blockmtl

const (
	// PaletteSize is the number of material identifiers, valid ids are [0, PaletteSize).
	PaletteSize = 256

	// DefaultLibraryName is the material library file referenced by the geometry header.
	DefaultLibraryName = "minecraft.mtl"
	// DefaultUnknownName is the name of the fallback material.
	DefaultUnknownName = "unknown"
	// DefaultMaterialPrefix is prepended to the id to build a material name.
	DefaultMaterialPrefix = "material-"
)

// Options controls material naming and serialization.
type Options struct {
	// LibraryName is the file name written by WriteHeader (default "minecraft.mtl").
	LibraryName string
	// UnknownName is the fallback material name (default "unknown").
	UnknownName string
	// MaterialPrefix is the material name prefix (default "material-").
	MaterialPrefix string
	// PaletteSize limits the scanned id range. Values outside (0, PaletteSize] use PaletteSize.
	PaletteSize int
}

// ValidateOptions controls palette validation rules.
type ValidateOptions struct {
	// DisableUnknownCollisionCheck disables the warning for colors equal to the fallback magenta.
	DisableUnknownCollisionCheck bool
	// DisableDuplicateColorCheck disables the notice for ids sharing one color.
	DisableDuplicateColorCheck bool
	// PaletteSize limits the scanned id range, same rules as Options.PaletteSize.
	PaletteSize int
}

// normalize normalizes the Options.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{
			LibraryName:    DefaultLibraryName,
			UnknownName:    DefaultUnknownName,
			MaterialPrefix: DefaultMaterialPrefix,
			PaletteSize:    PaletteSize,
		}
	}

	out := *o
	if out.LibraryName == "" {
		out.LibraryName = DefaultLibraryName
	}
	if out.UnknownName == "" {
		out.UnknownName = DefaultUnknownName
	}
	if out.MaterialPrefix == "" {
		out.MaterialPrefix = DefaultMaterialPrefix
	}
	out.PaletteSize = normalizeSize(out.PaletteSize)

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{PaletteSize: PaletteSize}
	}

	out := *o
	out.PaletteSize = normalizeSize(out.PaletteSize)

	return out
}

func normalizeSize(n int) int {
	if n <= 0 || n > PaletteSize {
		return PaletteSize
	}

	return n
}
