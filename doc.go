/*
Package blockmtl generates Wavefront material libraries for block palettes.

A Library maps block ids in [0, PaletteSize) to materials through a ColorTable,
names those materials and writes the .mtl file that an exported .obj references.
Every id without a color resolves to NoMaterial and uses the shared "unknown"
material, which is always written first with a magenta diffuse color.

Writer example:

	pal, err := blockmtl.LoadPalette("palette.yaml")
	if err != nil {
		// handle error
	}
	lib := blockmtl.New(pal, nil)
	if err := lib.EncodeFile("minecraft.mtl"); err != nil {
		// handle error
	}

Geometry example:

	_ = lib.WriteHeader(obj) // "mtllib minecraft.mtl"
	if lib.ResolveFaceMaterial(id, blockmtl.FaceTop) != blockmtl.NoMaterial {
		fmt.Fprintf(obj, "usemtl %s\n", lib.MaterialName(id))
	}

Reader example:

	mats, err := blockmtl.DecodeMTLFile("minecraft.mtl")
	if err != nil {
		// handle error
	}
	_ = mats

Kd channels are written as value/256 with two decimals and a '.' separator
regardless of the host locale.
*/
package blockmtl
