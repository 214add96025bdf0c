package blockmtl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseMTL parses a material library from bytes.
func ParseMTL(data []byte) ([]Material, error) {
	return DecodeMTL(bytes.NewReader(data))
}

// DecodeMTL parses a material library from reader.
// Only newmtl and Kd are interpreted, other statements are skipped.
func DecodeMTL(r io.Reader) ([]Material, error) {
	var out []Material
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				return nil, parseErrorf(line, "newmtl without name")
			}
			out = append(out, Material{Name: strings.Join(fields[1:], " ")})
		case "Kd":
			if len(out) == 0 {
				return nil, parseErrorf(line, "Kd before newmtl")
			}
			if len(fields) != 4 {
				return nil, parseErrorf(line, "Kd expects 3 components, got %d", len(fields)-1)
			}
			cur := &out[len(out)-1]
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, parseErrorf(line, "bad Kd component %q", fields[i+1])
				}
				cur.Kd[i] = v
			}
			cur.HasKd = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeMTLFile parses a material library from a file.
func DecodeMTLFile(path string) ([]Material, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseMTL(b)
}

func parseErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("%w at line %d: %s", ErrParse, line, fmt.Sprintf(format, args...))
}
