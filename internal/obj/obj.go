package obj

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/data"
)

// Parse reads ASCII Wavefront OBJ geometry. Only vertex and face
// statements matter for voxelization; normals, texture coordinates,
// materials and groups are skipped. Faces with more than three corners
// are fan triangulated; negative indices reference from the end of the
// vertex list per the OBJ convention.
func Parse(r io.Reader) (*data.Mesh, error) {
	mesh := &data.Mesh{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, errors.Errorf("obj: line %d: vertex needs 3 coordinates", lineNum)
			}
			var c [3]float64
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, errors.Wrapf(err, "obj: line %d: bad coordinate %q", lineNum, fields[i+1])
				}
				c[i] = f
			}
			mesh.Vertices = append(mesh.Vertices, r3.Vec{X: c[0], Y: c[1], Z: c[2]})
		case "f":
			if len(fields) < 4 {
				return nil, errors.Errorf("obj: line %d: face needs at least 3 corners", lineNum)
			}
			corners := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				idx, err := vertexIndex(tok, len(mesh.Vertices))
				if err != nil {
					return nil, errors.Wrapf(err, "obj: line %d", lineNum)
				}
				corners = append(corners, idx)
			}
			for i := 1; i+1 < len(corners); i++ {
				mesh.Faces = append(mesh.Faces, [3]int{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "obj: read")
	}
	return mesh, nil
}

// ParseFile opens and parses an OBJ file.
func ParseFile(path string) (*data.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "obj: open %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// vertexIndex resolves an OBJ face corner token ("7", "7/1", "7//3",
// "-1") to a 0-based vertex index.
func vertexIndex(tok string, vertexCount int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	idx, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(err, "bad face corner %q", tok)
	}
	switch {
	case idx > 0 && idx <= vertexCount:
		return idx - 1, nil
	case idx < 0 && -idx <= vertexCount:
		return vertexCount + idx, nil
	default:
		return 0, errors.Errorf("face corner %d outside vertex list of %d", idx, vertexCount)
	}
}
