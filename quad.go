package prim

// QuadVertexCount is the number of vertices Expand emits per instance.
const QuadVertexCount = 6

// QuadCorners are the unit-square fractions of the two triangles covering
// a primitive's bounding rectangle.
var QuadCorners = [QuadVertexCount]Vec2{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
}

// Vertex is one expanded quad vertex. Position is in the instance's working
// space; Corner is the unit-square fraction it was generated from. Every
// other attribute is the instance itself, identical for all six vertices.
type Vertex struct {
	Position Vec2
	Corner   Vec2
	Instance Instance
}

// Expand turns an instance into the six vertices of its bounding quad.
// A zero-area rectangle yields a degenerate quad, which is not an error: it
// simply covers no samples.
func Expand(inst Instance) [QuadVertexCount]Vertex {
	var out [QuadVertexCount]Vertex
	for i, c := range QuadCorners {
		out[i] = Vertex{
			Position: inst.Rect.At(c),
			Corner:   c,
			Instance: inst,
		}
	}
	return out
}

// Corner returns the quad fraction of a working-space position, i.e. the
// value the rasterizer would interpolate between the expanded vertices.
func (inst Instance) Corner(p Vec2) Vec2 {
	return inst.Rect.Local(p)
}
