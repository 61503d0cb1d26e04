package tiler

import "strings"

type OverlapAlgorithm string

const (
	// Box is the documented AABB pre-cull between triangle bounds and cell.
	Box OverlapAlgorithm = "BOX"

	// SAT runs the full separating-axis triangle/box test. Slower,
	// tighter shells.
	SAT OverlapAlgorithm = "SAT"
)

func ParseOverlapAlgorithm(value string) OverlapAlgorithm {
	switch strings.Trim(strings.ToUpper(value), " ") {
	case "BOX":
		return Box
	case "SAT":
		return SAT
	}
	return ""
}

// Contains the options shared by the svdag-tiler commands.
type Options struct {
	Input            string           // Input mesh file/folder or arena file
	Output           string           // Output arena path or folder
	Depth            int              // Octree depth of the build
	ZOffset          float64          // Vertical offset applied to mesh vertices
	Overlap          OverlapAlgorithm // Overlap test used while subdividing
	Compress         bool             // Wrap output arenas in a zstd frame
	FolderProcessing bool             // Process every mesh file in the input folder
	Recursive        bool             // Recursive mesh lookup in subfolders

	Command        string
	MergeOptions   *MergeOptions
	TraceOptions   *TraceOptions
	RenderOptions  *RenderOptions
	InspectOptions *InspectOptions
	SdfOptions     *SdfOptions
}

type MergeOptions struct {
	InputA     string
	InputB     string
	Overwrite  bool // B wins where the two solids overlap
	Recompress bool
}

type TraceOptions struct {
	Origin   [3]float64
	Dir      [3]float64
	MaxDist  float64
	MaxDepth int
	Corner   [3]float64
	Size     float64
}

type RenderOptions struct {
	Width    int
	Height   int
	Eye      [3]float64
	Look     [3]float64
	MaxDist  float64
	MaxDepth int
	Corner   [3]float64
	Size     float64
}

// InspectOptions feed the verify and info commands.
type InspectOptions struct {
	Depth  int
	Corner [3]float64
	Size   float64
}

type SdfOptions struct {
	Shape string // sphere, box or halfspace
}

func (opt *Options) Copy() *Options {
	newOpt := *opt
	if opt.MergeOptions != nil {
		mergeOpt := *opt.MergeOptions
		newOpt.MergeOptions = &mergeOpt
	}
	if opt.TraceOptions != nil {
		traceOpt := *opt.TraceOptions
		newOpt.TraceOptions = &traceOpt
	}
	if opt.RenderOptions != nil {
		renderOpt := *opt.RenderOptions
		newOpt.RenderOptions = &renderOpt
	}
	if opt.InspectOptions != nil {
		inspectOpt := *opt.InspectOptions
		newOpt.InspectOptions = &inspectOpt
	}
	if opt.SdfOptions != nil {
		sdfOpt := *opt.SdfOptions
		newOpt.SdfOptions = &sdfOpt
	}
	return &newOpt
}
