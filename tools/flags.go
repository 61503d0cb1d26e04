package tools

import (
	"flag"
	"log"
)

const (
	CommandBuild    = "build"
	CommandMerge    = "merge"
	CommandSubtract = "subtract"
	CommandSdf      = "sdf"
	CommandTrace    = "trace"
	CommandRender   = "render"
	CommandVerify   = "verify"
	CommandInfo     = "info"
)

type FlagsGlobal struct {
	Help    *bool `json:"help"`
	Version *bool `json:"version"`
}

type BuildFlags struct {
	Input    *string `json:"input"`
	Output   *string `json:"output"`
	Depth    *int    `json:"depth"`
	ZOffset  *float64
	Overlap  *string
	Compress *bool
	Profile  *string
}

type FlagsForCommandBuild struct {
	BuildFlags
	FolderProcessing          *bool
	RecursiveFolderProcessing *bool
	Silent                    *bool
	LogTimestamp              *bool
}

type FlagsForCommandMerge struct {
	InputA     *string `json:"a"`
	InputB     *string `json:"b"`
	Output     *string `json:"output"`
	Overwrite  *bool
	NoRecomp   *bool
	Compress   *bool
	Subtract   bool
}

type FlagsForCommandSdf struct {
	Shape    *string `json:"shape"`
	Depth    *int    `json:"depth"`
	Output   *string `json:"output"`
	Compress *bool
}

type FlagsForCommandTrace struct {
	Input    *string `json:"input"`
	Origin   *string
	Dir      *string
	MaxDist  *float64
	MaxDepth *int
	Corner   *string
	Size     *float64
}

type FlagsForCommandRender struct {
	Input    *string `json:"input"`
	Output   *string `json:"output"`
	Width    *int
	Height   *int
	Eye      *string
	Look     *string
	MaxDist  *float64
	MaxDepth *int
	Corner   *string
	Size     *float64
}

type FlagsForCommandInspect struct {
	Input  *string `json:"input"`
	Depth  *int
	Corner *string
	Size   *float64
}

func ParseFlagsGlobal() FlagsGlobal {
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	// glog owns -v on the global FlagSet, so version has no shorthand
	version := defineBoolFlag("version", "", false, "Displays the version of svdag-tiler.")

	flag.Parse()

	return FlagsGlobal{
		Help:    help,
		Version: version,
	}
}

func ParseFlagsForCommandBuild(args []string) FlagsForCommandBuild {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-build", flag.ExitOnError)

	input := defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input mesh file/folder (Wavefront OBJ).")
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output arena file, or folder in folder mode.")
	depth := defineIntFlagCommand(flagCommand, "depth", "d", 0, "Octree depth of the build, between 1 and 31.")
	zOffset := defineFloat64FlagCommand(flagCommand, "zoffset", "z", 0, "Vertical offset to apply to mesh vertices before voxelization.")
	overlap := defineStringFlagCommand(flagCommand, "overlap", "", "", "Overlap test to use, 'BOX' or 'SAT'. BOX is the cheap bounding box pre-cull, SAT the exact separating axis test.")
	compress := defineBoolFlagCommand(flagCommand, "compress", "c", false, "Wraps the output arena in a zstd frame.")
	profile := defineStringFlagCommand(flagCommand, "profile", "p", "", "Optional YAML build profile pre-seeding depth, overlap and compression.")
	folderProcessing := defineBoolFlagCommand(flagCommand, "folder", "f", false, "Enables processing of all obj files from input folder. Input must be a folder if specified.")
	recursiveFolderProcessing := defineBoolFlagCommand(flagCommand, "recursive", "r", false, "Enables recursive lookup for all .obj files inside the subfolders.")
	silent := defineBoolFlagCommand(flagCommand, "silent", "s", false, "Suppresses console messages.")
	logTimestamp := defineBoolFlagCommand(flagCommand, "timestamp", "t", false, "Adds timestamp to console messages.")

	flagCommand.Parse(args)

	return FlagsForCommandBuild{
		BuildFlags: BuildFlags{
			Input:    input,
			Output:   output,
			Depth:    depth,
			ZOffset:  zOffset,
			Overlap:  overlap,
			Compress: compress,
			Profile:  profile,
		},
		FolderProcessing:          folderProcessing,
		RecursiveFolderProcessing: recursiveFolderProcessing,
		Silent:                    silent,
		LogTimestamp:              logTimestamp,
	}
}

func parseFlagsForMergeLike(name string, args []string, subtract bool) FlagsForCommandMerge {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet(name, flag.ExitOnError)

	inputA := defineStringFlagCommand(flagCommand, "a", "", "", "Specifies the first input arena file.")
	inputB := defineStringFlagCommand(flagCommand, "b", "", "", "Specifies the second input arena file.")
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output arena file.")
	noRecomp := defineBoolFlagCommand(flagCommand, "no-recompress", "", false, "Skips deduplication of the combined arena.")
	compress := defineBoolFlagCommand(flagCommand, "compress", "c", false, "Wraps the output arena in a zstd frame.")

	overwrite := new(bool)
	if !subtract {
		overwrite = defineBoolFlagCommand(flagCommand, "overwrite", "w", false, "Makes the second arena win where the two solids overlap.")
	}

	flagCommand.Parse(args)

	return FlagsForCommandMerge{
		InputA:    inputA,
		InputB:    inputB,
		Output:    output,
		Overwrite: overwrite,
		NoRecomp:  noRecomp,
		Compress:  compress,
		Subtract:  subtract,
	}
}

func ParseFlagsForCommandMerge(args []string) FlagsForCommandMerge {
	return parseFlagsForMergeLike("command-merge", args, false)
}

func ParseFlagsForCommandSubtract(args []string) FlagsForCommandMerge {
	return parseFlagsForMergeLike("command-subtract", args, true)
}

func ParseFlagsForCommandSdf(args []string) FlagsForCommandSdf {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-sdf", flag.ExitOnError)

	shape := defineStringFlagCommand(flagCommand, "shape", "", "sphere", "Shape to synthesize: 'sphere', 'box' or 'halfspace'.")
	depth := defineIntFlagCommand(flagCommand, "depth", "d", 6, "Octree depth of the synthesized arena, between 1 and 31.")
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output arena file.")
	compress := defineBoolFlagCommand(flagCommand, "compress", "c", false, "Wraps the output arena in a zstd frame.")

	flagCommand.Parse(args)

	return FlagsForCommandSdf{
		Shape:    shape,
		Depth:    depth,
		Output:   output,
		Compress: compress,
	}
}

func ParseFlagsForCommandTrace(args []string) FlagsForCommandTrace {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-trace", flag.ExitOnError)

	input := defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input arena file.")
	origin := defineStringFlagCommand(flagCommand, "origin", "", "0.5,0.5,-1", "Ray origin as x,y,z.")
	dir := defineStringFlagCommand(flagCommand, "dir", "", "0,0,1", "Ray direction as x,y,z. Normalized internally.")
	maxDist := defineFloat64FlagCommand(flagCommand, "max-dist", "", 1e9, "Maximum hit distance.")
	maxDepth := defineIntFlagCommand(flagCommand, "max-depth", "", 31, "Maximum traversal depth.")
	corner := defineStringFlagCommand(flagCommand, "corner", "", "0,0,0", "Minimum corner of the arena cube as x,y,z.")
	size := defineFloat64FlagCommand(flagCommand, "size", "", 1, "Edge length of the arena cube.")

	flagCommand.Parse(args)

	return FlagsForCommandTrace{
		Input:    input,
		Origin:   origin,
		Dir:      dir,
		MaxDist:  maxDist,
		MaxDepth: maxDepth,
		Corner:   corner,
		Size:     size,
	}
}

func ParseFlagsForCommandRender(args []string) FlagsForCommandRender {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-render", flag.ExitOnError)

	input := defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input arena file.")
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output PGM depth map.")
	width := defineIntFlagCommand(flagCommand, "width", "", 512, "Image width in pixels.")
	height := defineIntFlagCommand(flagCommand, "height", "", 512, "Image height in pixels.")
	eye := defineStringFlagCommand(flagCommand, "eye", "", "1.8,1.2,-0.8", "Camera position as x,y,z.")
	look := defineStringFlagCommand(flagCommand, "look", "", "0.5,0.5,0.5", "Camera target as x,y,z.")
	maxDist := defineFloat64FlagCommand(flagCommand, "max-dist", "", 1e9, "Maximum hit distance.")
	maxDepth := defineIntFlagCommand(flagCommand, "max-depth", "", 31, "Maximum traversal depth.")
	corner := defineStringFlagCommand(flagCommand, "corner", "", "0,0,0", "Minimum corner of the arena cube as x,y,z.")
	size := defineFloat64FlagCommand(flagCommand, "size", "", 1, "Edge length of the arena cube.")

	flagCommand.Parse(args)

	return FlagsForCommandRender{
		Input:    input,
		Output:   output,
		Width:    width,
		Height:   height,
		Eye:      eye,
		Look:     look,
		MaxDist:  maxDist,
		MaxDepth: maxDepth,
		Corner:   corner,
		Size:     size,
	}
}

func parseFlagsForInspectLike(name string, args []string) FlagsForCommandInspect {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet(name, flag.ExitOnError)

	input := defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input arena file.")
	depth := defineIntFlagCommand(flagCommand, "depth", "d", 10, "Voxel grid depth used for occupancy statistics.")
	corner := defineStringFlagCommand(flagCommand, "corner", "", "0,0,0", "Minimum corner of the arena cube as x,y,z.")
	size := defineFloat64FlagCommand(flagCommand, "size", "", 1, "Edge length of the arena cube.")

	flagCommand.Parse(args)

	return FlagsForCommandInspect{
		Input:  input,
		Depth:  depth,
		Corner: corner,
		Size:   size,
	}
}

func ParseFlagsForCommandVerify(args []string) FlagsForCommandInspect {
	return parseFlagsForInspectLike("command-verify", args)
}

func ParseFlagsForCommandInfo(args []string) FlagsForCommandInspect {
	return parseFlagsForInspectLike("command-info", args)
}

func defineStringFlag(name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flag.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineIntFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	flagCommand.IntVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineFloat64FlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flagCommand.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
