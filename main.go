/*
 * This file is part of the SVDAG Tiler distribution.
 * Copyright (c) 2025 Ecopia Map
 *
 * This program is free software; you can redistribute it and/or modify it
 * under the terms of the GNU Lesser General Public License Version 3 as
 * published by the Free Software Foundation;
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program. If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ecopia-map/svdag_tiler/internal/tiler"
	"github.com/ecopia-map/svdag_tiler/pkg"
	"github.com/ecopia-map/svdag_tiler/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/ecopia-map/svdag_tiler/tools"
)

const VERSION = "0.3.1"

const logo = `
                 _                   _   _ _
  _____   ____| | __ _  __ _      | |_(_) | ___ _ __
 / __\ \ / / _  |/ _  |/ _  |_____| __| | |/ _ \ '__|
 \__ \\ V / (_| | (_| | (_| |_____| |_| | |  __/ |
 |___/ \_/ \__,_|\__,_|\__, |      \__|_|_|\___|_|
                       |___/  A sparse voxel DAG mesh voxelizer
        Copyright YYYY - Ecopia Map
`

func main() {
	log.SetPrefix("[svdag] ")
	log.SetFlags(log.LUTC | log.Ldate | log.Lmicroseconds | log.Lshortfile)

	flagsGlobal := tools.ParseFlagsGlobal()
	log.Println(tools.FmtJSONString(flagsGlobal))

	args := flag.Args()
	if len(args) == 0 {
		if *flagsGlobal.Help {
			showHelp()
			return
		}
		if *flagsGlobal.Version {
			printVersion()
			return
		}
		log.Fatal("Please specify a subcommand [build|merge|subtract|sdf|trace|render|verify|info] or <input> <output> <depth>.")
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case tools.CommandBuild:
		mainCommandBuild(rest)
	case tools.CommandMerge:
		mainCommandMerge(rest, false)
	case tools.CommandSubtract:
		mainCommandMerge(rest, true)
	case tools.CommandSdf:
		mainCommandSdf(rest)
	case tools.CommandTrace:
		mainCommandTrace(rest)
	case tools.CommandRender:
		mainCommandRender(rest)
	case tools.CommandVerify:
		mainCommandVerify(rest)
	case tools.CommandInfo:
		mainCommandInfo(rest)
	default:
		// positional compatibility form: <input_mesh> <output_arena> <depth>
		if len(args) == 3 {
			mainPositionalBuild(args)
			return
		}
		log.Fatalf("Unrecognized command [%q]. Command must be one of [build|merge|subtract|sdf|trace|render|verify|info]", cmd)
	}
}

func mainPositionalBuild(args []string) {
	depth, err := strconv.Atoi(args[2])
	if err != nil {
		log.Fatalf("Invalid depth [%q]: %v", args[2], err)
	}
	opts := tiler.Options{
		Input:   args[0],
		Output:  args[1],
		Depth:   depth,
		Overlap: tiler.Box,
		Command: tools.CommandBuild,
	}
	runBuild(&opts)
}

func mainCommandBuild(args []string) {
	flags := tools.ParseFlagsForCommandBuild(args)

	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if !*flags.LogTimestamp {
		tools.DisableLoggerTimestamp()
	}

	opts := tiler.Options{
		Input:            *flags.Input,
		Output:           *flags.Output,
		Depth:            *flags.Depth,
		ZOffset:          *flags.ZOffset,
		Overlap:          tiler.ParseOverlapAlgorithm(*flags.Overlap),
		Compress:         *flags.Compress,
		FolderProcessing: *flags.FolderProcessing,
		Recursive:        *flags.RecursiveFolderProcessing,
		Command:          tools.CommandBuild,
	}

	profile, err := tiler.LoadProfile(*flags.Profile)
	if err != nil {
		log.Fatal("Error loading build profile: ", err)
	}
	profile.ApplyTo(&opts)

	if msg, res := validateOptionsForCommandBuild(&opts); !res {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	runBuild(&opts)
}

func runBuild(opts *tiler.Options) {
	err := pkg.NewVoxelizer(tools.NewStandardFileFinder(), std_algorithm_manager.NewAlgorithmManager(opts)).RunVoxelizer(opts)

	if err != nil {
		log.Fatal("Error while voxelizing: ", err)
	} else {
		tools.LogOutput("Voxelization Completed")
	}
}

// Validates the input options provided to the build command checking
// that input exists and depth is in range
func validateOptionsForCommandBuild(opts *tiler.Options) (string, bool) {
	if _, err := os.Stat(opts.Input); os.IsNotExist(err) {
		return "Input file/folder not found", false
	}
	if opts.Output == "" {
		return "Output path not specified", false
	}
	if opts.Depth < 1 || opts.Depth > 31 {
		return "depth must be between 1 and 31", false
	}
	if opts.Overlap == "" {
		return "overlap should be either BOX or SAT", false
	}
	return "", true
}

func mainCommandMerge(args []string, subtract bool) {
	var flags tools.FlagsForCommandMerge
	var command string
	if subtract {
		flags = tools.ParseFlagsForCommandSubtract(args)
		command = tools.CommandSubtract
	} else {
		flags = tools.ParseFlagsForCommandMerge(args)
		command = tools.CommandMerge
	}

	opts := tiler.Options{
		Input:    *flags.InputA,
		Output:   *flags.Output,
		Compress: *flags.Compress,
		Command:  command,
		MergeOptions: &tiler.MergeOptions{
			InputA:     *flags.InputA,
			InputB:     *flags.InputB,
			Overwrite:  *flags.Overwrite,
			Recompress: !*flags.NoRecomp,
		},
	}

	if *flags.InputA == "" || *flags.InputB == "" || *flags.Output == "" {
		log.Fatal("Error parsing input parameters: -a, -b and -output are required")
	}

	if err := pkg.RunMerge(&opts, subtract); err != nil {
		log.Fatal("Error while merging: ", err)
	}
	tools.LogOutput("Merge Completed")
}

func mainCommandSdf(args []string) {
	flags := tools.ParseFlagsForCommandSdf(args)

	opts := tiler.Options{
		Output:   *flags.Output,
		Depth:    *flags.Depth,
		Compress: *flags.Compress,
		Command:  tools.CommandSdf,
		SdfOptions: &tiler.SdfOptions{
			Shape: *flags.Shape,
		},
	}

	if opts.Output == "" {
		log.Fatal("Error parsing input parameters: -output is required")
	}

	if err := pkg.RunSdf(&opts); err != nil {
		log.Fatal("Error while synthesizing: ", err)
	}
	tools.LogOutput("Synthesis Completed")
}

func mainCommandTrace(args []string) {
	flags := tools.ParseFlagsForCommandTrace(args)

	origin := parseVec3OrFail(*flags.Origin, "origin")
	dir := parseVec3OrFail(*flags.Dir, "dir")
	corner := parseVec3OrFail(*flags.Corner, "corner")

	opts := tiler.Options{
		Input:   *flags.Input,
		Command: tools.CommandTrace,
		TraceOptions: &tiler.TraceOptions{
			Origin:   origin,
			Dir:      dir,
			MaxDist:  *flags.MaxDist,
			MaxDepth: *flags.MaxDepth,
			Corner:   corner,
			Size:     *flags.Size,
		},
	}

	if opts.Input == "" {
		log.Fatal("Error parsing input parameters: -input is required")
	}

	if err := pkg.RunTrace(&opts); err != nil {
		log.Fatal("Error while tracing: ", err)
	}
}

func mainCommandRender(args []string) {
	flags := tools.ParseFlagsForCommandRender(args)

	eye := parseVec3OrFail(*flags.Eye, "eye")
	look := parseVec3OrFail(*flags.Look, "look")
	corner := parseVec3OrFail(*flags.Corner, "corner")

	opts := tiler.Options{
		Input:   *flags.Input,
		Output:  *flags.Output,
		Command: tools.CommandRender,
		RenderOptions: &tiler.RenderOptions{
			Width:    *flags.Width,
			Height:   *flags.Height,
			Eye:      eye,
			Look:     look,
			MaxDist:  *flags.MaxDist,
			MaxDepth: *flags.MaxDepth,
			Corner:   corner,
			Size:     *flags.Size,
		},
	}

	if opts.Input == "" || opts.Output == "" {
		log.Fatal("Error parsing input parameters: -input and -output are required")
	}

	if err := pkg.RunRender(&opts); err != nil {
		log.Fatal("Error while rendering: ", err)
	}
	tools.LogOutput("Render Completed")
}

func mainCommandVerify(args []string) {
	flags := tools.ParseFlagsForCommandVerify(args)
	opts := inspectOptions(flags, tools.CommandVerify)

	if err := pkg.RunVerify(opts); err != nil {
		log.Fatal("Error while verifying: ", err)
	}
}

func mainCommandInfo(args []string) {
	flags := tools.ParseFlagsForCommandInfo(args)
	opts := inspectOptions(flags, tools.CommandInfo)

	if err := pkg.RunInfo(opts); err != nil {
		log.Fatal("Error while inspecting: ", err)
	}
}

func inspectOptions(flags tools.FlagsForCommandInspect, command string) *tiler.Options {
	corner := parseVec3OrFail(*flags.Corner, "corner")
	opts := &tiler.Options{
		Input:   *flags.Input,
		Command: command,
		InspectOptions: &tiler.InspectOptions{
			Depth:  *flags.Depth,
			Corner: corner,
			Size:   *flags.Size,
		},
	}
	if opts.Input == "" {
		log.Fatal("Error parsing input parameters: -input is required")
	}
	return opts
}

func parseVec3OrFail(value, name string) [3]float64 {
	v, err := tools.ParseVec3(value)
	if err != nil {
		log.Fatalf("Invalid -%s: %v", name, err)
	}
	return v
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	tools.LogOutput(fmt.Sprintf("%s took %s", name, elapsed))
}

func printLogo() {
	fmt.Println(strings.ReplaceAll(logo, "YYYY", strconv.Itoa(time.Now().Year())))
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("svdag-tiler voxelizes triangle meshes into sparse voxel DAG arenas and edits, traces and inspects them.")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Usage: svdag-tiler <input_mesh> <output_arena> <depth>")
	fmt.Println("   or: svdag-tiler [build|merge|subtract|sdf|trace|render|verify|info] [flags]")
	fmt.Println("")
	fmt.Println("Command line flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
