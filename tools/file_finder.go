package tools

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecopia-map/svdag_tiler/internal/tiler"
)

type FileFinder interface {
	GetMeshFilesToProcess(opts *tiler.Options) []string
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

func (f *StandardFileFinder) GetMeshFilesToProcess(opts *tiler.Options) []string {
	// If folder processing is not enabled the mesh file is given by the
	// -input flag, otherwise look for obj files in the -input folder,
	// excluding nested folders unless the Recursive flag is set
	if !opts.FolderProcessing {
		return []string{opts.Input}
	}

	return f.getMeshFilesFromInputFolder(opts)
}

func (f *StandardFileFinder) getMeshFilesFromInputFolder(opts *tiler.Options) []string {
	var meshFiles = make([]string, 0)

	baseInfo, _ := os.Stat(opts.Input)
	err := filepath.Walk(
		opts.Input,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && !opts.Recursive && !os.SameFile(info, baseInfo) {
				return filepath.SkipDir
			}
			if strings.ToLower(filepath.Ext(info.Name())) == ".obj" {
				meshFiles = append(meshFiles, path)
			}
			return nil
		},
	)

	if err != nil {
		log.Fatal(err)
	}

	return meshFiles
}
