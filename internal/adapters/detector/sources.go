// Package detector picks source file arguments out of a compiler command line.
package detector

import (
	"runtime"
	"slices"
	"strings"
)

// Detector matches arguments against a list of source file extensions.
type Detector struct {
	extensions []string
	foldCase   bool
}

// New creates a Detector for the given extensions.
// Matching ignores case on platforms whose default filesystems do.
func New(extensions []string) *Detector {
	return newDetector(extensions, caseInsensitiveFS(runtime.GOOS))
}

func newDetector(extensions []string, foldCase bool) *Detector {
	exts := slices.Clone(extensions)
	if foldCase {
		for i, ext := range exts {
			exts[i] = strings.ToLower(ext)
		}
	}
	return &Detector{extensions: exts, foldCase: foldCase}
}

// Sources returns the sorted, deduplicated arguments that name source files.
// Arguments are returned exactly as passed.
func (d *Detector) Sources(args []string) []string {
	var files []string
	for _, arg := range args {
		if d.isSource(arg) {
			files = append(files, arg)
		}
	}
	slices.Sort(files)
	return slices.Compact(files)
}

func (d *Detector) isSource(arg string) bool {
	name := arg
	if d.foldCase {
		name = strings.ToLower(name)
	}
	for _, ext := range d.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func caseInsensitiveFS(goos string) bool {
	return goos == "windows" || goos == "darwin"
}
