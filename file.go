package mcdatagen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// File is a single generated file.
type File struct {
	// The relative path to which the generated file should be written.
	RelativePath string

	// Contents of the generated file.
	Data []byte

	// From is the stack of jennies responsible for producing this File.
	// Files built directly through the asset functions have an empty stack.
	From []NamedJenny
}

// Exists reports whether the File has contents. A nil or zero File is
// treated as the no-op output of a jenny.
func (f *File) Exists() bool {
	return f != nil && len(f.Data) > 0
}

// Validate checks that the File has a relative path and contents.
func (f File) Validate() error {
	var result *multierror.Error
	if f.RelativePath == "" {
		result = multierror.Append(result, fmt.Errorf("file has an empty path"))
	} else if filepath.IsAbs(f.RelativePath) {
		result = multierror.Append(result, fmt.Errorf("files must have relative paths, got %s", f.RelativePath))
	}
	if len(f.Data) == 0 {
		result = multierror.Append(result, fmt.Errorf("%s: file has no contents", f.RelativePath))
	}
	return result.ErrorOrNil()
}

// ToFS turns a single File into an FS containing only that file, given an
// owner string.
func (f *File) ToFS(owner string) (*FS, error) {
	wd := NewFS()
	if err := wd.Add(owner, f); err != nil {
		return nil, err
	}
	return wd, nil
}

// Files is a set of File objects. Relative paths within a Files must be
// unique.
type Files []File

// Validate checks every File and that no two share a path.
func (fsl Files) Validate() error {
	var result *multierror.Error
	seen := make(map[string]bool, len(fsl))
	for _, f := range fsl {
		if err := f.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
		if seen[f.RelativePath] {
			result = multierror.Append(result, fmt.Errorf("multiple files have the path %s", f.RelativePath))
		}
		seen[f.RelativePath] = true
	}
	return result.ErrorOrNil()
}

// FileMapper takes a File and transforms it into a new File. Jenny lists run
// FileMappers on every file their jennies produce.
type FileMapper func(File) (File, error)

// AssetsRoot returns a FileMapper that places files under assets/<modid>/,
// the layout the game loads mod and resource pack assets from.
func AssetsRoot(modid string) FileMapper {
	return func(f File) (File, error) {
		if modid == "" {
			return f, fmt.Errorf("assets root requires a mod id")
		}
		f.RelativePath = filepath.ToSlash(filepath.Join("assets", modid, f.RelativePath))
		return f, nil
	}
}

func jennystack(s []NamedJenny) string {
	names := make([]string, len(s))
	for i, j := range s {
		names[i] = j.JennyName()
	}
	return strings.Join(names, ":")
}
