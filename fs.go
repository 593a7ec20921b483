package mcdatagen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/zip"
	"golang.org/x/sync/errgroup"
)

// FS is an in-memory set of generated files that supports batch-writing its
// contents to the real filesystem, batch-comparing its contents to the real
// filesystem, or packing them into a zip archive.
//
// The normal behavior of a generator is to write files to disk, but in CI the
// behavior should change to verify that what is already on disk is identical
// to what generation produces. FS supports these through [FS.Write] and
// [FS.Verify].
//
// FS is stateless with respect to disk: files left behind by inputs that were
// removed are not noticed.
//
// Files may not be removed once added. If a path conflict occurs when adding
// a new file or merging another FS, an error is returned and nothing from that
// call is added.
type FS struct {
	m  map[string]*fsFile
	mu sync.Mutex
}

type fsFile struct {
	data  []byte
	owner string
	from  []NamedJenny
}

// ShouldExistErr indicates a generated file should exist on disk, but does not.
type ShouldExistErr struct {
	Path string
}

func (e *ShouldExistErr) Error() string {
	return fmt.Sprintf("%s: generated file should exist, but does not", e.Path)
}

// ContentsDifferErr indicates the contents of a file on disk are different
// than those in the FS.
type ContentsDifferErr struct {
	Path string
	Diff string
}

func (e *ContentsDifferErr) Error() string {
	return fmt.Sprintf("%s would have changed:\n\n%s", e.Path, e.Diff)
}

// NewFS creates a new FS, ready for use.
func NewFS() *FS {
	return &FS{
		m: make(map[string]*fsFile),
	}
}

type writeItem struct {
	path     string
	contents []byte
}

// Len returns the number of files in the FS.
func (wd *FS) Len() int {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return len(wd.m)
}

// Get returns the contents of the file at the relative path p.
func (wd *FS) Get(p string) ([]byte, bool) {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	f, ok := wd.m[p]
	if !ok {
		return nil, false
	}
	return f.data, true
}

// AsFiles returns the contents of the FS as Files, sorted by path.
func (wd *FS) AsFiles() Files {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	fl := make(Files, 0, len(wd.m))
	for p, f := range wd.m {
		fl = append(fl, File{RelativePath: p, Data: f.data, From: f.from})
	}
	sort.Slice(fl, func(i, j int) bool {
		return fl[i].RelativePath < fl[j].RelativePath
	})
	return fl
}

// Verify checks the contents of each file against the filesystem. It returns
// an error aggregating a [ShouldExistErr] or [ContentsDifferErr] for every
// file that is missing or differs.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the map. prefix may be an absolute path.
func (wd *FS) Verify(ctx context.Context, prefix string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(12)

	var rmu sync.Mutex
	var result *multierror.Error
	appendResult := func(err error) {
		rmu.Lock()
		result = multierror.Append(result, err)
		rmu.Unlock()
	}

	for _, it := range wd.toSlice() {
		item := it
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ipath := filepath.Join(prefix, item.path)
			ob, err := os.ReadFile(ipath) //nolint:gosec
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					appendResult(&ShouldExistErr{Path: ipath})
					return nil
				}
				return fmt.Errorf("%s: error reading file: %w", ipath, err)
			}
			if dstr := cmp.Diff(string(ob), string(item.contents)); dstr != "" {
				appendResult(&ContentsDifferErr{Path: ipath, Diff: dstr})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("io error while verifying tree: %w", err)
	}

	return result.ErrorOrNil()
}

// Write writes all of the files to their indicated paths, creating parent
// directories as needed. Writes to distinct paths run concurrently; the
// first failure, or ctx being done, stops files not yet started, and files
// already written are left in place.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the map for writing. prefix may be an absolute path.
func (wd *FS) Write(ctx context.Context, prefix string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(12)

	for _, item := range wd.toSlice() {
		it := item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := filepath.Join(prefix, it.path)
			if err := os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
				return fmt.Errorf("%s: failed to ensure parent directory exists: %w", p, err)
			}

			if err := os.WriteFile(p, it.contents, 0o644); err != nil {
				return fmt.Errorf("%s: error while writing file: %w", p, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// WriteZip writes every file into a zip archive on w, in path order, under
// the slash-separated prefix. Entries carry no timestamps so the same FS
// always produces the same archive.
func (wd *FS) WriteZip(w io.Writer, prefix string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()

	zw := zip.NewWriter(w)
	for _, it := range wd.toSlice() {
		name := path.Join(prefix, filepath.ToSlash(it.path))
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("%s: error creating archive entry: %w", name, err)
		}
		if _, err := fw.Write(it.contents); err != nil {
			return fmt.Errorf("%s: error writing archive entry: %w", name, err)
		}
	}
	return zw.Close()
}

func (wd *FS) toSlice() []writeItem {
	sl := make([]writeItem, 0, len(wd.m))
	for k, v := range wd.m {
		sl = append(sl, writeItem{
			path:     k,
			contents: v.data,
		})
	}

	sort.Slice(sl, func(i, j int) bool {
		return sl[i].path < sl[j].path
	})

	return sl
}

// Add adds one or more files to the FS. An error is returned if any of the
// provided files would conflict with a file already added to the FS, or with
// each other; in that case none of them are added.
func (wd *FS) Add(owner string, flist ...*File) error {
	wd.mu.Lock()
	err := wd.add(owner, flist...)
	wd.mu.Unlock()
	return err
}

func (wd *FS) add(owner string, flist ...*File) error {
	var result *multierror.Error
	pending := make(map[string]bool, len(flist))
	for _, f := range flist {
		result = multierror.Append(result, wd.conflicts(owner, f, pending)...)
	}
	if result.ErrorOrNil() != nil {
		return result
	}

	for _, f := range flist {
		wd.m[f.RelativePath] = &fsFile{data: f.Data, owner: owner, from: f.From}
	}
	return nil
}

// conflicts reports why f cannot be added alongside the paths already in wd
// and those pending in the same call, and marks f's path as pending.
func (wd *FS) conflicts(owner string, f *File, pending map[string]bool) []error {
	var errs []error
	if rf, has := wd.m[f.RelativePath]; has {
		errs = append(errs, fmt.Errorf("FS cannot create %s for %q, already created for %q", f.RelativePath, owner, rf.owner))
	} else if pending[f.RelativePath] {
		errs = append(errs, fmt.Errorf("FS cannot create %s for %q more than once", f.RelativePath, owner))
	}
	if filepath.IsAbs(f.RelativePath) {
		errs = append(errs, fmt.Errorf("files added to FS must have relative paths, got %s from %q", f.RelativePath, owner))
	}
	pending[f.RelativePath] = true
	return errs
}

func (wd *FS) addValidated(owner string, flist ...File) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	ptrs := make([]*File, len(flist))
	for i := range flist {
		ptrs[i] = &flist[i]
	}
	return wd.add(owner, ptrs...)
}

// Merge combines all the entries from the provided FS into the callee FS.
// Duplicate paths result in an error, in which case nothing from wd2 is
// added.
func (wd *FS) Merge(wd2 *FS) error {
	if wd2 == nil {
		return nil
	}
	wd2.mu.Lock()
	other := make([]*File, 0, len(wd2.m))
	owners := make([]string, 0, len(wd2.m))
	for k, inf := range wd2.m {
		other = append(other, &File{RelativePath: k, Data: inf.data, From: inf.from})
		owners = append(owners, inf.owner)
	}
	wd2.mu.Unlock()

	wd.mu.Lock()
	defer wd.mu.Unlock()
	var result *multierror.Error
	pending := make(map[string]bool, len(other))
	for i, f := range other {
		result = multierror.Append(result, wd.conflicts(owners[i], f, pending)...)
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	for i, f := range other {
		wd.m[f.RelativePath] = &fsFile{data: f.Data, owner: owners[i], from: f.From}
	}
	return nil
}
