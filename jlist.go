package mcdatagen

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// JennyList runs an ordered set of jennies over a batch of inputs and
// collects everything they produce in one [FS]. JennyList is itself a
// [ManyToMany], so lists nest.
//
// All files from all member jennies share one path namespace: two jennies
// claiming the same path is an error, reported with the jenny stack and the
// input that produced each file. Postprocessors such as [AssetsRoot] run on
// every file, in the order they were added, before it is collected.
type JennyList[Input any] struct {
	mu      sync.RWMutex
	jennies []NamedJenny
	post    []FileMapper

	// namer, if non-nil, names an input in errors and file owners.
	namer func(Input) string
}

// JennyListWithNamer creates a JennyList that names each input with namer,
// for example by its registry name, when reporting errors.
func JennyListWithNamer[Input any](namer func(Input) string) *JennyList[Input] {
	return &JennyList[Input]{namer: namer}
}

func (js *JennyList[Input]) JennyName() string {
	return fmt.Sprintf("JennyList[%s]", reflect.TypeOf(new(Input)).Elem().Name())
}

func (js *JennyList[Input]) inputName(in Input) string {
	if js.namer == nil {
		return ""
	}
	return js.namer(in)
}

// GenerateFS runs every jenny over objs and returns the resulting FS. Errors
// from every jenny and input are collected; if there are any, no FS is
// returned.
func (js *JennyList[Input]) GenerateFS(objs []Input) (*FS, error) {
	js.mu.RLock()
	defer js.mu.RUnlock()

	out := NewFS()
	var result *multierror.Error
	perInput := func(j NamedJenny, in Input, fl Files, err error) {
		name := js.inputName(in)
		if err = js.collect(out, j, name, fl, err); err != nil && name != "" {
			err = fmt.Errorf("%w for input %q", err, name)
		}
		result = multierror.Append(result, err)
	}

	for _, j := range js.jennies {
		switch jenny := j.(type) {
		case OneToOne[Input]:
			for _, in := range objs {
				f, err := jenny.Generate(in)
				perInput(jenny, in, single(f), err)
			}
		case OneToMany[Input]:
			for _, in := range objs {
				fl, err := jenny.Generate(in)
				perInput(jenny, in, fl, err)
			}
		case ManyToOne[Input]:
			f, err := jenny.Generate(objs...)
			result = multierror.Append(result, js.collect(out, jenny, "", single(f), err))
		case ManyToMany[Input]:
			fl, err := jenny.Generate(objs)
			result = multierror.Append(result, js.collect(out, jenny, "", fl, err))
		default:
			panic("unreachable")
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, multierror.Flatten(err)
	}
	return out, nil
}

// collect records j at the bottom of each file's jenny stack, runs the
// postprocessors and adds the files to out.
func (js *JennyList[Input]) collect(out *FS, j NamedJenny, input string, fl Files, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", j.JennyName(), err)
	}
	if len(fl) == 0 {
		return nil
	}
	if err := fl.Validate(); err != nil {
		return fmt.Errorf("%s returned invalid files: %w", j.JennyName(), err)
	}

	for i := range fl {
		f := fl[i]
		f.From = append([]NamedJenny{j}, f.From...)
		for _, post := range js.post {
			pf, err := post(f)
			if err != nil {
				return fmt.Errorf("postprocessing %s from %s: %w", f.RelativePath, jennystack(f.From), err)
			}
			f = pf
		}
		fl[i] = f
	}

	owner := jennystack(fl[0].From)
	if input != "" {
		owner += " (" + input + ")"
	}
	return out.addValidated(owner, fl...)
}

func single(f *File) Files {
	if !f.Exists() {
		return nil
	}
	return Files{*f}
}

// Generate is GenerateFS, returning the files sorted by path.
func (js *JennyList[Input]) Generate(objs []Input) (Files, error) {
	jfs, err := js.GenerateFS(objs)
	if err != nil {
		return nil, err
	}
	return jfs.AsFiles(), nil
}

func named[J NamedJenny](jennies ...J) []NamedJenny {
	nl := make([]NamedJenny, len(jennies))
	for i, j := range jennies {
		nl[i] = j
	}
	return nl
}

func (js *JennyList[Input]) append(nl []NamedJenny) {
	js.mu.Lock()
	js.jennies = append(js.jennies, nl...)
	js.mu.Unlock()
}

// Append adds jennies to the end of the list; they run in the order they
// were appended. Each must also implement [OneToOne], [OneToMany],
// [ManyToOne] or [ManyToMany], or Append panics. The typed Append* methods
// check this at compile time.
func (js *JennyList[Input]) Append(jennies ...Jenny[Input]) {
	for _, j := range jennies {
		switch j.(type) {
		case OneToOne[Input], OneToMany[Input], ManyToOne[Input], ManyToMany[Input]:
		default:
			panic(fmt.Sprintf("%T is not a valid Jenny, must implement (OneToOne | OneToMany | ManyToOne | ManyToMany)", j))
		}
	}
	js.append(named(jennies...))
}

func (js *JennyList[Input]) AppendOneToOne(jennies ...OneToOne[Input]) {
	js.append(named(jennies...))
}

func (js *JennyList[Input]) AppendManyToOne(jennies ...ManyToOne[Input]) {
	js.append(named(jennies...))
}

func (js *JennyList[Input]) AppendOneToMany(jennies ...OneToMany[Input]) {
	js.append(named(jennies...))
}

func (js *JennyList[Input]) AppendManyToMany(jennies ...ManyToMany[Input]) {
	js.append(named(jennies...))
}

// AddPostprocessors appends fn to the postprocessors run on every file.
func (js *JennyList[Input]) AddPostprocessors(fn ...FileMapper) {
	js.mu.Lock()
	js.post = append(js.post, fn...)
	js.mu.Unlock()
}
