package mcdatagen

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

type stairsInput struct {
	name    string
	texture string
}

type stairsJenny struct{}

func (stairsJenny) JennyName() string { return "StairsJenny" }

func (stairsJenny) Generate(in stairsInput) (*File, error) {
	if in.texture == "" {
		return nil, nil
	}
	return Stairs(in.name, SingleTexture(in.texture))
}

type slabJenny struct{}

func (slabJenny) JennyName() string { return "SlabJenny" }

func (slabJenny) Generate(in stairsInput) (Files, error) {
	return Slab(in.name, SingleTexture(in.texture), in.name+"_block")
}

func TestJennyListGenerate(t *testing.T) {
	is := is.New(t)
	jl := JennyListWithNamer(func(in stairsInput) string { return in.name })
	jl.AppendOneToOne(stairsJenny{})
	jl.AppendOneToMany(AdaptOneToMany[stairsInput, stairsInput](slabJenny{}, func(in stairsInput) stairsInput {
		in.name += "_slab"
		return in
	}))
	jl.AppendManyToOne(AdaptManyToOne[stairsInput, LangLine](LangJenny{Locale: "en_us"}, func(in stairsInput) LangLine {
		return TileLine(in.name, strings.ToUpper(in.name))
	}))
	jl.AddPostprocessors(AssetsRoot("mymod"))

	fl, err := jl.Generate([]stairsInput{{"stone", "blocks/stone"}, {"dirt", "blocks/dirt"}})
	is.NoErr(err)

	var paths []string
	for _, f := range fl {
		paths = append(paths, f.RelativePath)
	}
	is.Equal(paths, []string{
		"assets/mymod/blockstates/dirt.json",
		"assets/mymod/blockstates/double_slab/dirt_slab.json",
		"assets/mymod/blockstates/double_slab/stone_slab.json",
		"assets/mymod/blockstates/slab/dirt_slab.json",
		"assets/mymod/blockstates/slab/stone_slab.json",
		"assets/mymod/blockstates/stone.json",
		"assets/mymod/lang/en_us.lang",
	})
	is.Equal(jennystack(fl[0].From), "StairsJenny")
	is.Equal(jennystack(fl[6].From), "LangJenny")
}

func TestJennyListNoOpAndErrors(t *testing.T) {
	is := is.New(t)
	jl := JennyListWithNamer(func(in stairsInput) string { return in.name })
	jl.AppendOneToOne(stairsJenny{}, AdaptOneToOne[stairsInput, stairsInput](stairsJenny{}, func(in stairsInput) stairsInput {
		in.name = "copy_" + in.name
		return in
	}))

	fl, err := jl.Generate([]stairsInput{{name: "skipped"}})
	is.NoErr(err)
	is.Equal(len(fl), 0)

	jl.AppendOneToMany(slabJenny{})
	jl.AppendOneToMany(slabJenny{})
	_, err = jl.Generate([]stairsInput{{"stone", "blocks/stone"}})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), `for input "stone"`))
	is.True(strings.Contains(err.Error(), `already created for "SlabJenny (stone)"`))
}

func TestFilterOneToOne(t *testing.T) {
	is := is.New(t)
	jl := JennyListWithNamer(func(in stairsInput) string { return in.name })
	jl.AppendOneToOne(FilterOneToOne[stairsInput](stairsJenny{}, func(in stairsInput) bool {
		return in.name != "dirt"
	}))
	jl.AppendManyToOne(AdaptManyToOne[stairsInput, LangLine](LangJenny{Locale: "en_us"}, func(in stairsInput) LangLine {
		return TileLine(in.name, in.name)
	}))

	fl, err := jl.Generate([]stairsInput{{"stone", "blocks/stone"}, {"dirt", "blocks/dirt"}})
	is.NoErr(err)
	is.Equal(len(fl), 2)
	is.Equal(fl[0].RelativePath, "blockstates/stone.json")
	is.Equal(fl[1].RelativePath, "lang/en_us.lang")
	is.Equal(string(fl[1].Data), "tile.stone.name=stone\ntile.dirt.name=dirt\n")
}

func TestJennyListAppendPanicsOnInvalidJenny(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	new(JennyList[stairsInput]).Append(namedOnly{})
}

type namedOnly struct{}

func (namedOnly) JennyName() string { return "namedOnly" }

func TestJennyListNestingAndErrors(t *testing.T) {
	is := is.New(t)
	jl := new(JennyList[stairsInput])
	jl.AppendManyToMany(jl2())
	fl, err := jl.Generate([]stairsInput{{"a", "t"}})
	is.NoErr(err)
	is.Equal(len(fl), 1)
	is.Equal(jennystack(fl[0].From), "JennyList[stairsInput]:StairsJenny")

	bad := new(JennyList[Blockstate])
	bad.AppendOneToOne(blockstateFileJenny{})
	_, err = bad.Generate([]Blockstate{{}})
	is.True(errors.Is(err, ErrInvalidArgument))
}

func jl2() *JennyList[stairsInput] {
	inner := new(JennyList[stairsInput])
	inner.AppendOneToOne(stairsJenny{})
	return inner
}

type blockstateFileJenny struct{}

func (blockstateFileJenny) JennyName() string { return "BlockstateFileJenny" }

func (blockstateFileJenny) Generate(b Blockstate) (*File, error) {
	return BlockstateFile("bad", b)
}
