package mcdatagen

import (
	"bytes"
	"fmt"
)

// LangLine is one line of a .lang localization file.
type LangLine struct {
	kind  langKind
	key   string
	value string
}

type langKind uint8

const (
	langBlank langKind = iota
	langHeader
	langComment
	langEntry
)

func HeaderLine(header string) LangLine   { return LangLine{kind: langHeader, value: header} }
func CommentLine(comment string) LangLine { return LangLine{kind: langComment, value: comment} }
func BlankLine() LangLine                 { return LangLine{kind: langBlank} }

// EntryLine maps a translation key to its localized text.
func EntryLine(key, localization string) LangLine {
	return LangLine{kind: langEntry, key: key, value: localization}
}

// TileLine is shorthand for the tile.<registryName>.name key.
func TileLine(registryName, localization string) LangLine {
	return EntryLine(fmt.Sprintf("tile.%s.name", registryName), localization)
}

// ItemLine is shorthand for the item.<registryName>.name key.
func ItemLine(registryName, localization string) LangLine {
	return EntryLine(fmt.Sprintf("item.%s.name", registryName), localization)
}

// EntityLine is shorthand for the entity.<registryName>.name key.
func EntityLine(registryName, localization string) LangLine {
	return EntryLine(fmt.Sprintf("entity.%s.name", registryName), localization)
}

func (l LangLine) String() string {
	switch l.kind {
	case langHeader:
		return "## " + l.value
	case langComment:
		return "# " + l.value
	case langEntry:
		return l.key + "=" + l.value
	}
	return ""
}

func (l LangLine) validate() error {
	if l.kind == langEntry && l.key == "" {
		return invalidf("lang entry %q has an empty key", l.value)
	}
	return nil
}

// Lang accumulates the lines of a localization file in order.
type Lang struct {
	lines []LangLine
}

func (l *Lang) Add(lines ...LangLine) *Lang {
	l.lines = append(l.lines, lines...)
	return l
}

func (l *Lang) Header(header string) *Lang   { return l.Add(HeaderLine(header)) }
func (l *Lang) Comment(comment string) *Lang { return l.Add(CommentLine(comment)) }
func (l *Lang) Blank() *Lang                 { return l.Add(BlankLine()) }

func (l *Lang) Entry(key, localization string) *Lang {
	return l.Add(EntryLine(key, localization))
}

func (l *Lang) Tile(registryName, localization string) *Lang {
	return l.Add(TileLine(registryName, localization))
}

func (l *Lang) Item(registryName, localization string) *Lang {
	return l.Add(ItemLine(registryName, localization))
}

func (l *Lang) Entity(registryName, localization string) *Lang {
	return l.Add(EntityLine(registryName, localization))
}

// Bytes renders the file, one line per entry, each terminated by a newline.
func (l *Lang) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range l.lines {
		if err := line.validate(); err != nil {
			return nil, err
		}
		buf.WriteString(line.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// File renders the lang file for locale at lang/<locale>.lang.
func (l *Lang) File(locale string) (*File, error) {
	if locale == "" {
		return nil, invalidf("lang locale must not be empty")
	}
	b, err := l.Bytes()
	if err != nil {
		return nil, err
	}
	return &File{RelativePath: langPath(locale), Data: b}, nil
}

func langPath(locale string) string {
	return fmt.Sprintf("lang/%s.lang", locale)
}

// LangJenny is a [ManyToOne] jenny that renders all of its input lines, in
// order, into the lang file for Locale.
type LangJenny struct {
	Locale string
}

func (j LangJenny) JennyName() string {
	return "LangJenny"
}

func (j LangJenny) Generate(lines ...LangLine) (*File, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	return new(Lang).Add(lines...).File(j.Locale)
}
