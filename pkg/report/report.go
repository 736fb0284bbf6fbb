// Package report assembles the VibeLux system architecture report and
// renders it as a standalone HTML file or a paginated PDF.
package report

import (
	"time"

	"github.com/google/uuid"
)

// BlockKind discriminates the content block variants.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindParagraph
	KindTable
	KindStats
)

// Stat is one headline figure on a stats row.
type Stat struct {
	Value string
	Label string
}

// Table is a header row plus body rows. Widths are relative column weights;
// when empty, columns share the width evenly.
type Table struct {
	Header []string
	Rows   [][]string
	Widths []float64
}

// Block is one unit of section content.
type Block struct {
	Kind  BlockKind
	Text  string // heading or paragraph text
	Table *Table
	Stats []Stat
}

// Section is a titled group of blocks. Sections number sequentially in the
// table of contents.
type Section struct {
	Title  string
	Blocks []Block
}

// Document is a complete report.
type Document struct {
	ID        uuid.UUID
	Title     string
	Subtitle  string
	Generated time.Time
	Sections  []Section
}

// NewDocument stamps a fresh document with an ID and generation time.
func NewDocument(title, subtitle string) *Document {
	return &Document{
		ID:        uuid.New(),
		Title:     title,
		Subtitle:  subtitle,
		Generated: time.Now().UTC(),
	}
}

func heading(text string) Block   { return Block{Kind: KindHeading, Text: text} }
func paragraph(text string) Block { return Block{Kind: KindParagraph, Text: text} }

func table(header []string, rows ...[]string) Block {
	return Block{Kind: KindTable, Table: &Table{Header: header, Rows: rows}}
}

func stats(pairs ...Stat) Block { return Block{Kind: KindStats, Stats: pairs} }
