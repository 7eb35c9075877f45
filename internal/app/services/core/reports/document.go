package reports

// Layout constants shared by the composer and the renderer. Page geometry
// is in points on an A4 portrait page.
const (
	HeaderImageHeight = 70
	FooterImageHeight = 120
	ContentWidth      = 515

	GallerySquareSide = 220
	GalleryImageSide  = 215
	GalleryMaxImages  = 4
)

type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Document is the renderer-independent form of one report: an ordered list
// of layout blocks plus the metadata the rendering engine needs. Keeping
// the composition separate from the PDF engine lets the layout logic be
// tested without fonts or graphics.
type Document struct {
	Title     string
	Language  string
	Direction Direction
	FileName  string
	Blocks    []Block
}

type Block interface {
	isBlock()
}

// Heading is the centered document title on the first page.
type Heading struct {
	Text string
}

// TopBanner marks where the first-page banner graphic goes. The renderer
// skips it when the graphic asset is unavailable.
type TopBanner struct{}

type PageBreak struct{}

// Divider is a thin horizontal rule across the content width.
type Divider struct{}

// Pair is one "label: value" cell. Value is always printable; absent form
// values arrive as the "-" placeholder.
type Pair struct {
	Label string
	Value string
}

// KeyValueBox is a titled box of pair rows, one or two pairs per row.
type KeyValueBox struct {
	Title string
	Rows  [][]Pair
}

// TableBox is a titled table with a header row. Widths holds one column
// width in points per header; zero means share the leftover space.
type TableBox struct {
	Title   string
	Headers []string
	Widths  []float64
	Rows    [][]string
}

// TotalLine is the right-aligned grand total under the service tables.
type TotalLine struct {
	Label string
	Value string
}

// NoteBox is a titled text block. Boxed notes draw the soft table border,
// plain ones are a bare title over running text.
type NoteBox struct {
	Title string
	Text  string
	Boxed bool
}

// GalleryBox holds the square-cropped uploaded images, laid out two per
// row, optionally followed by the bottom banner. The whole box stays on
// one page.
type GalleryBox struct {
	Title            string
	Images           [][]byte
	WithBottomBanner bool
}

func (Heading) isBlock()     {}
func (TopBanner) isBlock()   {}
func (PageBreak) isBlock()   {}
func (Divider) isBlock()     {}
func (KeyValueBox) isBlock() {}
func (TableBox) isBlock()    {}
func (TotalLine) isBlock()   {}
func (NoteBox) isBlock()     {}
func (GalleryBox) isBlock()  {}
