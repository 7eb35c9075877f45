package reports

import (
	"bytes"
	"fmt"
	"intake-report-service/internal/app/services/shared/assets"
	"intake-report-service/internal/pkg/exceptions"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

const (
	pageMarginSide = 20
	boxTitleHeight = 24
	rowHeight      = 22
	textLineHeight = 12
)

// Renderer draws a composed Document onto an A4 page with the cached fonts
// and graphics. One Renderer serves all requests; each Render call builds
// its own gofpdf instance.
type Renderer struct {
	Assets *assets.Cache
	Log    *zap.Logger
}

func NewRenderer(assetCache *assets.Cache, logger *zap.Logger) *Renderer {
	return &Renderer{
		Assets: assetCache,
		Log:    logger,
	}
}

func (r *Renderer) Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(doc.Title, true)

	regular, bold := r.Assets.Font(assets.FontBodyRegular), r.Assets.Font(assets.FontBodyBold)
	if doc.Direction == DirectionRTL {
		regular, bold = r.Assets.Font(assets.FontRTLRegular), r.Assets.Font(assets.FontRTLBold)
	}
	pdf.AddUTF8FontFromBytes("doc", "", regular)
	pdf.AddUTF8FontFromBytes("doc", "B", bold)

	pageWidth, pageHeight := pdf.GetPageSize()
	pdf.SetMargins(pageMarginSide, HeaderImageHeight+16, pageMarginSide)
	pdf.SetAutoPageBreak(true, FooterImageHeight+16)

	r.installBanners(pdf, pageWidth, pageHeight)

	rc := &renderContext{
		pdf:        pdf,
		renderer:   r,
		rtl:        doc.Direction == DirectionRTL,
		pageWidth:  pageWidth,
		pageHeight: pageHeight,
	}

	pdf.AddPage()
	for _, block := range doc.Blocks {
		rc.renderBlock(block)
	}

	if pdf.Err() {
		return nil, exceptions.ErrPDFRender(pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, exceptions.ErrPDFRender(err)
	}
	return buf.Bytes(), nil
}

// installBanners wires the header and footer SVG graphics onto every page.
// A graphic that failed to fetch or parse is skipped; the document is still
// valid without its decoration.
func (r *Renderer) installBanners(pdf *gofpdf.Fpdf, pageWidth, pageHeight float64) {
	var headerSVG, footerSVG *gofpdf.SVGBasicType

	if data := r.Assets.Graphic(assets.GraphicHeader); data != nil {
		if parsed, err := gofpdf.SVGBasicParse(data); err == nil {
			headerSVG = &parsed
		} else {
			r.Log.Warn("header graphic does not parse as svg, skipping", zap.Error(err))
		}
	}
	if data := r.Assets.Graphic(assets.GraphicFooter); data != nil {
		if parsed, err := gofpdf.SVGBasicParse(data); err == nil {
			footerSVG = &parsed
		} else {
			r.Log.Warn("footer graphic does not parse as svg, skipping", zap.Error(err))
		}
	}

	pdf.SetHeaderFuncMode(func() {
		if headerSVG == nil || headerSVG.Wd <= 0 {
			return
		}
		pdf.SetXY(0, 0)
		pdf.SVGBasicWrite(headerSVG, pageWidth/headerSVG.Wd)
	}, true)

	pdf.SetFooterFunc(func() {
		if footerSVG == nil || footerSVG.Wd <= 0 {
			return
		}
		pdf.SetXY(0, pageHeight-FooterImageHeight)
		pdf.SVGBasicWrite(footerSVG, pageWidth/footerSVG.Wd)
	})
}

type renderContext struct {
	pdf        *gofpdf.Fpdf
	renderer   *Renderer
	rtl        bool
	pageWidth  float64
	pageHeight float64
	imageSeq   int
}

func (rc *renderContext) renderBlock(block Block) {
	switch b := block.(type) {
	case Heading:
		rc.heading(b)
	case TopBanner:
		rc.contentBanner(assets.GraphicTopBanner, 6, 10)
	case PageBreak:
		rc.pdf.AddPage()
	case Divider:
		rc.divider()
	case KeyValueBox:
		rc.keyValueBox(b)
	case TableBox:
		rc.tableBox(b)
	case TotalLine:
		rc.totalLine(b)
	case NoteBox:
		rc.noteBox(b)
	case GalleryBox:
		rc.galleryBox(b)
	}
}

func (rc *renderContext) align() string {
	if rc.rtl {
		return "R"
	}
	return "L"
}

func (rc *renderContext) heading(b Heading) {
	style := "B"
	if rc.rtl {
		// Underlined title marks the Arabic rendition, matching the
		// form's own preview styling.
		style = "BU"
	}
	rc.pdf.SetFont("doc", style, 16)
	rc.pdf.SetTextColor(0, 0, 0)
	rc.pdf.CellFormat(ContentWidth, 24, b.Text, "", 1, "C", false, 0, "")
	rc.pdf.Ln(6)
}

// contentBanner draws one of the PNG banner graphics across the content
// width, preserving its aspect ratio. Missing banners draw nothing.
func (rc *renderContext) contentBanner(graphicName string, marginTop, marginBottom float64) {
	data := rc.renderer.Assets.Graphic(graphicName)
	if data == nil {
		return
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	info := rc.pdf.RegisterImageOptionsReader(graphicName, opts, bytes.NewReader(data))
	if info == nil || info.Width() <= 0 {
		return
	}

	x := (rc.pageWidth - ContentWidth) / 2
	y := rc.pdf.GetY() + marginTop
	height := ContentWidth * info.Height() / info.Width()
	rc.pdf.ImageOptions(graphicName, x, y, ContentWidth, height, false, opts, 0, "")
	rc.pdf.SetY(y + height + marginBottom)
}

func (rc *renderContext) divider() {
	y := rc.pdf.GetY() + 4
	rc.pdf.SetDrawColor(204, 204, 204)
	rc.pdf.SetLineWidth(0.5)
	rc.pdf.Line(pageMarginSide, y, pageMarginSide+ContentWidth, y)
	rc.pdf.SetY(y + 4)
}

// boxTitle draws the filled title bar every box variant shares.
func (rc *renderContext) boxTitle(title string, width float64) {
	rc.pdf.SetFillColor(238, 246, 255)
	rc.pdf.SetDrawColor(207, 216, 220)
	rc.pdf.SetTextColor(0, 0, 0)
	rc.pdf.SetFont("doc", "B", 11)
	rc.pdf.CellFormat(width, boxTitleHeight, " "+title, "1", 1, rc.align(), true, 0, "")
}

func (rc *renderContext) keyValueBox(b KeyValueBox) {
	rc.pdf.Ln(6)
	rc.boxTitle(b.Title, ContentWidth)

	rc.pdf.SetFillColor(250, 250, 250)
	for _, row := range b.Rows {
		cellWidth := ContentWidth / float64(len(row))
		for _, pair := range row {
			rc.pairCell(pair, cellWidth)
		}
		rc.pdf.Ln(rowHeight)
	}
	rc.pdf.Ln(8)
}

// pairCell draws one bordered "label: value" cell. The label is bold; an
// absent value shows the gray placeholder.
func (rc *renderContext) pairCell(pair Pair, width float64) {
	x, y := rc.pdf.GetXY()

	rc.pdf.CellFormat(width, rowHeight, "", "1", 0, "", true, 0, "")

	if rc.rtl {
		labelWidth := rc.labelWidth(pair.Label)
		rc.pdf.SetXY(x, y)
		rc.setValueFont(pair.Value)
		rc.pdf.CellFormat(width-6-labelWidth, rowHeight, pair.Value+" : ", "", 0, "R", false, 0, "")
		rc.pdf.SetFont("doc", "B", 9)
		rc.pdf.SetTextColor(0, 0, 0)
		rc.pdf.CellFormat(labelWidth, rowHeight, pair.Label, "", 0, "R", false, 0, "")
	} else {
		rc.pdf.SetXY(x+6, y)
		rc.pdf.SetFont("doc", "B", 9)
		rc.pdf.SetTextColor(0, 0, 0)
		label := pair.Label + ": "
		labelWidth := rc.pdf.GetStringWidth(label)
		rc.pdf.CellFormat(labelWidth, rowHeight, label, "", 0, "L", false, 0, "")
		rc.setValueFont(pair.Value)
		rc.pdf.CellFormat(width-12-labelWidth, rowHeight, pair.Value, "", 0, "L", false, 0, "")
	}

	rc.pdf.SetXY(x+width, y)
}

func (rc *renderContext) labelWidth(label string) float64 {
	rc.pdf.SetFont("doc", "B", 9)
	return rc.pdf.GetStringWidth(label) + 6
}

// setValueFont picks the value style; the "-" placeholder renders bold gray.
func (rc *renderContext) setValueFont(value string) {
	if value == "-" {
		rc.pdf.SetFont("doc", "B", 9)
		rc.pdf.SetTextColor(153, 153, 153)
		return
	}
	rc.pdf.SetFont("doc", "", 9)
	rc.pdf.SetTextColor(0, 0, 0)
}

func (rc *renderContext) tableBox(b TableBox) {
	rc.pdf.Ln(4)
	rc.boxTitle(b.Title, ContentWidth)

	widths := make([]float64, len(b.Widths))
	fixed, flexible := 0.0, 0
	for _, w := range b.Widths {
		if w == 0 {
			flexible++
		} else {
			fixed += w
		}
	}
	for i, w := range b.Widths {
		if w == 0 {
			widths[i] = (ContentWidth - fixed) / float64(flexible)
		} else {
			widths[i] = w
		}
	}

	rc.pdf.SetFillColor(227, 242, 253)
	rc.pdf.SetFont("doc", "B", 9)
	rc.pdf.SetTextColor(0, 0, 0)
	for i, header := range b.Headers {
		rc.pdf.CellFormat(widths[i], rowHeight, header, "1", 0, "C", true, 0, "")
	}
	rc.pdf.Ln(rowHeight)

	rc.pdf.SetFillColor(250, 250, 250)
	for _, row := range b.Rows {
		for i, cell := range row {
			rc.setValueFont(cell)
			rc.pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, "C", true, 0, "")
		}
		rc.pdf.Ln(rowHeight)
	}
	rc.pdf.Ln(8)
}

func (rc *renderContext) totalLine(b TotalLine) {
	rc.pdf.Ln(6)
	valueWidth := func() float64 {
		rc.pdf.SetFont("doc", "", 9)
		return rc.pdf.GetStringWidth(b.Value) + 8
	}()
	rc.pdf.SetFont("doc", "B", 9)
	rc.pdf.SetTextColor(0, 0, 0)
	rc.pdf.CellFormat(ContentWidth-valueWidth, 18, b.Label, "", 0, "R", false, 0, "")
	rc.pdf.SetFont("doc", "", 9)
	rc.pdf.CellFormat(valueWidth, 18, b.Value, "", 1, "R", false, 0, "")
	rc.pdf.Ln(6)
}

func (rc *renderContext) noteBox(b NoteBox) {
	rc.pdf.Ln(8)
	if b.Boxed {
		rc.boxTitle(b.Title, ContentWidth)
		rc.pdf.SetFillColor(250, 250, 250)
		rc.pdf.SetFont("doc", "", 9)
		rc.pdf.SetTextColor(0, 0, 0)
		rc.pdf.MultiCell(ContentWidth, textLineHeight, b.Text, "1", rc.align(), true)
	} else {
		rc.pdf.SetFont("doc", "B", 11)
		rc.pdf.SetTextColor(0, 0, 0)
		rc.pdf.CellFormat(ContentWidth, 16, b.Title, "", 1, rc.align(), false, 0, "")
		rc.pdf.Ln(4)
		rc.pdf.SetFont("doc", "", 9)
		rc.pdf.MultiCell(ContentWidth, textLineHeight, b.Text, "", rc.align(), false)
	}
	rc.pdf.Ln(8)
}

// galleryBox keeps the title, all image rows, and the bottom banner
// together on one page, breaking beforehand when they would not fit.
func (rc *renderContext) galleryBox(b GalleryBox) {
	imageRows := (len(b.Images) + 1) / 2

	bannerHeight := 0.0
	if b.WithBottomBanner {
		if data := rc.renderer.Assets.Graphic(assets.GraphicBottomBanner); data != nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			info := rc.pdf.RegisterImageOptionsReader(assets.GraphicBottomBanner, opts, bytes.NewReader(data))
			if info != nil && info.Width() > 0 {
				bannerHeight = ContentWidth*info.Height()/info.Width() + 10
			}
		}
	}

	needed := 8 + 20 + float64(imageRows)*(GalleryImageSide+8) + bannerHeight
	if rc.pdf.GetY()+needed > rc.pageHeight-(FooterImageHeight+16) {
		rc.pdf.AddPage()
	}

	rc.pdf.Ln(8)
	rc.pdf.SetFont("doc", "B", 11)
	rc.pdf.SetTextColor(0, 0, 0)
	rc.pdf.CellFormat(ContentWidth, 16, b.Title, "", 1, rc.align(), false, 0, "")
	rc.pdf.Ln(4)

	columnWidth := ContentWidth / 2.0
	for i := 0; i < len(b.Images); i += 2 {
		y := rc.pdf.GetY() + 4
		for col := 0; col < 2 && i+col < len(b.Images); col++ {
			rc.imageSeq++
			name := fmt.Sprintf("gallery-%d", rc.imageSeq)
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			rc.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(b.Images[i+col]))

			x := pageMarginSide + float64(col)*columnWidth + (columnWidth-GalleryImageSide)/2
			rc.pdf.ImageOptions(name, x, y, GalleryImageSide, GalleryImageSide, false, opts, 0, "")
		}
		rc.pdf.SetY(y + GalleryImageSide + 4)
	}

	if b.WithBottomBanner && bannerHeight > 0 {
		rc.contentBanner(assets.GraphicBottomBanner, 10, 0)
	}
}
