package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// RenderedChart is a chart image produced during a run.
type RenderedChart struct {
	FigName string
	Source  string // input log file
	Kind    string
	Path    string // where the PNG was saved
	PNG     []byte
}

// pdfStyler holds reusable styling and the flowing Y position.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6,
		pageHeight:  pdfPageHeightLandscape - pdfMargin,
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) newPage() {
	s.pdf.AddPage()
	s.currentY = s.contentTopY
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.newPage()
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

// addImage places a PNG centred on the page with an optional caption below.
func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width, height float64, caption string) {
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	x := pdfMargin + (pdfContentWidth-width)/2
	s.pdf.Image(imageName, x, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

func (s *pdfStyler) writeTable(headers []string, colWidthsRel []float64, rows [][]string) {
	colWidthsAbs := make([]float64, len(colWidthsRel))
	for i, rel := range colWidthsRel {
		colWidthsAbs[i] = rel * pdfContentWidth
	}

	s.checkAddPage(s.lineHeight * 2)
	sX := pdfMargin
	s.applyStyle("tableHeader")
	for i, header := range headers {
		s.pdf.SetXY(sX, s.currentY)
		s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, header, "1", 0, "C", true, 0, "")
		sX += colWidthsAbs[i]
	}
	s.currentY += s.lineHeight

	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		sX = pdfMargin
		s.applyStyle("tableCell")
		for i, cell := range row {
			s.pdf.SetXY(sX, s.currentY)
			s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, cell, "1", 0, "L", false, 0, "")
			sX += colWidthsAbs[i]
		}
		s.currentY += s.lineHeight
	}
}

// BuildPDFReport writes every chart of a run into one landscape PDF: an
// overview table on the first page, then one chart per page.
func BuildPDFReport(filepath string, title string, charts []RenderedChart) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)

	styler := newPDFStyler(pdf)
	styler.newPage()

	styler.writeParagraph(title, "h1", "C")
	styler.addSpacer(5)

	if len(charts) == 0 {
		styler.writeParagraph("No charts were produced.", "normal", "L")
		return pdf.OutputFileAndClose(filepath)
	}

	styler.writeParagraph("Charts", "h2", "L")
	rows := make([][]string, len(charts))
	for i, c := range charts {
		rows[i] = []string{strconv.Itoa(i + 1), c.FigName, c.Kind, c.Source, c.Path}
	}
	styler.writeTable(
		[]string{"#", "Figure", "Kind", "Source", "Output"},
		[]float64{0.05, 0.3, 0.07, 0.29, 0.29},
		rows)

	imgWidth := pdfContentWidth * 0.75
	imgHeight := imgWidth * float64(figHeight/figWidth)

	for i, c := range charts {
		styler.newPage()
		styler.writeParagraph(fmt.Sprintf("%d. %s", i+1, c.FigName), "h2", "L")
		if len(c.PNG) == 0 {
			styler.writeParagraph(fmt.Sprintf("Plot for %s not available.", c.FigName), "normal", "L")
			continue
		}
		styler.addImage(c.PNG, fmt.Sprintf("chart%d", i), imgWidth, imgHeight, fmt.Sprintf("Data: %s", c.Source))
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build PDF: %w", err)
	}
	return pdf.OutputFileAndClose(filepath)
}
