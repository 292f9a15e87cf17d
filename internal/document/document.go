// Package document assembles a validated image collection into a paginated
// PDF with one image per page.
package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/kozaktomas/img2pdf/internal/constants"
	"github.com/kozaktomas/img2pdf/internal/imageset"
	"github.com/kozaktomas/img2pdf/internal/layout"
)

// ElementKind distinguishes the entries of a document's element sequence.
type ElementKind int

const (
	ElementImage ElementKind = iota
	ElementPageBreak
)

func (k ElementKind) String() string {
	if k == ElementPageBreak {
		return "break"
	}
	return "image"
}

// Element is one entry of the ordered element sequence. Page is the index
// into Document.Pages for image elements.
type Element struct {
	Kind ElementKind
	Page int
}

// Page pairs a record with its planned placement.
type Page struct {
	Record    imageset.Record
	Placement layout.Placement
}

// Document is a fully planned, not yet rendered, document.
type Document struct {
	Title    string
	Spec     layout.PageSpec
	Pages    []Page
	Elements []Element
}

// Options tune rendering.
type Options struct {
	// Captions prints each entry name in the bottom margin.
	Captions bool
	// CreationDate is stamped into the document metadata. The zero value
	// selects a fixed date so identical input renders identical bytes.
	CreationDate time.Time

	// uncompressed leaves page content streams readable.
	uncompressed bool
}

// Rendered is the serialized result of Assemble.
type Rendered struct {
	Title     string
	PageCount int
	Data      []byte
}

var fixedCreationDate = time.Unix(0, 0).UTC()

// Plan lays out every record of coll on its own page. Page breaks are placed
// between images, never after the last one.
func Plan(coll *imageset.Collection, spec layout.PageSpec) *Document {
	planner := layout.NewPlanner(spec)
	records := coll.Records()

	doc := &Document{
		Title:    coll.Name(),
		Spec:     spec,
		Pages:    make([]Page, 0, len(records)),
		Elements: make([]Element, 0, 2*len(records)-1),
	}
	for i, rec := range records {
		if i > 0 {
			doc.Elements = append(doc.Elements, Element{Kind: ElementPageBreak})
		}
		doc.Pages = append(doc.Pages, Page{
			Record:    rec,
			Placement: planner.Place(rec.Width, rec.Height),
		})
		doc.Elements = append(doc.Elements, Element{Kind: ElementImage, Page: i})
	}
	return doc
}

// Placements returns the placement of every page in order.
func (d *Document) Placements() []layout.Placement {
	out := make([]layout.Placement, len(d.Pages))
	for i, p := range d.Pages {
		out[i] = p.Placement
	}
	return out
}

// Report summarises the planned layout.
func (d *Document) Report() layout.Report {
	r := layout.Report{
		Title:     d.Title,
		Paper:     d.Spec.Paper,
		MarginMM:  d.Spec.MarginMM,
		DPI:       d.Spec.DPI,
		PageCount: len(d.Pages),
		Pages:     make([]layout.ReportPage, 0, len(d.Pages)),
		Warnings:  layout.Validate(d.Spec, d.Placements()),
	}
	for i, p := range d.Pages {
		r.MaxWidth = max(r.MaxWidth, p.Record.Width)
		r.MaxHeight = max(r.MaxHeight, p.Record.Height)
		r.Pages = append(r.Pages, layout.NewReportPage(i+1, p.Record.Name, p.Record.Width, p.Record.Height, p.Placement))
	}
	return r
}

// Assemble plans and renders coll into a PDF.
func Assemble(coll *imageset.Collection, spec layout.PageSpec, font *Font, opts Options) (*Rendered, error) {
	return Plan(coll, spec).Render(font, opts)
}

// Render draws the planned document. A nil font selects the embedded default.
func (d *Document) Render(font *Font, opts Options) (*Rendered, error) {
	if font == nil {
		font = DefaultFont()
	}
	created := opts.CreationDate
	if created.IsZero() {
		created = fixedCreationDate
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: d.Spec.Paper.WidthMM, Ht: d.Spec.Paper.HeightMM},
	})
	pdf.SetTitle(d.Title, true)
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(!opts.uncompressed)
	pdf.SetMargins(d.Spec.MarginMM, d.Spec.MarginMM, d.Spec.MarginMM)
	pdf.SetAutoPageBreak(false, 0)

	if opts.Captions {
		pdf.AddUTF8FontFromBytes(font.Family, "", font.Data())
		if pdf.Err() {
			return nil, &FontError{Path: font.Path, Err: pdf.Error()}
		}
	}

	for _, el := range d.Elements {
		if el.Kind == ElementPageBreak {
			pdf.AddPage()
			continue
		}
		if pdf.PageCount() == 0 {
			pdf.AddPage()
		}
		if err := d.drawPage(pdf, el.Page, font, opts); err != nil {
			return nil, err
		}
	}

	pageCount := pdf.PageCount()
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}

	return &Rendered{
		Title:     d.Title,
		PageCount: pageCount,
		Data:      buf.Bytes(),
	}, nil
}

func (d *Document) drawPage(pdf *fpdf.Fpdf, i int, font *Font, opts Options) error {
	page := d.Pages[i]
	index := page.Record.Index

	data, imageType, err := embeddable(page.Record.Data())
	if err != nil {
		return &ConversionError{Index: index, Err: err}
	}

	name := fmt.Sprintf("img%d", index)
	imgOpts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(data))
	if pdf.Err() {
		return &ConversionError{Index: index, Err: pdf.Error()}
	}

	pl := page.Placement
	rotated := pl.Rotation == layout.RotationClockwise90
	if rotated {
		pdf.TransformBegin()
		// fpdf measures angles counter-clockwise.
		pdf.TransformRotate(-pl.Rotation.Degrees(), pl.CenterX, pl.CenterY)
	}
	pdf.ImageOptions(name, pl.X, pl.Y, pl.W, pl.H, false, imgOpts, 0, "")
	if rotated {
		pdf.TransformEnd()
	}

	if opts.Captions && page.Record.Name != "" {
		usable := d.Spec.Usable()
		pdf.SetFont(font.Family, "", constants.CaptionFontSize)
		y := d.Spec.Paper.HeightMM - d.Spec.MarginMM + (d.Spec.MarginMM-constants.CaptionLineHeightMM)/2
		pdf.SetXY(d.Spec.MarginMM, y)
		pdf.CellFormat(usable.WidthMM, constants.CaptionLineHeightMM, page.Record.Name, "", 0, "C", false, 0, "")
	}

	if pdf.Err() {
		return &ConversionError{Index: index, Err: pdf.Error()}
	}
	return nil
}
