package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

const qrImageName = "share-qr"

// PDF writes a printable itinerary. When qrPNG is set it is placed in the
// top-right corner so the printout links back to the shared plan.
func PDF(w io.Writer, it *model.Itinerary, prefs model.Preferences, qrPNG []byte) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetTitle(Title(prefs), true)
	pdf.SetAuthor(catalog.Lodge.Name, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if len(qrPNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(qrPNG))
		pdf.ImageOptions(qrImageName, 160, 15, 30, 30, false, opts, 0, "")
	}

	days := 0
	if it != nil {
		days = len(it.Days)
	}

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(130, 10, tr(Title(prefs)), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(130, 6, tr(catalog.Lodge.Address), "", 1, "L", false, 0, "")
	pdf.CellFormat(130, 6, tr(Summary(prefs, days)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	if it != nil {
		for _, d := range it.Days {
			pdf.SetFillColor(232, 245, 233)
			pdf.SetFont("Arial", "B", 13)
			pdf.CellFormat(0, 9, tr(DayHeading(d)), "", 1, "L", true, 0, "")
			pdf.Ln(2)

			for _, a := range d.Activities {
				pdf.SetFont("Arial", "B", 11)
				pdf.CellFormat(22, 6, tr(a.Time), "", 0, "L", false, 0, "")
				pdf.CellFormat(0, 6, tr(a.Activity.Name), "", 1, "L", false, 0, "")

				pdf.SetFont("Arial", "", 10)
				pdf.SetX(42)
				pdf.MultiCell(0, 5, tr(pdfDetail(a)), "", "L", false)
				pdf.Ln(2)
			}
			pdf.Ln(4)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func pdfDetail(a model.ScheduledActivity) string {
	biz := a.Activity
	lines := []string{biz.Description}
	if a.Signature != nil {
		lines = append(lines, fmt.Sprintf("%s - %s", a.Signature.Location, a.Signature.Duration))
	} else {
		if biz.DriveTime != "" {
			lines = append(lines, biz.DriveTime)
		}
		if biz.LocalInsight != "" {
			lines = append(lines, "Local tip: "+biz.LocalInsight)
		}
		if bk := catalog.Booking(biz.Name); bk.Method != catalog.BookingInternal {
			lines = append(lines, "Book: "+bk.Value)
		} else {
			lines = append(lines, "Book: ask the lodge concierge")
		}
	}
	return strings.Join(lines, "\n")
}
