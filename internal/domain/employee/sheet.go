package employee

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// SheetFileName names the PDF export of one record.
func SheetFileName(e Employee) string {
	return "employee_" + e.EmpID + ".pdf"
}

// WriteSheet renders a one-page PDF of the record, grouped into the same
// sections as the detail view, and writes it to path.
func WriteSheet(path string, e Employee) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employee Record")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%s %s (%s)", e.FirstName, e.LastName, e.EmpID))
	pdf.Ln(11)

	for _, section := range DetailSections(e) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, section.Title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, field := range section.Fields {
			pdf.Cell(0, 6, fmt.Sprintf("%s: %s", field.Label, field.Value))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	return pdf.OutputFileAndClose(path)
}
