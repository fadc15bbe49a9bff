// Package document renders the two export formats: the anonymized candidate
// profile PDF and the per-portal job feed XML.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// ProfilePDFRenderer produces the fixed-layout anonymized profile. The input
// carries no identifying fields; only the CND reference appears in the output.
type ProfilePDFRenderer struct{}

func NewProfilePDFRenderer() *ProfilePDFRenderer {
	return &ProfilePDFRenderer{}
}

func (r *ProfilePDFRenderer) Render(profile ports.CandidateProfile) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Candidate Profile "+profile.Reference, false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "Candidate Profile", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, "Reference: "+profile.Reference, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, "Application Status: "+orPlaceholder(profile.Status), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, "Position Applied For: "+orPlaceholder(profile.JobTitle), "", 1, "L", false, 0, "")
	doc.Ln(4)

	r.section(doc, "Summary")
	doc.MultiCell(0, 6, orPlaceholder(profile.Summary), "", "L", false)
	doc.Ln(2)

	r.section(doc, "Skills")
	skills := strings.Join(profile.Skills, ", ")
	doc.MultiCell(0, 6, orPlaceholder(skills), "", "L", false)
	doc.Ln(2)

	r.section(doc, "Experience")
	if len(profile.Experience) == 0 {
		doc.MultiCell(0, 6, "N/A", "", "L", false)
	}
	for _, entry := range profile.Experience {
		heading := entry.JobTitle
		if entry.Company != "" {
			heading += " - " + entry.Company
		}
		if entry.Duration != "" {
			heading += " (" + entry.Duration + ")"
		}
		doc.SetFont("Helvetica", "B", 11)
		doc.MultiCell(0, 6, orPlaceholder(heading), "", "L", false)
		doc.SetFont("Helvetica", "", 11)
		for _, item := range entry.Responsibilities {
			doc.MultiCell(0, 6, "- "+item, "", "L", false)
		}
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render profile pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *ProfilePDFRenderer) section(doc *fpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
