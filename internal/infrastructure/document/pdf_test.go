package document

import (
	"bytes"
	"testing"

	"github.com/talentbase/recruiting-api/internal/core/ports"
)

func TestProfilePDFRenderer_ProducesPDF(t *testing.T) {
	out, err := NewProfilePDFRenderer().Render(ports.CandidateProfile{
		Reference: "CND-007",
		Status:    "Pending",
		JobTitle:  "Backend Engineer",
		Summary:   "Seasoned engineer",
		Skills:    []string{"Go", "SQL"},
		Experience: []ports.ExperienceEntry{
			{JobTitle: "SRE", Company: "Acme", Duration: "2020-2024", Responsibilities: []string{"On-call"}},
		},
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", out[:min(len(out), 16)])
	}
}

func TestProfilePDFRenderer_EmptyProfile(t *testing.T) {
	out, err := NewProfilePDFRenderer().Render(ports.CandidateProfile{Reference: "CND-001"})
	if err != nil {
		t.Fatalf("render of empty profile failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty document")
	}
}
