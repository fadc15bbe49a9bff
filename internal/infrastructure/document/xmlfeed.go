package document

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

// Portal keys with a dedicated feed template.
const (
	PortalIndeed       = "indeed"
	PortalLinkedIn     = "linkedin"
	PortalZipRecruiter = "ziprecruiter"
	PortalGeneric      = "generic"
)

// FeedXMLRenderer renders one of four fixed XML templates for a posting. The
// generic template must be requested explicitly; an unknown portal key is a
// client error, never silently swapped for the fallback.
type FeedXMLRenderer struct{}

func NewFeedXMLRenderer() *FeedXMLRenderer {
	return &FeedXMLRenderer{}
}

// cdata wraps text content so it stays literal inside the feed.
type cdata struct {
	Value string `xml:",cdata"`
}

type indeedFeed struct {
	XMLName   xml.Name  `xml:"source"`
	Publisher cdata     `xml:"publisher"`
	Job       indeedJob `xml:"job"`
}

type indeedJob struct {
	Title           cdata `xml:"title"`
	ReferenceNumber cdata `xml:"referencenumber"`
	Department      cdata `xml:"department"`
	Description     cdata `xml:"description"`
	RequiredSkills  cdata `xml:"required_skills"`
	Status          cdata `xml:"status"`
	Date            cdata `xml:"date"`
}

type linkedInFeed struct {
	XMLName     xml.Name `xml:"posting"`
	JobID       cdata    `xml:"partnerJobId"`
	Title       cdata    `xml:"jobTitle"`
	Function    cdata    `xml:"companyFunction"`
	Description cdata    `xml:"description"`
	Skills      cdata    `xml:"skills"`
	ListDate    cdata    `xml:"listDate"`
}

type zipRecruiterFeed struct {
	XMLName xml.Name        `xml:"jobs"`
	Job     zipRecruiterJob `xml:"job"`
}

type zipRecruiterJob struct {
	ID           cdata `xml:"id"`
	Title        cdata `xml:"title"`
	Category     cdata `xml:"category"`
	Description  cdata `xml:"description"`
	Requirements cdata `xml:"requirements"`
	PostedAt     cdata `xml:"posted_at"`
}

type genericFeed struct {
	XMLName        xml.Name `xml:"job"`
	ID             cdata    `xml:"id"`
	Title          cdata    `xml:"title"`
	Department     cdata    `xml:"department"`
	Description    cdata    `xml:"description"`
	RequiredSkills cdata    `xml:"required_skills"`
	Status         cdata    `xml:"status"`
	CreatedAt      cdata    `xml:"created_at"`
}

func (r *FeedXMLRenderer) Render(job *domain.Job, portal string) ([]byte, error) {
	id := strconv.FormatInt(job.ID, 10)
	skills := strings.Join(job.Requirements, ", ")
	created := job.CreatedAt.UTC().Format(time.RFC3339)

	var doc any
	switch portal {
	case PortalIndeed:
		doc = indeedFeed{
			Publisher: cdata{"TalentBase"},
			Job: indeedJob{
				Title:           cdata{job.Title},
				ReferenceNumber: cdata{id},
				Department:      cdata{job.Department},
				Description:     cdata{job.Description},
				RequiredSkills:  cdata{skills},
				Status:          cdata{job.Status},
				Date:            cdata{created},
			},
		}
	case PortalLinkedIn:
		doc = linkedInFeed{
			JobID:       cdata{id},
			Title:       cdata{job.Title},
			Function:    cdata{job.Department},
			Description: cdata{job.Description},
			Skills:      cdata{skills},
			ListDate:    cdata{created},
		}
	case PortalZipRecruiter:
		doc = zipRecruiterFeed{
			Job: zipRecruiterJob{
				ID:           cdata{id},
				Title:        cdata{job.Title},
				Category:     cdata{job.Department},
				Description:  cdata{job.Description},
				Requirements: cdata{skills},
				PostedAt:     cdata{created},
			},
		}
	case PortalGeneric:
		doc = genericFeed{
			ID:             cdata{id},
			Title:          cdata{job.Title},
			Department:     cdata{job.Department},
			Description:    cdata{job.Description},
			RequiredSkills: cdata{skills},
			Status:         cdata{job.Status},
			CreatedAt:      cdata{created},
		}
	default:
		return nil, domain.ErrUnsupportedPortal
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render %s feed: %w", portal, err)
	}
	return append([]byte(xml.Header), body...), nil
}
