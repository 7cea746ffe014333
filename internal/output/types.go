// internal/output/types.go
package output

import (
	"strings"

	"github.com/ozcomp/compintake/internal/extract"
)

// Writer persists reviewed competition records to one destination.
type Writer interface {
	Write(records []extract.Competition) error
	Close() error
}

// columns is the flat field order shared by every tabular writer (CSV,
// Excel, SQL). Multi-valued fields are joined with "; ".
var columns = []string{
	"title",
	"description",
	"start_date",
	"end_date",
	"submission_deadline",
	"draw_date",
	"prize_description",
	"total_prize",
	"entry_criteria",
	"participating_requirement",
	"rules",
	"category",
	"type_of_game",
	"permit_number",
	"permits",
	"thumbnail_url",
	"organizer_name",
	"organizer_website",
	"organizer_email",
	"terms_conditions_url",
	"status",
	"featured",
	"banner_url",
	"issues",
}

// rowValues flattens one record into the columns order.
func rowValues(c extract.Competition) []string {
	featured := "false"
	if c.Featured {
		featured = "true"
	}
	return []string{
		c.Title,
		c.Description,
		c.StartDate,
		c.EndDate,
		c.SubmissionDeadline,
		c.DrawDate,
		c.PrizeDescription,
		c.TotalPrize,
		strings.Join(c.EntryCriteria, "; "),
		c.ParticipatingRequirement,
		c.Rules,
		string(c.Category),
		string(c.TypeOfGame),
		c.PermitNumber,
		c.Permits,
		c.ThumbnailURL,
		c.OrganizerName,
		c.OrganizerWebsite,
		c.OrganizerEmail,
		c.TermsConditionsURL,
		c.Status,
		featured,
		c.BannerURL,
		strings.Join(c.Issues, "; "),
	}
}
