// internal/extract/pipeline.go

// Package extract implements the heuristic competition-data pipeline: one
// fetched page in, one draft Competition record plus reviewer caveats out.
// Every extractor is best-effort; only the fetch itself can fail hard.
package extract

import (
	"context"
	"time"

	"github.com/ozcomp/compintake/internal/utils"
)

// Fetcher retrieves the raw HTML for a URL. Satisfied by both the plain HTTP
// client and the headless browser renderer.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// DefaultWindow is the fallback competition duration applied when no dates
// can be recovered from the page.
const DefaultWindow = 30 * 24 * time.Hour

// Importer runs the full extraction pipeline. It is stateless per call; two
// concurrent imports share nothing but the fetcher.
type Importer struct {
	fetcher Fetcher
	logger  utils.Logger
	now     func() time.Time
}

// NewImporter creates an importer using the given fetcher.
func NewImporter(fetcher Fetcher, logger utils.Logger) *Importer {
	if logger == nil {
		logger = utils.NewComponentLogger("importer")
	}
	return &Importer{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Import fetches the page at sourceURL and assembles a draft record from it.
// Fetch and parse failures abort with no partial record; everything after
// that is soft and at worst leaves fields empty with a note in Issues.
func (im *Importer) Import(ctx context.Context, sourceURL string) (*Competition, error) {
	im.logger.Infof("importing competition from %s", sourceURL)

	rawHTML, err := im.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	page, err := NewPage(rawHTML, sourceURL)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrCodeParsingError, "failed to parse fetched page")
	}

	record := im.Assemble(page)
	im.logger.Infof("assembled draft %q with %d issues", record.Title, len(record.Issues))
	return record, nil
}

// Assemble runs every extractor over the page and applies the fallback
// policy. The returned record always has valid category and game-type enums,
// a non-empty issues list ending with the mandatory review notice, and
// start/end/deadline timestamps.
func (im *Importer) Assemble(page *Page) *Competition {
	text := CleanText(page.RawHTML())

	record := &Competition{
		Status:        StatusDraft,
		Featured:      false,
		BannerURL:     page.SourceURL(),
		EntryCriteria: []string{},
	}

	applyTitle(record, ExtractTitle(page))
	im.applyDescription(record, page)
	im.applyDates(record, text)

	prize := ExtractPrize(text)
	record.TotalPrize = prize.TotalPrize
	record.PrizeDescription = prize.PrizeDescription

	if criteria := ExtractEntryCriteria(text); len(criteria) > 0 {
		record.EntryCriteria = criteria
	}
	record.ParticipatingRequirement = ExtractParticipation(text)
	if record.ParticipatingRequirement == "" {
		record.ParticipatingRequirement = DefaultParticipation
	}
	record.Rules = ExtractRules(text)

	record.Category = ClassifyCategory(text)
	record.TypeOfGame = ClassifyGameType(text)

	if permit := ExtractPermit(text); permit != "" {
		record.PermitNumber = permit
		record.Permits = permit
	}

	record.ThumbnailURL = ExtractThumbnail(page)
	record.TermsConditionsURL = ExtractTermsURL(page)

	organizer := ExtractOrganizer(text, page)
	record.OrganizerName = organizer.Name
	record.OrganizerWebsite = organizer.Website
	record.OrganizerEmail = organizer.Email

	record.Issues = append(record.Issues, ReviewNotice)
	return record
}

// applyTitle fills the title unless one is already present. The already-set
// branch is a no-op even when the existing title is the placeholder itself,
// so re-assembly never duplicates the placeholder note.
func applyTitle(record *Competition, extracted string) {
	if record.Title != "" {
		return
	}
	if extracted != "" {
		record.Title = extracted
		return
	}
	record.Title = PlaceholderTitle
	record.Issues = append(record.Issues, "No title found on the page; a placeholder title was applied")
}

func (im *Importer) applyDescription(record *Competition, page *Page) {
	if d := ExtractDescription(page); d != "" {
		record.Description = d
		return
	}
	if best := BestParagraph(Paragraphs(page.RawHTML())); best != "" {
		record.Description = best
		record.Issues = append(record.Issues, "No meta description found; description was taken from the best-scoring page text")
		return
	}
	record.Issues = append(record.Issues, "No description could be extracted from the page")
}

// applyDates runs the date cascade and enforces the default window: when
// either boundary is missing both are replaced together, and the submission
// deadline always mirrors the end date.
func (im *Importer) applyDates(record *Competition, text string) {
	findings := ExtractDates(text)
	record.Issues = append(record.Issues, findings.Issues...)

	if findings.Start == "" || findings.End == "" {
		now := im.now()
		record.StartDate = now.Format(TimestampLayout)
		record.EndDate = now.Add(DefaultWindow).Format(TimestampLayout)
		record.Issues = append(record.Issues, "Start and end dates could not both be determined; defaulted to a 30-day window from import time")
	} else {
		record.StartDate = findings.Start
		record.EndDate = findings.End
	}

	record.SubmissionDeadline = record.EndDate
	record.DrawDate = findings.Draw
}
