// internal/extract/pipeline_test.go
package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ozcomp/compintake/internal/utils"
)

const designContestURL = "https://compsite.example/competitions/design-contest"

const designContestHTML = `<html>
<head>
<title>Summer Design Contest | CompSite</title>
<meta property="og:title" content="Summer Design Contest">
<meta property="og:description" content="Show off your best summer artwork for a share of the prize pool.">
<meta property="og:image" content="/images/banner.jpg">
</head>
<body>
<p>Entry begins at 9:00am AEST on 1/6/24 and ends at 5:00pm AEST on 1/7/24.</p>
<p>The prize pool is valued at $2,000. Grand prize: a professional design tablet and a studio tour.</p>
<p>An entry fee applies to each submission. Entrants must be Australian residents aged 18 years or older.</p>
<p>To enter, submit your original artwork through the online form. Entries will be judged on creativity and originality.</p>
<p>Winners will be announced on 5/7/24. Authorised under NSW Permit No. TP/01234 for this promotion.</p>
<p>Hosted by Acme Designs! Contact team@acmedesigns.com.au for help.</p>
<a href="/terms">Terms and Conditions</a>
</body>
</html>`

type stubFetcher struct {
	html string
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return s.html, s.err
}

func TestAssembleDesignContestPage(t *testing.T) {
	im := NewImporter(&stubFetcher{}, nil)
	page := mustPage(t, designContestHTML, designContestURL)

	record := im.Assemble(page)

	if record.Title != "Summer Design Contest" {
		t.Errorf("Title = %q", record.Title)
	}
	if record.Description != "Show off your best summer artwork for a share of the prize pool." {
		t.Errorf("Description = %q", record.Description)
	}

	if record.StartDate != "2024-06-01T09:00" {
		t.Errorf("StartDate = %q, want 2024-06-01T09:00", record.StartDate)
	}
	if record.EndDate != "2024-07-01T17:00" {
		t.Errorf("EndDate = %q, want 2024-07-01T17:00", record.EndDate)
	}
	if record.SubmissionDeadline != record.EndDate {
		t.Errorf("SubmissionDeadline = %q, want end date %q", record.SubmissionDeadline, record.EndDate)
	}
	if record.DrawDate != "2024-07-05T00:00" {
		t.Errorf("DrawDate = %q, want 2024-07-05T00:00", record.DrawDate)
	}

	if record.TotalPrize != "$2,000" {
		t.Errorf("TotalPrize = %q, want $2,000", record.TotalPrize)
	}
	if !strings.Contains(record.PrizeDescription, "design tablet") {
		t.Errorf("PrizeDescription = %q, want the grand prize text", record.PrizeDescription)
	}

	if record.Category != CategoryBarrierMedium {
		t.Errorf("Category = %q, want %q", record.Category, CategoryBarrierMedium)
	}
	if record.TypeOfGame != GameOfSkill {
		t.Errorf("TypeOfGame = %q, want %q", record.TypeOfGame, GameOfSkill)
	}

	if len(record.EntryCriteria) == 0 {
		t.Error("EntryCriteria is empty")
	} else if !strings.Contains(strings.Join(record.EntryCriteria, " | "), "must be Australian residents") {
		t.Errorf("EntryCriteria = %v, missing residency condition", record.EntryCriteria)
	}
	if !strings.Contains(record.ParticipatingRequirement, "submit your original artwork") {
		t.Errorf("ParticipatingRequirement = %q", record.ParticipatingRequirement)
	}
	if !strings.Contains(record.Rules, "creativity") {
		t.Errorf("Rules = %q, want the judging criteria", record.Rules)
	}

	if record.PermitNumber != "TP/01234" {
		t.Errorf("PermitNumber = %q, want TP/01234", record.PermitNumber)
	}
	if record.Permits != record.PermitNumber {
		t.Errorf("Permits = %q, want it mirroring PermitNumber", record.Permits)
	}

	if record.ThumbnailURL != "https://compsite.example/images/banner.jpg" {
		t.Errorf("ThumbnailURL = %q", record.ThumbnailURL)
	}
	if record.TermsConditionsURL != "https://compsite.example/terms" {
		t.Errorf("TermsConditionsURL = %q", record.TermsConditionsURL)
	}

	if record.OrganizerName != "Acme Designs" {
		t.Errorf("OrganizerName = %q, want Acme Designs", record.OrganizerName)
	}
	if record.OrganizerEmail != "team@acmedesigns.com.au" {
		t.Errorf("OrganizerEmail = %q", record.OrganizerEmail)
	}
	if record.OrganizerWebsite != "https://compsite.example" {
		t.Errorf("OrganizerWebsite = %q", record.OrganizerWebsite)
	}

	if record.Status != StatusDraft {
		t.Errorf("Status = %q, want %q", record.Status, StatusDraft)
	}
	if record.Featured {
		t.Error("Featured = true, want false")
	}
	if record.BannerURL != designContestURL {
		t.Errorf("BannerURL = %q, want the source URL", record.BannerURL)
	}

	joined := strings.Join(record.Issues, " | ")
	if !strings.Contains(joined, "timezone AEST recorded but not applied as an offset") {
		t.Errorf("Issues = %v, missing the timezone caveat", record.Issues)
	}
	if last := record.Issues[len(record.Issues)-1]; last != ReviewNotice {
		t.Errorf("last issue = %q, want the review notice", last)
	}
}

func TestAssembleEmptyPageDefaults(t *testing.T) {
	im := NewImporter(&stubFetcher{}, nil)
	fixed := time.Date(2024, 5, 1, 10, 30, 0, 0, time.Local)
	im.now = func() time.Time { return fixed }

	page := mustPage(t, "<html><body></body></html>", "https://compsite.example/empty")
	record := im.Assemble(page)

	if record.Title != PlaceholderTitle {
		t.Errorf("Title = %q, want placeholder", record.Title)
	}
	if record.StartDate != "2024-05-01T10:30" {
		t.Errorf("StartDate = %q, want import time", record.StartDate)
	}
	if record.EndDate != "2024-05-31T10:30" {
		t.Errorf("EndDate = %q, want import time plus 30 days", record.EndDate)
	}
	if record.SubmissionDeadline != record.EndDate {
		t.Errorf("SubmissionDeadline = %q, want end date", record.SubmissionDeadline)
	}
	if record.DrawDate != "" {
		t.Errorf("DrawDate = %q, want empty", record.DrawDate)
	}

	if record.Category != CategoryOpenFree {
		t.Errorf("Category = %q, want open default", record.Category)
	}
	if record.TypeOfGame != GameOfSkill {
		t.Errorf("TypeOfGame = %q, want skill default", record.TypeOfGame)
	}
	if record.ParticipatingRequirement != DefaultParticipation {
		t.Errorf("ParticipatingRequirement = %q, want default", record.ParticipatingRequirement)
	}

	if record.EntryCriteria == nil || len(record.EntryCriteria) != 0 {
		t.Errorf("EntryCriteria = %v, want present but empty", record.EntryCriteria)
	}

	joined := strings.Join(record.Issues, " | ")
	for _, want := range []string{
		"placeholder title",
		"defaulted to a 30-day window",
		"No description could be extracted",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Issues = %v, missing %q", record.Issues, want)
		}
	}
	if last := record.Issues[len(record.Issues)-1]; last != ReviewNotice {
		t.Errorf("last issue = %q, want the review notice", last)
	}
}

func TestApplyTitleIdempotent(t *testing.T) {
	record := &Competition{}

	applyTitle(record, "")
	if record.Title != PlaceholderTitle || len(record.Issues) != 1 {
		t.Fatalf("after first apply: title %q, issues %v", record.Title, record.Issues)
	}

	// A second pass over an already-titled record changes nothing.
	applyTitle(record, "")
	if record.Title != PlaceholderTitle || len(record.Issues) != 1 {
		t.Errorf("after second apply: title %q, issues %v", record.Title, record.Issues)
	}

	applyTitle(record, "Late-arriving Title")
	if record.Title != PlaceholderTitle {
		t.Errorf("existing title overwritten with %q", record.Title)
	}
}

func TestImportSuccess(t *testing.T) {
	im := NewImporter(&stubFetcher{html: designContestHTML}, nil)

	record, err := im.Import(context.Background(), designContestURL)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if record.BannerURL != designContestURL {
		t.Errorf("BannerURL = %q, want the source URL", record.BannerURL)
	}
	if len(record.Issues) == 0 {
		t.Error("Issues is empty")
	}
}

func TestImportFetchFailureReturnsNoRecord(t *testing.T) {
	fetchErr := errors.New("connection refused")
	im := NewImporter(&stubFetcher{err: fetchErr}, nil)

	record, err := im.Import(context.Background(), designContestURL)
	if record != nil {
		t.Errorf("expected no partial record, got %+v", record)
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("err = %v, want the fetch error", err)
	}
}

func TestImportRelativeURLParseError(t *testing.T) {
	im := NewImporter(&stubFetcher{html: "<html></html>"}, nil)

	_, err := im.Import(context.Background(), "/competitions/1")
	if err == nil {
		t.Fatal("expected error for relative source URL")
	}
	if code := utils.CodeOf(err); code != utils.ErrCodeParsingError {
		t.Errorf("error code = %v, want %v", code, utils.ErrCodeParsingError)
	}
}
