// internal/extract/result.go
package extract

// Category classifies the entry barrier of a competition. It is always
// exactly one of the four fixed values; classification has a default branch.
type Category string

const (
	CategoryOpenFree         Category = "Open (free)"
	CategoryBarrierLow       Category = "Barrier (low)"
	CategoryBarrierMedium    Category = "Barrier (Medium)"
	CategoryPurchaseRequired Category = "Purchase Required"
)

// GameType distinguishes skill-judged competitions from chance-based draws.
type GameType string

const (
	GameOfSkill GameType = "Game of Skill"
	GameOfLuck  GameType = "Game of Luck"
)

const (
	// StatusDraft is the only status an imported record can carry; a human
	// reviewer promotes it through a separate create operation.
	StatusDraft = "draft"

	// PlaceholderTitle is used when no title can be recovered from the page.
	PlaceholderTitle = "Imported Competition"

	// DefaultParticipation is used when no participation requirement is found.
	DefaultParticipation = "No specific participation requirements were found on the page."

	// ReviewNotice terminates every issues list.
	ReviewNotice = "Please review and verify all extracted information before saving"

	// TimestampLayout is the minute-precision local-time form used for all
	// extracted and defaulted dates.
	TimestampLayout = "2006-01-02T15:04"
)

// Competition is the draft record assembled from a competition web page.
// Optional fields are left empty when nothing could be extracted; the Issues
// list carries provenance and caveats for the human reviewer.
type Competition struct {
	Title              string `json:"title" yaml:"title"`
	Description        string `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate          string `json:"start_date" yaml:"start_date"`
	EndDate            string `json:"end_date" yaml:"end_date"`
	SubmissionDeadline string `json:"submission_deadline" yaml:"submission_deadline"`
	DrawDate           string `json:"draw_date,omitempty" yaml:"draw_date,omitempty"`

	PrizeDescription string `json:"prize_description,omitempty" yaml:"prize_description,omitempty"`
	TotalPrize       string `json:"total_prize,omitempty" yaml:"total_prize,omitempty"`

	EntryCriteria            []string `json:"entry_criteria" yaml:"entry_criteria"`
	ParticipatingRequirement string   `json:"participating_requirement" yaml:"participating_requirement"`
	Rules                    string   `json:"rules,omitempty" yaml:"rules,omitempty"`

	Category   Category `json:"category" yaml:"category"`
	TypeOfGame GameType `json:"type_of_game" yaml:"type_of_game"`

	PermitNumber string `json:"permit_number,omitempty" yaml:"permit_number,omitempty"`
	Permits      string `json:"permits,omitempty" yaml:"permits,omitempty"`

	ThumbnailURL string `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`

	OrganizerName    string `json:"organizer_name,omitempty" yaml:"organizer_name,omitempty"`
	OrganizerWebsite string `json:"organizer_website,omitempty" yaml:"organizer_website,omitempty"`
	OrganizerEmail   string `json:"organizer_email,omitempty" yaml:"organizer_email,omitempty"`

	TermsConditionsURL string `json:"terms_conditions_url,omitempty" yaml:"terms_conditions_url,omitempty"`

	Status    string `json:"status" yaml:"status"`
	Featured  bool   `json:"featured" yaml:"featured"`
	BannerURL string `json:"banner_url" yaml:"banner_url"`

	Issues []string `json:"issues" yaml:"issues"`
}

// ValidCategories lists every value Category may take, in classifier
// priority order from highest barrier to lowest.
func ValidCategories() []Category {
	return []Category{
		CategoryPurchaseRequired,
		CategoryBarrierMedium,
		CategoryBarrierLow,
		CategoryOpenFree,
	}
}

// ValidGameTypes lists every value TypeOfGame may take.
func ValidGameTypes() []GameType {
	return []GameType{GameOfSkill, GameOfLuck}
}
