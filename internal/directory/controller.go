package directory

import (
	"golang.org/x/text/language"

	"orgdir/internal/domain"
)

// Phase is the search widget's state machine position
type Phase int

const (
	// PhaseEmpty means no query has been typed
	PhaseEmpty Phase = iota
	// PhaseSuggesting means a non-empty query without an exact match
	PhaseSuggesting
	// PhaseSelected means a record is confirmed and the input is locked
	PhaseSelected
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "EMPTY"
	case PhaseSuggesting:
		return "SUGGESTING"
	case PhaseSelected:
		return "SELECTED"
	default:
		return "UNKNOWN"
	}
}

// Snapshot is a read-only copy of the controller state for rendering
type Snapshot struct {
	Phase      Phase
	Input      string
	Query      string
	Locked     bool
	Candidates []domain.OrganizationRecord
	Selection  *domain.OrganizationRecord
	Details    *domain.OrganizationRecord
	Loaded     bool
	Total      int
}

// ShowDisclaimer reports whether the auxiliary disclaimer accompanies the details panel
func (s Snapshot) ShowDisclaimer() bool { return s.Details != nil }

// ShowClocks reports whether the always-on clocks have room on screen
func (s Snapshot) ShowClocks() bool { return s.Details == nil }

// Controller owns the record set and the search/selection state.
//
// Selection is set only while the input is locked; candidates are empty
// whenever a selection exists. After InputRefocused the details panel keeps
// showing the previous record until the next QueryChanged.
type Controller struct {
	tag        language.Tag
	records    []domain.OrganizationRecord
	loaded     bool
	input      string
	candidates []domain.OrganizationRecord
	selection  *domain.OrganizationRecord
	details    *domain.OrganizationRecord
	locked     bool
}

// NewController creates an empty controller that collates names with tag
func NewController(tag language.Tag) *Controller {
	return &Controller{tag: tag}
}

// Initialize stores the record set sorted by name and resets to the empty state
func (c *Controller) Initialize(records []domain.OrganizationRecord) {
	c.records = SortRecords(records, c.tag)
	c.loaded = true
	c.clear()
	c.input = ""
}

// Reset drops all records. Used when loading fails; searches then find nothing.
func (c *Controller) Reset() {
	c.records = nil
	c.loaded = false
	c.clear()
	c.input = ""
}

// QueryChanged recomputes the state for new input text
func (c *Controller) QueryChanged(raw string) {
	c.input = raw
	q := Normalize(raw)
	if q == "" {
		c.clear()
		return
	}

	c.candidates = Candidates(q, c.records)
	if exact, ok := ExactMatch(q, c.candidates); ok {
		c.Select(exact)
		return
	}

	c.selection = nil
	c.details = nil
	c.locked = false
}

// Select confirms a record: the input shows its canonical name and locks
func (c *Controller) Select(record domain.OrganizationRecord) {
	rec := record
	c.input = rec.Name
	c.candidates = nil
	c.selection = &rec
	c.details = &rec
	c.locked = true
}

// EnterPressed selects the exact match or else the first candidate.
// It returns false when there was nothing to select.
func (c *Controller) EnterPressed() bool {
	if len(c.candidates) == 0 {
		return false
	}
	target := c.candidates[0]
	if exact, ok := ExactMatch(c.input, c.candidates); ok {
		target = exact
	}
	c.Select(target)
	return true
}

// SuggestionClicked selects the candidate at index. Out of range is a no-op.
func (c *Controller) SuggestionClicked(index int) bool {
	if index < 0 || index >= len(c.candidates) {
		return false
	}
	c.Select(c.candidates[index])
	return true
}

// InputRefocused unlocks a locked input. The input text and the details
// panel stay as they are until the next keystroke.
func (c *Controller) InputRefocused() bool {
	if !c.locked {
		return false
	}
	c.locked = false
	c.selection = nil
	return true
}

// Phase returns the current state machine position
func (c *Controller) Phase() Phase {
	switch {
	case c.selection != nil:
		return PhaseSelected
	case Normalize(c.input) == "":
		return PhaseEmpty
	default:
		return PhaseSuggesting
	}
}

// Locked reports whether the input currently rejects edits
func (c *Controller) Locked() bool { return c.locked }

// Input returns the text the input should display
func (c *Controller) Input() string { return c.input }

// Loaded reports whether a record set has been installed
func (c *Controller) Loaded() bool { return c.loaded }

// Len returns the number of loaded records
func (c *Controller) Len() int { return len(c.records) }

// Candidates returns a copy of the current suggestions
func (c *Controller) Candidates() []domain.OrganizationRecord {
	if len(c.candidates) == 0 {
		return nil
	}
	out := make([]domain.OrganizationRecord, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Selection returns the confirmed record, if any
func (c *Controller) Selection() (domain.OrganizationRecord, bool) {
	if c.selection == nil {
		return domain.OrganizationRecord{}, false
	}
	return *c.selection, true
}

// Details returns the record shown in the details panel, if any
func (c *Controller) Details() (domain.OrganizationRecord, bool) {
	if c.details == nil {
		return domain.OrganizationRecord{}, false
	}
	return *c.details, true
}

// Snapshot copies the state for the view layer
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Phase:      c.Phase(),
		Input:      c.input,
		Query:      Normalize(c.input),
		Locked:     c.locked,
		Candidates: c.Candidates(),
		Loaded:     c.loaded,
		Total:      len(c.records),
	}
	if sel, ok := c.Selection(); ok {
		s.Selection = &sel
	}
	if det, ok := c.Details(); ok {
		s.Details = &det
	}
	return s
}

func (c *Controller) clear() {
	c.candidates = nil
	c.selection = nil
	c.details = nil
	c.locked = false
}
