package catalog

// Difficulty is the tier a technique is taught at.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// AllDifficulties returns all tiers in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

// Rank orders difficulties for sorting. Unknown values sort last.
func (d Difficulty) Rank() int {
	switch d {
	case Beginner:
		return 0
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return 3
	}
}

// Technique is a single sutra the app can teach. Values are immutable;
// callers receive copies from the catalog table.
type Technique struct {
	// ID is the stable identifier used for prompt dispatch, e.g. "urdhva".
	ID string

	// Name is the Sanskrit display name.
	Name string

	// Translation is the English meaning of the sutra.
	Translation string

	// Description says what kind of problem the technique shortens.
	Description string

	Difficulty Difficulty

	// Accent is a hex colour used to tint the technique's card and badge.
	Accent string
}
