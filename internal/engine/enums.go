package engine

// String backed enums for serialization and DB interoperability.

type RoundPhase string
type FeedKind string
type DeathType string
type Difficulty string

const (
	PhaseAction     RoundPhase = "action"
	PhaseSettlement RoundPhase = "settlement"
	PhaseResult     RoundPhase = "result"
)

var AllRoundPhases = []RoundPhase{PhaseAction, PhaseSettlement, PhaseResult}

const (
	FeedSystem  FeedKind = "system"
	FeedScene   FeedKind = "scene"
	FeedLog     FeedKind = "log"
	FeedEffect  FeedKind = "effect"
	FeedDanger  FeedKind = "danger"
	FeedWarning FeedKind = "warning"
)

var AllFeedKinds = []FeedKind{FeedSystem, FeedScene, FeedLog, FeedEffect, FeedDanger, FeedWarning}

const (
	DeathHealth DeathType = "health"
	DeathSanity DeathType = "sanity"
)

const (
	DifficultyHell   Difficulty = "hell"
	DifficultyHard   Difficulty = "hard"
	DifficultyNormal Difficulty = "normal"
	DifficultyEasy   Difficulty = "easy"
)

var AllDifficulties = []Difficulty{DifficultyHell, DifficultyHard, DifficultyNormal, DifficultyEasy}

func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (p RoundPhase) Validate() bool { return contains(AllRoundPhases, p) }
func (k FeedKind) Validate() bool   { return contains(AllFeedKinds, k) }
func (d Difficulty) Validate() bool { return contains(AllDifficulties, d) }
