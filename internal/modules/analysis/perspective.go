package analysis

// Kind identifies one analytical method. The five perspective kinds form a
// closed set known at compile time; Synthesis is the sixth kind that only
// ever runs after all five perspectives completed.
type Kind string

const (
	KindDebate          Kind = "debate"
	KindTemporal        Kind = "temporal"
	KindRedTeam         Kind = "redteam"
	KindParadox         Kind = "paradox"
	KindFirstPrinciples Kind = "firstprinciples"
	KindSynthesis       Kind = "synthesis"
)

// perspectiveKinds is the canonical order. The synthesis input is always
// assembled in this order, independent of task completion order.
var perspectiveKinds = [5]Kind{
	KindDebate,
	KindTemporal,
	KindRedTeam,
	KindParadox,
	KindFirstPrinciples,
}

// Kinds returns the five perspective kinds in canonical order.
func Kinds() []Kind {
	kinds := make([]Kind, len(perspectiveKinds))
	copy(kinds, perspectiveKinds[:])
	return kinds
}

// IsPerspective reports whether k is one of the five fan-out kinds.
func IsPerspective(k Kind) bool {
	for _, kind := range perspectiveKinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Info describes one kind for catalog listings.
type Info struct {
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var kindInfos = map[Kind]Info{
	KindDebate: {
		Kind:        KindDebate,
		Name:        "Multi-Agent Debate",
		Description: "Three expert personas with fundamentally different philosophies argue the question over structured rounds.",
	},
	KindTemporal: {
		Kind:        KindTemporal,
		Name:        "Temporal Triangulation",
		Description: "Analyzes the problem from three time horizons: past, present, and future.",
	},
	KindRedTeam: {
		Kind:        KindRedTeam,
		Name:        "Red Teaming",
		Description: "Attacks the concept systematically to expose weaknesses and failure modes.",
	},
	KindParadox: {
		Kind:        KindParadox,
		Name:        "Paradox Resolution",
		Description: "Surfaces the core tensions in the decision and searches for both/and resolutions.",
	},
	KindFirstPrinciples: {
		Kind:        KindFirstPrinciples,
		Name:        "First Principles",
		Description: "Decomposes the question into base truths and rebuilds a solution from the ground up.",
	},
	KindSynthesis: {
		Kind:        KindSynthesis,
		Name:        "Meta-Synthesis",
		Description: "Integrates all five perspective analyses into one combined recommendation.",
	},
}

// Catalog returns the five perspectives in canonical order.
func Catalog() []Info {
	infos := make([]Info, 0, len(perspectiveKinds))
	for _, kind := range perspectiveKinds {
		infos = append(infos, kindInfos[kind])
	}
	return infos
}

// Describe returns catalog info for one kind. The second return is false for
// unknown kinds.
func Describe(k Kind) (Info, bool) {
	info, ok := kindInfos[k]
	return info, ok
}

// Instruction returns the fixed behavioral instruction for one kind. Unknown
// kinds yield the empty string.
func Instruction(k Kind) string {
	return instructions[k]
}
