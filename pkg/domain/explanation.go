package domain

// Outcome classifies how a factorization attempt ended.
type Outcome string

const (
	OutcomeFactored       Outcome = "factored"        // Real roots found, closed form emitted
	OutcomeNonRealRoots   Outcome = "non_real_roots"  // D < 0, explanation stops after step 3
	OutcomeMalformedInput Outcome = "malformed_input" // Text did not match ax^2+bx+c
)

// Step is one numbered block of the explanation.
// Title is plain text; each line may embed inline \( \) or display \[ \] math.
type Step struct {
	Number int         `json:"number"`
	Title  string      `json:"title"`
	Blocks []Paragraph `json:"blocks"`
}

// Paragraph is a group of lines rendered together (joined by line breaks).
type Paragraph []string

// Explanation is the ordered step sequence produced for a single trinomial.
type Explanation struct {
	Coefficients  Coefficients   `json:"coefficients"`
	Discriminant  int64          `json:"discriminant"`
	Roots         *Roots         `json:"roots,omitempty"`
	Factorization *Factorization `json:"factorization,omitempty"`
	Steps         []Step         `json:"steps"`
	Outcome       Outcome        `json:"outcome"`
}

// Result is what the engine hands back to adapters.
type Result struct {
	Input    string  `json:"input"`
	Outcome  Outcome `json:"outcome"`
	Markup   string  `json:"markup"`
	Factored string  `json:"factored,omitempty"`
	Cached   bool    `json:"cached"`
}
