package catalog

import "sort"

// techniques is the fixed table of sutras, grouped by difficulty.
var techniques = []Technique{
	// Beginner
	{
		ID:          "ekadhikena",
		Name:        "Ekadhikena Purvena",
		Translation: "By one more than the one before",
		Description: "Perfect for squaring numbers ending in 5 (e.g., 35², 85²).",
		Difficulty:  Beginner,
		Accent:      "#064E3B",
	},
	{
		ID:          "nikhilam",
		Name:        "Nikhilam Navatashcaramam Dashatah",
		Translation: "All from 9 and the last from 10",
		Description: "Ideal for multiplying numbers close to a base (e.g., 98 × 97) or subtracting from powers of 10.",
		Difficulty:  Beginner,
		Accent:      "#312E81",
	},
	{
		ID:          "multiply11",
		Name:        "Antyayor Eva (x11)",
		Translation: "Only the last two",
		Description: "The magic method for multiplying any number by 11 instantly by adding neighbors.",
		Difficulty:  Beginner,
		Accent:      "#831843",
	},
	{
		ID:          "ekanyunena",
		Name:        "Ekanyunena Purvena",
		Translation: "By one less than the one before",
		Description: "The specific method for multiplying by 9, 99, 999, etc. (e.g. 77 × 99).",
		Difficulty:  Beginner,
		Accent:      "#115E59",
	},
	{
		ID:          "gunita",
		Name:        "Gunita Samuccayah",
		Translation: "The product of the sum is the sum of the product",
		Description: "Using \"Digital Roots\" (Digit Sums) to instantly verify if a calculation is correct.",
		Difficulty:  Beginner,
		Accent:      "#365314",
	},

	// Intermediate
	{
		ID:          "yavadunam",
		Name:        "Yavadunam",
		Translation: "Whatever the deficiency",
		Description: "The fastest way to square numbers near a base like 100 or 1000 (e.g., 93², 104²).",
		Difficulty:  Intermediate,
		Accent:      "#581C87",
	},
	{
		ID:          "urdhva",
		Name:        "Urdhva Tiryagbhyam",
		Translation: "Vertically and Crosswise",
		Description: "The general formula for multiplication. Works for any two numbers.",
		Difficulty:  Intermediate,
		Accent:      "#B45309",
	},
	{
		ID:          "antyayor",
		Name:        "Antyayor Daskake Pi",
		Translation: "When the final digits add up to 10",
		Description: "Multiplication shortcut when last digits sum to 10 and previous parts are identical (e.g., 43 × 47).",
		Difficulty:  Intermediate,
		Accent:      "#881337",
	},
	{
		ID:          "paravartya",
		Name:        "Paravartya Yojayet",
		Translation: "Transpose and Apply",
		Description: "Excellent for division where the divisor is slightly above a base (e.g. 112) or solving simple equations.",
		Difficulty:  Intermediate,
		Accent:      "#164E63",
	},
	{
		ID:          "sankalana",
		Name:        "Sankalana Vyavakalanabhyam",
		Translation: "By addition and by subtraction",
		Description: "Solving simultaneous linear equations where x and y coefficients are swapped (e.g. 45x + 23y = 113).",
		Difficulty:  Intermediate,
		Accent:      "#7C2D12",
	},

	// Advanced
	{
		ID:          "vilokanam",
		Name:        "Vilokanam",
		Translation: "By mere observation",
		Description: "Find Cube Roots of perfect cubes (up to 6 digits) just by looking at the number.",
		Difficulty:  Advanced,
		Accent:      "#1E3A8A",
	},
	{
		ID:          "anurupyena",
		Name:        "Anurupyena",
		Translation: "Proportionality",
		Description: "Used for finding cubes of numbers (e.g. 13³) by maintaining the geometric ratio between digits.",
		Difficulty:  Advanced,
		Accent:      "#701A75",
	},
	{
		ID:          "shunyam",
		Name:        "Shunyam Samyasamuccaye",
		Translation: "When the sum is the same, that sum is zero",
		Description: "A specific algebraic trick to solve complex-looking equations instantly by setting terms to zero.",
		Difficulty:  Advanced,
		Accent:      "#1E293B",
	},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(techniques))
	for i, t := range techniques {
		m[t.ID] = i
	}
	return m
}()

// All returns every technique in display order. The returned slice is a copy.
func All() []Technique {
	out := make([]Technique, len(techniques))
	copy(out, techniques)
	return out
}

// Lookup returns the technique with the given ID.
func Lookup(id string) (Technique, bool) {
	i, ok := byID[id]
	if !ok {
		return Technique{}, false
	}
	return techniques[i], true
}

// ByDifficulty returns the techniques of a single tier in display order.
func ByDifficulty(d Difficulty) []Technique {
	var out []Technique
	for _, t := range techniques {
		if t.Difficulty == d {
			out = append(out, t)
		}
	}
	return out
}

// IDs returns all technique IDs sorted alphabetically.
func IDs() []string {
	ids := make([]string, 0, len(techniques))
	for _, t := range techniques {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return ids
}
