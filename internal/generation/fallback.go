package generation

// FallbackPuzzle returns the canned puzzle served when generation fails.
func FallbackPuzzle() *Puzzle {
	return &Puzzle{
		Question:    "35 × 35",
		Answer:      1225,
		SutraUsed:   "Ekadhikena Purvena",
		Explanation: "Squaring a number ending in 5 is simple.",
		Steps: []string{
			"Take the first digit (3).",
			"Multiply it by the next number (3 + 1 = 4). So, 3 × 4 = 12.",
			"Square the last digit (5 × 5 = 25).",
			"Combine them: 12 | 25 = 1225.",
		},
		Hint: "Multiply the first digit by (itself + 1), then append 25.",
	}
}

// FallbackTutorial returns the canned tutorial served when generation fails.
func FallbackTutorial() *Tutorial {
	return &Tutorial{
		Title:          "Squaring Numbers Ending in 5",
		Concept:        "Ekadhikena Purvena means \"by one more than the one before\". To square a number ending in 5, multiply the digits before the 5 by one more than themselves and write 25 after the result.",
		ExampleProblem: "35 × 35",
		Steps: []string{
			"Split 35 into the part before the 5 (3) and the final 5.",
			"Take one more than 3, which is 4.",
			"Multiply 3 × 4 = 12. This is the left part of the answer.",
			"Square the final 5: 5 × 5 = 25. This is the right part.",
			"Join the parts: 12 | 25 = 1225.",
		},
		WhyItWorks: "A number ending in 5 is 10a + 5. Its square is 100a² + 100a + 25 = 100·a(a + 1) + 25, so the hundreds are a(a + 1) and the last two digits are always 25.",
	}
}

// FallbackDetail returns the canned detail served when generation fails.
func FallbackDetail() *Detail {
	return &Detail{
		Summary: "Vedic sutras are short rules that turn long written calculations into a few mental steps.",
		UseCases: []string{
			"Checking a calculation quickly in your head",
			"Multiplying numbers near a round base",
			"Squaring numbers ending in 5",
		},
		DeepDive: "Each sutra rewrites a problem into parts that are easier to handle, such as the distance from a base of 10 or 100, and then recombines them. The rules are ordinary algebra arranged so the arithmetic stays small.",
	}
}
