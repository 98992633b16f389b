package generation

import (
	"fmt"
	"strings"

	"github.com/abhisek/vedic/internal/catalog"
)

const systemPrompt = `You are a Vedic Mathematics master.`

func writeTechnique(b *strings.Builder, t catalog.Technique) {
	fmt.Fprintf(b, "Sutra: %s (%q)\n", t.Name, t.Translation)
	fmt.Fprintf(b, "Use: %s\n", t.Description)
	fmt.Fprintf(b, "Level: %s\n\n", t.Difficulty)
}

func buildPuzzleMessage(t catalog.Technique, in Instruction) string {
	var b strings.Builder
	writeTechnique(&b, t)
	b.WriteString(in.Fragment)
	b.WriteString(`

1. Create a clear numerical question.
2. Calculate the correct numeric answer.
3. Provide a brief summary explanation.
4. BREAK DOWN the solution into 3-4 distinct, short steps that teach the specific Sutra technique.
5. Provide a small hint without giving away the answer.

The answer must be a single number. Format the output as JSON.`)
	return b.String()
}

func buildTutorialMessage(t catalog.Technique, in Instruction) string {
	var b strings.Builder
	writeTechnique(&b, t)
	fmt.Fprintf(&b, "Teach this sutra with one worked example. For the example: %s\n", in.Fragment)
	b.WriteString(`
1. Give the lesson a short title.
2. Explain the core concept in 2-4 sentences.
3. State the example problem.
4. Solve it in 4-6 short steps, one action per step.
5. Explain why the method works.

Format the output as JSON.`)
	return b.String()
}

func buildDetailMessage(t catalog.Technique) string {
	var b strings.Builder
	writeTechnique(&b, t)
	b.WriteString(`Describe this sutra for a learner deciding whether to study it.

1. Summarize it in one or two sentences.
2. List 3-4 concrete situations where it is useful.
3. Write a short deep dive on how and why it works.

Format the output as JSON.`)
	return b.String()
}
