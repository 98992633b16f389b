package generation

// Kind names the problem family an instruction asks the model for.
type Kind string

const (
	KindSquareEndingInFive Kind = "square-ending-in-5"
	KindNearBase           Kind = "near-base"
	KindTimesEleven        Kind = "times-eleven"
	KindTimesNines         Kind = "times-nines"
	KindDigitSumCheck      Kind = "digit-sum-check"
	KindSquareNearBase     Kind = "square-near-base"
	KindVerticalCrosswise  Kind = "vertically-crosswise"
	KindLastDigitsSumTen   Kind = "last-digits-sum-ten"
	KindTransposeDivision  Kind = "transpose-division"
	KindSimultaneous       Kind = "simultaneous-equations"
	KindCubeRoot           Kind = "cube-root"
	KindCube               Kind = "cube"
	KindSumIsZero          Kind = "sum-is-zero"
	KindGeneric            Kind = "generic"
)

// Instruction is the technique-specific part of a generation prompt.
type Instruction struct {
	Kind     Kind
	Fragment string
}

// Generic is used for any technique without a dedicated instruction.
var Generic = Instruction{
	Kind:     KindGeneric,
	Fragment: "Generate a simple Vedic math problem.",
}

var instructions = map[string]Instruction{
	"ekadhikena": {
		Kind:     KindSquareEndingInFive,
		Fragment: "Generate a math problem involving squaring a 2-digit or 3-digit number ending in 5 (e.g., 35^2, 85^2).",
	},
	"nikhilam": {
		Kind:     KindNearBase,
		Fragment: "Generate a multiplication problem with two 2-digit numbers that are close to 100 (e.g., 94 * 96) OR a subtraction problem from 1000/10000.",
	},
	"multiply11": {
		Kind:     KindTimesEleven,
		Fragment: "Generate a multiplication problem of a 2-digit or 3-digit number by 11 (e.g., 52 * 11, 243 * 11).",
	},
	"ekanyunena": {
		Kind:     KindTimesNines,
		Fragment: "Generate a multiplication problem of a number by 9, 99 or 999 with the same number of digits (e.g., 77 * 99, 456 * 999).",
	},
	"gunita": {
		Kind:     KindDigitSumCheck,
		Fragment: "Generate a multiplication problem of two 2-digit numbers (e.g., 34 * 27) whose product can be verified with digit sums (digital roots).",
	},
	"yavadunam": {
		Kind:     KindSquareNearBase,
		Fragment: "Generate a problem squaring a number close to 100 or 1000 (e.g., 93^2, 104^2, 996^2).",
	},
	"urdhva": {
		Kind:     KindVerticalCrosswise,
		Fragment: "Generate a multiplication problem of two random 2-digit numbers (e.g., 23 * 41) that demonstrates the 'vertically and crosswise' method.",
	},
	"antyayor": {
		Kind:     KindLastDigitsSumTen,
		Fragment: "Generate a multiplication problem where the last digits sum to 10 and the initial digits are the same (e.g., 64 * 66).",
	},
	"paravartya": {
		Kind:     KindTransposeDivision,
		Fragment: "Generate a division problem whose divisor is slightly above a power of 10 (e.g., 1344 / 112) and that divides exactly, so the answer is a whole number.",
	},
	"sankalana": {
		Kind:     KindSimultaneous,
		Fragment: "Generate a pair of simultaneous linear equations where the x and y coefficients are swapped (e.g., 45x + 23y = 113, 23x + 45y = 91) and ask for the value of x.",
	},
	"vilokanam": {
		Kind:     KindCubeRoot,
		Fragment: "Generate a problem asking for the cube root of a perfect cube with up to 6 digits (e.g., the cube root of 175616).",
	},
	"anurupyena": {
		Kind:     KindCube,
		Fragment: "Generate a problem asking for the cube of a 2-digit number (e.g., 13^3, 21^3).",
	},
	"shunyam": {
		Kind:     KindSumIsZero,
		Fragment: "Generate a linear equation with a common factor on both sides that is solved by setting that factor to zero (e.g., 7(x + 3) = 4(x + 3)) and ask for x.",
	},
}

// InstructionFor returns the instruction for a technique ID, or Generic
// when the ID has none.
func InstructionFor(id string) Instruction {
	if in, ok := instructions[id]; ok {
		return in
	}
	return Generic
}
