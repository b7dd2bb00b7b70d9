package game

// Defaults for the home row game.
const (
	DefaultRow     = "ASDFGHJKL"
	DefaultSingles = "ASDFGHJKL"
	DefaultTriples = "DFG,FGH,GHJ,HJK,JKL,ASD,SDF"
)
