package parser

// Operator precedence levels, loosest binding first. The table below is
// the single authority the expression parser consults; the grammar has
// no per-level productions.
const (
	precNone = iota
	precAssign
	precOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precUnary
	precPostfix
)

type opInfo struct {
	prec       int
	rightAssoc bool
	kind       NodeKind
}

var binaryOps = map[TokenKind]opInfo{
	TokenAssign:  {precAssign, true, KindAssignment},
	TokenOr:      {precOr, false, KindLogicalOr},
	TokenAnd:     {precAnd, false, KindLogicalAnd},
	TokenEQ:      {precEquality, false, KindEqual},
	TokenNE:      {precEquality, false, KindNotEqual},
	TokenLT:      {precRelational, false, KindLess},
	TokenLE:      {precRelational, false, KindLessEqual},
	TokenGT:      {precRelational, false, KindGreater},
	TokenGE:      {precRelational, false, KindGreaterEqual},
	TokenPlus:    {precAdditive, false, KindAdd},
	TokenMinus:   {precAdditive, false, KindSubtract},
	TokenStar:    {precMultiplicative, false, KindMultiply},
	TokenSlash:   {precMultiplicative, false, KindDivide},
	TokenPercent: {precMultiplicative, false, KindMod},
}

// Dangling-else tie-break. An else-less if ranks below the else token,
// so a pending else is always shifted rather than the if reduced:
// else binds to the nearest unmatched if.
const (
	precIfNoElse = iota
	precElse
)

func shiftElse() bool {
	return precElse > precIfNoElse
}

// binaryOp looks up tok in the precedence table. Operators binding
// looser than minPrec are left for an enclosing call to consume.
func binaryOp(tok TokenKind, minPrec int) (opInfo, bool) {
	op, ok := binaryOps[tok]
	if !ok || op.prec < minPrec {
		return opInfo{}, false
	}
	return op, true
}
