package regex

// token is one node of the compiled pattern. The set of variants is
// closed; the matcher switches on the concrete type.
type token interface{}

type literalToken struct{ char rune }
type digitToken struct{}
type wordToken struct{}
type wildcardToken struct{}
type charClassToken struct {
	set     map[rune]bool
	negated bool
}
type endAnchorToken struct{}
type quantifierToken struct {
	inner    token
	min, max int // max<0 means “infinite”
}
type alternationToken struct{ left, right []token }
type groupToken struct {
	body []token
	id   int // 1-based, assigned left to right by opening paren
}
type backrefToken struct{ id int }
