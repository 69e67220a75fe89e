package mock

import (
	"math/rand"
	"regexp/syntax"
	"strings"

	"github.com/tableforge/tableforge/internal/model"
)

// maxUnboundedRepeat caps * + and open-ended {n,} quantifiers so generated
// values stay short.
const maxUnboundedRepeat = 10

// ruleGenerator treats the mock params as a regular expression and produces
// one matching string per row. The pattern is parsed once per field; a
// malformed pattern is a parse error reported at generation time.
type ruleGenerator struct{}

func (ruleGenerator) Generate(field model.Field, rowCount int) ([]string, error) {
	re, err := syntax.Parse(field.MockParams, syntax.Perl)
	if err != nil {
		return nil, model.ParseError(err, "field %q: invalid rule pattern %q", field.FieldName, field.MockParams)
	}
	values := make([]string, rowCount)
	for i := range values {
		var b strings.Builder
		genMatch(re, &b)
		values[i] = b.String()
	}
	return values, nil
}

// genMatch writes one string matching the parsed expression. Anchors and
// word boundaries contribute nothing; unbounded repetition is capped.
func genMatch(re *syntax.Regexp, b *strings.Builder) {
	switch re.Op {
	case syntax.OpLiteral:
		for _, r := range re.Rune {
			b.WriteRune(r)
		}
	case syntax.OpCharClass:
		if r, ok := pickRune(re.Rune); ok {
			b.WriteRune(r)
		}
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		// printable ASCII
		b.WriteRune(rune(32 + rand.Intn(95)))
	case syntax.OpCapture:
		genMatch(re.Sub[0], b)
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			genMatch(sub, b)
		}
	case syntax.OpAlternate:
		genMatch(re.Sub[rand.Intn(len(re.Sub))], b)
	case syntax.OpStar:
		repeat(re.Sub[0], rand.Intn(maxUnboundedRepeat+1), b)
	case syntax.OpPlus:
		repeat(re.Sub[0], 1+rand.Intn(maxUnboundedRepeat), b)
	case syntax.OpQuest:
		repeat(re.Sub[0], rand.Intn(2), b)
	case syntax.OpRepeat:
		max := re.Max
		if max < 0 {
			max = re.Min + maxUnboundedRepeat
		}
		repeat(re.Sub[0], re.Min+rand.Intn(max-re.Min+1), b)
	}
	// OpEmptyMatch, anchors, and boundaries produce nothing.
}

func repeat(re *syntax.Regexp, n int, b *strings.Builder) {
	for i := 0; i < n; i++ {
		genMatch(re, b)
	}
}

// pickRune draws uniformly from the rune ranges of a character class.
// Ranges come in [lo,hi] pairs.
func pickRune(ranges []rune) (rune, bool) {
	if len(ranges) < 2 {
		return 0, false
	}
	var total int64
	for i := 0; i < len(ranges)-1; i += 2 {
		total += int64(ranges[i+1]-ranges[i]) + 1
	}
	if total <= 0 {
		return 0, false
	}
	idx := rand.Int63n(total)
	for i := 0; i < len(ranges)-1; i += 2 {
		span := int64(ranges[i+1]-ranges[i]) + 1
		if idx < span {
			return ranges[i] + rune(idx), true
		}
		idx -= span
	}
	return 0, false
}
