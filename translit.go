package cornell

import (
	"regexp"
	"sort"
	"strings"
)

// macroReplacement maps one LaTeX macro to its Unicode equivalent.
type macroReplacement struct {
	macro   string
	unicode string
}

// greekLetters maps LaTeX Greek letter macros to Unicode letters.
var greekLetters = []macroReplacement{
	{`\alpha`, "α"}, {`\beta`, "β"}, {`\gamma`, "γ"}, {`\delta`, "δ"},
	{`\epsilon`, "ε"}, {`\varepsilon`, "ε"}, {`\zeta`, "ζ"}, {`\eta`, "η"},
	{`\theta`, "θ"}, {`\iota`, "ι"}, {`\kappa`, "κ"}, {`\lambda`, "λ"},
	{`\mu`, "μ"}, {`\nu`, "ν"}, {`\xi`, "ξ"}, {`\pi`, "π"},
	{`\rho`, "ρ"}, {`\sigma`, "σ"}, {`\tau`, "τ"}, {`\upsilon`, "υ"},
	{`\phi`, "φ"}, {`\chi`, "χ"}, {`\psi`, "ψ"}, {`\omega`, "ω"},
	{`\Gamma`, "Γ"}, {`\Delta`, "Δ"}, {`\Theta`, "Θ"}, {`\Lambda`, "Λ"},
	{`\Xi`, "Ξ"}, {`\Pi`, "Π"}, {`\Sigma`, "Σ"}, {`\Phi`, "Φ"},
	{`\Psi`, "Ψ"}, {`\Omega`, "Ω"},
}

// mathSymbols maps LaTeX relation, arrow, and operator macros to Unicode.
var mathSymbols = []macroReplacement{
	{`\pm`, "±"}, {`\mp`, "∓"}, {`\times`, "×"}, {`\div`, "÷"},
	{`\leq`, "≤"}, {`\geq`, "≥"}, {`\neq`, "≠"}, {`\approx`, "≈"},
	{`\equiv`, "≡"}, {`\sim`, "∼"}, {`\propto`, "∝"},
	{`\rightarrow`, "→"}, {`\leftarrow`, "←"}, {`\Rightarrow`, "⇒"},
	{`\Leftarrow`, "⇐"}, {`\leftrightarrow`, "↔"},
	{`\infty`, "∞"}, {`\partial`, "∂"}, {`\nabla`, "∇"},
	{`\sum`, "∑"}, {`\prod`, "∏"}, {`\int`, "∫"},
}

// macroTable is the combined lookup, longest macro first so no macro is
// clobbered by a shorter one sharing a prefix.
var macroTable = func() []macroReplacement {
	table := make([]macroReplacement, 0, len(greekLetters)+len(mathSymbols))
	table = append(table, greekLetters...)
	table = append(table, mathSymbols...)
	sort.SliceStable(table, func(i, j int) bool {
		return len(table[i].macro) > len(table[j].macro)
	})
	return table
}()

// superscriptDigits maps ASCII digits to Unicode superscript runes.
var superscriptDigits = map[byte]string{
	'0': "⁰", '1': "¹", '2': "²", '3': "³", '4': "⁴",
	'5': "⁵", '6': "⁶", '7': "⁷", '8': "⁸", '9': "⁹",
}

// Structural math patterns handled after macro lookup.
var (
	bracedSubscript  = regexp.MustCompile(`([a-zA-Z])_\{([^}]+)\}`)
	simpleSubscript  = regexp.MustCompile(`([a-zA-Z])_([a-zA-Z0-9])`)
	digitSuperscript = regexp.MustCompile(`\^([0-9])`)
	fraction         = regexp.MustCompile(`\\frac\{([^}]+)\}\{([^}]+)\}`)
	squareRoot       = regexp.MustCompile(`\\sqrt\{([^}]+)\}`)
)

// transliterateMathContent rewrites the interior of one math span as plain
// Unicode text: Greek letters and symbol macros through the lookup tables,
// x_{y} and x_y to x[y], single-digit superscripts to superscript runes,
// \frac{a}{b} to (a)/(b), and \sqrt{x} to √x. Anything not covered passes
// through literally.
func transliterateMathContent(content string) string {
	for _, r := range macroTable {
		content = strings.ReplaceAll(content, r.macro, r.unicode)
	}

	content = bracedSubscript.ReplaceAllString(content, "$1[$2]")
	content = simpleSubscript.ReplaceAllString(content, "$1[$2]")

	content = digitSuperscript.ReplaceAllStringFunc(content, func(m string) string {
		return superscriptDigits[m[1]]
	})

	content = fraction.ReplaceAllString(content, "($1)/($2)")
	content = squareRoot.ReplaceAllString(content, "√$1")

	return content
}

// transliterateMath rewrites every math span in text for formats without a
// math engine. Delimiters are removed; inline span content is substituted in
// place, block span content is set off on its own lines. Literal text outside
// math spans is untouched.
func transliterateMath(text string) string {
	var b strings.Builder
	for _, s := range splitMathSpans(text) {
		switch {
		case s.math && s.display:
			b.WriteString("\n")
			b.WriteString(transliterateMathContent(strings.Trim(s.text, "$")))
			b.WriteString("\n")
		case s.math:
			b.WriteString(transliterateMathContent(strings.Trim(s.text, "$")))
		default:
			b.WriteString(s.text)
		}
	}
	return b.String()
}
