package configfile

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergm/paramreg"
)

var paramGroupRe = regexp.MustCompile(`\(([^()]*)\)`)

// setKeys names the four keywords whose value is a brace-delimited term
// set rather than a scalar, per spec.md §6.
var setKeys = map[string]bool{
	"structparams":          true,
	"attrparams":            true,
	"dyadicparams":          true,
	"attrinteractionparams": true,
}

// Parse reads one configuration file, splitting it into statements at
// brace depth zero so that a set value may span several lines, stripping
// "#" comments, and routing each keyword to either Config.Values or one of
// the four ParamEntry slices.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{Values: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	var stmt strings.Builder
	depth := 0
	lineNo := 0

	flush := func() error {
		s := strings.TrimSpace(stmt.String())
		stmt.Reset()
		if s == "" {
			return nil
		}
		return applyStatement(cfg, s)
	}

	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		if strings.TrimSpace(line) == "" && depth == 0 {
			continue
		}
		stmt.WriteByte(' ')
		stmt.WriteString(line)
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth < 0 {
			return nil, fmt.Errorf("configfile: line %d: unbalanced '}'", lineNo)
		}
		if depth == 0 {
			if err := flush(); err != nil {
				return nil, fmt.Errorf("configfile: line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if depth != 0 {
		return nil, fmt.Errorf("configfile: unterminated '{' near EOF")
	}
	return cfg, nil
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

func applyStatement(cfg *Config, stmt string) error {
	parts := strings.SplitN(stmt, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("expected 'key = value', got %q", stmt)
	}
	key := strings.ToLower(strings.TrimSpace(parts[0]))
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return fmt.Errorf("empty keyword")
	}

	if setKeys[key] {
		entries, err := parseParamSet(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		switch key {
		case "structparams":
			cfg.StructParams = entries
		case "attrparams":
			cfg.AttrParams = entries
		case "dyadicparams":
			cfg.DyadicParams = entries
		case "attrinteractionparams":
			cfg.AttrInteractionParams = entries
		}
		return nil
	}

	cfg.Values[key] = unquote(value)
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseParamSet parses a brace-delimited term set, e.g.
// "{Arc = -4.0, Reciprocity = 2.1, AltKTrianglesT(2.5) = 0.8}".
func parseParamSet(raw string) ([]ParamEntry, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		return nil, fmt.Errorf("expected '{...}', got %q", raw)
	}
	body := raw[1 : len(raw)-1]
	tokens := splitTopLevelCommas(body)

	entries := make([]ParamEntry, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		entry, err := parseParamEntry(tok)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", tok, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// splitTopLevelCommas splits on commas that are not nested inside a
// parenthesised argument list, so "GeoDistance(lat, long)" stays one token.
func splitTopLevelCommas(s string) []string {
	var tokens []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				tokens = append(tokens, s[start:i])
				start = i + 1
			}
		}
	}
	tokens = append(tokens, s[start:])
	return tokens
}

// parseParamEntry parses one term token, e.g. "Sender(gender)",
// "AltKTrianglesT(2.5) = 0.8", or "GeoDistance(lat, long)". Parenthesised
// groups that parse as a float become the term's Lambda; any other group
// is read as one or two comma-separated attribute names.
func parseParamEntry(tok string) (ParamEntry, error) {
	lhs := tok
	var entry ParamEntry
	if eq := strings.IndexByte(tok, '='); eq >= 0 {
		lhs = tok[:eq]
		initVal, err := strconv.ParseFloat(strings.TrimSpace(tok[eq+1:]), 64)
		if err != nil {
			return entry, fmt.Errorf("initial theta: %w", err)
		}
		entry.InitialTheta = initVal
		entry.HasInitial = true
	}
	lhs = strings.TrimSpace(lhs)

	name := lhs
	if paren := strings.IndexByte(lhs, '('); paren >= 0 {
		name = strings.TrimSpace(lhs[:paren])
	}
	if name == "" {
		return entry, fmt.Errorf("missing term name")
	}

	spec := paramreg.TermSpec{Name: name}
	groups := paramGroupRe.FindAllStringSubmatch(lhs, -1)
	for _, g := range groups {
		content := strings.TrimSpace(g[1])
		if content == "" {
			continue
		}
		if f, err := strconv.ParseFloat(content, 64); err == nil {
			spec.Lambda = f
			continue
		}
		args := strings.Split(content, ",")
		if len(args) >= 1 {
			spec.Attr1 = strings.TrimSpace(args[0])
		}
		if len(args) >= 2 {
			spec.Attr2 = strings.TrimSpace(args[1])
		}
	}
	entry.Spec = spec
	return entry, nil
}
