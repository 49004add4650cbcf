// Package secretscan flags hardcoded secrets by walking Go syntax trees,
// matching assignment and call-expression shapes against a sensitive-name
// keyword set.
package secretscan

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/dbsmedya/repolint/internal/config"
	"github.com/dbsmedya/repolint/internal/findings"
	"github.com/dbsmedya/repolint/internal/logger"
)

// Scanner detects string literals that look like real secrets bound to
// sensitive-sounding names. It fails closed: unreadable or unparsable input
// produces no findings and no error.
type Scanner struct {
	keywords     map[string]bool
	constructors map[string]bool
	placeholders map[string]bool
	minLength    int
	logger       *logger.Logger
}

// NewScanner creates a scanner from configuration.
func NewScanner(cfg config.SecretsConfig, log *logger.Logger) (*Scanner, error) {
	if len(cfg.Keywords) == 0 {
		return nil, fmt.Errorf("keyword set is empty")
	}
	if cfg.MinLength <= 0 {
		return nil, fmt.Errorf("min length must be positive")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	keywords := make(map[string]bool, len(cfg.Keywords))
	for _, k := range cfg.Keywords {
		keywords[strings.ToLower(k)] = true
	}
	constructors := make(map[string]bool, len(cfg.Constructors))
	for _, c := range cfg.Constructors {
		constructors[c] = true
	}
	placeholders := make(map[string]bool, len(cfg.Placeholders))
	for _, p := range cfg.Placeholders {
		placeholders[strings.ToLower(p)] = true
	}

	return &Scanner{
		keywords:     keywords,
		constructors: constructors,
		placeholders: placeholders,
		minLength:    cfg.MinLength,
		logger:       log.WithCheck("secrets"),
	}, nil
}

// ScanFile parses src as a Go source file and returns findings for literal
// secrets. Parse failures are swallowed: a file we cannot parse contributes
// nothing to the scan.
func (s *Scanner) ScanFile(path string, src []byte) []findings.Finding {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		s.logger.WithFile(path).Debugw("skipping unparsable file", "error", err)
		return nil
	}

	var results []findings.Finding
	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.AssignStmt:
			results = append(results, s.checkAssign(fset, path, node)...)
		case *ast.ValueSpec:
			results = append(results, s.checkValueSpec(fset, path, node)...)
		case *ast.CallExpr:
			results = append(results, s.checkCall(fset, path, node)...)
		}
		return true
	})

	return results
}

// checkAssign inspects `name = value` and `name := value` statements.
func (s *Scanner) checkAssign(fset *token.FileSet, path string, stmt *ast.AssignStmt) []findings.Finding {
	var results []findings.Finding
	for i, lhs := range stmt.Lhs {
		if i >= len(stmt.Rhs) {
			break
		}
		name, ok := targetName(lhs)
		if !ok || !s.keywords[strings.ToLower(name)] {
			continue
		}
		if f, flagged := s.checkValue(fset, path, name, stmt.Rhs[i]); flagged {
			results = append(results, f)
		}
	}
	return results
}

// checkValueSpec inspects `var name = value` declarations.
func (s *Scanner) checkValueSpec(fset *token.FileSet, path string, spec *ast.ValueSpec) []findings.Finding {
	var results []findings.Finding
	for i, ident := range spec.Names {
		if i >= len(spec.Values) {
			break
		}
		if !s.keywords[strings.ToLower(ident.Name)] {
			continue
		}
		if f, flagged := s.checkValue(fset, path, ident.Name, spec.Values[i]); flagged {
			results = append(results, f)
		}
	}
	return results
}

// checkCall inspects constructor-like calls. Composite-literal arguments are
// checked field by field; a lone string-literal argument is attributed to the
// callee itself.
func (s *Scanner) checkCall(fset *token.FileSet, path string, call *ast.CallExpr) []findings.Finding {
	callee, ok := calleeName(call.Fun)
	if !ok || !s.constructors[callee] {
		return nil
	}

	var results []findings.Finding
	for _, arg := range call.Args {
		switch a := arg.(type) {
		case *ast.CompositeLit:
			for _, elt := range a.Elts {
				kv, ok := elt.(*ast.KeyValueExpr)
				if !ok {
					continue
				}
				key, ok := targetName(kv.Key)
				if !ok || !s.keywords[strings.ToLower(key)] {
					continue
				}
				if f, flagged := s.checkValue(fset, path, key, kv.Value); flagged {
					results = append(results, f)
				}
			}
		case *ast.BasicLit:
			if f, flagged := s.checkValue(fset, path, callee, a); flagged {
				results = append(results, f)
			}
		}
	}
	return results
}

// checkValue applies the literal heuristic to a bound value. Dynamic values
// (calls, selector lookups, identifiers) are never flagged.
func (s *Scanner) checkValue(fset *token.FileSet, path, name string, value ast.Expr) (findings.Finding, bool) {
	lit, ok := value.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return findings.Finding{}, false
	}

	text, err := strconv.Unquote(lit.Value)
	if err != nil {
		return findings.Finding{}, false
	}
	if !s.looksLikeSecret(text) {
		return findings.Finding{}, false
	}

	line := fset.Position(lit.Pos()).Line
	return findings.Finding{
		Check:    "secrets",
		Rule:     "hardcoded-literal",
		File:     path,
		Line:     line,
		Name:     name,
		Sample:   Sample(text),
		Severity: findings.SeverityError,
		Message:  fmt.Sprintf("%q bound to a string literal that looks like a secret (sample %s)", name, Sample(text)),
	}, true
}

// looksLikeSecret is the heuristic for "real token" versus human-readable
// label: non-empty, not a known placeholder, long enough, and free of
// whitespace.
func (s *Scanner) looksLikeSecret(value string) bool {
	if value == "" {
		return false
	}
	if s.placeholders[strings.ToLower(value)] {
		return false
	}
	if len(value) < s.minLength {
		return false
	}
	for _, r := range value {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Sample returns the first six characters of a secret followed by an
// ellipsis. The full value never appears in output.
func Sample(value string) string {
	runes := []rune(value)
	if len(runes) > 6 {
		runes = runes[:6]
	}
	return string(runes) + "…"
}

// targetName resolves the bound name of an assignment target: a plain
// identifier or the rightmost component of an attribute access.
func targetName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, true
	case *ast.SelectorExpr:
		return e.Sel.Name, true
	}
	return "", false
}

// calleeName resolves the called function's name for plain and selector calls.
func calleeName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, true
	case *ast.SelectorExpr:
		return e.Sel.Name, true
	}
	return "", false
}
