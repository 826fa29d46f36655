package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/plateful/recipe-search/internal/db"
	"github.com/plateful/recipe-search/internal/domain/search/query"
)

// Search runs a composed query via FT.SEARCH. Relevance-ordered queries
// use WITHSCORES; field-ordered queries use SORTBY and carry no scores.
func (s *Store) Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
	if q.Index == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Query == nil {
		return nil, fmt.Errorf("query is required")
	}

	queryStr := buildQueryString(q.Query)
	args := []string{q.Index, queryStr}

	withScores := q.Query.ByRelevance()
	if withScores {
		args = append(args, "WITHSCORES")
	} else {
		order := "ASC"
		if q.Query.Sort.Desc {
			order = "DESC"
		}
		args = append(args, "SORTBY", q.Query.Sort.Field, order)
	}

	args = append(args,
		"LIMIT", strconv.Itoa(q.Query.Offset), strconv.Itoa(q.Query.Limit),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	if withScores {
		return parseScoredResult(raw)
	}
	return parseSortedResult(raw)
}

// buildQueryString renders the filter conjunction plus the optional
// scoring clause into FT.SEARCH query syntax.
func buildQueryString(q *query.Query) string {
	var parts []string

	for _, c := range q.Filters {
		if s := compileClause(c); s != "" {
			parts = append(parts, s)
		}
	}

	if q.Scoring != nil {
		if s := compileText(*q.Scoring); s != "" {
			parts = append(parts, s)
		}
	}

	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}

// compileClause translates one predicate clause into query syntax.
func compileClause(c query.Clause) string {
	switch cl := c.(type) {
	case query.Tag:
		return fmt.Sprintf("@%s:{%s}", cl.Field, tagEscaper.Replace(cl.Value))

	case query.NumEq:
		return fmt.Sprintf("@%s:[%d %d]", cl.Field, cl.Value, cl.Value)

	case query.NumIn:
		return compileNumIn(cl)

	case query.NumRange:
		return compileNumRange(cl)

	case query.Text:
		return compileText(cl)

	case query.Bool:
		return compileBool(cl)
	}
	return ""
}

// compileNumIn renders set membership as a union of exact numeric ranges.
// An empty set fails closed: it must admit nothing.
func compileNumIn(cl query.NumIn) string {
	if len(cl.Values) == 0 {
		return fmt.Sprintf("@%s:[+inf -inf]", cl.Field)
	}
	parts := make([]string, 0, len(cl.Values))
	for _, v := range cl.Values {
		parts = append(parts, fmt.Sprintf("@%s:[%d %d]", cl.Field, v, v))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, "|") + ")"
}

func compileNumRange(cl query.NumRange) string {
	minBound := "-inf"
	maxBound := "+inf"
	if cl.GTE != nil {
		minBound = strconv.FormatFloat(*cl.GTE, 'g', -1, 64)
	}
	if cl.LTE != nil {
		maxBound = strconv.FormatFloat(*cl.LTE, 'g', -1, 64)
	}
	return fmt.Sprintf("@%s:[%s %s]", cl.Field, minBound, maxBound)
}

// compileText renders the fuzzy multi-field match. Each token is matched
// with Levenshtein distance 1; tokens are OR-combined like the upstream
// multi-match semantics.
func compileText(cl query.Text) string {
	tokens := strings.Fields(cl.Query)
	fuzzy := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		escaped := queryEscaper.Replace(tok)
		if escaped == "" {
			continue
		}
		fuzzy = append(fuzzy, "%"+escaped+"%")
	}
	if len(fuzzy) == 0 || len(cl.Fields) == 0 {
		return ""
	}
	return fmt.Sprintf("@%s:(%s)", strings.Join(cl.Fields, "|"), strings.Join(fuzzy, "|"))
}

func compileBool(cl query.Bool) string {
	var parts []string

	for _, c := range cl.Must {
		if s := compileClause(c); s != "" {
			parts = append(parts, s)
		}
	}

	if group := compileShouldGroup(cl.Should); group != "" {
		parts = append(parts, group)
	}

	for _, c := range cl.MustNot {
		if s := compileClause(c); s != "" {
			parts = append(parts, "-("+s+")")
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func compileShouldGroup(conditions []query.Clause) string {
	if len(conditions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(conditions))
	for _, c := range conditions {
		if s := compileClause(c); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, "|") + ")"
}

// --- Result parsing ---

// parseScoredResult parses a WITHSCORES reply.
// 3-stride: [total, key1, score1, fields1, key2, score2, fields2, ...]
func parseScoredResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, total)
	for i := 1; i+2 < len(raw); i += 3 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		scoreStr, err := raw[i+1].ToString()
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			continue
		}

		fields, err := raw[i+2].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:      key,
			Score:    score,
			HasScore: true,
			Fields:   parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

// parseSortedResult parses a SORTBY reply.
// 2-stride: [total, key1, fields1, key2, fields2, ...]
func parseSortedResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, total)
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    key,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Escaping ---

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
	`:`, `\:`,
)
