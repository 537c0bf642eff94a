package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/imago-cloud/mediasearch/internal/domain/search/alignment"
	"github.com/imago-cloud/mediasearch/internal/domain/search/match"
	"github.com/imago-cloud/mediasearch/internal/domain/search/request"
	"github.com/imago-cloud/mediasearch/internal/domain/search/sort"
)

// termBoost makes exact term matches outrank pure fuzzy matches while
// minimum_should_match=1 still lets fuzzy-only documents through.
const termBoost = 2.0

// buildSearchBody translates a validated request into the engine query
// document. Pure except for the warn log in the alignment default arm.
func buildSearchBody(req *request.Request, logger *zap.Logger) map[string]any {
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"should":               buildShouldClauses(req),
				"minimum_should_match": 1,
				"filter":               buildFilters(req, logger),
			},
		},
		"size": req.Limit(),
		"from": (req.Page() - 1) * req.Limit(),
		"sort": []any{
			map[string]any{
				req.SortBy().IndexField(): map[string]any{"order": string(req.OrderBy())},
			},
		},
	}
	return body
}

// buildShouldClauses emits one boosted term clause per requested field
// plus a single multi_match over all of them.
func buildShouldClauses(req *request.Request) []any {
	fields := req.Fields()

	clauses := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		clauses = append(clauses, map[string]any{
			"term": map[string]any{
				f.IndexField(): map[string]any{
					"value": req.Keyword(),
					"boost": termBoost,
				},
			},
		})
	}

	indexFields := make([]string, len(fields))
	for i, f := range fields {
		indexFields[i] = f.IndexField()
	}

	multi := map[string]any{
		"query":  req.Keyword(),
		"fields": indexFields,
		"type":   req.MatchType().EngineType(),
	}
	// Fuzziness is only valid for the field-centric match types.
	if t := req.MatchType(); t == match.Words || t == match.Most {
		multi["fuzziness"] = "AUTO"
	}
	clauses = append(clauses, map[string]any{"multi_match": multi})

	return clauses
}

// buildFilters assembles the range and alignment filter clauses, in
// date, height, width, alignment order.
func buildFilters(req *request.Request, logger *zap.Logger) []any {
	filters := make([]any, 0, 4)

	if f := buildRangeFilter(sort.Date.IndexField(), stringBound(req.DateFrom()), stringBound(req.DateTo())); f != nil {
		filters = append(filters, f)
	}
	if f := buildRangeFilter(sort.Height.IndexField(), intBound(req.HeightMin()), intBound(req.HeightMax())); f != nil {
		filters = append(filters, f)
	}
	if f := buildRangeFilter(sort.Width.IndexField(), intBound(req.WidthMin()), intBound(req.WidthMax())); f != nil {
		filters = append(filters, f)
	}
	if f := buildAlignmentFilter(req.Alignment(), logger); f != nil {
		filters = append(filters, f)
	}

	return filters
}

// buildRangeFilter emits a range clause with only the present bounds,
// or nil when neither bound is given.
func buildRangeFilter(indexField string, gte, lte any) map[string]any {
	rangeQuery := map[string]any{}
	if gte != nil {
		rangeQuery["gte"] = gte
	}
	if lte != nil {
		rangeQuery["lte"] = lte
	}
	if len(rangeQuery) == 0 {
		return nil
	}
	return map[string]any{"range": map[string]any{indexField: rangeQuery}}
}

// buildAlignmentFilter emits a script clause comparing width and height.
// Alignment is a closed enum rejected at parse time; the default arm
// guards against a future enum value reaching an old builder.
func buildAlignmentFilter(a alignment.Alignment, logger *zap.Logger) map[string]any {
	if !a.IsSet() {
		return nil
	}

	width := sort.Width.IndexField()
	height := sort.Height.IndexField()

	var source string
	switch a {
	case alignment.Landscape:
		source = fmt.Sprintf("doc['%s'].value > doc['%s'].value", width, height)
	case alignment.Portrait:
		source = fmt.Sprintf("doc['%s'].value > doc['%s'].value", height, width)
	case alignment.Square:
		source = fmt.Sprintf("doc['%s'].value == doc['%s'].value", height, width)
	default:
		logger.Warn("unknown alignment, omitting filter", zap.String("alignment", string(a)))
		return nil
	}

	return map[string]any{
		"script": map[string]any{
			"script": map[string]any{"source": source},
		},
	}
}

func stringBound(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func intBound(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
