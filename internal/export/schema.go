package export

// sessionSchema validates session documents on import. It mirrors the JSON
// shape of session.Session; unknown top-level fields are rejected so stale
// or foreign exports fail loudly instead of half-loading.
var sessionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":                map[string]any{"type": "string", "minLength": 1},
		"userId":            map[string]any{"type": "string"},
		"gradeLevel":        map[string]any{"type": "string", "minLength": 1},
		"semester":          map[string]any{"type": "string"},
		"totalStudySeconds": map[string]any{"type": "integer", "minimum": 1},
		"totalPages":        map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
		"concepts": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string", "minLength": 1},
		},
		"pages": map[string]any{
			"type":  "array",
			"items": pageSchema,
		},
		"createdAt": map[string]any{"type": "string", "format": "date-time"},
	},
	"required":             []any{"id", "gradeLevel", "totalStudySeconds", "totalPages", "concepts", "createdAt"},
	"additionalProperties": false,
}

var pageSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"number":      map[string]any{"type": "integer", "minimum": 1},
		"presentedAt": map[string]any{"type": "string", "format": "date-time"},
		"submittedAt": map[string]any{"type": "string", "format": "date-time"},
		"problems": map[string]any{
			"type":  "array",
			"items": problemSchema,
		},
	},
	"required":             []any{"number", "presentedAt", "problems"},
	"additionalProperties": false,
}

var problemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"number":           map[string]any{"type": "integer", "minimum": 1},
		"question":         map[string]any{"type": "string", "minLength": 1},
		"answer":           map[string]any{"type": "string", "minLength": 1},
		"subcategory":      map[string]any{"type": "string", "minLength": 1},
		"difficulty":       map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
		"estimatedSeconds": map[string]any{"type": "number", "minimum": 0},
		"attempts": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"answer": map[string]any{"type": "string"},
					"at":     map[string]any{"type": "string", "format": "date-time"},
				},
				"required":             []any{"answer", "at"},
				"additionalProperties": false,
			},
		},
		"score": map[string]any{"type": "integer", "minimum": 0},
	},
	"required":             []any{"number", "question", "answer", "subcategory", "difficulty", "estimatedSeconds", "score"},
	"additionalProperties": false,
}
