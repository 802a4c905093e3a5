// Package export serializes sessions to a validated JSON document so they
// can be moved between machines or inspected with standard tooling.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/vinciapp/vinci/internal/grades"
	"github.com/vinciapp/vinci/internal/session"
)

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles the session schema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		b, err := json.Marshal(sessionSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://session.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Export writes the session as indented JSON.
func Export(s *session.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return nil
}

// Import reads a session document, validates it against the session schema,
// and decodes it. Documents with unknown fields, missing required fields, or
// an unsupported grade are rejected.
func Import(r io.Reader) (*session.Session, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read session document: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("session document rejected: %w", err)
	}

	var s session.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if _, err := grades.Parse(string(s.GradeLevel)); err != nil {
		return nil, err
	}
	return &s, nil
}
