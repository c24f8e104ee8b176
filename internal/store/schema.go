package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema constrains the persisted state document. It checks the
// structural contract external consumers rely on (field names, types,
// enumerated values) without forbidding unknown extra fields.
const documentSchema = `{
  "type": "object",
  "required": ["study_plans"],
  "properties": {
    "study_plans": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["plan_id", "created_at", "subject", "goal", "total_days", "daily_hours", "difficulty_level", "sessions"],
        "properties": {
          "plan_id": {"type": "string", "minLength": 1},
          "created_at": {"type": "string"},
          "subject": {"type": "string"},
          "goal": {"enum": ["exam_prep", "skill_building", "quick_review", "deep_mastery"]},
          "exam_date": {"type": ["string", "null"]},
          "total_days": {"type": "integer", "minimum": 1},
          "daily_hours": {"type": "number", "exclusiveMinimum": 0},
          "difficulty_level": {"enum": ["beginner", "intermediate", "advanced", "expert"]},
          "sessions": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["date", "time_slot", "duration_minutes", "topic"],
              "properties": {
                "date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
                "time_slot": {"type": "string"},
                "duration_minutes": {"type": "integer", "minimum": 1},
                "topic": {"type": "string"},
                "difficulty": {"enum": ["beginner", "intermediate", "advanced", "expert"]},
                "breaks": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "required": ["after_minutes", "duration_minutes", "type"],
                    "properties": {
                      "after_minutes": {"type": "integer"},
                      "duration_minutes": {"type": "integer"},
                      "type": {"enum": ["short", "long"]}
                    }
                  }
                },
                "completed": {"type": "boolean"},
                "notes": {"type": "string"},
                "completed_at": {"type": ["string", "null"]}
              }
            }
          },
          "milestones": {"type": "array"},
          "weekly_reviews": {"type": "array", "items": {"type": "string"}},
          "adaptive_recommendations": {"type": "array", "items": {"type": "string"}},
          "motivational_tips": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks raw state-file bytes against the document
// schema before they are decoded into domain types.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getDocumentSchema()
	if err != nil {
		return fmt.Errorf("compile document schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("state document validation failed: %w", err)
	}
	return nil
}

// getDocumentSchema compiles the schema once and caches it.
func getDocumentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://state-document.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
