package todo

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const taskListSchemaSrc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text"],
    "properties": {
      "id": {"type": "integer"},
      "text": {"type": "string", "pattern": "\\S"},
      "description": {"type": ["string", "null"]},
      "dueDate": {"type": ["string", "null"]},
      "completed": {"type": "boolean"},
      "createdAt": {"type": "string"}
    }
  }
}`

var taskListSchema = jsonschema.MustCompileString("tasks.schema.json", taskListSchemaSrc)

// decodeTasks parses and validates a persisted task list.
func decodeTasks(raw string) ([]Task, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parse: trailing data after task list")
	}
	if err := taskListSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	seen := make(map[int64]struct{}, len(tasks))
	for i, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("task %d: duplicate id %d", i, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func encodeTasks(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
