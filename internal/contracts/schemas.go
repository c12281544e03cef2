package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		log.Fatalf("failed to read embedded schemas: %v", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		raw, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			log.Fatalf("failed to read schema %s: %v", name, err)
		}

		url := "mem://" + name
		if err := compiler.AddResource(url, strings.NewReader(string(raw))); err != nil {
			log.Fatalf("failed to add schema %s: %v", name, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			log.Fatalf("failed to compile schema %s: %v", name, err)
		}

		compiledSchemas[strings.TrimSuffix(name, ".json")] = schema
	}
}

// Validate проверяет тело запроса по схеме с указанным именем.
func Validate(name string, body []byte) error {
	schema, ok := compiledSchemas[name]
	if !ok {
		return fmt.Errorf("schema '%s' not found", name)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		// Невалидный JSON проверять по схеме бессмысленно
		return fmt.Errorf("request body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}
