package routefile

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the route file format.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(&File{})

	schema.ID = "https://github.com/bnema/riblet/routes.schema.json"
	schema.Title = "Riblet Route Table"
	schema.Description = "Ordered route table mapping navigation targets to builders"
	return schema
}

// SchemaJSON returns Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
