package signedstate

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/invopop/jsonschema"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	nonceField   = "nonce"
	purposeField = "purpose"
	schemaURL    = "signedstate.json"
)

// compileSchema reflects the payload schema of v, appends the nonce and
// purpose properties and compiles the result.
func compileSchema(v any, purpose string) (*jschema.Schema, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	s := r.Reflect(v)

	if s.Properties == nil {
		s.Properties = jsonschema.NewProperties()
	}
	for _, name := range []string{nonceField, purposeField} {
		if _, exists := s.Properties.Get(name); exists {
			return nil, ErrReservedField
		}
	}

	minLen := uint64(1)
	s.Properties.Set(nonceField, &jsonschema.Schema{Type: "string", MinLength: &minLen})
	s.Properties.Set(purposeField, &jsonschema.Schema{Type: "string", Const: purpose})
	s.Required = append(s.Required, nonceField, purposeField)
	s.AdditionalProperties = jsonschema.FalseSchema

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Join(ErrSchema, err)
	}
	doc, err := jschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Join(ErrSchema, err)
	}

	c := jschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, errors.Join(ErrSchema, err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, errors.Join(ErrSchema, err)
	}
	return sch, nil
}
