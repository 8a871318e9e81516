package normalize

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodePayload reads a standings document into an untyped tree.
// Numbers stay json.Number so integer coercion is exact.
func DecodePayload(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	payload, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("standings payload: %w", errNotObject)
	}
	return payload, nil
}
