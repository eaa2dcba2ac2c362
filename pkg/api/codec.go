package api

import (
	"encoding/json"
	"fmt"
)

// Codec is a Connect codec for plain Go message structs.
// It registers under the "json" name, so requests use application/json
// (unary) and application/connect+json (streaming) as usual.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
