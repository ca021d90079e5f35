package export

import (
	"encoding/json"
	"fmt"
)

// JSONRenderer writes the structured report as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Format() string      { return "json" }
func (JSONRenderer) ContentType() string { return "application/json" }
func (JSONRenderer) Extension() string   { return "json" }

func (JSONRenderer) Render(report Report) ([]byte, error) {
	body, err := json.MarshalIndent(report.Data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render %s as json: %w", report.Name, err)
	}
	return body, nil
}
