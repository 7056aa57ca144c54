package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// stripFences removes markdown code-fence wrappers from model output.
// Handles both ```json and bare ``` fences anywhere in the text.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ExtractJSON parses model output into a generic JSON object, recovering
// from the usual LLM formatting sins in order:
//
//  1. strip markdown fences and parse directly
//  2. parse the substring between the first '{' and the last '}'
//  3. run the text through jsonrepair and parse the result
//
// Returns ErrParse when every step fails.
func ExtractJSON(text string) (map[string]any, error) {
	clean := stripFences(text)

	var out map[string]any
	directErr := json.Unmarshal([]byte(clean), &out)
	if directErr == nil {
		return out, nil
	}

	if start, end := strings.Index(clean, "{"), strings.LastIndex(clean, "}"); start != -1 && end > start {
		inner := clean[start : end+1]
		if err := json.Unmarshal([]byte(inner), &out); err == nil {
			return out, nil
		}
		clean = inner
	}

	repaired, err := jsonrepair.JSONRepair(clean)
	if err == nil {
		if err := json.Unmarshal([]byte(repaired), &out); err == nil {
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrParse, directErr)
}
