package tools

import (
	"encoding/json"
	"os"

	"github.com/nathanhack/qecc/css"
)

// LoadCode reads a JSON serialized CSS code from the named file.
func LoadCode(name string) (*css.Code, error) {
	bs, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var code css.Code
	if err := json.Unmarshal(bs, &code); err != nil {
		return nil, err
	}
	return &code, nil
}
