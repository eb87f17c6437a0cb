package commands

import (
	"encoding/json"
	"fmt"
)

// renderJSON prints v as indented JSON
func renderJSON(v any) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}

	fmt.Println(string(jsonBytes))
}
