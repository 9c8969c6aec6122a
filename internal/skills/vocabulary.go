package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed vocab.json
var vocabJSON []byte

// vocabFile supports both a flat list and {"skills": [...]}.
type vocabFile struct {
	Skills []string `json:"skills"`
}

// LoadVocabulary parses a skills vocabulary document.
func LoadVocabulary(data []byte) ([]string, error) {
	var flat []string
	if err := json.Unmarshal(data, &flat); err == nil {
		return cleanVocabulary(flat), nil
	}

	var wrapped vocabFile
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse skills vocabulary: %w", err)
	}
	return cleanVocabulary(wrapped.Skills), nil
}

// DefaultVocabulary returns the embedded skills vocabulary.
func DefaultVocabulary() []string {
	vocab, err := LoadVocabulary(vocabJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded skills vocabulary is invalid: %v", err))
	}
	return vocab
}

func cleanVocabulary(in []string) []string {
	if in == nil {
		return []string{}
	}
	return Dedupe(in)
}
