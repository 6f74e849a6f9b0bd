package theories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Document is the static pipeline reference served by the backend
type Document struct {
	Automaton  string     `json:"automaton"`
	Grammar    string     `json:"grammar"`
	TokenTypes Categories `json:"token_types"`
}

// Category is one entry of the token taxonomy: either a list of token names or a description
type Category struct {
	Name        string
	Tokens      []string
	IsList      bool
	Description string
}

// Categories keeps the order of the token_types object
type Categories []Category

func (c *Categories) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = nil
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	tok, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("token_types: expecting object, got %v", tok)
	}

	var ret Categories
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("token_types: bad key %v", tok)
		}
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return fmt.Errorf("token_types: %s: %w", name, err)
		}
		ret = append(ret, newCategory(name, raw))
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}

	*c = ret
	return nil
}

func newCategory(name string, raw json.RawMessage) Category {
	category := Category{
		Name: name,
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		category.Tokens = list
		category.IsList = true
		return category
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		category.Description = str
		return category
	}
	// anything else is shown as is
	category.Description = string(raw)
	return category
}

// Fetch loads the Document, once per session
type Fetch func(ctx context.Context) (*Document, error)
