package theories

import (
	"encoding/json"
	"testing"
)

const theoryBody = `{
	"automaton": "digraph { A -> B [label=\"x\"]; }",
	"grammar": "programme -> main { instructions }",
	"token_types": {
		"keywords": ["main", "nombre", "afficher"],
		"identifiers": "a letter followed by letters or digits",
		"operators": ["+", "-"],
		"weights": 3
	}
}`

func TestDecodeDocument(t *testing.T) {
	var document Document
	if err := json.Unmarshal([]byte(theoryBody), &document); err != nil {
		t.Fatal(err)
	}
	if document.Grammar != "programme -> main { instructions }" {
		t.Fatalf("got %q", document.Grammar)
	}

	var names []string
	for _, category := range document.TokenTypes {
		names = append(names, category.Name)
	}
	if len(names) != 4 ||
		names[0] != "keywords" ||
		names[1] != "identifiers" ||
		names[2] != "operators" ||
		names[3] != "weights" {
		t.Fatalf("got %v", names)
	}

	keywords := document.TokenTypes[0]
	if !keywords.IsList || len(keywords.Tokens) != 3 || keywords.Tokens[1] != "nombre" {
		t.Fatalf("got %+v", keywords)
	}
	identifiers := document.TokenTypes[1]
	if identifiers.IsList || identifiers.Description != "a letter followed by letters or digits" {
		t.Fatalf("got %+v", identifiers)
	}
	weights := document.TokenTypes[3]
	if weights.IsList || weights.Description != "3" {
		t.Fatalf("got %+v", weights)
	}
}

func TestDecodeCategoriesNotObject(t *testing.T) {
	var categories Categories
	if err := json.Unmarshal([]byte(`["a"]`), &categories); err == nil {
		t.Fatal("should fail")
	}
	if err := json.Unmarshal([]byte(`null`), &categories); err != nil {
		t.Fatal(err)
	}
	if categories != nil {
		t.Fatalf("got %v", categories)
	}
}
