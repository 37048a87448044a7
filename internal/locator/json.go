package locator

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// scannerFile is the element-scanner JSON layout: a top-level "locators"
// array of scanned elements.
type scannerFile struct {
	Locators []scannerEntry `json:"locators"`
}

type scannerEntry struct {
	CustomName   string `json:"custom_name"`
	LocatorValue string `json:"locator_value"`
	LocatorType  string `json:"locator_type"`
}

// simpleValue is one value of the simple key/value layout. A value may be a
// bare expression string or an object carrying variable and locator fields.
type simpleValue struct {
	Variable   string `json:"variable"`
	Locator    string `json:"locator"`
	Expression string `json:"expression"`
}

// ParseJSON parses a locators JSON file. Two layouts are supported: the
// scanner format ({"locators": [...]}) and the simple format mapping element
// names to expression strings or {variable, locator} objects.
//
// Declaration order is preserved so that registry insertion order — and with
// it the partial matcher's tie-break — is deterministic.
func ParseJSON(data []byte, fw Framework) (*Registry, error) {
	var probe struct {
		Locators json.RawMessage `json:"locators"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse locators JSON: %w", err)
	}
	if probe.Locators != nil {
		return parseScannerJSON(data, fw)
	}
	return parseSimpleJSON(data, fw)
}

func parseScannerJSON(data []byte, fw Framework) (*Registry, error) {
	var file scannerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse locators JSON: %w", err)
	}

	reg := NewRegistry()
	for _, sc := range file.Locators {
		normalized := Normalize(sc.CustomName)
		if normalized == "" {
			continue
		}
		reg.Add(Entry{
			RawName:    sc.CustomName,
			Normalized: normalized,
			Variable:   fw.Variable(sc.CustomName),
			Expression: fw.Expression(sc.LocatorType, sc.LocatorValue),
		})
	}
	return reg, nil
}

// parseSimpleJSON decodes the simple layout with a token-level decoder so
// that key order in the file is kept.
func parseSimpleJSON(data []byte, fw Framework) (*Registry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse locators JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse locators JSON: expected top-level object, got %v", tok)
	}

	reg := NewRegistry()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse locators JSON: %w", err)
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse locators JSON: value for %q: %w", key, err)
		}

		entry, ok := simpleEntry(key, raw, fw)
		if !ok {
			continue
		}
		reg.Add(entry)
	}
	return reg, nil
}

// simpleEntry builds an Entry from one simple-format key/value pair. Values
// that are neither strings nor objects are skipped.
func simpleEntry(key string, raw json.RawMessage, fw Framework) (Entry, bool) {
	normalized := Normalize(key)
	if normalized == "" {
		return Entry{}, false
	}

	var expr string
	if err := json.Unmarshal(raw, &expr); err == nil {
		return Entry{
			RawName:    key,
			Normalized: normalized,
			Variable:   fw.Variable(key),
			Expression: expr,
		}, true
	}

	var obj simpleValue
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Entry{}, false
	}
	variable := obj.Variable
	if variable == "" {
		variable = fw.Variable(key)
	}
	expression := obj.Locator
	if expression == "" {
		expression = obj.Expression
	}
	return Entry{
		RawName:    key,
		Normalized: normalized,
		Variable:   variable,
		Expression: expression,
	}, true
}
