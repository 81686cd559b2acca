package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// WorkflowScripts are the package.json script entries the setup routine
// maintains so the workflow commands stay discoverable via the package manager.
var WorkflowScripts = map[string]string{
	"git:release":  "relgate release",
	"git:hotfix":   "relgate hotfix",
	"git:ship":     "relgate ship",
	"git:promote":  "relgate promote",
	"git:rulesets": "relgate rulesets",
	"git:doctor":   "relgate doctor",
}

// PatchResult reports what an idempotent patch operation changed
type PatchResult struct {
	Added   []string
	Present []string
}

// Changed reports whether the patch added anything
func (r PatchResult) Changed() bool {
	return len(r.Added) > 0
}

// EnsurePackageScripts adds any missing workflow script entries to the
// package.json in repoRoot. Existing entries are never overwritten and the
// file's key order is preserved, so re-running is a no-op that reports
// everything as present. A missing package.json is not an error: the
// repository simply has no script surface to patch.
func EnsurePackageScripts(repoRoot string) (PatchResult, error) {
	path := filepath.Join(repoRoot, "package.json")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return PatchResult{}, nil
	}
	if err != nil {
		return PatchResult{}, fmt.Errorf("failed to read package.json: %w", err)
	}

	doc, err := parseOrderedObject(data)
	if err != nil {
		return PatchResult{}, fmt.Errorf("failed to parse package.json: %w", err)
	}

	scripts := newOrderedObject()
	if raw, ok := doc.get("scripts"); ok {
		scripts, err = parseOrderedObject(raw)
		if err != nil {
			return PatchResult{}, fmt.Errorf("failed to parse package.json scripts: %w", err)
		}
	}

	var result PatchResult
	for _, name := range sortedScriptNames() {
		if _, ok := scripts.get(name); ok {
			result.Present = append(result.Present, name)
			continue
		}
		command, err := json.Marshal(WorkflowScripts[name])
		if err != nil {
			return PatchResult{}, fmt.Errorf("failed to marshal script %s: %w", name, err)
		}
		scripts.set(name, command)
		result.Added = append(result.Added, name)
	}

	if !result.Changed() {
		return result, nil
	}

	doc.set("scripts", scripts.compact())

	if err := os.WriteFile(path, doc.render(), 0644); err != nil {
		return PatchResult{}, fmt.Errorf("failed to write package.json: %w", err)
	}

	return result, nil
}

func sortedScriptNames() []string {
	names := make([]string, 0, len(WorkflowScripts))
	for name := range WorkflowScripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// orderedObject is a JSON object that remembers its key order, so patching
// package.json never reshuffles the user's file.
type orderedObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func newOrderedObject() *orderedObject {
	return &orderedObject{values: map[string]json.RawMessage{}}
}

func parseOrderedObject(data []byte) (*orderedObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	obj := newOrderedObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		obj.set(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func (o *orderedObject) get(key string) (json.RawMessage, bool) {
	raw, ok := o.values[key]
	return raw, ok
}

// set replaces the value of an existing key in place, or appends a new key
func (o *orderedObject) set(key string, value json.RawMessage) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// compact serializes the object on one line, for embedding as a raw value
func (o *orderedObject) compact() json.RawMessage {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		keyJSON, _ := json.Marshal(key)
		b.Write(keyJSON)
		b.WriteByte(':')
		b.Write(o.values[key])
	}
	b.WriteByte('}')
	return b.Bytes()
}

// render serializes the object with two-space indentation and a trailing
// newline, matching npm's own formatting.
func (o *orderedObject) render() []byte {
	var b bytes.Buffer
	b.WriteString("{\n")
	for i, key := range o.keys {
		b.WriteString("  ")
		keyJSON, _ := json.Marshal(key)
		b.Write(keyJSON)
		b.WriteString(": ")

		var value bytes.Buffer
		if err := json.Indent(&value, o.values[key], "  ", "  "); err != nil {
			value.Reset()
			value.Write(o.values[key])
		}
		b.Write(value.Bytes())

		if i < len(o.keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.Bytes()
}
