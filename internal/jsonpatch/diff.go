// Package jsonpatch computes RFC 6902 patches between decoded JSON
// documents.
package jsonpatch

import (
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Op is a single RFC 6902 operation. Value is omitted for removals.
type Op struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}

// Document round-trips v through JSON so it can be diffed.
func Document(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Diff computes the patch that transforms a into b. Both must be decoded
// JSON (maps, slices, primitives). Path is "" for the root document.
// Object keys are visited in sorted order so the output is stable.
func Diff(a, b interface{}, path string) []Op {
	fwd, _ := DiffBoth(a, b, path)
	return fwd
}

// DiffBoth computes the forward (a to b) and backward (b to a) patches in a
// single traversal.
func DiffBoth(a, b interface{}, path string) (fwd, bwd []Op) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a == nil || b == nil {
		return []Op{replaceOp(path, b)}, []Op{replaceOp(path, a)}
	}

	aMap, aIsMap := a.(map[string]interface{})
	bMap, bIsMap := b.(map[string]interface{})
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]interface{})
	bArr, bIsArr := b.([]interface{})
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []Op{replaceOp(path, b)}, []Op{replaceOp(path, a)}
	}
	return nil, nil
}

func diffObjects(a, b map[string]interface{}, path string) (fwd, bwd []Op) {
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			childPath := path + "/" + escapeKey(k)
			fwd = append(fwd, removeOp(childPath))
			bwd = append(bwd, addOp(childPath, a[k]))
		}
	}

	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			fwd = append(fwd, addOp(childPath, b[k]))
			bwd = append(bwd, removeOp(childPath))
			continue
		}
		subFwd, subBwd := DiffBoth(av, b[k], childPath)
		fwd = append(fwd, subFwd...)
		bwd = append(bwd, subBwd...)
	}

	return fwd, bwd
}

func diffArrays(a, b []interface{}, path string) (fwd, bwd []Op) {
	common := min(len(a), len(b))

	for i := 0; i < common; i++ {
		subFwd, subBwd := DiffBoth(a[i], b[i], path+"/"+strconv.Itoa(i))
		fwd = append(fwd, subFwd...)
		bwd = append(bwd, subBwd...)
	}

	// Removals run in descending order so earlier indexes stay valid.
	for i := len(a) - 1; i >= common; i-- {
		fwd = append(fwd, removeOp(path+"/"+strconv.Itoa(i)))
	}
	for i := common; i < len(a); i++ {
		bwd = append(bwd, addOp(path+"/"+strconv.Itoa(i), a[i]))
	}

	for i := common; i < len(b); i++ {
		fwd = append(fwd, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}
	for i := len(b) - 1; i >= common; i-- {
		bwd = append(bwd, removeOp(path+"/"+strconv.Itoa(i)))
	}

	return fwd, bwd
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func replaceOp(path string, value interface{}) Op {
	return Op{Op: "replace", Path: path, Value: value}
}

func addOp(path string, value interface{}) Op {
	return Op{Op: "add", Path: path, Value: value}
}

func removeOp(path string) Op {
	return Op{Op: "remove", Path: path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
