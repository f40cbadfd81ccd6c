package parser

import "sort"

// Block is one parsed "Key: value" region. Values are either a string or a nested
// Block. A nil Block means the region held no data; callers rely on nil and an empty
// map being different.
type Block map[string]any

// String returns the scalar value stored under key.
// It reports false when the key is missing or holds a nested block.
func (b Block) String(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	s, ok := b[key].(string)
	return s, ok
}

// Block returns the nested block stored under key, or nil.
func (b Block) Block(key string) Block {
	if b == nil {
		return nil
	}
	nested, _ := b[key].(Block)
	return nested
}

// Has reports whether key was present in the parsed text, even with an empty value.
func (b Block) Has(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b[key]
	return ok
}

// Keys returns the keys of the block in sorted order.
func (b Block) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StringMap flattens the scalar values of the block into a map.
// Nested blocks are skipped.
func (b Block) StringMap() map[string]string {
	result := make(map[string]string, len(b))
	for k, v := range b {
		if s, ok := v.(string); ok {
			result[k] = s
		}
	}
	return result
}
