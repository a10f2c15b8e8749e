// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema inspects exported JSON Schema documents.
package jschema

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ExtractKeyOrder parses raw JSON and extracts the order of keys for all "properties" objects.
// Array elements are addressed by index, so the properties of the first schema
// in a document are found under "[0].properties".
func ExtractKeyOrder(rawJSON []byte) map[string][]string {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string)
	extract = func(dec *json.Decoder, path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}
		t, ok := token.(json.Delim)
		if !ok {
			return
		}

		switch t {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				extract(dec, newPath)
			}
			_, _ = dec.Token()

			if path == "properties" || strings.HasSuffix(path, ".properties") {
				result[path] = keys
			}
		case '[':
			for i := 0; dec.More(); i++ {
				extract(dec, path+"["+strconv.Itoa(i)+"]")
			}
			_, _ = dec.Token()
		}
	}

	extract(json.NewDecoder(bytes.NewReader(rawJSON)), "")
	return result
}
