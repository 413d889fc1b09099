package catalog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type catalogFile struct {
	Locale    string
	Namespace string
	Messages  map[string]string
}

// parseCatalogFile reads the catalog YAML subset:
//
//	locale: "en-US"
//	namespace: "results"
//	messages:
//	  "results.blank": "<blank>"
//
// Blank lines and # comments are ignored. Every scalar is a Go-quoted string.
func parseCatalogFile(data []byte) (catalogFile, error) {
	out := catalogFile{Messages: map[string]string{}}
	inMessages := false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		switch {
		case strings.HasPrefix(line, "locale:"):
			out.Locale, err = strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "locale:")))
		case strings.HasPrefix(line, "namespace:"):
			out.Namespace, err = strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "namespace:")))
		case line == "messages:":
			inMessages = true
		case inMessages:
			var key, value string
			key, value, err = parseEntry(line)
			if err == nil {
				if _, dup := out.Messages[key]; dup {
					err = fmt.Errorf("duplicate key %q", key)
				}
				out.Messages[key] = value
			}
		default:
			err = errors.New("unexpected line before messages")
		}
		if err != nil {
			return catalogFile{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return catalogFile{}, err
	}

	switch {
	case out.Locale == "":
		return catalogFile{}, errors.New("missing locale")
	case out.Namespace == "":
		return catalogFile{}, errors.New("missing namespace")
	case len(out.Messages) == 0:
		return catalogFile{}, errors.New("missing messages")
	}
	return out, nil
}

// parseEntry splits a `"key": "value"` line.
func parseEntry(line string) (string, string, error) {
	quotedKey, err := strconv.QuotedPrefix(line)
	if err != nil {
		return "", "", fmt.Errorf("key: %w", err)
	}
	key, err := strconv.Unquote(quotedKey)
	if err != nil {
		return "", "", fmt.Errorf("key: %w", err)
	}
	if strings.TrimSpace(key) == "" {
		return "", "", errors.New("blank key")
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(line[len(quotedKey):]), ":")
	if !ok {
		return "", "", errors.New("missing ':' separator")
	}
	value, err := strconv.Unquote(strings.TrimSpace(rest))
	if err != nil {
		return "", "", fmt.Errorf("value: %w", err)
	}
	return key, value, nil
}
