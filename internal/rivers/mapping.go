package rivers

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quantmind-br/sections-go/internal/domain"
	"github.com/quantmind-br/sections-go/internal/parser"
)

// mappingKeyPrefix starts every short river name line. The character before
// '=' is the single-digit river number.
const mappingKeyPrefix = "SHORT_RIVERNAME"

// NameMapping maps river numbers to their short output names.
type NameMapping map[int]string

// LoadNameMapping reads an INI-style river names file. Only lines starting
// with SHORT_RIVERNAME and containing '=' are considered; everything else is
// ignored. A non-digit before the '=' aborts the load.
func LoadNameMapping(path string) (NameMapping, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read river names file: %w", err)
	}

	text, err := parser.DecodeText(content)
	if err != nil {
		return nil, fmt.Errorf("decoding river names file: %w", err)
	}

	return ParseNameMapping(string(text))
}

// ParseNameMapping parses river name mapping lines from text.
func ParseNameMapping(text string) (NameMapping, error) {
	mapping := make(NameMapping)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, mappingKeyPrefix) {
			continue
		}

		key, name, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		number, err := strconv.Atoi(key[len(key)-1:])
		if err != nil {
			return nil, &domain.InvalidRiverMappingError{Line: line}
		}

		mapping[number] = name
	}

	return mapping, nil
}
