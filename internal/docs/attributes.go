package docs

import (
	"fmt"
	"os"
	"strings"

	derrors "github.com/oracle-sql-features/oracle-sql-features.github.io/internal/docs/errors"
)

// TitleAttribute names the level-1 heading in MissingAttributeError.
const TitleAttribute = "title"

const titleMarker = "= "

// MissingAttributeError reports a required line that a document lacks.
type MissingAttributeError struct {
	Attribute string
	Path      string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing %s in %s", e.Attribute, e.Path)
}

func (e *MissingAttributeError) Unwrap() error {
	if e.Attribute == TitleAttribute {
		return derrors.ErrMissingTitle
	}
	return derrors.ErrMissingAttribute
}

// InvalidAttributeError reports a label that cannot be used as a page directory.
type InvalidAttributeError struct {
	Attribute string
	Path      string
	Value     string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid %s value %q in %s", e.Attribute, e.Value, e.Path)
}

func (e *InvalidAttributeError) Unwrap() error { return derrors.ErrInvalidAttribute }

// FindAttribute returns the value of the first line starting with name.
// The character following name is a separator and is dropped; the remainder
// is trimmed of surrounding whitespace.
func FindAttribute(content, name string) (string, bool) {
	for line := range strings.Lines(content) {
		line = strings.TrimRight(line, "\r\n")
		if !strings.HasPrefix(line, name) {
			continue
		}
		rest := line[len(name):]
		if rest != "" {
			rest = rest[1:]
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}

// FindTitle returns the text of the first trimmed line starting with "= ".
func FindTitle(content string) (string, bool) {
	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, titleMarker) {
			return strings.TrimSpace(line[len(titleMarker):]), true
		}
	}
	return "", false
}

// ExtractAttribute reads path and returns the named attribute value.
func ExtractAttribute(path, name string) (string, error) {
	content, err := readContent(path)
	if err != nil {
		return "", err
	}
	value, ok := FindAttribute(content, name)
	if !ok {
		return "", &MissingAttributeError{Attribute: name, Path: path}
	}
	return value, nil
}

// ExtractTitle reads path and returns its level-1 heading.
func ExtractTitle(path string) (string, error) {
	content, err := readContent(path)
	if err != nil {
		return "", err
	}
	title, ok := FindTitle(content)
	if !ok {
		return "", &MissingAttributeError{Attribute: TitleAttribute, Path: path}
	}
	return title, nil
}

func readContent(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the feature scan
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, path, err)
	}
	return string(data), nil
}
