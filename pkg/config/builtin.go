package config

import (
	_ "embed"

	"github.com/pkg/errors"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin parses the compiled-in customization document. It is shipped
// with the binary and never edited by the end user.
func Builtin() (*Document, error) {
	doc, err := ParseDocument(builtinYAML)
	if err != nil {
		return nil, errors.Wrap(err, "compiled-in customization does not parse")
	}
	return doc, nil
}
