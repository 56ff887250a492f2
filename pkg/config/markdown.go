package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/weftworks/weft/pkg/types/custom"
)

// LoadPromptDir reads markdown prompt files from dir and returns them
// as system prompt entries. Each file may carry YAML frontmatter with
// `name` (defaults to the file stem) and `show`; the body is the
// prompt template. A missing directory yields no entries.
func LoadPromptDir(dir string) (map[string]custom.PromptEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read prompt directory %s", dir)
	}

	prompts := map[string]custom.PromptEntry{}
	var errs *multierror.Error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		id, entry, err := loadPromptFile(path)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "prompt file %s", path))
			continue
		}
		prompts[id] = entry
	}
	return prompts, errs.ErrorOrNil()
}

func loadPromptFile(path string) (string, custom.PromptEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", custom.PromptEntry{}, err
	}

	id := strings.TrimSuffix(filepath.Base(path), ".md")
	entry := custom.PromptEntry{Show: custom.VisibilityAlways}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))
	var rendered bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &rendered, parser.WithContext(pctx)); err != nil {
		return "", custom.PromptEntry{}, errors.Wrap(err, "failed to parse markdown")
	}

	if metaData := meta.Get(pctx); metaData != nil {
		if name, ok := metaData["name"].(string); ok && name != "" {
			id = name
		}
		if show, ok := metaData["show"].(string); ok {
			entry.Show = custom.Visibility(show)
			if !entry.Show.Valid() {
				return "", custom.PromptEntry{}, errors.Errorf("unknown visibility %q", show)
			}
		}
	}

	entry.Text = stripFrontmatter(string(content))
	if entry.Text == "" {
		return "", custom.PromptEntry{}, errors.New("prompt body is empty")
	}
	return id, entry, nil
}

// stripFrontmatter removes a leading YAML frontmatter block. The
// template body is kept verbatim apart from surrounding whitespace.
func stripFrontmatter(content string) string {
	if !strings.HasPrefix(content, "---") {
		return strings.TrimSpace(content)
	}
	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		}
	}
	return strings.TrimSpace(content)
}
