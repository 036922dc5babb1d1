package catalogue

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/types"
)

// Format is the encoding of a catalogue source.
type Format int

const (
	// FormatText is one "Title | id | #tag1 , #tag2" line per video.
	FormatText Format = iota
	// FormatJSON is an array of {"id","title","tags"} objects.
	FormatJSON
)

const brotliExt = ".br"

//go:embed videos.txt
var sample []byte

// Sample returns a catalogue built from the bundled sample source.
func Sample() *Catalogue {
	c, err := Load(bytes.NewReader(sample), FormatText)
	if err != nil {
		panic(fmt.Sprintf("catalogue: bundled sample is invalid: %v", err))
	}
	return c
}

// FormatForPath picks the format from the file name. A trailing ".br" marks
// brotli compression and the extension before it decides the format.
func FormatForPath(path string) (format Format, compressed bool) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, brotliExt) {
		compressed = true
		name = strings.TrimSuffix(name, brotliExt)
	}
	if filepath.Ext(name) == ".json" {
		return FormatJSON, compressed
	}
	return FormatText, compressed
}

// LoadFile reads a catalogue from path.
func LoadFile(path string) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()

	format, compressed := FormatForPath(path)
	var r io.Reader = f
	if compressed {
		r = brotli.NewReader(f)
	}

	c, err := Load(r, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	logger.WithComponent(logger.ComponentCatalogue).Info("catalogue loaded", logger.Fields{
		"path":       path,
		"videos":     c.Len(),
		"compressed": compressed,
	})
	return c, nil
}

// Load parses specs from r and builds a catalogue.
func Load(r io.Reader, format Format) (*Catalogue, error) {
	var (
		specs []types.VideoSpec
		err   error
	)
	switch format {
	case FormatJSON:
		specs, err = ParseJSON(r)
	default:
		specs, err = ParseText(r)
	}
	if err != nil {
		return nil, err
	}
	return New(specs)
}

// ParseText reads "Title | id | #tag1 , #tag2" lines. The tag column is
// optional and blank lines are skipped.
func ParseText(r io.Reader) ([]types.VideoSpec, error) {
	var specs []types.VideoSpec
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		parts := strings.Split(text, "|")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("line %d: want \"title | id | tags\", got %q", line, text)
		}
		spec := types.VideoSpec{
			Title: strings.TrimSpace(parts[0]),
			ID:    strings.TrimSpace(parts[1]),
		}
		if len(parts) == 3 {
			spec.Tags = splitTags(parts[2])
		}
		specs = append(specs, spec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	return specs, nil
}

// ParseJSON reads an array of video specs.
func ParseJSON(r io.Reader) ([]types.VideoSpec, error) {
	var specs []types.VideoSpec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&specs); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	for i := range specs {
		specs[i].Tags = trimTags(specs[i].Tags)
	}
	return specs, nil
}

func splitTags(s string) []string {
	return trimTags(strings.Split(s, ","))
}

func trimTags(in []string) []string {
	var out []string
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
