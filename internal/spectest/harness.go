// Package spectest runs scripted calculator sessions and checks their
// transcripts.
package spectest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// Session is one scripted run: the lines fed to the calculator and what its
// transcript must look like. Stdout is an exact transcript, Golden names a
// file holding one, and Contains only requires a substring.
type Session struct {
	Name     string   `yaml:"name"`
	Input    []string `yaml:"input"`
	Stdout   *string  `yaml:"stdout"`
	Contains string   `yaml:"contains"`
	Golden   string   `yaml:"golden"`
	// NoFinalNewline drops the newline after the last input line.
	NoFinalNewline bool `yaml:"no_final_newline"`
}

type Suite struct {
	Sessions []Session `yaml:"sessions"`
	dir      string
}

func (s *Suite) Dir() string {
	return s.dir
}

func LoadSuite(path string) (*Suite, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var suite Suite
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&suite); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, s := range suite.Sessions {
		if s.Name == "" {
			return nil, fmt.Errorf("%s: session %d has no name", path, i)
		}
		set := 0
		for _, ok := range []bool{s.Stdout != nil, s.Golden != "", s.Contains != ""} {
			if ok {
				set++
			}
		}
		if set != 1 {
			return nil, fmt.Errorf("%s: session %q needs exactly one of stdout, golden, contains", path, s.Name)
		}
	}
	suite.dir = filepath.Dir(path)
	return &suite, nil
}

func (s Session) Reader() io.Reader {
	text := strings.Join(s.Input, "\n")
	if len(s.Input) > 0 && !s.NoFinalNewline {
		text += "\n"
	}
	return strings.NewReader(text)
}

// Check compares a transcript against the session's expectation. CRLF line
// endings are treated as LF. Golden paths are relative to baseDir.
func (s Session) Check(got, baseDir string) error {
	got = normalizeNewlines(got)
	if s.Contains != "" {
		if !strings.Contains(got, normalizeNewlines(s.Contains)) {
			return fmt.Errorf("transcript does not contain %q:\n%s", s.Contains, got)
		}
		return nil
	}

	var want string
	if s.Stdout != nil {
		want = *s.Stdout
	} else {
		path := s.Golden
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		want = string(b)
	}
	want = normalizeNewlines(want)
	if got != want {
		diff := cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n"))
		return fmt.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
	return nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

type RunFunc func(in io.Reader, out io.Writer) error

// RunSuite loads the fixture at path and runs every session as a subtest.
func RunSuite(t *testing.T, path string, run RunFunc) {
	t.Helper()

	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("failed to load sessions: %v", err)
	}
	if len(suite.Sessions) == 0 {
		t.Fatalf("%s: no sessions", path)
	}
	for _, s := range suite.Sessions {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(s.Reader(), &out); err != nil {
				t.Fatalf("session failed: %v", err)
			}
			if err := s.Check(out.String(), suite.Dir()); err != nil {
				t.Fatal(err)
			}
		})
	}
}
