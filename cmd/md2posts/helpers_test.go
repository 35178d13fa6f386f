package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)

// testEnv returns an Environment with captured output and the given variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, &stdout, &stderr
}

// blogFixture lays out posts and a replacement table in a temp dir.
type blogFixture struct {
	root         string
	posts        string
	output       string
	replacements string
}

func newBlogFixture(t *testing.T, posts map[string]string) blogFixture {
	t.Helper()

	root := t.TempDir()
	f := blogFixture{
		root:         root,
		posts:        filepath.Join(root, "posts"),
		output:       filepath.Join(root, "public", "posts"),
		replacements: filepath.Join(root, "replacements.json"),
	}

	if err := os.Mkdir(f.posts, 0o750); err != nil {
		t.Fatal(err)
	}
	for name, content := range posts {
		writeTestFile(t, filepath.Join(f.posts, name), content)
	}
	writeTestFile(t, f.replacements, `{"p": {"class": "text-blue-500"}}`)

	return f
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
