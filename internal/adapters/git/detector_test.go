package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initTestRepo creates a git repository with one commit and returns its
// path and commit hash.
func initTestRepo(t *testing.T) (string, string) {
	t.Helper()

	tmpDir := t.TempDir()

	repo, err := git.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	testFile := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(testFile, []byte("deep work\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := worktree.Add("notes.txt"); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	commit, err := worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
		},
	})
	if err != nil {
		t.Fatalf("Failed to create commit: %v", err)
	}

	return tmpDir, commit.String()
}

func TestDetector_Detect(t *testing.T) {
	repoDir, commit := initTestRepo(t)

	d := NewDetector()
	info, err := d.Detect(context.Background(), repoDir)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if info.Branch == "" {
		t.Error("Detect() returned empty branch")
	}
	if info.Commit != commit {
		t.Errorf("Commit = %q, want %q", info.Commit, commit)
	}
}

func TestDetector_DetectFromSubdirectory(t *testing.T) {
	repoDir, commit := initTestRepo(t)

	subDir := filepath.Join(repoDir, "a", "b")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	d := NewDetector()
	info, err := d.Detect(context.Background(), subDir)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if info.Commit != commit {
		t.Errorf("Commit = %q, want %q", info.Commit, commit)
	}
}

func TestDetector_DetectOutsideRepo(t *testing.T) {
	d := NewDetector()

	_, err := d.Detect(context.Background(), t.TempDir())
	if err == nil {
		t.Error("Detect() outside a repository should return an error")
	}
}

func TestShortCommit(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abc123def456789", "abc123d"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ShortCommit(tt.input); got != tt.want {
			t.Errorf("ShortCommit(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
