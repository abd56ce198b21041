package prompt

import (
	"os"
	"path/filepath"
	"strings"
)

// repo is a minimal handle on a discovered .git directory, enough to
// resolve the current branch name and HEAD commit hash.
type repo struct {
	gitDir string
}

// findRepository walks up from dir looking for a .git directory, mirroring
// git's own repository discovery.
func findRepository(dir string) (*repo, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, false
	}
	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return &repo{gitDir: gitDir}, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, false
		}
		dir = parent
	}
}

// branch returns the current branch name by resolving HEAD, or "" when HEAD
// is detached or unreadable.
func (r *repo) branch() string {
	data, err := os.ReadFile(filepath.Join(r.gitDir, "HEAD"))
	if err != nil {
		return ""
	}
	head := strings.TrimSpace(string(data))
	const prefix = "ref: refs/heads/"
	if !strings.HasPrefix(head, prefix) {
		return ""
	}
	return strings.TrimPrefix(head, prefix)
}

// commit returns HEAD's resolved commit hash, truncated to refLen
// characters (clamped to the hash's actual length).
func (r *repo) commit(refLen int) string {
	hash := r.resolveHead()
	if hash == "" {
		return ""
	}
	if refLen <= 0 || refLen > len(hash) {
		refLen = len(hash)
	}
	return hash[:refLen]
}

func (r *repo) resolveHead() string {
	data, err := os.ReadFile(filepath.Join(r.gitDir, "HEAD"))
	if err != nil {
		return ""
	}
	head := strings.TrimSpace(string(data))
	const prefix = "ref: "
	if !strings.HasPrefix(head, prefix) {
		// Detached HEAD: the file already holds the hash.
		return head
	}
	ref := strings.TrimPrefix(head, prefix)

	if packed := r.resolvePackedRef(ref); packed != "" {
		if direct := r.readRefFile(ref); direct != "" {
			return direct
		}
		return packed
	}
	return r.readRefFile(ref)
}

func (r *repo) readRefFile(ref string) string {
	data, err := os.ReadFile(filepath.Join(r.gitDir, ref))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (r *repo) resolvePackedRef(ref string) string {
	data, err := os.ReadFile(filepath.Join(r.gitDir, "packed-refs"))
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasSuffix(line, " "+ref) {
			fields := strings.Fields(line)
			if len(fields) == 2 {
				return fields[0]
			}
		}
	}
	return ""
}
