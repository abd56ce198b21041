package prompt

// cache holds the git repository handle opened for the current render, so
// GIT_BRANCH and GIT_COMMIT in the same prompt line share one lookup. It is
// invalidated after every render.
type cache struct {
	repo  *repo
	found bool
	dir   string
}

func (c *cache) repoFor(dir string) (*repo, bool) {
	if c.repo != nil && c.dir == dir {
		return c.repo, c.found
	}
	r, ok := findRepository(dir)
	c.repo, c.found, c.dir = r, ok, dir
	return r, ok
}

func (c *cache) invalidate() {
	c.repo, c.found, c.dir = nil, false, ""
}
