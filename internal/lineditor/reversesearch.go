package lineditor

// reverseSearch implements Ctrl-R's reverse-incremental history search:
// each typed character narrows the match, Backspace widens it, Ctrl-G
// cancels (returning ok=false), and Enter accepts the current match.
func (e *Editor) reverseSearch() (string, bool, error) {
	query := []rune{}
	match := ""

	render := func() {
		e.write("\r\x1b[K")
		e.write("(reverse-i-search)`" + string(query) + "': " + match)
	}
	render()

	for {
		b, err := e.reader.ReadByte()
		if err != nil {
			return "", false, err
		}

		switch b {
		case ctrlG:
			return "", false, nil
		case lf, cr:
			return match, match != "", nil
		case bs, del:
			if len(query) > 0 {
				query = query[:len(query)-1]
			}
		default:
			if b >= 0x20 && b < 0x80 {
				query = append(query, rune(b))
			} else {
				continue
			}
		}

		match = e.firstHistoryMatch(string(query))
		render()
	}
}

func (e *Editor) firstHistoryMatch(query string) string {
	if e.hist == nil || query == "" {
		return ""
	}
	results := e.hist.Search(query, 1)
	if len(results) == 0 {
		return ""
	}
	return results[0]
}
