package workflow

import "strings"

// Sanitize drops every rune outside [A-Za-z0-9_-].
func Sanitize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return -1
	}, raw)
}

func requestDownload(s State) (State, []Command) {
	if s.Phase != PhaseGenerated || s.Artifact == nil {
		return s, nil
	}
	if s.Filename != "" {
		return commit(s)
	}
	s.Prompting = true
	return s, nil
}

func editFilename(s State, raw string) State {
	if !s.Prompting {
		return s
	}
	s.Filename = Sanitize(raw)
	return s
}

func confirmDownload(s State) (State, []Command) {
	if !s.Prompting || s.Filename == "" {
		return s, nil
	}
	return commit(s)
}

func cancelDownload(s State) State {
	if !s.Prompting {
		return s
	}
	s.Prompting = false
	s.Filename = ""
	return s
}

// commit emits the save and finishes through the workflow reset.
func commit(s State) (State, []Command) {
	cmd := SaveFile{Filename: s.Filename + ".png", Artifact: s.Artifact}
	s.Filename = ""
	s.Prompting = false
	return reset(s), []Command{cmd}
}
