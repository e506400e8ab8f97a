package workflow

// Step computes the next state and the commands to run for ev. Events that
// are not meaningful in the current state leave it unchanged and emit nothing.
func Step(s State, ev Event) (State, []Command) {
	switch ev := ev.(type) {
	case EditURL:
		if s.Phase == PhaseInput && !s.Encoding {
			s.URL = ev.Text
		}
		return s, nil
	case Submit:
		return submit(s, ev.Text)
	case Encoded:
		return encoded(s, ev), nil
	case Reset:
		if s.Phase != PhaseGenerated || s.Prompting {
			return s, nil
		}
		return reset(s), nil
	case RequestDownload:
		return requestDownload(s)
	case EditFilename:
		return editFilename(s, ev.Raw), nil
	case ConfirmDownload:
		return confirmDownload(s)
	case CancelDownload:
		return cancelDownload(s), nil
	case ToggleTheme:
		s.Theme = s.Theme.Toggle()
		return s, []Command{SetTheme{Mode: s.Theme}}
	}
	return s, nil
}

func submit(s State, text string) (State, []Command) {
	if s.Phase != PhaseInput || s.Encoding {
		return s, nil
	}
	s.URL = text

	res := Validate(text)
	if !res.Valid {
		s.Error = res.Message
		return s, nil
	}

	s.Error = ""
	s.Encoding = true
	return s, []Command{Encode{Address: text}}
}

func encoded(s State, ev Encoded) State {
	if !s.Encoding {
		return s
	}
	s.Encoding = false

	if ev.Err != nil || ev.Artifact == nil {
		s.Error = EncodeFailedMessage
		return s
	}

	s.Phase = PhaseGenerated
	s.Artifact = ev.Artifact
	s.Error = ""
	s.Prompting = false
	s.Filename = ""
	return s
}

// reset keeps only the theme.
func reset(s State) State {
	return State{Phase: PhaseInput, Theme: s.Theme}
}
