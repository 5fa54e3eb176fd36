package selection

// Level is the colour semantic of a status message.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	}
	return "info"
}

// Status is the user-facing outcome of a controller operation.
type Status struct {
	Text  string
	Level Level
	Err   error
}

// IsError reports whether the status should be shown as an error.
func (s Status) IsError() bool {
	return s.Level == LevelError
}

func info(text string) Status {
	return Status{Text: text, Level: LevelInfo}
}

func success(text string) Status {
	return Status{Text: text, Level: LevelSuccess}
}

func failure(err error) Status {
	return Status{Text: err.Error(), Level: LevelError, Err: err}
}

func failureText(text string, err error) Status {
	return Status{Text: text, Level: LevelError, Err: err}
}
