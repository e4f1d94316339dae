package shell

// CommandResult is what a command prints. Failed results are shown with an
// "Error: " prefix by the front-ends; Message itself never carries one.
type CommandResult struct {
	OK      bool
	Message string
}

func success(message string) CommandResult {
	return CommandResult{OK: true, Message: message}
}

func failure(err error) CommandResult {
	return CommandResult{OK: false, Message: err.Error()}
}

// Outcome is returned for every executed line.
// Front-ends use a type switch to tell Continue from Terminate.
type Outcome interface {
	isOutcome()
}

// Continue carries the result of a command; the session goes on.
type Continue struct {
	Result CommandResult
}

func (Continue) isOutcome() {}

// Terminate ends the session.
type Terminate struct{}

func (Terminate) isOutcome() {}
