/*
Package runner implements the line-oriented loop and input hygiene used by hosts.

It acts as the bridge between the engine and the outside world: Runner reads
trinomials from a reader, asks the engine for an explanation and writes it out,
optionally through a ContentRenderer (such as a terminal markdown renderer).
WithJSON switches the loop to JSON Lines for scripted callers.
ValidateInput enforces the size limit and UTF-8 before input reaches the engine;
the text is passed on untouched. LogSafe strips control characters from text
that is echoed into logs.

# Usage

	r := runner.NewRunner(
		runner.WithInput(os.Stdin),
		runner.WithOutput(os.Stdout),
		runner.WithPrompt("> "),
	)
	n, err := r.Run(ctx, trinomial.New())
*/
package runner
