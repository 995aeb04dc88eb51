package comp

// SetShellPath swaps the spawn shell for tests and returns a restore
// function.
func SetShellPath(path string) func() {
	old := shellPath
	shellPath = path
	return func() {
		shellPath = old
	}
}
