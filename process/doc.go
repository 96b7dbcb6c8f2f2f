// Package process executes subprocesses with context-aware shutdown:
// SIGTERM to the process group first, SIGKILL after a grace period.
//
// Commands are built either directly from a Command struct or from a words
// template (FromTemplate, CheckCmd, SlurpCmd). ExecFilter turns a command
// into a stream pipeline stage for the filter package.
package process
