// Package words expands command-line templates into argv word lists.
//
// It replaces the usual "build a string, let the shell re-split it" dance:
// arguments substituted through {} always stay single words, so spaces in
// filenames never break a command.
package words
