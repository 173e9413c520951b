// Package logs reads the rotating log files written by marquee and marqueed.
//
// Last returns the final lines of a file with bounded memory; Follow polls
// from an offset and emits lines as they are appended, restarting from the
// top when rotation truncates the file. The CLI "marquee logs" command is
// the only caller.
package logs
