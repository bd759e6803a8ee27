// Package cli provides the interactive adatasks command-line front end.
//
// It reads commands from a line-oriented REPL, calls the account and task
// managers, and prints the outcome message of every action. A background
// watcher subscribed to the task change hub logs a refreshed summary after
// each write.
//
// Commands:
//   - register, login, logout, whoami, forgot
//   - lists, newlist, rmlist, use
//   - add, tasks, pending, done, toggle, rm, clear
//   - stats, cleanup, report
//   - backup, restore (when S3 is configured)
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
