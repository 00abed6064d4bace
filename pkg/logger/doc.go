// Package logger provides the two logging surfaces of the demo. New wraps
// the standard log/slog package with configurable levels for application
// lifecycle logging, JSON in prod and text everywhere else. Callsite emits
// the demo's fixed "info:<file>:<line> <message>" line, resolving the
// caller's file and line through the runtime call stack.
package logger
