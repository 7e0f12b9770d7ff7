// Package cli provides the interactive opsbot command-line client.
//
// It dials the server's gRPC endpoint and runs a REPL. Typical flow: log in,
// open or create a chat session, talk to the assistant, and manage stored
// service credentials. Administrators can also list users, toggle their
// status and view analytics.
//
// A background watcher pings the server and shows online/offline in the
// prompt. The REPL is started via App.Run(ctx), which blocks until the user
// exits.
package cli
