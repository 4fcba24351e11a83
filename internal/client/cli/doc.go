// Package cli provides the interactive storyline command-line client.
//
// It wires configuration, the session store, the API services, and an
// interactive REPL. Typical flow: restore a stored session if one exists,
// render the story feed, and execute user commands.
//
// Key features:
//   - Login / Signup / Logout with durable session restore
//   - Browse the shared story feed, favorites, and own submissions
//   - Submit and delete stories
//   - Toggle favorite stars with optimistic feedback and revert on failure
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
