// Package commands defines the jedi CLI, a terminal client for the Star Wars
// GraphQL API that prints the same screens the HTTP API serves.
//
// Commands
//
//   - films            List all films
//   - film <id>        Show a film and its characters
//   - character <id>   Show a character and the films they appear in
//   - browse           Navigate interactively from the film list
//
// Ids are Relay global ids (ZmlsbXM6MQ==) or the bare per-type number (1).
//
// # Implementation
//
// The root command builds the upstream client and the screen service before any
// subcommand runs. Output goes through internal/render so text and JSON stay in
// step with the API's view models.
package commands
