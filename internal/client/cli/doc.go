// Package cli implements the interactive recmarket command-line client.
//
// The REPL accepts:
//
//	help                 show available commands
//	login                log in with the identity token (prompted if unset)
//	logout               log out
//	list | l             list all certificates
//	add                  list a new certificate (interactive prompts)
//	image <path>         upload an image and print its URL for use with add
//	whoami               show the current principal and session state
//	exit | quit          leave the program
//
// Prices and timestamps are printed as integers and RFC 3339 text; an absent
// owner is printed as "-".
package cli
