// Package commands defines the blanktech CLI.
//
// Commands
//
//   - (root)         Run the interactive menu on stdin/stdout
//   - config write   Write the effective configuration to a file
//   - version        Print the version
//
// The root command reads no files unless --config is given and logs
// nothing unless --log-level is given.
package commands
