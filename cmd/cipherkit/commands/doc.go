// Package commands defines the cipherkit CLI and wires shared runtime
// context for subcommands.
//
// Commands
//
//   - encode    Encrypt text with a cipher variant
//   - decode    Decrypt text with a cipher variant
//   - crack     Recover a key by brute force, frequency analysis or known plaintext
//   - keygen    Generate a random key for a variant
//   - variants  List variants, key forms and supported attacks
//
// # Implementation
//
// The root command loads configuration and configures the global logger
// before any subcommand runs, so handlers share one app context. Input
// text resolves in a fixed order: --text, then --file, then positional
// arguments, then stdin. Results print to stdout; logs go to stderr;
// --json switches every command to machine-readable output.
package commands
