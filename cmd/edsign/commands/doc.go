// Package commands defines the edsign CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - keygen       Generate a key pair and store the seed encrypted
//   - pubkey       Print the stored public key
//   - sign         Sign a file (or stdin) with the stored key
//   - verify       Check a signature over a file
//   - convert      Map Ed25519 keys to their X25519 counterparts
//   - fingerprint  Print the stored key's fingerprint
//
// # Implementation
//
// The root command resolves the home directory, the keystore and the
// hash function once before any subcommand runs; --hash selects the
// digest (sha512 default, blake2b as the alternative) baked into every
// signing and verification path for the process lifetime.
package commands
