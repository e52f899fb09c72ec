// Package keystore persists an Ed25519 key pair on disk for the edsign
// CLI. The secret seed is sealed in a passphrase-encrypted envelope
// (scrypt + ChaCha20-Poly1305); the derived public key is stored as
// plain JSON since it is not secret. All methods are concurrency-safe
// via internal locking and write files atomically under the configured
// home directory.
package keystore
