// Package security holds the credential primitives: bcrypt password
// hashing, the RSA-OAEP key pair used to exchange API keys, and API key
// generation.
package security
