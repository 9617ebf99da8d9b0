// Package auth implements the credential service: bcrypt password
// hashing and stateless JWT session tokens.
package auth
