// Package cli provides the gophauth command-line client.
//
// The client runs a single command per invocation:
//
//	gophauth-client [-a addr] [-t seconds] [-c file] register
//	gophauth-client [-a addr] [-t seconds] [-c file] login
//
// Both commands prompt for a username and read the password without echo.
// The password never leaves the process: it is turned into a credential
// secret with cryptox.DeriveSecret and wiped from memory. register prints
// "Success!"; login prints the session token on its own line. Rejections
// are printed as a short message and reported through the returned error,
// so the caller can exit non-zero.
package cli
