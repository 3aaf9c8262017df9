// Package commands defines the dlog CLI.
//
// Commands
//
//   - keygen   Generate a key pair on the selected curve
//   - prove    Prove knowledge of a secret and deposit the proof on a relay
//   - verify   Collect a session's proof from a relay and verify it
//   - relay    Run the in-memory proof relay
//   - demo     Run a prover and a verifier against an in-process relay
//
// The --curve flag selects the group (secp256k1, ed25519 or
// ristretto255) and must match between prover and verifier; --relay
// points both at the same relay server.
package commands
