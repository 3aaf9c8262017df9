// Package relay provides a minimal HTTP rendezvous for exchanging
// proofs between a prover and a verifier that share a session id.
//
// The server is untrusted: it only ever sees public keys and proofs,
// and a proof is bound to its session and party, so the relay cannot
// replay it elsewhere. Each session id holds at most one envelope,
// delivered to the first collector.
//
// HTTP API
//
//	POST /proof/{sid}
//	    Deposit the Envelope for session {sid}. Conflicts with 409 if
//	    an envelope is already waiting.
//
//	GET /proof/{sid}
//	    Block until an envelope is deposited for {sid}, then return it.
//	    Responds 408 if none arrives within the server's wait.
//
// All state is held in memory and lost on process exit.
package relay
