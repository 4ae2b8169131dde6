// Package verification manages short-lived, single-use verification
// sessions: email verification, password reset, signup, account association
// and provider linking all share one record shape and one lifecycle.
//
// Request issues a record for a subject (a user id, or an email for signup)
// after deleting any previous record of the same purpose for that subject, so
// at most one is active at a time. The caller receives an opaque token
// "<id>.<secret>" and a numeric code. Only digests of the secret and the code
// are stored.
//
// Confirm consumes the record: it is deleted whether or not the code matches,
// so every code gets exactly one guess. Stores implementing Consumer fetch and
// delete atomically, which closes the window in which two concurrent confirms
// could both read the record.
//
// Multi-step flows (signup, password reset) confirm the code with
// KeepVerified, which stores the record again marked EmailVerified and
// without a code, and finish with Complete, which requires that mark and
// deletes the record.
//
//	mgr := verification.New(verification.PurposePasswordReset, store, secret.NewHasher(pepper))
//
//	issued, err := mgr.Request(ctx, verification.Request{UserID: u.ID, Email: u.Email})
//	// mail issued.Code, hand issued.Token to the client
//
//	v, err := mgr.ConfirmToken(ctx, tok, code, verification.KeepVerified(), verification.ExpectEmail(u.Email))
//	v, err = mgr.Complete(ctx, tok)
package verification
