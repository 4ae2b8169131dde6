// Package password hashes user passwords with Argon2id and an
// application-wide pepper.
//
// Hashes are self-describing PHC strings:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>
//
// salt and hash are unpadded standard base64. The pepper is appended to the
// password before key derivation and is never stored next to the hash.
//
// # Usage
//
//	h, err := password.New(password.Config{Pepper: os.Getenv("PASSWORD_PEPPER")})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	encoded, err := h.Hash("correct horse battery staple")
//	ok, err := h.Verify("correct horse battery staple", encoded)
//
//	if ok && h.NeedsRehash(encoded) {
//		// parameters were raised since the hash was created; store a fresh one
//	}
//
// Verify reports a wrong password as (false, nil). A stored value that cannot
// be parsed is reported as [ErrInvalidHash].
package password
