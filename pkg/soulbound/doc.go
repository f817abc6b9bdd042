// Package soulbound issues non-transferable badge tokens. A badge is an
// NFT collection created with FreezeDefault enabled and no admin key: the
// issuer keeps the freeze, wipe, and supply keys, unfreezes a holder just
// long enough to deliver a serial, and refreezes afterwards. Revocation
// wipes the serial from the holder.
package soulbound
