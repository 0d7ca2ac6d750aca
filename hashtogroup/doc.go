// Package hashtogroup maps arbitrary bytes onto prime-order subgroups of
// short-Weierstrass elliptic curves.
//
// A mapping is deterministic in (data, context): the pair is hashed into a
// seed, the seed keys a ChaCha20 keystream, and candidate x coordinates are
// drawn from the keystream until one lies on the curve. A keystream sign
// bit picks one of the two points sharing that x, and cofactor clearing
// moves the result into the prime-order subgroup.
//
// Curve configurations are value structs of function fields; subpackages
// provide ready-made configurations for the BLS12-381 and BLS12-377 G1
// groups. The byte-level conventions (seed derivation, masked big-endian
// rejection sampling, one keystream byte per sign bit) are fixed, so equal
// inputs map to equal points across versions and platforms.
package hashtogroup
