// Package fair implements the provably fair random selection used by the
// opponent.
//
// Every random decision follows the same order:
//  1. the opponent commits to a secret and publishes an HMAC-SHA3-256 digest
//  2. the user submits a value in the same range
//  3. both values are combined modulo the range
//  4. the key and the secret are revealed and the digest is verified
//
// Because the secret is uniform, the combined value is uniform no matter
// what the user submits, and the published digest prevents the opponent from
// changing its secret after seeing the user's value.
package fair
