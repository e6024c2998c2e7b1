/*
Package eyelid implements privacy-preserving iris matching on homomorphically
encrypted, polynomial-encoded bit vectors.

Iris codes are encoded as dense polynomials over the cyclotomic ring
Z_q[X]/(X^N + 1) and compared under the YASHE somewhat-homomorphic encryption
scheme, so that two parties can reach a Hamming-distance match decision
without either party seeing the other's iris data in the clear.

The library is organized as follows:

  - ring: the cyclotomic polynomial ring, with naive, recursive Karatsuba and
    flat Karatsuba multiplication, inversion via the extended Euclidean
    algorithm, and uniform/Gaussian/binary samplers.
  - yashe: the YASHE scheme built on the ring, with key generation,
    encryption, decryption, homomorphic addition and one level of
    homomorphic multiplication, plus Hamming-weight message encodings.
  - matching: the encrypted iris-matching protocol, computing per-rotation
    inner products of encrypted code blocks and extracting a threshold
    match decision.
  - utils: shared generic helpers, big-number arithmetic and PRNGs.
*/
package eyelid
