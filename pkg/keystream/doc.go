/*
Package keystream provides the key schedule and keystream generator used by the armor package.

Note that this is NOT a vetted cipher.
The keystream generation is the well known RC4 algorithm, which is cryptographically broken on its own, and the key schedule is a non-standard variant.
As such, it is NOT recommended for security critical use.

# How it works:

A 64-bit key is used to scramble a 256 byte permutation state.
The schedule runs 256 rounds, and in each round the bit of the key at position (round mod 64) is mixed into the second cursor.
This means that every key bit is consulted four times, and only the low 64 bits of the key matter.

The permutation and both cursors are then carried over into keystream generation, which is applied to a buffer with XOR.
Since XOR is its own inverse, the same operation both encrypts and decrypts.

# Important note:

The same key must be provided to accurately reverse the process, and a fresh State must be scheduled for each message.
Reusing a State across messages continues the keystream rather than restarting it.
*/
package keystream
