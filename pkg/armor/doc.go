/*
Package armor encrypts short text messages with a numeric key and armors the result as printable text.

Note that this is NOT proven to be secure.
The keystream package documents the cipher used, and it should be treated as obfuscation for anything security critical.

# How it works:

Encode takes a NUL terminated plaintext and a key.
The message (including its terminator when it fits) is padded with zero bytes to a multiple of 4, run through the keystream, and each group of 4 bytes is written as 5 printable characters from '!' to 'u'.
The result is terminated with a single NUL, so its length is always 5m+1 for some number of groups m.

Decode reverses the process with the same key, and always terminates the recovered message with a NUL.
Any padding added by Encode decrypts back to zero bytes, so the meaningful prefix of the message is unchanged.

# Validation:

Both operations validate their output and return a Report alongside the data.
Problems found in a Report never stop Encode or Decode from returning a result; it's up to the caller to decide whether an invalid Report matters.
Problems are also logged at the warning level if a logger is provided with WithLogger.

The validators may be used directly with ValidateCiphertext and ValidatePlaintext.
*/
package armor
