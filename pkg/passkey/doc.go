/*
Package passkey derives the numeric keys used by the armor package from a user-provided passphrase.

# How it works:

A KeyGenerator holds scrypt tuning values.
GenerateKey creates a random salt, derives a 64-bit key from the passphrase and salt, and returns both the key and a Profile.
The Profile records the salt and the tuning values, so the same key can be derived later given the same passphrase with Profile.DeriveKey.

A Profile doesn't contain the key, and may be shared alongside armored text.
Its String method armors it with the same printable alphabet as ciphertext, and ParseProfile reverses that.

# General guidelines:
  - Both short and long delay iteration GeneratorOpt functions are provided, choose the correct iterations for your use-case using either SetLongDelayIterations or SetShortDelayIterations.
  - If you're not an expert, then don't use SetIterations, SetCPUCost, or SetRelativeBlockSize.
  - A 64-bit key is small by modern standards, and the cipher itself isn't vetted. Deriving the key from a passphrase doesn't change that.
*/
package passkey
