// Package control provides the block framing used by the integer codec.
//
// Control blocks use a prefix coding scheme in their first byte to indicate
// the type of the block, which then indicates how many bytes follow. The
// intention is to minimize signaling overhead and pack as much data directly
// into the control byte as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Data and size information is
// extracted by masking off the fixed bits.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                             |
//  |---------------|---------------||----------------|---------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                            |
//  | 0 . 1 |                       || Data Size      | 2^6 = 64 bytes                              |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values                       |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values                  |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 2^3 = 8 bytes of size; up to MaxSize bytes  |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                                 |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)            |
//  |---------------|---------------||----------------|---------------------------------------------|
//
// All sizes are indexed starting at 1 to maximize their effective range.
//
// Data blocks carry 7 bits directly in the control byte.
//
// Data + 1 and Data + 2 blocks carry the high bits of a two or three byte
// value in the control byte and the remaining bytes after it.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data
//  2. Data
//
// Data Size Size blocks have three parts:
//
//  1. Number of bytes for the data size
//  2. Number of bytes that contain data
//  3. Data
//
// Every other control byte is invalid.
package control
