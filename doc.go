/*
Package rawbson provides zero-copy, lazy access to BSON (Binary JSON)
documents, the length-prefixed binary document format used by MongoDB.

 BSON Specification

 Basic Types:
 The following basic types are used as terminals in the rest of the grammar.
 Each type must be serialized in little-endian format.

 byte    1 byte  (8-bits)
 int32   4 bytes (32-bit signed integer)
 int64   8 bytes (64-bit signed integer)
 double  8 bytes (64-bit IEEE 754 floating point)

 Non-terminals:
 The following specifies the rest of the BSON grammar. Note that quoted strings
 represent terminals, and should be interpreted with C semantics (e.g. "\x01"
 represents the byte 0000 0001).

 document ::= int32 e_list "\x00"            BSON Document
 e_list   ::= element e_list                 Sequence of elements
            | ""
 element  ::= "\x01" e_name double           Floating point
            | "\x02" e_name string           UTF-8 string
            | "\x03" e_name document         Embedded document
            | "\x04" e_name document         Array
            | "\x05" e_name binary           Binary data
            | "\x06" e_name                  Undefined — Deprecated
            | "\x07" e_name (byte*12)        ObjectId
            | "\x08" e_name "\x00"           Boolean "false"
            | "\x08" e_name "\x01"           Boolean "true"
            | "\x09" e_name int64            UTC datetime
            | "\x0A" e_name                  Null value
            | "\x0B" e_name cstring cstring  Regular expression
            | "\x0C" e_name string (byte*12) DBPointer — Deprecated
            | "\x0D" e_name string           JavaScript code
            | "\x0E" e_name string           Symbol
            | "\x0F" e_name code_w_s         JavaScript code w/ scope
            | "\x10" e_name int32            32-bit Integer
            | "\x11" e_name int64            Timestamp
            | "\x12" e_name int64            64-bit integer
            | "\x13" e_name (byte*16)        Decimal128
            | "\xFF" e_name                  Min key
            | "\x7F" e_name                  Max key
 e_name   ::= cstring                        Key name
 string   ::= int32 (byte*) "\x00"           String
 cstring  ::= (byte*) "\x00"                 CString
 binary   ::= int32 subtype (byte*)          Binary
 subtype  ::= "\x00"                         Binary / Generic
            | "\x01"                         Function
            | "\x02"                         Binary (Old)
            | "\x03"                         UUID
            | "\x05"                         MD5
            | "\x80"                         User defined
 code_w_s ::= int32 string document          Code w/ scope

 Examples:
 {"hello": "world"}
 "\x16\x00\x00\x00\x02hello\x00\x06\x00\x00\x00world\x00\x00"

 Laziness:

 Unlike an encoder/decoder pair that builds a Map or Slice up front, New
 only checks the outer frame (length prefix, terminator) when a Document is
 constructed. Get walks elements one at a time and stops as soon as it
 finds a match; Iter produces Elements on demand. Every accessor on
 Element re-validates its own payload's local shape the moment it is
 called, never before — touching element N does not require having fully
 validated elements 0..N-1 beyond walking their framing. Nested documents,
 arrays, and binary data are returned as views that borrow from the backing
 buffer and must not outlive it. Strings (values, keys, regex parts, code)
 are the exception: each is copied out of the buffer into a new Go string.

 What this package does not do:

 It does not produce BSON as a public API (see internal/fixture for a
 small encoder used only by this module's own tests, and the interop
 subpackage for conversions into go.mongodb.org/mongo-driver/v2/bson types,
 which that driver can encode).
 It does not mutate documents. It does not build an index for repeated
 random access — repeated Get calls against the same Document each
 re-scan from the start. It does not eagerly validate a document beyond
 the path actually taken; call Document.Materialize for a fully-validated,
 fully-decoded result when that trade-off is acceptable (binary payloads in
 that result still borrow from the backing buffer).
*/
package rawbson
