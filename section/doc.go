// Package section defines the fixed-size binary structures of an encoded
// measurement series.
//
// A series is laid out as:
//
//	┌──────────────────────────────────────────────────┐
//	│ Header (16 bytes)                                │
//	│  - Options (2 bytes, little-endian): magic,      │
//	│    endianness and unit-names bits                │
//	│  - Compression (1 byte), reserved (1 byte)       │
//	│  - UnitCount (4 bytes)                           │
//	│  - ValueCount (4 bytes)                          │
//	│  - Checksum (4 bytes): CRC32 of everything after │
//	│    the header                                    │
//	├──────────────────────────────────────────────────┤
//	│ Index (UnitCount × 16 bytes)                     │
//	│  - UnitID (8 bytes): xxHash64 of the unit name   │
//	│  - Count (4 bytes)                               │
//	│  - Offset (4 bytes): index of the first value    │
//	├──────────────────────────────────────────────────┤
//	│ Unit names (optional, length-prefixed)           │
//	├──────────────────────────────────────────────────┤
//	│ Values (ValueCount × float64, compressed)        │
//	└──────────────────────────────────────────────────┘
//
// Every multi-byte field other than Options uses the byte order selected by
// the endianness bit.
package section
